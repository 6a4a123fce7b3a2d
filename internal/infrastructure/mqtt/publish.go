package mqtt

import (
	"context"
	"fmt"
	"time"
)

// Maximum payload size for MQTT messages (1MB).
// This prevents resource exhaustion and aligns with typical broker limits.
const maxPayloadSize = 1 << 20

// Publish sends a message to the specified MQTT topic.
//
// QoS Levels:
//   - 0: At most once (fire and forget)
//   - 1: At least once (guaranteed delivery, may duplicate)
//   - 2: Exactly once (guaranteed, no duplicates, higher overhead)
//
// The call waits for the broker acknowledgement until ctx is done, or for
// defaultPublishTimeout when ctx has no deadline.
func (c *Client) Publish(ctx context.Context, topic string, payload []byte, qos byte, retained bool) error {
	if !validTopic(topic) {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if len(payload) > maxPayloadSize {
		return fmt.Errorf("%w: payload size %d exceeds maximum %d bytes", ErrPublishFailed, len(payload), maxPayloadSize)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultPublishTimeout)
		defer cancel()
	}

	token := c.client.Publish(topic, qos, retained, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrPublishFailed, ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrPublishFailed, err)
	}
	return nil
}

// PublishRetained publishes a retained message with the configured default QoS.
//
// Use for state where new subscribers should receive the current value,
// such as the latest instrument document.
func (c *Client) PublishRetained(ctx context.Context, topic string, payload []byte) error {
	return c.Publish(ctx, topic, payload, byte(c.cfg.QoS), true)
}

// PublishDocument publishes an instrument's serialized document and its
// digest, both retained.
func (c *Client) PublishDocument(ctx context.Context, instrumentID string, document []byte, digest string) error {
	start := time.Now()
	if err := c.PublishRetained(ctx, c.topics.InstrumentDocument(instrumentID), document); err != nil {
		return err
	}
	if err := c.PublishRetained(ctx, c.topics.InstrumentDigest(instrumentID), []byte(digest)); err != nil {
		return err
	}
	if logger := c.getLogger(); logger != nil {
		logger.Info("instrument document published",
			"instrument_id", instrumentID,
			"bytes", len(document),
			"duration", time.Since(start),
		)
	}
	return nil
}
