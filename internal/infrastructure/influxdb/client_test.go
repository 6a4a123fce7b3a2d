package influxdb

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/nerrad567/rigdesc/internal/infrastructure/config"
)

// fakeWriteAPI captures points in line protocol.
type fakeWriteAPI struct {
	api.WriteAPI

	mu      sync.Mutex
	lines   []string
	flushes int
	errs    chan error
}

func (f *fakeWriteAPI) WritePoint(p *write.Point) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, write.PointToLineProtocol(p, time.Nanosecond))
}

func (f *fakeWriteAPI) Flush() {
	f.mu.Lock()
	f.flushes++
	f.mu.Unlock()
}

func (f *fakeWriteAPI) Errors() <-chan error { return f.errs }

func newTestClient(t *testing.T) (*Client, *fakeWriteAPI) {
	t.Helper()
	fake := &fakeWriteAPI{errs: make(chan error, 1)}
	t.Cleanup(func() { close(fake.errs) })
	return newClient(nil, fake, config.InfluxDBConfig{Enabled: true}), fake
}

func TestConnect_Disabled(t *testing.T) {
	_, err := Connect(config.InfluxDBConfig{Enabled: false})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(config.InfluxDBConfig{
		Enabled: true,
		URL:     "http://127.0.0.1:59999",
		Org:     "rigdesc",
		Bucket:  "rigdesc",
	})
	if !errors.Is(err, ErrConnectionFailed) {
		t.Errorf("Connect() error = %v, want ErrConnectionFailed", err)
	}
}

func TestWriteDocument(t *testing.T) {
	c, fake := newTestClient(t)

	c.WriteDocument(DocumentWrite{
		InstrumentID: "Nikon2P.1",
		Digest:       "abc123",
		Bytes:        4096,
		Components:   9,
		Modalities:   2,
		Duration:     7 * time.Millisecond,
		Time:         time.Unix(1700000000, 0),
	})

	if len(fake.lines) != 1 {
		t.Fatalf("wrote %d points, want 1", len(fake.lines))
	}
	line := fake.lines[0]
	for _, want := range []string{
		"instrument_documents,instrument_id=Nikon2P.1 ",
		`digest="abc123"`,
		"bytes=4096i",
		"components=9i",
		"modalities=2i",
		"duration_ms=7i",
		" 1700000000000000000",
	} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
}

func TestWriteValidation(t *testing.T) {
	c, fake := newTestClient(t)

	c.WriteValidation("Nikon2P.1", "")
	c.WriteValidation("Nikon2P.1", "unique_component_names")

	if len(fake.lines) != 2 {
		t.Fatalf("wrote %d points, want 2", len(fake.lines))
	}
	if !strings.HasPrefix(fake.lines[0], "instrument_validations,instrument_id=Nikon2P.1,result=pass count=1i") {
		t.Errorf("pass line = %q", fake.lines[0])
	}
	if !strings.HasPrefix(fake.lines[1], "instrument_validations,instrument_id=Nikon2P.1,invariant=unique_component_names,result=fail") {
		t.Errorf("fail line = %q", fake.lines[1])
	}
}

func TestWritesAfterCloseAreDropped(t *testing.T) {
	c, fake := newTestClient(t)

	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if fake.flushes != 1 {
		t.Errorf("Close() flushed %d times, want 1", fake.flushes)
	}

	c.WriteDocument(DocumentWrite{InstrumentID: "Nikon2P.1"})
	c.Flush()
	if len(fake.lines) != 0 || fake.flushes != 1 {
		t.Errorf("lines = %d, flushes = %d after Close()", len(fake.lines), fake.flushes)
	}
	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}

	var nilClient *Client
	if err := nilClient.Close(); err != nil {
		t.Errorf("nil Close() error = %v", err)
	}
}

func TestOnErrorWrapsWriteFailure(t *testing.T) {
	c, fake := newTestClient(t)

	got := make(chan error, 1)
	c.SetOnError(func(err error) { got <- err })

	cause := errors.New("bucket not found")
	fake.errs <- cause

	select {
	case err := <-got:
		if !errors.Is(err, ErrWriteFailed) || !errors.Is(err, cause) {
			t.Errorf("callback error = %v, want ErrWriteFailed wrapping cause", err)
		}
	case <-time.After(time.Second):
		t.Fatal("error callback not invoked")
	}
}
