package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Measurement names written by rigdesc.
const (
	MeasurementDocuments   = "instrument_documents"
	MeasurementValidations = "instrument_validations"
)

// DocumentWrite describes one standard file written for an instrument.
type DocumentWrite struct {
	InstrumentID string
	Digest       string
	Bytes        int
	Components   int
	Modalities   int
	Duration     time.Duration
	Time         time.Time
}

// documentPoint builds the point for a written document. The digest is a
// field, not a tag, to keep series cardinality bounded by instrument count.
func documentPoint(d DocumentWrite) *write.Point {
	ts := d.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	return write.NewPoint(
		MeasurementDocuments,
		map[string]string{
			"instrument_id": d.InstrumentID,
		},
		map[string]interface{}{
			"digest":      d.Digest,
			"bytes":       d.Bytes,
			"components":  d.Components,
			"modalities":  d.Modalities,
			"duration_ms": d.Duration.Milliseconds(),
		},
		ts,
	)
}

// validationPoint builds the point for one validation outcome.
// An empty invariant records a pass.
func validationPoint(instrumentID, invariant string, ts time.Time) *write.Point {
	result := "pass"
	if invariant != "" {
		result = "fail"
	}
	tags := map[string]string{
		"instrument_id": instrumentID,
		"result":        result,
	}
	if invariant != "" {
		tags["invariant"] = invariant
	}
	return write.NewPoint(MeasurementValidations, tags, map[string]interface{}{"count": 1}, ts)
}

// WriteDocument records a written standard file.
//
// The write is non-blocking; data is batched and sent asynchronously.
func (c *Client) WriteDocument(d DocumentWrite) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(documentPoint(d))
}

// WriteValidation records the outcome of validating an instrument.
// Pass an empty invariant for success.
func (c *Client) WriteValidation(instrumentID, invariant string) {
	if !c.IsConnected() {
		return
	}
	c.writeAPI.WritePoint(validationPoint(instrumentID, invariant, time.Now()))
}
