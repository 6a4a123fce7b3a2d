package publish

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
	"github.com/nerrad567/rigdesc/internal/codec"
	"github.com/nerrad567/rigdesc/internal/infrastructure/influxdb"
	"github.com/nerrad567/rigdesc/internal/instrument"
)

// Announcer tells subscribers about a new document. Implemented by
// *mqtt.Client.
type Announcer interface {
	PublishDocument(ctx context.Context, instrumentID string, document []byte, digest string) error
}

// Recorder records write statistics. Implemented by *influxdb.Client.
type Recorder interface {
	WriteDocument(d influxdb.DocumentWrite)
}

// Auditor records who published what. Implemented by
// *audit.SQLiteRepository.
type Auditor interface {
	Create(ctx context.Context, e *audit.Entry) error
}

// Logger interface for publisher logging.
// Compatible with logging.Logger and slog.Logger.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

// Deps holds the dependencies of a Publisher.
type Deps struct {
	Files   *FileWriter
	Archive archive.Repository
	Logger  Logger

	// Optional sinks. Leave nil when disabled.
	Announcer Announcer
	Recorder  Recorder
	Auditor   Auditor

	// Actor names who publishes, for the audit trail.
	Actor string

	// Prefix is prepended to the standard file name.
	Prefix string
}

// Publisher writes an instrument's canonical document to every sink.
type Publisher struct {
	files     *FileWriter
	archive   archive.Repository
	logger    Logger
	announcer Announcer
	recorder  Recorder
	auditor   Auditor
	actor     string
	prefix    string

	roundTrip func(*instrument.Instrument) ([]byte, error)
}

// Result describes one Publish call.
type Result struct {
	InstrumentID string
	Path         string
	Digest       string
	Bytes        int

	// RecordID is the archive revision holding the document. When the same
	// document was already archived, Unchanged is set and RecordID is that
	// of the existing revision.
	RecordID  string
	Unchanged bool
}

// New creates a Publisher. Files, Archive and Logger are required.
func New(deps Deps) (*Publisher, error) {
	if deps.Files == nil {
		return nil, fmt.Errorf("file writer is required")
	}
	if deps.Archive == nil {
		return nil, fmt.Errorf("archive repository is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if err := checkPrefix(deps.Prefix); err != nil {
		return nil, err
	}
	return &Publisher{
		files:     deps.Files,
		archive:   deps.Archive,
		logger:    deps.Logger,
		announcer: deps.Announcer,
		recorder:  deps.Recorder,
		auditor:   deps.Auditor,
		actor:     deps.Actor,
		prefix:    deps.Prefix,
		roundTrip: codec.RoundTrip,
	}, nil
}

// Publish self-checks x and writes its document.
//
// Steps, in order:
//  1. Round-trip self check (ErrRoundTripFailed aborts before any write)
//  2. Standard file
//  3. Archive revision (an identical archived document is not an error)
//  4. MQTT announcement, if configured
//  5. InfluxDB point, if configured
//  6. Audit entry, if configured
//
// Failures in steps 2 and 3 are returned. Failures in the optional sinks
// are logged.
func (p *Publisher) Publish(ctx context.Context, x *instrument.Instrument) (*Result, error) {
	start := time.Now()

	doc, err := p.roundTrip(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoundTripFailed, err)
	}

	res := &Result{
		InstrumentID: x.InstrumentID(),
		Digest:       codec.Digest(doc),
		Bytes:        len(doc),
	}
	log := p.logger

	res.Path, err = p.files.WriteStandardFile(ctx, doc, p.prefix)
	if err != nil {
		return nil, err
	}

	rec := archive.NewRecord(x, doc)
	switch err := p.archive.Save(ctx, rec); {
	case err == nil:
		res.RecordID = rec.ID
	case errors.Is(err, archive.ErrDocumentExists):
		res.Unchanged = true
		latest, lerr := p.archive.Latest(ctx, res.InstrumentID)
		if lerr == nil && latest.Digest == res.Digest {
			res.RecordID = latest.ID
		}
	default:
		return nil, fmt.Errorf("archiving %s: %w", res.InstrumentID, err)
	}

	if p.announcer != nil {
		if err := p.announcer.PublishDocument(ctx, res.InstrumentID, doc, res.Digest); err != nil {
			log.Warn("announcing document failed", "instrument_id", res.InstrumentID, "error", err)
		}
	}

	if p.recorder != nil {
		p.recorder.WriteDocument(influxdb.DocumentWrite{
			InstrumentID: res.InstrumentID,
			Digest:       res.Digest,
			Bytes:        res.Bytes,
			Components:   rec.Components,
			Modalities:   len(x.Modalities()),
			Duration:     time.Since(start),
		})
	}

	if p.auditor != nil {
		action := audit.ActionPublish
		if res.Unchanged {
			action = audit.ActionUnchanged
		}
		err := p.auditor.Create(ctx, &audit.Entry{
			Action:       action,
			InstrumentID: res.InstrumentID,
			RecordID:     res.RecordID,
			Actor:        p.actor,
			Source:       audit.SourceCLI,
			Details:      map[string]any{"digest": res.Digest, "path": res.Path},
		})
		if err != nil {
			log.Warn("recording audit entry failed", "instrument_id", res.InstrumentID, "error", err)
		}
	}

	log.Info("instrument published",
		"instrument_id", res.InstrumentID,
		"path", res.Path,
		"digest", res.Digest,
		"record_id", res.RecordID,
		"unchanged", res.Unchanged,
	)
	return res, nil
}
