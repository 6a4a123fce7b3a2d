package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
	"github.com/nerrad567/rigdesc/internal/codec"
	"github.com/nerrad567/rigdesc/internal/infrastructure/influxdb"
	"github.com/nerrad567/rigdesc/internal/infrastructure/logging"
	"github.com/nerrad567/rigdesc/internal/instrument"
	"github.com/nerrad567/rigdesc/internal/rigs"
)

// memoryArchive is an in-memory archive.Repository.
type memoryArchive struct {
	mu      sync.Mutex
	records []archive.Record
	saveErr error
}

func (m *memoryArchive) Save(_ context.Context, rec *archive.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].InstrumentID != rec.InstrumentID {
			continue
		}
		if m.records[i].Digest == rec.Digest {
			return archive.ErrDocumentExists
		}
		break
	}
	rec.ID = fmt.Sprintf("%s-%d", rec.Digest[:8], len(m.records))
	m.records = append(m.records, *rec)
	return nil
}

func (m *memoryArchive) Get(context.Context, string) (*archive.Record, error) {
	return nil, archive.ErrDocumentNotFound
}

func (m *memoryArchive) Latest(_ context.Context, id string) (*archive.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.records) - 1; i >= 0; i-- {
		if m.records[i].InstrumentID == id {
			rec := m.records[i]
			return &rec, nil
		}
	}
	return nil, archive.ErrDocumentNotFound
}

func (m *memoryArchive) History(context.Context, string) ([]archive.Record, error) {
	return nil, archive.ErrDocumentNotFound
}

func (m *memoryArchive) List(context.Context) ([]archive.Record, error) { return nil, nil }

type fakeAnnouncer struct {
	err    error
	topics []string
}

func (f *fakeAnnouncer) PublishDocument(_ context.Context, id string, _ []byte, _ string) error {
	f.topics = append(f.topics, id)
	return f.err
}

type fakeRecorder struct {
	writes []influxdb.DocumentWrite
}

func (f *fakeRecorder) WriteDocument(d influxdb.DocumentWrite) { f.writes = append(f.writes, d) }

type fakeAuditor struct {
	err     error
	entries []audit.Entry
}

func (f *fakeAuditor) Create(_ context.Context, e *audit.Entry) error {
	f.entries = append(f.entries, *e)
	return f.err
}

func nikon(t *testing.T) *instrument.Instrument {
	t.Helper()
	x, err := rigs.Build(rigs.Nikon2P1ID)
	if err != nil {
		t.Fatalf("rigs.Build() error = %v", err)
	}
	return x
}

func newTestPublisher(t *testing.T, deps Deps) (*Publisher, string) {
	t.Helper()
	dir := t.TempDir()
	if deps.Files == nil {
		deps.Files = &FileWriter{Dir: dir}
	}
	if deps.Archive == nil {
		deps.Archive = &memoryArchive{}
	}
	deps.Logger = logging.Discard()
	p, err := New(deps)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p, dir
}

func TestPublish(t *testing.T) {
	ann := &fakeAnnouncer{}
	rec := &fakeRecorder{}
	arch := &memoryArchive{}
	p, dir := newTestPublisher(t, Deps{Archive: arch, Announcer: ann, Recorder: rec})

	x := nikon(t)
	res, err := p.Publish(context.Background(), x)
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	want, err := codec.Serialize(x)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "instrument.json"))
	if err != nil {
		t.Fatalf("standard file not written: %v", err)
	}
	if string(data) != string(want) {
		t.Error("standard file is not the canonical document")
	}

	if res.Digest != codec.Digest(want) || res.Bytes != len(want) || res.Unchanged {
		t.Errorf("Result = %+v", res)
	}
	if len(arch.records) != 1 || arch.records[0].ID != res.RecordID {
		t.Errorf("archive = %+v, record id %q", arch.records, res.RecordID)
	}
	if len(ann.topics) != 1 || ann.topics[0] != rigs.Nikon2P1ID {
		t.Errorf("announced = %v", ann.topics)
	}
	if len(rec.writes) != 1 || rec.writes[0].Components != 9 || rec.writes[0].Modalities != 2 {
		t.Errorf("recorded = %+v", rec.writes)
	}
}

func TestPublishSameDocumentTwice(t *testing.T) {
	p, _ := newTestPublisher(t, Deps{})
	ctx := context.Background()

	first, err := p.Publish(ctx, nikon(t))
	if err != nil {
		t.Fatalf("first Publish() error = %v", err)
	}
	second, err := p.Publish(ctx, nikon(t))
	if err != nil {
		t.Fatalf("second Publish() error = %v", err)
	}
	if !second.Unchanged || second.RecordID != first.RecordID {
		t.Errorf("second Result = %+v, want unchanged with record %s", second, first.RecordID)
	}
}

func TestPublishRevertArchivesNewRevision(t *testing.T) {
	arch := &memoryArchive{}
	p, _ := newTestPublisher(t, Deps{Archive: arch})
	ctx := context.Background()

	edited, err := instrument.From(nikon(t)).Notes("Objective replaced.").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var results []*Result
	for _, x := range []*instrument.Instrument{nikon(t), edited, nikon(t)} {
		res, err := p.Publish(ctx, x)
		if err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		results = append(results, res)
	}

	reverted := results[2]
	if reverted.Unchanged || reverted.RecordID == "" || reverted.RecordID == results[0].RecordID {
		t.Errorf("reverted Result = %+v, want a new revision", reverted)
	}
	latest, err := arch.Latest(ctx, rigs.Nikon2P1ID)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if latest.ID != reverted.RecordID || latest.Digest != results[0].Digest {
		t.Errorf("latest = %+v, want record %s with digest %s", latest, reverted.RecordID, results[0].Digest)
	}
}

func TestPublishRoundTripFailureWritesNothing(t *testing.T) {
	arch := &memoryArchive{}
	ann := &fakeAnnouncer{}
	p, dir := newTestPublisher(t, Deps{Archive: arch, Announcer: ann})
	p.roundTrip = func(*instrument.Instrument) ([]byte, error) {
		return nil, codec.ErrRoundTrip
	}

	_, err := p.Publish(context.Background(), nikon(t))
	if !errors.Is(err, ErrRoundTripFailed) || !errors.Is(err, codec.ErrRoundTrip) {
		t.Fatalf("Publish() error = %v, want %v wrapping %v", err, ErrRoundTripFailed, codec.ErrRoundTrip)
	}

	entries, _ := os.ReadDir(dir) //nolint:errcheck // Empty on error
	if len(entries) != 0 || len(arch.records) != 0 || len(ann.topics) != 0 {
		t.Errorf("round-trip failure still wrote: files=%d archive=%d announced=%d",
			len(entries), len(arch.records), len(ann.topics))
	}
}

func TestPublishNilInstrument(t *testing.T) {
	p, _ := newTestPublisher(t, Deps{})
	if _, err := p.Publish(context.Background(), nil); !errors.Is(err, ErrRoundTripFailed) {
		t.Errorf("Publish(nil) error = %v, want %v", err, ErrRoundTripFailed)
	}
}

func TestPublishArchiveFailure(t *testing.T) {
	dbErr := errors.New("disk I/O error")
	p, _ := newTestPublisher(t, Deps{Archive: &memoryArchive{saveErr: dbErr}})

	if _, err := p.Publish(context.Background(), nikon(t)); !errors.Is(err, dbErr) {
		t.Errorf("Publish() error = %v, want %v", err, dbErr)
	}
}

func TestPublishAnnouncerFailureIsNotFatal(t *testing.T) {
	p, _ := newTestPublisher(t, Deps{Announcer: &fakeAnnouncer{err: errors.New("mqtt: client not connected")}})

	if _, err := p.Publish(context.Background(), nikon(t)); err != nil {
		t.Errorf("Publish() error = %v, want nil", err)
	}
}

func TestNewRequiresDeps(t *testing.T) {
	tests := []struct {
		name    string
		deps    Deps
		wantErr error
	}{
		{name: "missing files", deps: Deps{Archive: &memoryArchive{}, Logger: logging.Discard()}},
		{name: "missing archive", deps: Deps{Files: &FileWriter{}, Logger: logging.Discard()}},
		{name: "missing logger", deps: Deps{Files: &FileWriter{}, Archive: &memoryArchive{}}},
		{
			name:    "bad prefix",
			deps:    Deps{Files: &FileWriter{}, Archive: &memoryArchive{}, Logger: logging.Discard(), Prefix: "../x"},
			wantErr: ErrInvalidPrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.deps)
			if err == nil {
				t.Fatal("New() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublishAudit(t *testing.T) {
	aud := &fakeAuditor{}
	p, _ := newTestPublisher(t, Deps{Auditor: aud, Actor: "operator"})
	ctx := context.Background()

	first, err := p.Publish(ctx, nikon(t))
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if _, err := p.Publish(ctx, nikon(t)); err != nil {
		t.Fatalf("second Publish() error = %v", err)
	}

	if len(aud.entries) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(aud.entries))
	}
	want := []string{audit.ActionPublish, audit.ActionUnchanged}
	for i, e := range aud.entries {
		if e.Action != want[i] {
			t.Errorf("entries[%d].Action = %q, want %q", i, e.Action, want[i])
		}
		if e.Actor != "operator" || e.Source != audit.SourceCLI || e.RecordID != first.RecordID {
			t.Errorf("entries[%d] = %+v", i, e)
		}
	}
}

func TestPublishAuditFailureIsNotFatal(t *testing.T) {
	p, _ := newTestPublisher(t, Deps{Auditor: &fakeAuditor{err: errors.New("database is locked")}})

	if _, err := p.Publish(context.Background(), nikon(t)); err != nil {
		t.Errorf("Publish() error = %v, audit failures should only be logged", err)
	}
}
