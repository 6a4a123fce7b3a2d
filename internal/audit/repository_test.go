package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nerrad567/rigdesc/internal/infrastructure/database"
	_ "github.com/nerrad567/rigdesc/migrations" // registers the schema
)

func setupTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := database.Open(database.Config{Path: database.MemoryPath})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() }) //nolint:errcheck // Test cleanup

	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}

	repo := NewSQLiteRepository(db.DB)
	base := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	repo.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return repo
}

func TestCreate(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	e := &Entry{
		Action:       ActionArchive,
		InstrumentID: "Nikon2P.1",
		RecordID:     "rec-1",
		Actor:        "rig-ci",
		Source:       SourceAPI,
		Details:      map[string]any{"digest": "abc"},
	}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.ID == "" || e.CreatedAt.IsZero() {
		t.Errorf("Create() should assign ID and CreatedAt, got %+v", e)
	}

	res, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Total != 1 || len(res.Entries) != 1 {
		t.Fatalf("List() = %+v, want one entry", res)
	}
	got := res.Entries[0]
	if got.Actor != "rig-ci" || got.RecordID != "rec-1" || got.Details["digest"] != "abc" {
		t.Errorf("List()[0] = %+v", got)
	}
	if !got.CreatedAt.Equal(e.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, e.CreatedAt)
	}
}

func TestCreate_Invalid(t *testing.T) {
	repo := setupTestRepo(t)

	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "no action", entry: Entry{InstrumentID: "x", Source: SourceCLI}},
		{name: "no instrument", entry: Entry{Action: ActionPublish, Source: SourceCLI}},
		{name: "no source", entry: Entry{Action: ActionPublish, InstrumentID: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(context.Background(), &tt.entry); !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Create() error = %v, want %v", err, ErrInvalidEntry)
			}
		})
	}
}

func TestList_FilterAndPaging(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	entries := []Entry{
		{Action: ActionPublish, InstrumentID: "Nikon2P.1", Source: SourceCLI},
		{Action: ActionArchive, InstrumentID: "Nikon2P.1", Source: SourceAPI, Actor: "rig-ci"},
		{Action: ActionUnchanged, InstrumentID: "Nikon2P.1", Source: SourceAPI, Actor: "rig-ci"},
		{Action: ActionArchive, InstrumentID: "Meso.2", Source: SourceAPI, Actor: "rig-ci"},
	}
	for i := range entries {
		if err := repo.Create(ctx, &entries[i]); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tests := []struct {
		name      string
		filter    Filter
		wantTotal int
		wantIDs   []string
	}{
		{name: "all newest first", filter: Filter{}, wantTotal: 4,
			wantIDs: []string{entries[3].ID, entries[2].ID, entries[1].ID, entries[0].ID}},
		{name: "by action", filter: Filter{Action: ActionArchive}, wantTotal: 2,
			wantIDs: []string{entries[3].ID, entries[1].ID}},
		{name: "by instrument", filter: Filter{InstrumentID: "Meso.2"}, wantTotal: 1,
			wantIDs: []string{entries[3].ID}},
		{name: "paged", filter: Filter{Limit: 2, Offset: 1}, wantTotal: 4,
			wantIDs: []string{entries[2].ID, entries[1].ID}},
		{name: "no match", filter: Filter{Action: "delete"}, wantTotal: 0, wantIDs: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if res.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", res.Total, tt.wantTotal)
			}
			if len(res.Entries) != len(tt.wantIDs) {
				t.Fatalf("len(Entries) = %d, want %d", len(res.Entries), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if res.Entries[i].ID != id {
					t.Errorf("Entries[%d].ID = %s, want %s", i, res.Entries[i].ID, id)
				}
			}
		})
	}
}

func TestList_ClampsLimit(t *testing.T) {
	repo := setupTestRepo(t)

	res, err := repo.List(context.Background(), Filter{Limit: 1000, Offset: -3})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if res.Limit != maxLimit || res.Offset != 0 {
		t.Errorf("Limit, Offset = %d, %d; want %d, 0", res.Limit, res.Offset, maxLimit)
	}
	if res.Entries == nil {
		t.Error("Entries should be an empty slice, not nil")
	}
}
