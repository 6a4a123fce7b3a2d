package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/rigdesc/internal/codec"
	"github.com/nerrad567/rigdesc/internal/instrument"
)

// timeLayout sorts lexically in time order, unlike RFC3339Nano which trims
// trailing zeros.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Record is one archived document revision.
type Record struct {
	ID           string    `json:"id"`
	InstrumentID string    `json:"instrument_id"`
	Digest       string    `json:"digest"`
	Components   int       `json:"components"`
	CreatedAt    time.Time `json:"created_at"`

	// Document is the canonical JSON text. Omitted from listings.
	Document []byte `json:"-"`
}

// Repository defines the archive persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// Save stores a new revision. ID and CreatedAt are assigned when empty.
	// Returns ErrDocumentExists if the digest equals the instrument's latest
	// revision. A document matching an older revision is stored again, so
	// reverting a change produces a new latest revision.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a revision by its record ID.
	Get(ctx context.Context, id string) (*Record, error)

	// Latest retrieves the newest revision of an instrument.
	Latest(ctx context.Context, instrumentID string) (*Record, error)

	// History retrieves every revision of an instrument, newest first,
	// without document bodies.
	History(ctx context.Context, instrumentID string) ([]Record, error)

	// List retrieves the newest revision of every instrument, ordered by
	// instrument id, without document bodies.
	List(ctx context.Context) ([]Record, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db must have the instrument_documents migration applied.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// NewRecord builds a record for a canonical document.
func NewRecord(x *instrument.Instrument, document []byte) *Record {
	return &Record{
		InstrumentID: x.InstrumentID(),
		Digest:       codec.Digest(document),
		Components:   len(x.Components()),
		Document:     document,
	}
}

// Save stores a new revision.
func (r *SQLiteRepository) Save(ctx context.Context, rec *Record) error {
	if strings.TrimSpace(rec.InstrumentID) == "" || rec.Digest == "" || len(rec.Document) == 0 {
		return fmt.Errorf("%w: instrument_id, digest and document are required", ErrInvalidRecord)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now().UTC()
	}

	// Inserts only when the digest differs from the latest revision.
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO instrument_documents (
			id, instrument_id, digest, document, components, created_at
		)
		SELECT ?, ?, ?, ?, ?, ?
		WHERE COALESCE((
			SELECT digest FROM instrument_documents
			WHERE instrument_id = ?
			ORDER BY created_at DESC, rowid DESC
			LIMIT 1
		), '') <> ?`,
		rec.ID,
		rec.InstrumentID,
		rec.Digest,
		rec.Document,
		rec.Components,
		rec.CreatedAt.UTC().Format(timeLayout),
		rec.InstrumentID,
		rec.Digest,
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %s", ErrDocumentExists, rec.InstrumentID, rec.Digest)
	}
	return nil
}

// Get retrieves a revision by its record ID.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, instrument_id, digest, components, created_at, document
		FROM instrument_documents
		WHERE id = ?`, id)
	return scanOne(row)
}

// Latest retrieves the newest revision of an instrument.
func (r *SQLiteRepository) Latest(ctx context.Context, instrumentID string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, instrument_id, digest, components, created_at, document
		FROM instrument_documents
		WHERE instrument_id = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1`, instrumentID)
	return scanOne(row)
}

// History retrieves every revision of an instrument, newest first.
func (r *SQLiteRepository) History(ctx context.Context, instrumentID string) ([]Record, error) {
	records, err := r.queryRecords(ctx, `
		SELECT id, instrument_id, digest, components, created_at
		FROM instrument_documents
		WHERE instrument_id = ?
		ORDER BY created_at DESC, rowid DESC`, instrumentID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, instrumentID)
	}
	return records, nil
}

// List retrieves the newest revision of every instrument.
func (r *SQLiteRepository) List(ctx context.Context) ([]Record, error) {
	return r.queryRecords(ctx, `
		SELECT d.id, d.instrument_id, d.digest, d.components, d.created_at
		FROM instrument_documents d
		WHERE d.rowid = (
			SELECT l.rowid FROM instrument_documents l
			WHERE l.instrument_id = d.instrument_id
			ORDER BY l.created_at DESC, l.rowid DESC
			LIMIT 1
		)
		ORDER BY d.instrument_id`)
}

// Load rebuilds the instrument stored in the newest revision.
func Load(ctx context.Context, repo Repository, instrumentID string) (*instrument.Instrument, error) {
	rec, err := repo.Latest(ctx, instrumentID)
	if err != nil {
		return nil, err
	}
	x, err := codec.Deserialize(rec.Document)
	if err != nil {
		return nil, fmt.Errorf("loading %s revision %s: %w", instrumentID, rec.ID, err)
	}
	return x, nil
}

func (r *SQLiteRepository) queryRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.InstrumentID, &rec.Digest, &rec.Components, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning document row: %w", err)
		}
		if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return records, nil
}

func scanOne(row *sql.Row) (*Record, error) {
	var rec Record
	var createdAt string
	err := row.Scan(&rec.ID, &rec.InstrumentID, &rec.Digest, &rec.Components, &createdAt, &rec.Document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("querying document: %w", err)
	}
	if rec.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &rec, nil
}
