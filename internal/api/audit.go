package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
)

// handleListAudit returns audit entries, newest first.
//
// Query parameters:
//   - action: filter by action (archive, unchanged, publish)
//   - instrument_id: filter by instrument
//   - limit: page size (default 50, max 200)
//   - offset: pagination offset
func (s *Server) handleListAudit(w http.ResponseWriter, r *http.Request) {
	if s.audit == nil {
		writeNotFound(w, "audit trail is not configured")
		return
	}

	q := r.URL.Query()
	filter := audit.Filter{
		Action:       q.Get("action"),
		InstrumentID: q.Get("instrument_id"),
	}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			writeBadRequest(w, name+" must be an integer")
			return
		}
		*dst = n
	}

	res, err := s.audit.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("listing audit entries", "error", err)
		writeInternalError(w, "failed to list audit entries")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// recordAudit appends an entry for an archive request. Failures are logged.
func (s *Server) recordAudit(r *http.Request, action string, rec *archive.Record) {
	if s.audit == nil {
		return
	}
	err := s.audit.Create(r.Context(), &audit.Entry{
		Action:       action,
		InstrumentID: rec.InstrumentID,
		RecordID:     rec.ID,
		Actor:        subject(r.Context()),
		Source:       audit.SourceAPI,
		Details: map[string]any{
			"digest":     rec.Digest,
			"request_id": r.Context().Value(ctxKeyRequestID),
		},
	})
	if err != nil {
		s.logger.Instrument(rec.InstrumentID).Warn("recording audit entry failed", "error", err)
	}
}

// subject returns the token subject of an authorised request.
func subject(ctx context.Context) string {
	if claims := claimsFromContext(ctx); claims != nil {
		return claims.Subject
	}
	return ""
}
