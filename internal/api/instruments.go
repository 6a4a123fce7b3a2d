package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/rigdesc/internal/archive"
	"github.com/nerrad567/rigdesc/internal/audit"
	"github.com/nerrad567/rigdesc/internal/codec"
	"github.com/nerrad567/rigdesc/internal/infrastructure/logging"
	"github.com/nerrad567/rigdesc/internal/instrument"
)

// unknownInstrument tags validation statistics for documents whose id could
// not be read.
const unknownInstrument = "unknown"

// handleListInstruments returns the newest revision of every archived
// instrument.
func (s *Server) handleListInstruments(w http.ResponseWriter, r *http.Request) {
	records, err := s.archive.List(r.Context())
	if err != nil {
		s.logger.Error("listing instruments", "error", err)
		writeInternalError(w, "failed to list instruments")
		return
	}
	if records == nil {
		records = []archive.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"instruments": records, "count": len(records)})
}

// handleGetInstrument returns the newest archived document of an instrument
// as canonical text.
func (s *Server) handleGetInstrument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := s.archive.Latest(r.Context(), id)
	if err != nil {
		if errors.Is(err, archive.ErrDocumentNotFound) {
			writeNotFound(w, "instrument not found")
			return
		}
		s.logger.Instrument(id).Error("getting instrument", "error", err)
		writeInternalError(w, "failed to get instrument")
		return
	}
	w.Header().Set("X-Record-ID", rec.ID)
	writeDocument(w, http.StatusOK, rec.Document, rec.Digest)
}

// handleInstrumentHistory returns every archived revision of an instrument,
// newest first.
func (s *Server) handleInstrumentHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	records, err := s.archive.History(r.Context(), id)
	if err != nil {
		if errors.Is(err, archive.ErrDocumentNotFound) {
			writeNotFound(w, "instrument not found")
			return
		}
		s.logger.Instrument(id).Error("getting instrument history", "error", err)
		writeInternalError(w, "failed to get instrument history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"instrument_id": id,
		"revisions":     records,
		"count":         len(records),
	})
}

// handleValidate reads a document and answers with its canonical form, or
// 422 describing the first rule it breaks. Nothing is stored.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	x, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	doc, err := codec.Serialize(x)
	if err != nil {
		s.logger.Instrument(x.InstrumentID()).Error("serializing validated instrument", "error", err)
		writeInternalError(w, "failed to serialize instrument")
		return
	}
	writeDocument(w, http.StatusOK, doc, codec.Digest(doc))
}

// handleArchiveInstrument validates a document and stores its canonical
// form as a new revision. Posting the document already held by the latest
// revision answers 200 with that revision; anything else, including a revert
// to an older revision, answers 201.
func (s *Server) handleArchiveInstrument(w http.ResponseWriter, r *http.Request) {
	x, ok := s.readDocument(w, r)
	if !ok {
		return
	}

	log := s.logger.Instrument(x.InstrumentID())
	doc, err := codec.RoundTrip(x)
	if err != nil {
		log.Error("round trip failed", "error", err)
		writeDocumentError(w, err)
		return
	}

	ctx := r.Context()
	rec := archive.NewRecord(x, doc)
	err = s.archive.Save(ctx, rec)
	switch {
	case errors.Is(err, archive.ErrDocumentExists):
		existing, ferr := s.archive.Latest(ctx, rec.InstrumentID)
		if ferr == nil && existing.Digest != rec.Digest {
			ferr = fmt.Errorf("latest revision %s holds digest %s, want %s", existing.ID, existing.Digest, rec.Digest)
		}
		if ferr != nil {
			log.Error("finding archived revision", "error", ferr)
			writeInternalError(w, "failed to archive instrument")
			return
		}
		s.recordAudit(r, audit.ActionUnchanged, existing)
		writeJSON(w, http.StatusOK, map[string]any{"record": existing, "unchanged": true})
		return
	case err != nil:
		log.Error("archiving instrument", "error", err)
		writeInternalError(w, "failed to archive instrument")
		return
	}

	log.Info("instrument archived",
		"record_id", rec.ID,
		logging.KeyDigest, rec.Digest,
		"subject", subject(ctx),
	)
	s.recordAudit(r, audit.ActionArchive, rec)

	w.Header().Set("Location", "/api/v1/instruments/"+rec.InstrumentID)
	writeJSON(w, http.StatusCreated, map[string]any{"record": rec, "unchanged": false})
}

// readDocument reads the request body and deserializes it. On failure it
// writes the response and returns false. The outcome is recorded when a
// ValidationRecorder is configured.
func (s *Server) readDocument(w http.ResponseWriter, r *http.Request) (*instrument.Instrument, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, "document exceeds the request size limit")
			return nil, false
		}
		writeBadRequest(w, "failed to read request body")
		return nil, false
	}

	x, err := codec.Deserialize(body)
	if err != nil {
		resp := documentError(err)
		s.recordValidation(unknownInstrument, failedRule(resp))
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return nil, false
	}
	s.recordValidation(x.InstrumentID(), "")
	return x, true
}

// failedRule names the rule a rejected document broke, for statistics.
func failedRule(e Error) string {
	if e.Invariant != "" {
		return e.Invariant
	}
	return e.Code
}

func (s *Server) recordValidation(instrumentID, invariant string) {
	if s.recorder == nil {
		return
	}
	s.recorder.WriteValidation(instrumentID, invariant)
}
