// Package api implements the rigdesc HTTP REST API.
//
// This package provides:
//   - Read endpoints over the document archive (latest, history, listing)
//   - Stateless validation of instrument documents
//   - Archiving of documents, guarded by HS256 service tokens
//   - Middleware stack (request ID, logging, recovery, CORS, body limit)
//   - TLS support for production deployments
//
// # Routes
//
//	GET  /api/v1/health
//	GET  /api/v1/instruments
//	GET  /api/v1/instruments/{id}
//	GET  /api/v1/instruments/{id}/history
//	POST /api/v1/validate
//	POST /api/v1/instruments        (Bearer token with archive:write)
//
// Documents are returned exactly as archived: canonical JSON text, served
// with an X-Document-Digest header.
//
// # Errors
//
// Errors use a JSON body {status, code, message}. A document that fails
// validation is answered with 422 and one of the codes malformed_input,
// schema_validation or instrument_validation; the last also names the
// violated invariant.
package api
