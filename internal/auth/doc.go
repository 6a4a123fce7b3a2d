// Package auth issues and verifies the HS256 service tokens that guard
// writes to the rigdesc document archive.
//
// Tokens carry a subject (the service or operator archiving documents) and
// a list of permissions. Reads of the archive are public; POST
// /api/v1/instruments requires a token granting archive:write.
//
//	iss, err := auth.NewIssuer(cfg.Security.JWT.Secret, "rigdesc", time.Hour)
//	token, err := iss.Issue("rig-ci", auth.PermArchiveWrite)
//	claims, err := iss.Authorize(token, auth.PermArchiveWrite)
package auth
