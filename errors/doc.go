// Package errors provides the error types surfaced by the login pipeline.
//
// Every failure the HTTP layer needs to distinguish is an *AppError with a
// machine-readable code and a recommended HTTP status:
//
//   - malformed widget input (missing/unparseable field) → 400 codes
//   - rejected validation (bad hash, expired auth_date)  → INVALID_CREDENTIALS, 401
//   - missing or bad session token                       → UNAUTHORIZED / INVALID_TOKEN, 401
//
// Enrichment failures from a custom UserService are passed through as-is and
// fall back to INTERNAL_ERROR when rendered.
package errors
