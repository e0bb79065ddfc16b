// Package audit records the resolution of help requests: who was served or
// dismissed, by whom, and when. Events flow through a Storage sink — a
// Google Sheets ledger in production, a structured log otherwise — behind an
// async writer so spreadsheet latency never blocks request handling.
//
// Auditing is best-effort by design: a failed write is reported to the
// caller (or the async error handler) and never rolled back against the
// queue.
package audit
