// Package requestid attaches a correlation identifier to every HTTP request.
//
// If the client supplies an "X-Request-ID" header its value is validated and
// reused; otherwise a new UUIDv4 string is generated. The chosen ID is stored
// in the request context, echoed back in the response header, and can be
// pulled into structured logs and audit events via FromContext or Extractor.
package requestid
