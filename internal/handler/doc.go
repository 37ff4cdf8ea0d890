// Package handler provides the HTTP endpoints of the content API.
//
// All endpoints are GET and unauthenticated. Content endpoints share one
// parameterized list implementation: disable caching, fetch through the
// content service, and write the {"data": ...} envelope or a mapped
// problem-details error. The relay endpoint streams asset bytes with a
// long-lived cache directive instead.
//
// # Response Format
//
//   - WriteData: the {"data": ...} envelope with optional HATEOAS links
//   - WriteError: RFC 9457 Problem Details error response
//
// Errors from the service layer are translated in one place,
// MapServiceError, so all handlers surface upstream failures the same
// way: a 502 carrying the upstream status and detail, never an unhandled
// panic.
package handler
