// Package model defines the normalized content records served by the API
// and the RFC 9457 problem-details error shape.
//
// Records are flat, defaulted projections of the content store's rows:
// every optional field resolves to "" / 0 / false / an empty list rather
// than null, so consumers render without null-checks. Records are never
// created or mutated here; the content store is the sole writer.
package model
