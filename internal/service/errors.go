package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Asset Relay Errors =====
var (
	ErrInvalidAssetURL     = errors.New("asset url must be an absolute http(s) url")
	ErrAssetHostNotAllowed = errors.New("asset host is not allowed")
	ErrAssetFetchFailed    = errors.New("asset fetch failed")
)
