package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and the OTP reference
// store return these (optionally wrapped); services translate them into
// domain errors.
//
//   - ErrNotFound: application or OTP reference does not exist
//   - ErrConflict: optimistic version check failed on save
//   - ErrExpired: OTP reference outlived its TTL
//   - ErrAlreadyUsed: OTP reference was already consumed
//   - ErrUnavailable: backing store temporarily unreachable
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrExpired     = errors.New("expired")
	ErrAlreadyUsed = errors.New("already used")
	ErrUnavailable = errors.New("unavailable")
)
