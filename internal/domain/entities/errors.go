package entities

import "errors"

var (
	// ErrUnauthenticated is returned when no caller identity is present.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUnverified is returned when the caller's email is not verified;
	// reads stay open, mutations are blocked.
	ErrUnverified = errors.New("email not verified")
	// ErrForbidden is returned when the caller does not own the target row.
	ErrForbidden = errors.New("not the owner of this record")
	// ErrNotFound indicates the referenced assessment or comment id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput indicates a malformed id or payload, rejected before any mutation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUpstreamUnavailable indicates a metadata-search or store call failed;
	// callers degrade rather than corrupt state.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
