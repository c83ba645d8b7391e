package domain

import "errors"

// Authentication failure taxonomy. All of these map to 401 at the HTTP
// boundary with a short reason code; internal detail never leaks.
var (
	// ErrMalformedCredential: the Authorization header was missing or not
	// a well-formed bearer token.
	ErrMalformedCredential = errors.New("malformed credential")

	// ErrInvalidCredential: the identity provider rejected the assertion,
	// or verification timed out (timeouts fail closed).
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrInvalidRefreshToken: no matching unrevoked, unexpired refresh
	// token row for the presented value.
	ErrInvalidRefreshToken = errors.New("invalid refresh token")

	// ErrUnauthenticated: the access token signature or expiry check failed.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUserNotFound: the token was valid but the referenced user is gone.
	ErrUserNotFound = errors.New("user not found")
)
