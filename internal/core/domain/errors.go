package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrNotFound indicates the requested document does not exist for this
	// owner. Owner mismatch is reported identically so the existence of
	// another user's document is never revealed.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateDocument indicates a document with this id already exists
	// for the owner
	ErrDuplicateDocument = errors.New("document already exists")

	// ErrAlreadyExists indicates the resource already exists
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates the input is empty or invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates the content type has no registered normaliser
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEmbeddingFailed indicates the embedding step failed or returned a
	// degenerate (zero-norm) vector; no partial document may be stored
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrNoDocuments indicates the owner has no documents at query time
	ErrNoDocuments = errors.New("no documents for user")

	// ErrNoMatch indicates no chunk cleared the similarity threshold
	ErrNoMatch = errors.New("no relevant information found")

	// ErrUnauthorized indicates authentication failed or missing
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user lacks permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials indicates wrong email/password combination
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates the auth token has expired
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates the auth token is malformed or invalid
	ErrTokenInvalid = errors.New("token invalid")

	// ErrSessionNotFound indicates the session does not exist
	ErrSessionNotFound = errors.New("session not found")
)
