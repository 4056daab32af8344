package driven

// IDGenerator produces opaque identifiers.
type IDGenerator interface {
	// NewDocumentID returns a collision-resistant document identifier.
	// Uniqueness per owner is an invariant the generator must satisfy with
	// overwhelming probability; the store still rejects collisions.
	NewDocumentID() string

	// NewUserID returns a globally unique user identifier
	NewUserID() string

	// NewSessionID returns a globally unique session identifier
	NewSessionID() string
}
