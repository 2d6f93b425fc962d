package hash

// Hash is a one-way, salted hashing primitive for secrets.
type Hash interface {
	// Hash returns the digest of plaintext, including any parameters and salt
	// needed to verify it later.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored digest.
	Verify(hashed, plaintext string) bool
}
