// Package hash provides helpers for hashing and verifying secrets.
//
// Typical usage is for password hashing: store only the hash, then verify user
// input by comparing the plaintext against the stored hash. Implementations
// (bcrypt, argon2id) live behind a small interface so the work factor and
// algorithm stay configurable.
package hash
