package outbound

// PasswordVerifier checks a plaintext password against a stored hash.
// Verification is a required, pluggable strategy: the insecure accept-any
// implementation exists only behind an explicit configuration flag.
type PasswordVerifier interface {
	VerifyPassword(password, hash string) (bool, error)
}

// PasswordHasher hashes passwords for storage. Used by the seeding and user
// creation tooling, not by the request path.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}
