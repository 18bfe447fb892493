package port

// CredentialHasher produces and verifies opaque credential hashes.
// The core stores the hash unchanged and never inspects it.
type CredentialHasher interface {
	// Hash derives a hash from a plaintext password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the stored hash.
	Verify(hash, password string) bool
}
