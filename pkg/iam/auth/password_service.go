package auth

// PasswordService hashes and verifies admin passwords
type PasswordService interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)

	// Compare verifies a plaintext password against a stored hash
	Compare(hash, password string) error
}
