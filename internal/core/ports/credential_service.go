package ports

// TokenClaims is the identity claim set embedded in a session token.
type TokenClaims struct {
	ID       string
	Username string
	Role     string
}

// CredentialService hashes and verifies passwords, and mints and verifies
// the signed stateless session tokens that carry TokenClaims.
type CredentialService interface {
	HashPassword(password string) (string, error)
	// ComparePassword reports whether password matches the stored digest.
	// A mismatch is a false return, not an error.
	ComparePassword(password, hash string) bool
	CreateToken(claims TokenClaims) (string, error)
	VerifyToken(token string) (*TokenClaims, error)
}
