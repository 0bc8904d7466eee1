package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guitarworld/guitar-store/internal/core/domain"
	"github.com/guitarworld/guitar-store/internal/core/ports"
)

// CredentialService implements password hashing and stateless session
// tokens. Tokens are HS256-signed and carry no expiry claim; their lifetime
// is bounded only by signature validity.
type CredentialService struct {
	jwtSecret string
}

func NewCredentialService(jwtSecret string) *CredentialService {
	return &CredentialService{jwtSecret: jwtSecret}
}

func (s *CredentialService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *CredentialService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *CredentialService) CreateToken(claims ports.TokenClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       claims.ID,
		"username": claims.Username,
		"role":     claims.Role,
	})
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *CredentialService) VerifyToken(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if id == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{ID: id, Username: username, Role: role}, nil
}
