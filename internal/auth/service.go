package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the JWT claims carried by every authenticated request
type Claims struct {
	ActorID string `json:"actor_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService validates and issues actor tokens
type AuthService struct {
	secret []byte
	roles  *RoleMap
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string, roles *RoleMap) *AuthService {
	return &AuthService{secret: []byte(jwtSecret), roles: roles}
}

// ValidateJWT parses and verifies a bearer token
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// IssueJWT mints a token for an actor; used by tests and provisioning tooling
func (s *AuthService) IssueJWT(actorID, name, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		ActorID: actorID,
		Name:    name,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Can reports whether the actor's role grants the permission. The scope ref
// is accepted for symmetry with finer-grained checkers but the role map is
// currently workspace-wide.
func (s *AuthService) Can(role, permission, _ string) bool {
	if s.roles == nil {
		return false
	}
	return s.roles.Grants(role, permission)
}
