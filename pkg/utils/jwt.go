package utils

import (
	"errors"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the assertion the identity provider forwards for an
// authenticated dashboard request: who the caller is and which
// organization they are acting for.
type IdentityClaims struct {
	UserID string `json:"sub"`
	OrgID  string `json:"org_id"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid or expired token")

func ValidateIdentityToken(tokenString string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(os.Getenv("IDENTITY_JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
