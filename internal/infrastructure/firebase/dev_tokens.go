package firebase

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ideanest/internal/usecase"
)

// DevTokenVerifier issues and verifies HS256 identity tokens for local
// development, where real Firebase credentials are unavailable.
type DevTokenVerifier struct {
	secret []byte
}

func NewDevTokenVerifier(secret string) *DevTokenVerifier {
	return &DevTokenVerifier{
		secret: []byte(secret),
	}
}

type devTokenClaims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	jwt.RegisteredClaims
}

func (v *DevTokenVerifier) IssueToken(identity *usecase.Identity, ttl time.Duration) (string, error) {
	claims := devTokenClaims{
		Email:   identity.Email,
		Name:    identity.DisplayName,
		Picture: identity.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func (v *DevTokenVerifier) VerifyToken(ctx context.Context, tokenString string) (*usecase.Identity, error) {
	claims := &devTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid dev token")
	}

	return &usecase.Identity{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
		PhotoURL:    claims.Picture,
	}, nil
}
