package user

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/pcourtois/media-vault-go/internal/model"
)

// TokenTTL bounds the lifetime of issued access tokens.
const TokenTTL = 24 * time.Hour

// signToken issues an HS256 token carrying the account ID in `sub`.
func signToken(u *model.User, secret string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   u.ID.String(),
		"email": u.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
