package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims are the identity-provider fields this server reads from a session
// token.
type Claims struct {
	Subject   string
	Email     string
	Name      string
	Picture   string
	ExpiresAt *time.Time
}

// ParseClaims reads the claims of an identity-provider token without checking
// its signature. The backend verifies the token on every authenticated call;
// here it only names the owner and bounds how long it is kept.
func ParseClaims(token string) (Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return Claims{}, ErrInvalidToken
	}

	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, err := mc.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return Claims{}, fmt.Errorf("%w: missing sub", ErrInvalidToken)
	}
	out := Claims{Subject: strings.TrimSpace(sub)}
	if e, _ := mc["email"].(string); e != "" {
		out.Email = e
	}
	if n, _ := mc["name"].(string); n != "" {
		out.Name = n
	}
	if p, _ := mc["picture"].(string); p != "" {
		out.Picture = p
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		out.ExpiresAt = &t
	}
	return out, nil
}
