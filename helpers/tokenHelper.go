package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type SignedDetails struct {
	Email     string
	Name      string
	Uid       string
	User_role string
	jwt.RegisteredClaims
}

const (
	tokenTTL = 24 * time.Hour
	// refreshSubject marks refresh tokens, which never authorize a request.
	refreshSubject = "refresh"
)

var ErrInvalidToken = errors.New("the token is invalid")

// TokenIssuer signs and validates staff tokens with one HMAC secret.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), now: time.Now}
}

func (t *TokenIssuer) GenerateAllTokens(email, name, uid, userRole string) (signedToken string, refreshSignedToken string, err error) {
	expires := jwt.NewNumericDate(t.now().Add(tokenTTL))
	claim := SignedDetails{
		Email:     email,
		Name:      name,
		Uid:       uid,
		User_role: userRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: expires,
		},
	}
	refreshClaim := SignedDetails{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   refreshSubject,
			ExpiresAt: jwt.NewNumericDate(t.now().Add(7 * tokenTTL)),
		},
	}
	signedToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString(t.secret)
	if err != nil {
		return "", "", err
	}
	refreshSignedToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaim).SignedString(t.secret)
	if err != nil {
		return "", "", err
	}
	return signedToken, refreshSignedToken, nil
}

// ValidateToken accepts access tokens only.
func (t *TokenIssuer) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(tok *jwt.Token) (interface{}, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return t.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid || claims.Subject == refreshSubject {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
