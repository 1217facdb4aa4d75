package actor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/samarpantrust/outreach/internal/domain"
)

const tokenIssuer = "outreach-site"

// jwtSource mints short-lived HS256 tokens whose subject is the site's
// principal. Wrap it in oauth2.ReuseTokenSource so a token is reused until
// shortly before it expires.
type jwtSource struct {
	principal domain.Principal
	key       []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewTokenSource returns an oauth2.TokenSource minting caller tokens for p.
func NewTokenSource(p domain.Principal, key []byte, ttl time.Duration) oauth2.TokenSource {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &jwtSource{principal: p, key: key, ttl: ttl, now: time.Now}
}

// Token implements oauth2.TokenSource.
func (s *jwtSource) Token() (*oauth2.Token, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   string(s.principal),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return nil, fmt.Errorf("signing caller token: %w", err)
	}
	return &oauth2.Token{AccessToken: signed, TokenType: "Bearer", Expiry: exp}, nil
}

// VerifyToken validates a bearer token minted by NewTokenSource and returns
// the principal it names.
func VerifyToken(raw string, key []byte) (domain.Principal, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	}
	return domain.Principal(claims.Subject), nil
}

func bearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}
