package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLength is the shortest accepted HS256 signing secret.
const MinSecretLength = 32

// defaultTokenTTL applies when an issuer is configured without a TTL.
const defaultTokenTTL = time.Hour

// ServiceClaims are carried by rigdesc service tokens.
type ServiceClaims struct {
	jwt.RegisteredClaims
	Permissions []Permission `json:"perms"`
}

// Issuer signs and verifies service tokens with one HS256 secret.
type Issuer struct {
	secret []byte
	name   string
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer creates an Issuer. name is written to and required in the iss
// claim. A zero ttl means one hour.
func NewIssuer(secret, name string, ttl time.Duration) (*Issuer, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrWeakSecret, MinSecretLength)
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), name: name, ttl: ttl, now: time.Now}, nil
}

// Issue creates a signed token for subject granting perms.
func (i *Issuer) Issue(subject string, perms ...Permission) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	for _, p := range perms {
		if _, ok := ParsePermission(string(p)); !ok {
			return "", fmt.Errorf("%w: unknown permission %q", ErrTokenInvalid, p)
		}
	}

	now := i.now()
	claims := ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.name,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			ID:        uuid.NewString(),
		},
		Permissions: perms,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing service token: %w", err)
	}
	return signed, nil
}

// Parse validates a token's signature, expiry and issuer, and returns its
// claims. Expired tokens return ErrTokenExpired; every other failure
// returns ErrTokenInvalid.
func (i *Issuer) Parse(tokenString string) (*ServiceClaims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	}
	if i.name != "" {
		opts = append(opts, jwt.WithIssuer(i.name))
	}

	token, err := jwt.ParseWithClaims(tokenString, &ServiceClaims{}, func(_ *jwt.Token) (any, error) {
		return i.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*ServiceClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}
	return claims, nil
}

// Authorize parses a token and checks it grants perm.
func (i *Issuer) Authorize(tokenString string, perm Permission) (*ServiceClaims, error) {
	claims, err := i.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	if !claims.HasPermission(perm) {
		return nil, fmt.Errorf("%w: %s lacks %s", ErrForbidden, claims.Subject, perm)
	}
	return claims, nil
}
