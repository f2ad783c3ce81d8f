package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	uuid "github.com/satori/go.uuid"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims JWT载荷
type Claims struct {
	UserID   uint64   `json:"userId,string"`
	Username string   `json:"username"`
	RoleIDs  []uint64 `json:"roleIds,omitempty"`
	jwt.RegisteredClaims
}

// Signer HS256签发与校验
type Signer struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration
	now       func() time.Time
}

type Option func(*Signer)

func WithIssuer(issuer string) Option {
	return func(s *Signer) {
		s.issuer = issuer
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

func NewSigner(secret string, expiresIn time.Duration, opts ...Option) *Signer {
	s := &Signer{
		secret:    []byte(secret),
		expiresIn: expiresIn,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExpiresIn token有效期
func (s *Signer) ExpiresIn() time.Duration {
	return s.expiresIn
}

// Sign 签发token,jti使同一秒内的多次签发互不相同
func (s *Signer) Sign(userID uint64, username string, roleIDs []uint64) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RoleIDs:  roleIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewV4().String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiresIn)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Parse 校验签名与有效期
func (s *Signer) Parse(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
