package auth

import (
	"time"

	"directory/config"
	"directory/internal/domain/service"
	"directory/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// subject is the structured "sub" claim: {"id": "<uuid>"}.
type subject struct {
	ID string `json:"id"`
}

// accessClaims is the complete token payload. Only sub, iat and exp are defined.
type accessClaims struct {
	Sub       subject          `json:"sub"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
}

func (c accessClaims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c accessClaims) GetIssuedAt() (*jwt.NumericDate, error)       { return c.IssuedAt, nil }
func (c accessClaims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c accessClaims) GetIssuer() (string, error)                   { return "", nil }
func (c accessClaims) GetSubject() (string, error)                  { return c.Sub.ID, nil }
func (c accessClaims) GetAudience() (jwt.ClaimStrings, error)       { return nil, nil }

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// Secret and lifetime are fixed for the life of the process.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg.SecretKey.Access, cfg.Auth.TokenTTL, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if ttl <= 0 {
		return nil, errors.Errorf("token ttl must be positive, got %s", ttl)
	}

	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(now),
		),
	}, nil
}

// Issue signs a token asserting subjectID that expires after the configured TTL.
func (s *jwtService) Issue(subjectID uuid.UUID) (string, error) {
	issuedAt := s.now()
	claims := accessClaims{
		Sub:       subject{ID: subjectID.String()},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(ceilToSecond(issuedAt.Add(s.ttl))),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks algorithm, signature and expiry (now >= exp is expired)
// and returns the subject id. Every failure wraps service.ErrInvalidToken.
func (s *jwtService) Validate(tokenString string) (uuid.UUID, error) {
	var claims accessClaims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, errors.Join(service.ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Sub.ID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.Wrap(service.ErrInvalidToken, "subject id is missing or malformed")
	}

	return id, nil
}

// ceilToSecond rounds t up to a whole second. NumericDate drops the fraction,
// and truncating exp would end the token before its full lifetime.
func ceilToSecond(t time.Time) time.Time {
	truncated := t.Truncate(time.Second)
	if truncated.Before(t) {
		return truncated.Add(time.Second)
	}

	return truncated
}
