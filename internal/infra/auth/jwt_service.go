// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ledger/config"
	"ledger/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte        // Symmetric key for signing and verifying tokens.
	issuer   string        // Value of the iss claim.
	audience string        // Value of the aud claim.
	realm    string        // Presentation-only label for WWW-Authenticate.
	ttl      time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		issuer:   cfg.JWT.Issuer,
		audience: cfg.JWT.Audience,
		realm:    cfg.JWT.Realm,
		ttl:      time.Duration(cfg.JWT.ExpirationHours) * time.Hour,
	}, nil
}

// Issue creates a signed token for the given user.
// The jti claim makes two tokens issued within the same second distinct.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    userID.String(),
		"aud":    s.audience,
		"iss":    s.issuer,
		"userId": userID.String(),
		"iat":    now.Unix(),
		"nbf":    now.Unix(),
		"exp":    now.Add(s.ttl).Unix(),
		"jti":    uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// Verify parses and validates a token string, returning the authenticated principal.
// Signature, audience, issuer, exp and nbf are all checked by the parser.
func (s *jwtService) Verify(tokenString string) (*service.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(s.audience),
		jwt.WithIssuer(s.issuer),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	rawUserID, ok := claims["userId"].(string)
	if !ok {
		return nil, errors.New("token missing userId claim")
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, errors.Wrap(err, "parse userId claim")
	}

	return &service.Principal{UserID: userID}, nil
}

// Realm returns the presentation label used in authentication challenges.
func (s *jwtService) Realm() string {
	return s.realm
}

// TokenTTL returns the configured lifetime of issued tokens.
func (s *jwtService) TokenTTL() time.Duration {
	return s.ttl
}
