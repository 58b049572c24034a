package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alora/config"
	"alora/shared/constant"
	"alora/shared/timezone"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerScheme = "Bearer"

var (
	ErrMissingHeader = errors.New("authorization header is required")
	ErrInvalidHeader = errors.New("authorization header must use the Bearer scheme")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims identify a staff account. Role is the account level.
type Claims struct {
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role,omitempty"`
	TokenID string    `json:"token_id"`
	Type    TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type JWT interface {
	GenerateTokenPair(userID, email, role string) (*TokenPair, error)
	ValidateToken(tokenString string, tokenType TokenType) (*Claims, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
}

// signing holds the key and lifetime of one token type.
type signing struct {
	secret   []byte
	lifetime time.Duration
}

type Service struct {
	issuer  string
	signing map[TokenType]signing
}

func New(cfg *config.Config) JWT {
	return &Service{
		issuer: cfg.App.Name,
		signing: map[TokenType]signing{
			AccessToken: {
				secret:   []byte(cfg.JWT.AccessSecret),
				lifetime: time.Duration(cfg.JWT.AccessExpireMin) * time.Minute,
			},
			RefreshToken: {
				secret:   []byte(cfg.JWT.RefreshSecret),
				lifetime: time.Duration(cfg.JWT.RefreshExpireMin) * time.Minute,
			},
		},
	}
}

// GenerateTokenPair issues an access and a refresh token sharing the same issue time.
func (s *Service) GenerateTokenPair(userID, email, role string) (*TokenPair, error) {
	issuedAt := timezone.Now()
	pair := &TokenPair{
		TokenType: bearerScheme,
		ExpiresIn: int64(s.signing[AccessToken].lifetime / time.Second),
	}

	for tokenType, dest := range map[TokenType]*string{AccessToken: &pair.AccessToken, RefreshToken: &pair.RefreshToken} {
		token, err := s.sign(Claims{UserID: userID, Email: email, Role: role, Type: tokenType}, issuedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s token: %w", tokenType, err)
		}

		*dest = token
	}

	return pair, nil
}

func (s *Service) sign(claims Claims, issuedAt time.Time) (string, error) {
	key, ok := s.signing[claims.Type]
	if !ok {
		return "", fmt.Errorf("unknown token type: %s", claims.Type)
	}

	claims.TokenID = uuid.NewString()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(key.lifetime)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		NotBefore: jwt.NewNumericDate(issuedAt),
		Issuer:    s.issuer,
		Subject:   claims.UserID,
		ID:        claims.TokenID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateToken parses tokenString with the key of tokenType. A token signed for the
// other type fails the signature check and is reported as ErrInvalidToken.
func (s *Service) ValidateToken(tokenString string, tokenType TokenType) (*Claims, error) {
	key, ok := s.signing[tokenType]
	if !ok {
		return nil, fmt.Errorf("unknown token type: %s", tokenType)
	}

	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return key.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	case claims.Type != tokenType || claims.UserID == "" || claims.Email == "":
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

func (s *Service) RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := s.ValidateToken(refreshToken, RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	return s.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
}

// ExtractTokenFromHeader returns the credentials of a "Bearer <token>" Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingHeader
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) || strings.TrimSpace(token) == "" {
		return "", ErrInvalidHeader
	}

	return strings.TrimSpace(token), nil
}

// ContextClaims returns the claims the auth middleware stored on the request context.
func ContextClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(constant.ContextKeyClaims).(*Claims)

	return claims, ok
}
