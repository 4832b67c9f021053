package services

import (
	"context"
	"encoding/json"

	"kakao-gateway/config"
	"kakao-gateway/internal/kakao"
	gateway_errors "kakao-gateway/pkg/errors"
)

// AuthService fronts the Kakao OAuth and account endpoints. It holds the
// configured client credentials so handlers never touch them.
type AuthService struct {
	kakao        *kakao.Client
	clientID     string
	clientSecret string
	redirectURI  string
}

func NewAuthService(client *kakao.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		kakao:        client,
		clientID:     cfg.KakaoClientID,
		clientSecret: cfg.KakaoClientSecret,
		redirectURI:  cfg.KakaoRedirectURI,
	}
}

// ExchangeToken trades an authorization code for tokens. An empty code
// is rejected locally instead of being forwarded upstream.
func (s *AuthService) ExchangeToken(ctx context.Context, code string) (json.RawMessage, error) {
	if code == "" {
		return nil, gateway_errors.ErrInvalidInput
	}
	return s.kakao.ExchangeToken(ctx, kakao.TokenRequest{
		Code:         code,
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		RedirectURI:  s.redirectURI,
	})
}

func (s *AuthService) VerifyToken(ctx context.Context, token string) (json.RawMessage, error) {
	return s.kakao.TokenInfo(ctx, token)
}

func (s *AuthService) Friends(ctx context.Context, token string) (json.RawMessage, error) {
	return s.kakao.Friends(ctx, token)
}

func (s *AuthService) Logout(ctx context.Context, token string) (json.RawMessage, error) {
	return s.kakao.Logout(ctx, token)
}
