package auth

import (
	"context"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kigalivenues/venues-api/internal/pkg/jwt"
)

// GoogleConfig holds the OAuth client settings
type GoogleConfig struct {
	ClientID    string
	RedirectURI string
}

// Service handles the Google sign-in flow. The authorize URL is real; the
// code exchange is mocked and returns a fixed demo identity until a real
// OAuth client is wired in.
type Service struct {
	cfg GoogleConfig
	jwt *jwt.Service
}

// NewService creates auth service
func NewService(cfg GoogleConfig, jwtService *jwt.Service) *Service {
	return &Service{cfg: cfg, jwt: jwtService}
}

// AuthURL builds the Google authorize URL, carrying the requested role in
// the state parameter
func (s *Service) AuthURL(role string) (string, error) {
	if role != RoleCustomer && role != RoleOwner {
		return "", ErrInvalidRole
	}

	q := url.Values{}
	q.Set("client_id", s.cfg.ClientID)
	q.Set("redirect_uri", s.cfg.RedirectURI)
	q.Set("scope", "openid email profile")
	q.Set("response_type", "code")
	q.Set("state", role)

	return "https://accounts.google.com/oauth/authorize?" + q.Encode(), nil
}

// HandleCallback exchanges the authorization code for a principal and issues
// an access token. The exchange is mocked: any non-empty code yields the
// demo identity with the role carried in state.
func (s *Service) HandleCallback(ctx context.Context, code, state string) (*Principal, string, error) {
	if code == "" {
		return nil, "", ErrMissingCode
	}
	if state != RoleCustomer && state != RoleOwner {
		return nil, "", ErrInvalidRole
	}

	principal := &Principal{
		ID:      uuid.New(),
		Email:   "user@example.com",
		Name:    "John Doe",
		Picture: "https://via.placeholder.com/150",
		Role:    state,
	}

	token, err := s.jwt.GenerateAccessToken(principal.ID, principal.Role)
	if err != nil {
		return nil, "", err
	}

	log.Info().
		Str("principal_id", principal.ID.String()).
		Str("role", principal.Role).
		Msg("OAuth callback handled")

	return principal, token, nil
}
