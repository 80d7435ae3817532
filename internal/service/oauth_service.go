package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/mp-codespace/masterprima-site-sub001/internal/config"
	"github.com/mp-codespace/masterprima-site-sub001/internal/dto"
	"github.com/mp-codespace/masterprima-site-sub001/internal/entity"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/logger"
	"github.com/mp-codespace/masterprima-site-sub001/internal/pkg/session"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/specification"
	"github.com/mp-codespace/masterprima-site-sub001/internal/repository/unitofwork"
)

type IOAuthService interface {
	GetLoginURL(provider string) (url string, state string, err error)
	HandleCallback(ctx context.Context, provider, code, ipAddress string) (*dto.LoginResponse, error)
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	codec      *session.Codec
	authCfg    config.AuthConfig
	googleConf *oauth2.Config
	audit      IAuditService
	logger     logger.ILogger
}

func NewOAuthService(
	uowFactory unitofwork.RepositoryFactory,
	codec *session.Codec,
	authCfg config.AuthConfig,
	oauthCfg config.OAuthConfig,
	audit IAuditService,
	log logger.ILogger,
) IOAuthService {
	conf := &oauth2.Config{
		ClientID:     oauthCfg.GoogleClientID,
		ClientSecret: oauthCfg.GoogleClientSecret,
		RedirectURL:  oauthCfg.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	return &oauthService{
		uowFactory: uowFactory,
		codec:      codec,
		authCfg:    authCfg,
		googleConf: conf,
		audit:      audit,
		logger:     log,
	}
}

// GetLoginURL returns the provider's consent URL plus the random state
// bound to it. The controller stores the state in a short-lived cookie
// and checks it on the callback.
func (s *oauthService) GetLoginURL(provider string) (string, string, error) {
	if provider != "google" {
		return "", "", errors.New("unsupported provider")
	}

	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)

	return s.googleConf.AuthCodeURL(state), state, nil
}

func (s *oauthService) HandleCallback(ctx context.Context, provider, code, ipAddress string) (*dto.LoginResponse, error) {
	if provider != "google" {
		return nil, errors.New("unsupported provider")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		s.audit.Record(ctx, nil, entity.ActionGoogleError, map[string]interface{}{
			"reason": "code exchange failed",
		}, ipAddress)
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + token.AccessToken)
	if err != nil {
		s.audit.Record(ctx, nil, entity.ActionGoogleError, map[string]interface{}{
			"reason": "userinfo fetch failed",
		}, ipAddress)
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading user info: %w", err)
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
		Name          string `json:"name"`
	}
	if err := json.Unmarshal(content, &googleUser); err != nil {
		return nil, err
	}

	// No email means no way to match a provisioned account.
	if googleUser.Email == "" {
		s.audit.Record(ctx, nil, entity.ActionGoogleFailed, map[string]interface{}{
			"reason": "no email in google profile",
		}, ipAddress)
		return nil, ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
	if err != nil {
		return nil, err
	}

	// Federated login never provisions accounts. An unknown email is an
	// outsider with a Google account, not a new admin.
	if admin == nil {
		s.audit.Record(ctx, nil, entity.ActionGoogleFailed, map[string]interface{}{
			"email": googleUser.Email,
		}, ipAddress)
		return nil, ErrForbidden
	}

	// Remember that this account now signs in through Google. Best effort:
	// the login itself must not fail on a bookkeeping update.
	if admin.AuthProvider != entity.AuthProviderGoogle {
		if err := uow.AdminRepository().UpdateAuthProvider(ctx, admin.Id, string(entity.AuthProviderGoogle)); err != nil {
			s.logger.Warn("oauth", "failed to update auth provider", map[string]interface{}{
				"admin_id": admin.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	sessionToken, err := s.codec.Issue(&session.Claims{
		AdminId:   admin.Id,
		Username:  admin.Username,
		IsAdmin:   admin.IsAdmin,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, &admin.Id, entity.ActionGoogleSuccess, map[string]interface{}{
		"email": googleUser.Email,
	}, ipAddress)

	return &dto.LoginResponse{
		Admin:        toAdminDTO(admin),
		Token:        sessionToken,
		CookieMaxAge: s.authCfg.FederatedSessionMaxAge,
	}, nil
}
