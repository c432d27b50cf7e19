package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"surfplan-api/core/cache"
	"surfplan-api/core/config"
	"surfplan-api/core/constants"
	"surfplan-api/core/errors"
	"surfplan-api/core/logger"
	"surfplan-api/core/utils"
	"surfplan-api/modules/auth/dto"
	"surfplan-api/modules/auth/entity"
	"surfplan-api/modules/auth/repository"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	GoogleAuthURL(ctx context.Context) (string, *errors.AppError)
	HandleGoogleCallback(ctx context.Context, code, state string) (*dto.AuthResponse, *errors.AppError)
}

type AuthService struct {
	users repository.UserRepositoryInterface
	cache *cache.Cache
	oauth *oauth2.Config
}

func NewAuthService(users repository.UserRepositoryInterface, c *cache.Cache, cfg *config.Config) *AuthService {
	var oauthCfg *oauth2.Config
	if cfg.Google.ClientID != "" && cfg.Google.ClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return &AuthService{users: users, cache: c, oauth: oauthCfg}
}

func (service *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := service.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Register:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "email is already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to hash password", err)
	}

	user, err := service.users.Create(ctx, &entity.User{
		Email:    email,
		Password: hashed,
		Name:     req.Name,
	})
	if err != nil {
		logger.Error("AuthService:Register:Create:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}

	return service.issueTokens(user)
}

func (service *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := service.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:GetByEmail:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil || !utils.ComparePassword(user.Password, req.Password) {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid email or password", nil)
	}

	return service.issueTokens(user)
}

// RefreshToken rotates a refresh token into a fresh access/refresh pair. The
// old refresh token is blacklisted for its remaining lifetime so it cannot be
// replayed.
func (service *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, *errors.AppError) {
	blacklisted, err := service.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		logger.Error("AuthService:RefreshToken:IsTokenBlacklisted:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to check token blacklist", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "token has been revoked", nil)
	}

	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid refresh token", err)
	}
	if claims.Type != utils.TokenTypeRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "not a refresh token", nil)
	}

	user, err := service.users.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Error("AuthService:RefreshToken:GetByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "user no longer exists", nil)
	}

	if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
		if err := service.cache.BlacklistToken(ctx, refreshToken, remaining); err != nil {
			logger.Error("AuthService:RefreshToken:BlacklistToken:Error:", err)
		}
	}

	return service.issueTokens(user)
}

func (service *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		// Already invalid, nothing to revoke.
		return nil
	}

	if remaining := time.Until(claims.ExpiresAt.Time); remaining > 0 {
		if err := service.cache.BlacklistToken(ctx, token, remaining); err != nil {
			logger.Error("AuthService:Logout:BlacklistToken:Error:", err)
			return errors.NewAppError(errors.ErrInternalServer, "failed to revoke token", err)
		}
	}
	return nil
}

// GoogleAuthURL returns the consent page URL with a one-time state stored in
// Redis for the callback to verify.
func (service *AuthService) GoogleAuthURL(ctx context.Context) (string, *errors.AppError) {
	if service.oauth == nil {
		return "", errors.NewAppError(errors.ErrInvalidInput, "google login is not configured", nil)
	}

	state := utils.GenerateRandomString(32)
	key := constants.RedisKeyOAuthState + state
	if err := service.cache.SetJSON(ctx, key, true, 10*time.Minute); err != nil {
		logger.Error("AuthService:GoogleAuthURL:SetJSON:Error:", err)
		return "", errors.NewAppError(errors.ErrInternalServer, "failed to store oauth state", err)
	}

	return service.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline), nil
}

func (service *AuthService) HandleGoogleCallback(ctx context.Context, code, state string) (*dto.AuthResponse, *errors.AppError) {
	if service.oauth == nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "google login is not configured", nil)
	}

	key := constants.RedisKeyOAuthState + state
	var seen bool
	if err := service.cache.GetJSON(ctx, key, &seen); err != nil || !seen {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "invalid oauth state", err)
	}
	if err := service.cache.Delete(ctx, key); err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Delete:Error:", err)
	}

	token, err := service.oauth.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "failed to exchange authorization code", err)
	}

	info, err := service.getGoogleUserInfo(ctx, token.AccessToken)
	if err != nil {
		logger.Error("AuthService:HandleGoogleCallback:GetGoogleUserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to fetch google profile", err)
	}
	if info.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "google account has no email", nil)
	}

	user, appErr := service.findOrCreateGoogleUser(ctx, info)
	if appErr != nil {
		return nil, appErr
	}
	return service.issueTokens(user)
}

func (service *AuthService) findOrCreateGoogleUser(ctx context.Context, info *GoogleUserInfo) (*entity.User, *errors.AppError) {
	user, err := service.users.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user != nil {
		return user, nil
	}

	email := strings.ToLower(info.Email)
	user, err = service.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to look up user", err)
	}
	if user != nil {
		if linkErr := service.users.LinkGoogleID(ctx, user.ID, info.ID); linkErr != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "failed to link google account", linkErr)
		}
		return user, nil
	}

	googleID := info.ID
	created, err := service.users.Create(ctx, &entity.User{
		Email:    email,
		Password: "",
		Name:     info.Name,
		GoogleID: &googleID,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to create user", err)
	}
	return created, nil
}

func (service *AuthService) getGoogleUserInfo(ctx context.Context, accessToken string) (*GoogleUserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("userinfo returned status %d: %s", resp.StatusCode, string(body))
	}

	var info GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (service *AuthService) issueTokens(user *entity.User) (*dto.AuthResponse, *errors.AppError) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:IssueTokens:GenerateAccessToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate access token", err)
	}
	refreshToken, err := utils.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		logger.Error("AuthService:IssueTokens:GenerateRefreshToken:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "failed to generate refresh token", err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	}, nil
}
