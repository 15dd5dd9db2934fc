package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/auth"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
	"github.com/hrflo/hrflo-backend/internal/pkg/jwt"
	"github.com/hrflo/hrflo-backend/internal/pkg/oauth"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStatePath   = "/api/v1/auth/oauth/callback/google"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
	secureCookie  bool
}

// NewAuthHandler creates the auth endpoints. googleService may be nil when Google sign-in is disabled.
func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string, secureCookie bool) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
		secureCookie:  secureCookie,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest
	if !decodeJSON(w, r, "Register", &registerReq) {
		return
	}

	registered, err := a.authService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User registered successfully", "user_id", registered.ID)
	response.Created(w, "User registered successfully", registered)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if !decodeJSON(w, r, "Login", &loginReq) {
		return
	}

	loginResponse, err := a.authService.Login(r.Context(), loginReq, sessionFromRequest(r))
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(loginResponse.Token.RefreshToken, loginResponse.Token.RefreshTokenExpiresAt))
	slog.Info("User logged in successfully", "user_id", loginResponse.User.ID)
	response.SuccessWithMessage(w, "User logged in successfully", loginResponse)
}

// LoginWithGoogle implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	if a.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	state, err := a.googleService.GenerateState()
	if err != nil {
		slog.Error("LoginWithGoogle state error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     oauthStatePath,
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   a.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, a.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
// Failures redirect to the frontend with an error code instead of returning JSON.
func (a *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	if a.googleService == nil {
		response.HandleError(w, auth.ErrOAuthDisabled)
		return
	}

	redirectWithError := func(errorMsg string) {
		redirectURL := fmt.Sprintf("%s/auth/callback/google?error=%s", a.frontendURL, url.QueryEscape(errorMsg))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	query := r.URL.Query()
	if errorValue := query.Get("error"); errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	stateCookie, err := r.Cookie(oauthStateCookie)
	if err != nil || stateCookie.Value == "" {
		slog.Error("State cookie not found", "error", err)
		redirectWithError("state_cookie_not_found")
		return
	}
	if query.Get("state") != stateCookie.Value {
		slog.Error("State mismatch")
		redirectWithError("state_mismatch")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: oauthStateCookie, Path: oauthStatePath, MaxAge: -1})

	code := query.Get("code")
	if code == "" {
		redirectWithError("code_empty")
		return
	}

	token, err := a.googleService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("Failed to exchange code", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	userGoogle, err := a.googleService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to verify user", "error", err)
		if errors.Is(err, oauth.ErrEmailNotVerified) {
			redirectWithError("email_not_verified")
			return
		}
		redirectWithError("user_verification_failed")
		return
	}

	loginResponse, err := a.authService.LoginWithGoogle(r.Context(), userGoogle.Email, sessionFromRequest(r))
	if err != nil {
		slog.Error("Failed to login with Google", "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			redirectWithError("account_not_found")
			return
		}
		redirectWithError("login_failed")
		return
	}

	http.SetCookie(w, a.jwtService.RefreshTokenCookie(loginResponse.Token.RefreshToken, loginResponse.Token.RefreshTokenExpiresAt))
	slog.Info("User logged in successfully via Google OAuth", "user_id", loginResponse.User.ID)

	redirectURL := fmt.Sprintf("%s/auth/callback/google?access_token=%s&expires_at=%d",
		a.frontendURL,
		url.QueryEscape(loginResponse.Token.AccessToken),
		loginResponse.Token.AccessTokenExpiresAt,
	)
	http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
}

// refreshTokenFromRequest prefers the cookie and falls back to the JSON body.
func refreshTokenFromRequest(w http.ResponseWriter, r *http.Request, op string) (auth.RefreshTokenRequest, bool) {
	var req auth.RefreshTokenRequest

	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		req.RefreshToken = cookie.Value
		return req, true
	}
	if !decodeJSON(w, r, op, &req) {
		return req, false
	}
	return req, true
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	req, ok := refreshTokenFromRequest(w, r, "Logout")
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := a.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.ClearRefreshTokenCookie())
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	req, ok := refreshTokenFromRequest(w, r, "RefreshToken")
	if !ok {
		return
	}

	tokenResponse, err := a.authService.RefreshToken(r.Context(), req)
	if err != nil {
		slog.Error("RefreshToken service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Token refreshed successfully", tokenResponse)
}

// ChangePassword implements AuthHandler.
func (a *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	var req auth.ChangePasswordRequest
	if !decodeJSON(w, r, "ChangePassword", &req) {
		return
	}

	if err := a.authService.ChangePassword(r.Context(), actor.ID, req); err != nil {
		slog.Error("ChangePassword service error", "error", err)
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, a.jwtService.ClearRefreshTokenCookie())
	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
