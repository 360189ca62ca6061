package api

import (
	"context"
	"net/http"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/service"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=$GOFILE -destination=identity_mocks_test.go -package=api_test

// GoogleTokenVerifier checks a Google ID token issued to this app.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (domain.ExternalIdentity, error)
}

// StravaCodeExchanger trades a Strava authorization code for the athlete identity.
type StravaCodeExchanger interface {
	Exchange(ctx context.Context, code string) (domain.ExternalIdentity, error)
}

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
	google      GoogleTokenVerifier
	strava      StravaCodeExchanger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService, google GoogleTokenVerifier, strava StravaCodeExchanger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		google:      google,
		strava:      strava,
	}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

type StravaLoginRequest struct {
	Code string `json:"code"`
}

type ProviderUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type ProviderLoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        ProviderUser `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} RegisterResponse "User created successfully"
// @Failure 400 {object} gin.H "Missing fields, email or username taken"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}

// Login godoc
// @Summary Log in a user
// @Description Authenticates a user and returns a JWT token.
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} gin.H "Missing fields"
// @Failure 401 {object} gin.H "Invalid email or password"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		Username:    user.Username,
		Email:       user.Email,
	})
}

// GoogleLogin godoc
// @Summary Log in with a Google ID token
// @Tags Users
// @Accept json
// @Produce json
// @Param token body GoogleLoginRequest true "Google ID token"
// @Success 200 {object} ProviderLoginResponse
// @Failure 400 {object} gin.H "Missing token or Google login not configured"
// @Failure 401 {object} gin.H "Invalid Google ID token"
// @Router /users/google-login [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	identity, err := h.google.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.loginWithIdentity(c, identity)
}

// StravaLogin godoc
// @Summary Log in with a Strava authorization code
// @Tags Users
// @Accept json
// @Produce json
// @Param code body StravaLoginRequest true "Strava authorization code"
// @Success 200 {object} ProviderLoginResponse
// @Failure 400 {object} gin.H "Missing code or Strava API error"
// @Router /users/strava-login [post]
func (h *AuthHandler) StravaLogin(c *gin.Context) {
	var req StravaLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	identity, err := h.strava.Exchange(c.Request.Context(), req.Code)
	if err != nil {
		respondWithError(c, err)
		return
	}
	h.loginWithIdentity(c, identity)
}

func (h *AuthHandler) loginWithIdentity(c *gin.Context, identity domain.ExternalIdentity) {
	token, user, err := h.authService.LoginWithIdentity(c.Request.Context(), identity)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProviderLoginResponse{
		AccessToken: token,
		User: ProviderUser{
			Username: user.Username,
			Email:    user.Email,
		},
	})
}
