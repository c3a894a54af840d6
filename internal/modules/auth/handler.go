package auth

import (
	"errors"
	"net/http"
	"time"

	"sigmagram/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccessCookieName is the cookie carrying the access token.
const AccessCookieName = "access_token"

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service       *Service
	accessTTL     time.Duration
	secureCookies bool
}

func NewHandler(service *Service, accessTTL time.Duration, secureCookies bool) *Handler {
	return &Handler{
		service:       service,
		accessTTL:     accessTTL,
		secureCookies: secureCookies,
	}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/signin", h.Signin)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/renew", h.Renew)
		authGroup.GET("/me", h.GetMe)
	}
}

func (h *Handler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tokens, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCredentialsTaken) {
			response.Error(c, http.StatusConflict, "CREDENTIALS_TAKEN", "Credentials taken")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to sign up")
		return
	}

	response.Success(c, http.StatusCreated, tokens)
}

func (h *Handler) Signin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tokens, err := h.service.Signin(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCredentialsIncorrect) {
			response.Error(c, http.StatusForbidden, "CREDENTIALS_INCORRECT", "Credentials incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNIN_FAILED", "Failed to sign in")
		return
	}

	h.setAccessCookie(c, tokens.AccessToken)
	response.Success(c, http.StatusOK, tokens)
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "LOGOUT_FAILED", "Failed to log out")
		return
	}

	h.clearAccessCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) Renew(c *gin.Context) {
	var req RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	accessToken, err := h.service.RenewAccessToken(c.Request.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingUserID):
			response.Error(c, http.StatusBadRequest, "MISSING_USER_ID", "User ID not provided")
		case errors.Is(err, ErrUnauthenticated):
			response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "User/Refresh token not found")
		case errors.Is(err, ErrInvalidRefreshToken):
			response.Error(c, http.StatusForbidden, "INVALID_REFRESH_TOKEN", "Invalid refresh token")
		case errors.Is(err, ErrRefreshExpired):
			response.Error(c, http.StatusUnauthorized, "REFRESH_EXPIRED", "Refresh token has expired")
		default:
			response.Error(c, http.StatusInternalServerError, "RENEW_FAILED", "Failed to renew access token")
		}
		return
	}

	h.setAccessCookie(c, accessToken)
	response.Success(c, http.StatusOK, gin.H{"access_token": accessToken})
}

func (h *Handler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.service.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "ME_FAILED", "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, user)
}

func (h *Handler) setAccessCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessCookieName, token, int(h.accessTTL.Seconds()), "/", "", h.secureCookies, true)
}

// clearAccessCookie expires the cookie immediately.
func (h *Handler) clearAccessCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AccessCookieName, "", -1, "/", "", h.secureCookies, true)
}
