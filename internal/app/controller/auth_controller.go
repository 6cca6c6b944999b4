package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/config"
	"github.com/dsev/locknlock-bff/internal/app/service"
	apperrors "github.com/dsev/locknlock-bff/internal/errors"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
	session     config.SessionConfig
}

func NewAuthController(authService service.AuthService, session config.SessionConfig) *AuthController {
	return &AuthController{
		authService: authService,
		session:     session,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for an HTTP-only session cookie. The access
// token never reaches browser javascript.
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid login request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Vui lòng nhập tên đăng nhập và mật khẩu")
		return
	}

	session, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.AuthLoginFailed, "Sai tên đăng nhập hoặc mật khẩu")
		return
	}

	ctrl.setSessionCookie(c, session.Token, int(session.TTL.Seconds()))

	log.Info("Login succeeded", map[string]interface{}{
		"username": req.Username,
	})
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    session.User,
	})
}

// Register relays the signup payload to the backend untouched
// POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Dữ liệu không hợp lệ")
		return
	}

	env, err := ctrl.authService.Register(c.Request.Context(), json.RawMessage(payload))
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.ValidationInvalidInput, "Đăng ký thất bại")
		return
	}
	respondEnvelope(c, env)
}

// Logout clears the session cookie and tells the backend best effort
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	ctrl.authService.Logout(c.Request.Context(), middleware.GetToken(c))
	ctrl.setSessionCookie(c, "", -1)

	log.Info("Logged out", nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Đã đăng xuất",
	})
}

// Me returns the signed-in user's profile
// GET /api/me
func (ctrl *AuthController) Me(c *gin.Context) {
	token := middleware.GetToken(c)

	user, err := ctrl.authService.Me(c.Request.Context(), token)
	if err != nil {
		apperrors.RespondGatewayError(c, err, apperrors.AuthUnauthorized, "Không tải được thông tin tài khoản")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}

func (ctrl *AuthController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctrl.session.CookieName, value, maxAge, "/", "", ctrl.session.Secure, true)
}
