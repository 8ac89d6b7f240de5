package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/config"
	"cms_backend/internal/middleware"
	"cms_backend/internal/services"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

// AuthHandler serves login/logout and the registration, password change and
// password reset flows.
type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cfg:         cfg,
	}
}

// RegisterPublicRoutes wires the routes reachable without a session.
func (h *AuthHandler) RegisterPublicRoutes(r *gin.Engine) {
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)

	r.GET("/user_create", h.UserCreateForm)
	r.POST("/user_create", h.UserCreate)
	r.GET("/user_create/done", h.UserCreateDone)
	r.GET("/user_create/complete/:uid/:token", h.UserCreateComplete)

	r.GET("/password_reset", h.PasswordResetForm)
	r.POST("/password_reset", h.PasswordReset)
	r.GET("/password_reset/done", h.PasswordResetDone)
	r.GET("/reset/done", h.PasswordResetComplete)
	r.GET("/reset/:uid/:token", h.PasswordResetConfirmForm)
	r.POST("/reset/:uid/:token", h.PasswordResetConfirm)
}

// RegisterProtectedRoutes wires the routes behind the session middleware.
func (h *AuthHandler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.GET("/logout", h.Logout)
	r.GET("/password_change", h.PasswordChangeForm)
	r.POST("/password_change", h.PasswordChange)
	r.GET("/password_change/done", h.PasswordChangeDone)
}

func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": dto.LoginRequest{}})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	session, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	maxAge := h.cfg.JWT.SessionTTL * 60
	c.SetCookie(middleware.SessionCookie, session.Token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) UserCreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": dto.RegisterRequest{}})
}

// UserCreate registers a pending account and mails the verification link.
func (h *AuthHandler) UserCreate(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.authService.Register(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/user_create/done")
}

func (h *AuthHandler) UserCreateDone(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "We sent you an email. Open the link inside it to complete your registration.",
	})
}

// UserCreateComplete activates the account behind the emailed link.
func (h *AuthHandler) UserCreateComplete(c *gin.Context) {
	user, err := h.authService.Activate(c.Param("uid"), c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Registration complete. You can now log in.",
		"user":    dto.NewUserDTO(user),
	})
}

func (h *AuthHandler) PasswordChangeForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": dto.PasswordChangeRequest{}})
}

func (h *AuthHandler) PasswordChange(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.PasswordChangeRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ChangePassword(claims.UserID, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/password_change/done")
}

func (h *AuthHandler) PasswordChangeDone(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Your password was changed."})
}

func (h *AuthHandler) PasswordResetForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"form": dto.PasswordResetRequest{}})
}

// PasswordReset always redirects to the done page; whether the address is
// registered is never revealed.
func (h *AuthHandler) PasswordReset(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/password_reset/done")
}

func (h *AuthHandler) PasswordResetDone(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "If the address is registered, a reset link is on its way.",
	})
}

func (h *AuthHandler) PasswordResetConfirmForm(c *gin.Context) {
	if _, err := h.authService.CheckResetToken(c.Param("uid"), c.Param("token")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": dto.SetPasswordRequest{}})
}

func (h *AuthHandler) PasswordResetConfirm(c *gin.Context) {
	var req dto.SetPasswordRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Param("uid"), c.Param("token"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/reset/done")
}

func (h *AuthHandler) PasswordResetComplete(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Your password was reset. You can now log in."})
}
