package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cms_backend/internal/middleware"
	"cms_backend/internal/services"
	"cms_backend/internal/services/dto"
	"cms_backend/pkg/apperrors"
)

// UserHandler serves the user detail and update pages. Both are restricted to
// the account owner or a superuser.
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/user_detail/:pk", h.UserDetail)
	r.GET("/user_update/:pk", h.UserUpdateForm)
	r.POST("/user_update/:pk", h.UserUpdate)
}

func (h *UserHandler) UserDetail(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	id, err := ParseParamUint(c, "pk")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetUser(claims, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserDTO(user)})
}

func (h *UserHandler) UserUpdateForm(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	id, err := ParseParamUint(c, "pk")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.userService.GetUser(claims, id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"form": dto.UserUpdateRequest{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	})
}

func (h *UserHandler) UserUpdate(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		apperrors.HandleError(c, apperrors.ErrUnauthorized)
		return
	}

	id, err := ParseParamUint(c, "pk")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UserUpdateRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.userService.UpdateUser(claims, id, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/user_detail/%d", id))
}
