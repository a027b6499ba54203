package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restopanel/internal/dto"
	"restopanel/internal/middleware"
	"restopanel/internal/model"
	"restopanel/internal/permission"
	"restopanel/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// SignIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req dto.SignInRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignUp godoc
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.SignUpRequest true "Account details"
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} apierror.APIError
// @Router /v1/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req dto.SignUpRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.SignUp(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	claims := middleware.GetClaims(c)
	h.svc.SignOut(c.Request.Context(), claims.UserID)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Me(c.Request.Context(), claims.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Permissions returns the capability record for the session's role so the
// client renders exactly what the server will authorize.
func (h *AuthHandler) Permissions(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, permission.For(model.Role(claims.Role)))
}
