package api

import (
	"net/http"

	"github.com/studevo/Studevo/internal/delivery/http/response"
	"github.com/studevo/Studevo/internal/domain"
	"github.com/studevo/Studevo/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(api *gin.RouterGroup, authUC domain.AuthUsecase, loginLimit, registerLimit, requireToken gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	auth := api.Group("/auth")
	{
		auth.POST("/register", registerLimit, handler.Register)
		auth.POST("/login", loginLimit, handler.Login)
		auth.GET("/me", requireToken, handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Role domain.Role `json:"role"`
}

// Register godoc
// @Summary      Register an account
// @Description  Create a student or organization account. The email must be unused across both roles.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        account  body      domain.RegisterInput  true  "Registration form"
// @Success      201      {object}  response.Response{data=RegisterResponse}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	role, err := h.authUC.Register(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", RegisterResponse{Role: role})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticate with email and password. Organizations also receive orgId.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  response.Response{data=domain.LoginResult}
// @Failure      400          {object}  response.Response
// @Failure      429          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", result)
}

// Me godoc
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AccountView}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(string(domain.KeyAccountEmail))

	view, err := h.authUC.CurrentAccount(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account retrieved", view)
}
