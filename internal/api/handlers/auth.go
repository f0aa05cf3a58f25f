package handlers

import (
	"net/http"

	"quiroclinic-backend/internal/auth"
	"quiroclinic-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authService *auth.AuthService
	orgService  service.OrganizationServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.AuthService, orgService service.OrganizationServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		orgService:  orgService,
	}
}

// LoginRequest represents the login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents a successful authentication
type TokenResponse struct {
	Token string                `json:"token"`
	User  *service.UserResponse `json:"user"`
}

// Login handles POST /api/v1/auth/login
// @Summary Authenticate a user
// @Description Verify credentials and issue a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body handlers.LoginRequest true "Login credentials"
// @Success 200 {object} handlers.TokenResponse "Authenticated"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to authenticate")
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token, User: service.NewUserResponse(user)})
}

// Register handles POST /api/v1/auth/register
// @Summary Register an organization
// @Description Create an organization with its owner user and issue a JWT for the owner
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body service.RegisterOrganizationRequest true "Organization and owner data"
// @Success 201 {object} handlers.TokenResponse "Organization created"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Organization or email already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	owner, err := h.orgService.Register(&req)
	if err != nil {
		respondError(c, err, "Failed to register organization")
		return
	}

	token, err := h.authService.GenerateJWT(owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{Token: token, User: service.NewUserResponse(owner)})
}
