package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/dto"
	"github.com/receiptcapture/portal_backend/internal/middleware"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles login and current-account requests.
type authHandler struct {
	authService  portssvc.AuthSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		authService:  as,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public login route with rate limiting.
func registerAuthRoutes(rg *gin.Engine, authService portssvc.AuthSvcFacade, tokenService portssvc.TokenSvcFacade) {
	h := newAuthHandler(authService, tokenService)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// registerMeRoutes sets up the authenticated current-account route.
func registerMeRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := &authHandler{authService: authService}
	rg.GET("/auth/me", h.me)
}

// login godoc
// @Summary Portal login
// @Description Authenticates a portal account and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	account, err := h.authService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, err := h.tokenService.IssueToken(account)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to issue session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   token,
		Account: dto.ToAccountResponse(account),
	})
}

// me godoc
// @Summary Current account
// @Description Returns the account behind the presented session token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/me [get]
func (h *authHandler) me(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	account, err := h.authService.ResolveActiveAccount(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{Account: dto.ToAccountResponse(account)})
}
