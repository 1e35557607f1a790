package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
	"github.com/rs/zerolog/log"
)

type AccountController struct {
	workspaces *service.WorkspaceStore
	accounts   service.AccountService
}

func NewAccountController(workspaces *service.WorkspaceStore, accounts service.AccountService) *AccountController {
	return &AccountController{workspaces: workspaces, accounts: accounts}
}

func (c *AccountController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/session", c.GetSession)
	api.POST("/session", c.SignIn)
	api.DELETE("/session", c.SignOut)
}

// GetSession godoc
// @Summary Get the signed-in account
// @Tags Account
// @Produce json
// @Success 200 {object} dto.AccountDTO
// @Router /session [get]
func (c *AccountController) GetSession(ctx *gin.Context) {
	_, session := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.accounts.Me(session))
}

// SignIn godoc
// @Summary Sign in with an identity-provider session token
// @Description Stores the token for this client and syncs the user with the backend.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Session token and profile"
// @Success 200 {object} dto.AccountDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /session [post]
func (c *AccountController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SignIn: Failed to bind JSON")
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, session := clientWorkspace(ctx, c.workspaces)
	account, err := c.accounts.SignIn(ctx.Request.Context(), ws, session, req)
	if err != nil {
		respondError(ctx, err, account)
		return
	}
	ctx.JSON(http.StatusOK, account)
}

// SignOut godoc
// @Summary Sign out
// @Tags Account
// @Produce json
// @Success 200 {object} dto.AccountDTO
// @Router /session [delete]
func (c *AccountController) SignOut(ctx *gin.Context) {
	ws, session := clientWorkspace(ctx, c.workspaces)
	account, err := c.accounts.SignOut(ws, session)
	if err != nil {
		respondError(ctx, err, account)
		return
	}
	ctx.JSON(http.StatusOK, account)
}
