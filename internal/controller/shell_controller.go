package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
)

type ShellController struct {
	workspaces *service.WorkspaceStore
	shell      service.ShellService
}

func NewShellController(workspaces *service.WorkspaceStore, shell service.ShellService) *ShellController {
	return &ShellController{workspaces: workspaces, shell: shell}
}

func (c *ShellController) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/shell")
	group.GET("", c.GetShell)
	group.PUT("/view", c.ActivateView)
	group.POST("/theme", c.ToggleTheme)
	group.POST("/sidebar", c.ToggleSidebar)
}

// GetShell godoc
// @Summary Get the active view, theme and menu
// @Tags Shell
// @Produce json
// @Success 200 {object} dto.ShellViewDTO
// @Router /shell [get]
func (c *ShellController) GetShell(ctx *gin.Context) {
	ws, session := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.shell.View(ws, session))
}

// ActivateView godoc
// @Summary Switch the active view
// @Description The view being left is reset. Analytics shows a sign-in prompt to anonymous users.
// @Tags Shell
// @Accept json
// @Produce json
// @Param request body dto.ActivateViewRequest true "home, mcq, summarize, upload, chatbot or analytics"
// @Success 200 {object} dto.ShellViewDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown view"
// @Router /shell/view [put]
func (c *ShellController) ActivateView(ctx *gin.Context) {
	var req dto.ActivateViewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, session := clientWorkspace(ctx, c.workspaces)
	view, err := c.shell.Activate(ws, session, req.View)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ToggleTheme godoc
// @Summary Switch between light and dark theme
// @Tags Shell
// @Produce json
// @Success 200 {object} dto.ShellViewDTO
// @Router /shell/theme [post]
func (c *ShellController) ToggleTheme(ctx *gin.Context) {
	ws, session := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.shell.ToggleTheme(ws, session))
}

// ToggleSidebar godoc
// @Summary Open or close the sidebar
// @Tags Shell
// @Produce json
// @Success 200 {object} dto.ShellViewDTO
// @Router /shell/sidebar [post]
func (c *ShellController) ToggleSidebar(ctx *gin.Context) {
	ws, session := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.shell.ToggleSidebar(ws, session))
}
