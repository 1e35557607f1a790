package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
)

type SummarizeController struct {
	workspaces *service.WorkspaceStore
	summaries  service.SummarizeService
}

func NewSummarizeController(workspaces *service.WorkspaceStore, summaries service.SummarizeService) *SummarizeController {
	return &SummarizeController{workspaces: workspaces, summaries: summaries}
}

func (c *SummarizeController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/summary", c.GetSummary)
	api.POST("/summary", c.Summarize)
	api.DELETE("/summary", c.ClearSummary)
}

// GetSummary godoc
// @Summary Get the summarize view
// @Tags Summarize
// @Produce json
// @Success 200 {object} dto.SummaryViewDTO
// @Router /summary [get]
func (c *SummarizeController) GetSummary(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.summaries.View(ws))
}

// Summarize godoc
// @Summary Summarize a text
// @Tags Summarize
// @Accept json
// @Produce json
// @Param request body dto.SummarizeRequest true "Text to summarize"
// @Success 200 {object} dto.SummaryViewDTO
// @Failure 400 {object} dto.ErrorResponse "Empty text"
// @Failure 502 {object} dto.ErrorResponse "Backend failed"
// @Router /summary [post]
func (c *SummarizeController) Summarize(ctx *gin.Context) {
	var req dto.SummarizeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.summaries.Summarize(ctx.Request.Context(), ws, req.Text)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ClearSummary godoc
// @Summary Clear the text and summary
// @Tags Summarize
// @Produce json
// @Success 200 {object} dto.SummaryViewDTO
// @Router /summary [delete]
func (c *SummarizeController) ClearSummary(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.summaries.Clear(ws))
}
