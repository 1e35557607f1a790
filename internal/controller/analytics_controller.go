package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
)

type AnalyticsController struct {
	workspaces *service.WorkspaceStore
	analytics  service.AnalyticsService
}

func NewAnalyticsController(workspaces *service.WorkspaceStore, analytics service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{workspaces: workspaces, analytics: analytics}
}

func (c *AnalyticsController) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/analytics")
	group.GET("", c.GetAnalytics)
	group.POST("/refresh", c.RefreshAnalytics)
	group.PUT("/filter/topic", c.SetTopicFilter)
	group.PUT("/filter/subtopic", c.SetSubTopicFilter)
	group.DELETE("/filter", c.ResetFilters)
	group.DELETE("/attempts/:id", c.DeleteAttempt)
}

// GetAnalytics godoc
// @Summary Get the analytics view
// @Description Returns the loaded history without contacting the backend. Call refresh to load it.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsViewDTO
// @Router /analytics [get]
func (c *AnalyticsController) GetAnalytics(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.analytics.View(ws))
}

// RefreshAnalytics godoc
// @Summary Load the attempt history
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsViewDTO
// @Failure 401 {object} dto.ErrorResponse "Sign in required"
// @Failure 502 {object} dto.ErrorResponse "Backend failed"
// @Router /analytics/refresh [post]
func (c *AnalyticsController) RefreshAnalytics(ctx *gin.Context) {
	ws, session := clientWorkspace(ctx, c.workspaces)
	view, err := c.analytics.Refresh(ctx.Request.Context(), ws, session)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SetTopicFilter godoc
// @Summary Filter by topic
// @Description An empty topic shows every attempt. Changing topic clears the subtopic filter.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.AnalyticsFilterRequest true "Topic"
// @Success 200 {object} dto.AnalyticsViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /analytics/filter/topic [put]
func (c *AnalyticsController) SetTopicFilter(ctx *gin.Context) {
	var req dto.AnalyticsFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.analytics.SetTopic(ws, req.Topic))
}

// SetSubTopicFilter godoc
// @Summary Filter by subtopic
// @Description Requires a topic filter to be set first.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body dto.AnalyticsFilterRequest true "Subtopic"
// @Success 200 {object} dto.AnalyticsViewDTO
// @Failure 400 {object} dto.ErrorResponse "No topic selected"
// @Router /analytics/filter/subtopic [put]
func (c *AnalyticsController) SetSubTopicFilter(ctx *gin.Context) {
	var req dto.AnalyticsFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.analytics.SetSubTopic(ws, req.SubTopic)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ResetFilters godoc
// @Summary Clear both filters
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsViewDTO
// @Router /analytics/filter [delete]
func (c *AnalyticsController) ResetFilters(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.analytics.ResetFilters(ws))
}

// DeleteAttempt godoc
// @Summary Delete one attempt
// @Description The deletion must be confirmed with confirm=true.
// @Tags Analytics
// @Produce json
// @Param id path string true "Attempt ID"
// @Param confirm query bool true "Confirm the deletion"
// @Success 200 {object} dto.AnalyticsViewDTO
// @Failure 400 {object} dto.ErrorResponse "Not confirmed"
// @Failure 401 {object} dto.ErrorResponse "Sign in required"
// @Failure 502 {object} dto.ErrorResponse "Backend failed"
// @Router /analytics/attempts/{id} [delete]
func (c *AnalyticsController) DeleteAttempt(ctx *gin.Context) {
	confirmed, _ := strconv.ParseBool(ctx.Query("confirm"))
	ws, session := clientWorkspace(ctx, c.workspaces)
	view, err := c.analytics.Delete(ctx.Request.Context(), ws, session, ctx.Param("id"), confirmed)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}
