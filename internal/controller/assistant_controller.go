package controller

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
	"github.com/rs/zerolog/log"
)

// maxAudioChunk bounds one dictation audio request.
const maxAudioChunk = 1 << 20

type AssistantController struct {
	workspaces *service.WorkspaceStore
	assistant  service.AssistantService
}

func NewAssistantController(workspaces *service.WorkspaceStore, assistant service.AssistantService) *AssistantController {
	return &AssistantController{workspaces: workspaces, assistant: assistant}
}

func (c *AssistantController) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/assistant")
	group.GET("", c.GetConversation)
	group.PUT("/category", c.SetCategory)
	group.POST("/messages", c.SendMessage)
	group.DELETE("/messages", c.ClearConversation)

	group.POST("/dictation", c.StartDictation)
	group.POST("/dictation/audio", c.FeedDictation)
	group.POST("/dictation/finish", c.FinishDictation)
	group.DELETE("/dictation", c.CancelDictation)

	group.POST("/speech", c.Speak)
	group.DELETE("/speech", c.StopSpeaking)
}

func (c *AssistantController) reply(ctx *gin.Context, view dto.ChatViewDTO, err error) {
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// GetConversation godoc
// @Summary Get the conversation
// @Tags Assistant
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Router /assistant [get]
func (c *AssistantController) GetConversation(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.assistant.View(ws))
}

// SetCategory godoc
// @Summary Choose the assistant category
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.SetCategoryRequest true "Category: homework, mental, games or general"
// @Success 200 {object} dto.ChatViewDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown category"
// @Router /assistant/category [put]
func (c *AssistantController) SetCategory(ctx *gin.Context) {
	var req dto.SetCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.assistant.SetCategory(ws, req.Category)
	c.reply(ctx, view, err)
}

// SendMessage godoc
// @Summary Send a message to the assistant
// @Description A failed reply is added to the conversation as an error message and still returns 200.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.SendMessageRequest true "Message and optional category"
// @Success 200 {object} dto.ChatViewDTO
// @Failure 400 {object} dto.ErrorResponse "Empty message"
// @Failure 409 {object} dto.ErrorResponse "Conversation was cleared"
// @Router /assistant/messages [post]
func (c *AssistantController) SendMessage(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SendMessage: Failed to bind JSON")
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.assistant.Send(ctx.Request.Context(), ws, req.Message, req.Category)
	c.reply(ctx, view, err)
}

// ClearConversation godoc
// @Summary Start a new conversation
// @Tags Assistant
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Router /assistant/messages [delete]
func (c *AssistantController) ClearConversation(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.assistant.Clear(ws))
}

// StartDictation godoc
// @Summary Start listening
// @Tags Assistant
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Failure 501 {object} dto.ErrorResponse "Speech input not available"
// @Router /assistant/dictation [post]
func (c *AssistantController) StartDictation(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.assistant.StartDictation(ctx.Request.Context(), ws)
	c.reply(ctx, view, err)
}

// FeedDictation godoc
// @Summary Stream recorded audio
// @Description The body is a WEBM_OPUS recording at 48 kHz. The returned view carries the transcript heard so far.
// @Tags Assistant
// @Accept application/octet-stream
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Failure 409 {object} dto.ErrorResponse "Not listening"
// @Failure 501 {object} dto.ErrorResponse "Speech input not available"
// @Router /assistant/dictation/audio [post]
func (c *AssistantController) FeedDictation(ctx *gin.Context) {
	audio, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxAudioChunk))
	if err != nil {
		badRequest(ctx, "Could not read audio", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.assistant.FeedDictation(ctx.Request.Context(), ws, audio)
	c.reply(ctx, view, err)
}

// FinishDictation godoc
// @Summary Stop listening and send what was heard
// @Tags Assistant
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Failure 409 {object} dto.ErrorResponse "Not listening"
// @Router /assistant/dictation/finish [post]
func (c *AssistantController) FinishDictation(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.assistant.FinishDictation(ws)
	c.reply(ctx, view, err)
}

// CancelDictation godoc
// @Summary Stop listening without sending
// @Tags Assistant
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Router /assistant/dictation [delete]
func (c *AssistantController) CancelDictation(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.assistant.CancelDictation(ws))
}

// Speak godoc
// @Summary Read a message aloud
// @Description Stops whatever this client was hearing before and returns when the utterance ends or is stopped.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.SpeakRequest true "Text to read"
// @Success 200 {object} dto.MessageResponse
// @Failure 501 {object} dto.ErrorResponse "Speech output not available"
// @Router /assistant/speech [post]
func (c *AssistantController) Speak(ctx *gin.Context) {
	var req dto.SpeakRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	if err := c.assistant.Speak(ctx.Request.Context(), ws, req.Text); err != nil {
		respondError(ctx, err, c.assistant.View(ws))
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Done speaking"})
}

// StopSpeaking godoc
// @Summary Stop reading aloud
// @Tags Assistant
// @Produce json
// @Success 200 {object} dto.ChatViewDTO
// @Router /assistant/speech [delete]
func (c *AssistantController) StopSpeaking(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.assistant.StopSpeaking(ws))
}
