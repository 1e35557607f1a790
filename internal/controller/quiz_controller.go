package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	workspaces *service.WorkspaceStore
	quizzes    service.QuizService
}

func NewQuizController(workspaces *service.WorkspaceStore, quizzes service.QuizService) *QuizController {
	return &QuizController{workspaces: workspaces, quizzes: quizzes}
}

func (c *QuizController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/catalogue", c.GetCatalogue)

	quizzes := api.Group("/quiz/:kind")
	quizzes.GET("", c.GetQuiz)
	quizzes.POST("", c.GenerateQuiz)
	quizzes.DELETE("", c.ResetQuiz)
	quizzes.PUT("/answer", c.SelectAnswer)
	quizzes.POST("/next", c.NextQuestion)
	quizzes.POST("/previous", c.PreviousQuestion)
	quizzes.POST("/submit", c.SubmitQuiz)
}

func (c *QuizController) kind(ctx *gin.Context) (service.QuizKind, bool) {
	kind, err := service.ParseQuizKind(ctx.Param("kind"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Unknown quiz", Details: []string{err.Error()}})
		return "", false
	}
	return kind, true
}

// GetCatalogue godoc
// @Summary List quiz topics and limits
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.CatalogueDTO
// @Router /catalogue [get]
func (c *QuizController) GetCatalogue(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.quizzes.Catalogue())
}

// GetQuiz godoc
// @Summary Get the state of a quiz view
// @Description kind is "topic" for generated quizzes or "document" for quizzes built from an uploaded PDF.
// @Tags Quiz
// @Produce json
// @Param kind path string true "Quiz kind" Enums(topic, document)
// @Success 200 {object} dto.QuizViewDTO
// @Failure 404 {object} dto.ErrorResponse "Unknown quiz kind"
// @Router /quiz/{kind} [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	kind, ok := c.kind(ctx)
	if !ok {
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.quizzes.View(ws, kind))
}

// GenerateQuiz godoc
// @Summary Generate a topic quiz
// @Description Requests questions for a topic and subtopic. The current quiz is kept when generation fails.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param kind path string true "Quiz kind, must be topic" Enums(topic)
// @Param request body dto.GenerateQuizRequest true "Topic, subtopic, count and difficulty"
// @Success 200 {object} dto.QuizViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid settings"
// @Failure 409 {object} dto.ErrorResponse "Superseded by a newer action"
// @Failure 502 {object} dto.ErrorResponse "Question source failed"
// @Failure 504 {object} dto.ErrorResponse "Question source timed out"
// @Router /quiz/{kind} [post]
func (c *QuizController) GenerateQuiz(ctx *gin.Context) {
	kind, ok := c.kind(ctx)
	if !ok {
		return
	}
	if kind != service.QuizTopic {
		badRequest(ctx, "Document quizzes are generated by uploading a PDF", nil)
		return
	}
	var req dto.GenerateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GenerateQuiz: Failed to bind JSON")
		badRequest(ctx, "Invalid request body", err)
		return
	}

	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.quizzes.Generate(ctx.Request.Context(), ws, req)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SelectAnswer godoc
// @Summary Select an option for a question
// @Tags Quiz
// @Accept json
// @Produce json
// @Param kind path string true "Quiz kind" Enums(topic, document)
// @Param request body dto.SelectAnswerRequest true "Question index and option"
// @Success 200 {object} dto.QuizViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 409 {object} dto.ErrorResponse "Not allowed in the current quiz state"
// @Router /quiz/{kind}/answer [put]
func (c *QuizController) SelectAnswer(ctx *gin.Context) {
	kind, ok := c.kind(ctx)
	if !ok {
		return
	}
	var req dto.SelectAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", err)
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := c.quizzes.SelectAnswer(ws, kind, *req.Index, req.Option)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// NextQuestion godoc
// @Summary Move to the next question
// @Description Refused while the current question is unanswered.
// @Tags Quiz
// @Produce json
// @Param kind path string true "Quiz kind" Enums(topic, document)
// @Success 200 {object} dto.QuizViewDTO
// @Failure 409 {object} dto.ErrorResponse "Current question unanswered"
// @Router /quiz/{kind}/next [post]
func (c *QuizController) NextQuestion(ctx *gin.Context) {
	c.step(ctx, c.quizzes.Advance)
}

// PreviousQuestion godoc
// @Summary Move to the previous question
// @Tags Quiz
// @Produce json
// @Param kind path string true "Quiz kind" Enums(topic, document)
// @Success 200 {object} dto.QuizViewDTO
// @Failure 409 {object} dto.ErrorResponse "Already at the first question"
// @Router /quiz/{kind}/previous [post]
func (c *QuizController) PreviousQuestion(ctx *gin.Context) {
	c.step(ctx, c.quizzes.Retreat)
}

func (c *QuizController) step(ctx *gin.Context, op func(*service.Workspace, service.QuizKind) (dto.QuizViewDTO, error)) {
	kind, ok := c.kind(ctx)
	if !ok {
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	view, err := op(ws, kind)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SubmitQuiz godoc
// @Summary Grade the quiz
// @Description Grades from the answered last question. Signed-in users get the attempt saved in the background.
// @Tags Quiz
// @Produce json
// @Param kind path string true "Quiz kind" Enums(topic, document)
// @Success 200 {object} dto.QuizViewDTO
// @Failure 409 {object} dto.ErrorResponse "Quiz cannot be submitted yet"
// @Router /quiz/{kind}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	kind, ok := c.kind(ctx)
	if !ok {
		return
	}
	ws, session := clientWorkspace(ctx, c.workspaces)
	view, err := c.quizzes.Submit(ws, kind, session)
	if err != nil {
		respondError(ctx, err, view)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ResetQuiz godoc
// @Summary Start over
// @Description Discards the quiz and returns to configuration.
// @Tags Quiz
// @Produce json
// @Param kind path string true "Quiz kind" Enums(topic, document)
// @Success 200 {object} dto.QuizViewDTO
// @Router /quiz/{kind} [delete]
func (c *QuizController) ResetQuiz(ctx *gin.Context) {
	kind, ok := c.kind(ctx)
	if !ok {
		return
	}
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.quizzes.Reset(ws, kind))
}
