package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/config"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/service"
	"github.com/rs/zerolog/log"
)

type DocumentController struct {
	workspaces *service.WorkspaceStore
	documents  service.DocumentService
	maxBytes   int64
}

func NewDocumentController(workspaces *service.WorkspaceStore, documents service.DocumentService, cfg *config.Config) *DocumentController {
	return &DocumentController{workspaces: workspaces, documents: documents, maxBytes: cfg.Upload.MaxBytes}
}

func (c *DocumentController) RegisterRoutes(api *gin.RouterGroup) {
	docs := api.Group("/documents")
	docs.POST("", c.UploadDocument)
	docs.GET("/status", c.GetUploadStatus)
	docs.DELETE("", c.ResetUpload)
}

// UploadDocument godoc
// @Summary Upload a PDF to build a quiz from
// @Description Accepts the file and generates questions in the background. Poll the status endpoint; when it reports complete the document quiz is in progress. A new upload replaces one still running.
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Param numQuestions formData int false "Number of questions (1-20)"
// @Param difficulty formData string false "Difficulty" Enums(easy, medium, hard)
// @Success 202 {object} dto.UploadStatusDTO
// @Failure 400 {object} dto.ErrorResponse "Missing or non-PDF file"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Router /documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	var form dto.UploadDocumentForm
	if err := ctx.ShouldBind(&form); err != nil {
		log.Warn().Err(err).Msg("UploadDocument: Failed to bind form")
		badRequest(ctx, "Invalid upload settings", err)
		return
	}

	ws, _ := clientWorkspace(ctx, c.workspaces)
	fileName, data, err := c.readFile(ctx)
	if err != nil {
		respondError(ctx, err, c.documents.Status(ws))
		return
	}

	status, err := c.documents.Upload(ws, fileName, data, form)
	if err != nil {
		respondError(ctx, err, status)
		return
	}
	ctx.JSON(http.StatusAccepted, status)
}

func (c *DocumentController) readFile(ctx *gin.Context) (string, []byte, error) {
	header, err := ctx.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil, service.ErrNoFile
	}
	if err != nil {
		return "", nil, err
	}
	if c.maxBytes > 0 && header.Size > c.maxBytes {
		return "", nil, service.ErrFileTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return header.Filename, data, nil
}

// GetUploadStatus godoc
// @Summary Get the progress of the current upload
// @Tags Documents
// @Produce json
// @Success 200 {object} dto.UploadStatusDTO
// @Router /documents/status [get]
func (c *DocumentController) GetUploadStatus(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.documents.Status(ws))
}

// ResetUpload godoc
// @Summary Discard the upload
// @Description Cancels an upload in flight; its result is ignored.
// @Tags Documents
// @Produce json
// @Success 200 {object} dto.UploadStatusDTO
// @Router /documents [delete]
func (c *DocumentController) ResetUpload(ctx *gin.Context) {
	ws, _ := clientWorkspace(ctx, c.workspaces)
	ctx.JSON(http.StatusOK, c.documents.Reset(ws))
}
