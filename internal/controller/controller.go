package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/SigmaLearn/internal/assistant"
	"github.com/lshigami/SigmaLearn/internal/auth"
	"github.com/lshigami/SigmaLearn/internal/backend"
	"github.com/lshigami/SigmaLearn/internal/dto"
	"github.com/lshigami/SigmaLearn/internal/quiz"
	"github.com/lshigami/SigmaLearn/internal/service"
	"github.com/rs/zerolog/log"
)

// Routes is implemented by every feature controller.
type Routes interface {
	RegisterRoutes(api *gin.RouterGroup)
}

// clientWorkspace returns the workspace of the calling browser client.
func clientWorkspace(ctx *gin.Context, store *service.WorkspaceStore) (*service.Workspace, *auth.Session) {
	session := auth.FromContext(ctx)
	return store.Get(session.ClientID()), session
}

func badRequest(ctx *gin.Context, msg string, err error) {
	resp := dto.ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, resp)
}

// respondError writes err with the status its class maps to. state is the
// unchanged view left behind by the failed action.
func respondError(ctx *gin.Context, err error, state any) {
	status, resp := errorResponse(err)
	resp.State = state
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg("Request failed")
	} else {
		log.Debug().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg("Request rejected")
	}
	ctx.JSON(status, resp)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	resp := dto.ErrorResponse{Error: err.Error()}

	if errors.Is(err, service.ErrUnauthenticated) || backend.IsUnauthenticated(err) {
		resp.Error = "Please sign in to continue."
		resp.Kind = string(backend.KindUnauthenticated)
		resp.SignInRequired = true
		return http.StatusUnauthorized, resp
	}

	var be *backend.Error
	if errors.As(err, &be) {
		resp.Error = backend.UserMessage(err)
		resp.Kind = string(be.Kind)
		switch be.Kind {
		case backend.KindClientRejected:
			if be.StatusCode == http.StatusUnprocessableEntity {
				return http.StatusUnprocessableEntity, resp
			}
			return http.StatusBadRequest, resp
		case backend.KindTimeout:
			return http.StatusGatewayTimeout, resp
		default:
			return http.StatusBadGateway, resp
		}
	}

	switch {
	case service.IsQuizGuard(err),
		errors.Is(err, service.ErrSuperseded),
		errors.Is(err, assistant.ErrNotListening):
		return http.StatusConflict, resp
	case errors.Is(err, quiz.ErrNoQuestions):
		return http.StatusBadGateway, resp
	case errors.Is(err, service.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, resp
	case errors.Is(err, service.ErrSpeechUnavailable):
		return http.StatusNotImplemented, resp
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrEmptyMessage),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrNoFile),
		errors.Is(err, service.ErrNotPDF),
		errors.Is(err, service.ErrUnknownView),
		errors.Is(err, service.ErrConfirmationRequired):
		return http.StatusBadRequest, resp
	}

	resp.Error = "Something went wrong. Please try again."
	resp.Details = []string{err.Error()}
	return http.StatusInternalServerError, resp
}
