package httpx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	apperrors "github.com/target/edr-bridge/internal/errors"
	"github.com/target/edr-bridge/internal/tools"
)

// maxInvokeBody bounds the arguments payload of one tool invocation.
const maxInvokeBody = 1 << 20

type toolHandlers struct {
	registry *tools.Registry
	logger   *slog.Logger
}

// listTools returns the tool catalog with input schemas.
func (h *toolHandlers) listTools(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"tools": h.registry.List()})
}

type invokeRequest struct {
	Arguments json.RawMessage `json:"arguments"`
}

type invokeResponse struct {
	Content string `json:"content"`
}

// invokeTool runs one named tool with the JSON arguments from the body.
func (h *toolHandlers) invokeTool(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	tool, ok := h.registry.Get(name)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "unknown_tool",
			Message: "no tool named " + name,
		})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxInvokeBody))
	if err != nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_body",
			Message: "could not read the request body",
		})
		return
	}

	var req invokeRequest
	if len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_json",
				Message: "the request body is not valid JSON",
			})
			return
		}
	}

	content, err := tool.Invoke(r.Context(), req.Arguments)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "tool invocation failed",
			slog.String("tool", name),
			slog.String("request_id", RequestIDFromContext(r.Context())),
			slog.Any("error", err),
		)
		writeAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, invokeResponse{Content: content})
}

// writeAppError maps application error codes onto HTTP statuses. Only the
// caller-safe message from the application error reaches the response.
func writeAppError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeValidation:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeUnavailable:
		status = http.StatusServiceUnavailable
	case apperrors.ErrCodeUpstream:
		status = http.StatusBadGateway
	case apperrors.ErrCodeInternal:
		status = http.StatusInternalServerError
	}
	WriteError(w, ErrorParams{
		Code:    status,
		ErrCode: string(code),
		Message: apperrors.MessageOf(err),
	})
}
