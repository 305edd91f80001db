package v1handler

import (
	"context"
	"errors"
	"evdemand/pkg/domain"
	"evdemand/pkg/logger"
	"evdemand/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int
	Code       string
	Message    string
}

type kindStatus struct {
	kind    serrors.Kind
	status  int
	message string
}

// statuses maps semantic kinds to HTTP responses. The message is used when
// the error carries none of its own.
var statuses = []kindStatus{ //nolint: gochecknoglobals
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError converts err into a response. Domain validation errors are client
// errors carrying their own kind as code. Anything unrecognised is logged and
// hidden behind a generic internal error.
func NewError(ctx context.Context, err error) *ErrorResponse {
	if domain.IsValidation(err) {
		return &ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Code:       serrors.KindOf(err).Error(),
			Message:    err.Error(),
		}
	}

	for _, s := range statuses {
		if !errors.Is(err, s.kind) {
			continue
		}

		msg := s.message
		var se *serrors.Error
		if errors.As(err, &se) && se.Message() != "" {
			msg = se.Message()
		}

		return &ErrorResponse{StatusCode: s.status, Code: s.kind.Error(), Message: msg}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorResponse{
		StatusCode: http.StatusInternalServerError,
		Code:       serrors.ErrInternal.Error(),
		Message:    "internal error",
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := NewError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("code")
		e.Str(res.Code)
		e.FieldStart("message")
		e.Str(res.Message)
	})
	writeJSON(w, res.StatusCode, &e)
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
