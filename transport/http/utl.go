package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"syscall"

	"github.com/go-kit/log/level"
	"github.com/nicolasparada/go-errs"
	"github.com/nicolasparada/go-errs/httperrs"

	"github.com/nakamauwu/hanghub/types"
	"github.com/nakamauwu/hanghub/validator"
)

const maxBodySize = 1 << 20

var (
	errBadRequest           = errors.New("bad request")
	errStreamingUnsupported = errors.New("streaming unsupported")
	errTooManyRequests      = errors.New("too many requests")
	errRouteNotFound        = errs.NotFoundError("route not found")
)

type successRespBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type failureRespBody struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	defer r.Body.Close()

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v); err != nil {
		return errBadRequest
	}

	return nil
}

func (h *handler) respond(w http.ResponseWriter, v any, statusCode int) {
	b, err := json.Marshal(v)
	if err != nil {
		_ = level.Error(h.logger).Log("err", fmt.Errorf("could not json marshal http response body: %w", err))
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = w.Write(b)
	if err != nil && !errors.Is(err, syscall.EPIPE) && !errors.Is(err, context.Canceled) {
		_ = level.Error(h.logger).Log("err", fmt.Errorf("could not write down http response: %w", err))
	}
}

func (h *handler) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := err2code(err)
	body := failureRespBody{Message: err.Error()}

	var v *validator.Validator
	if errors.As(err, &v) {
		body.Errors = v.Errors
	}

	if statusCode >= http.StatusInternalServerError {
		if !errors.Is(err, context.Canceled) {
			_ = level.Error(h.logger).Log(
				"req_id", requestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", statusCode,
				"err", err,
			)
		}

		body.Message = http.StatusText(statusCode)
	}

	h.respond(w, body, statusCode)
}

func err2code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var v *validator.Validator
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.As(err, &v):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, errStreamingUnsupported):
		return http.StatusExpectationFailed
	case errors.Is(err, types.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}

	return httperrs.Code(err)
}

func (h *handler) writeSSE(w io.Writer, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		_ = level.Error(h.logger).Log("err", fmt.Errorf("could not json marshal sse data: %w", err))
		_, errWrite := fmt.Fprintf(w, "event: error\ndata: %v\n\n", err)
		if errWrite != nil && !errors.Is(errWrite, syscall.EPIPE) {
			_ = level.Error(h.logger).Log("err", fmt.Errorf("could not write sse error: %w", errWrite))
		}
		return
	}

	_, errWrite := fmt.Fprintf(w, "data: %s\n\n", b)
	if errWrite != nil && !errors.Is(errWrite, syscall.EPIPE) {
		_ = level.Error(h.logger).Log("err", fmt.Errorf("could not write sse data: %w", errWrite))
	}
}
