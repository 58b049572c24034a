package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"alora/shared/constant"
	"alora/shared/failure"
	"alora/shared/logger"
)

var debug atomic.Bool

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error   *string      `json:"error,omitempty"`
	Kind    failure.Kind `json:"kind,omitempty"`
	Details any          `json:"details,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// SetDebug toggles whether technical error detail is written to clients.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithBody sends payload as the top level JSON document, without the data envelope
func WithBody(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithError sends a response with an error message
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()
	payload := Error{}

	var fail *failure.Failure

	switch {
	case errors.As(err, &fail):
		errMsg = fail.Message
		payload.Kind = fail.Kind
		payload.Details = fail.Details

		if debug.Load() {
			payload.Detail = fail.Detail
		}
	case !debug.Load():
		errMsg = http.StatusText(code)
	}

	payload.Error = &errMsg

	response(writer, code, payload)
}

// WithFile sends a binary attachment
func WithFile(writer http.ResponseWriter, contentType, fileName string, content []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, contentType)
	writer.Header().Set(constant.RequestHeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	writer.WriteHeader(http.StatusOK)

	if _, err := writer.Write(content); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
