package mux

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func Test_remoteAddr(t *testing.T) {
	r := &http.Request{RemoteAddr: "127.0.0.1:5000"}
	assert.Equal(t, "127.0.0.1", remoteAddr(r))

	r.RemoteAddr = "[::1]:5000"
	assert.Equal(t, "[::1]", remoteAddr(r))

	r.RemoteAddr = "localhost"
	assert.Equal(t, "localhost", remoteAddr(r))
}

func Test_requestLogger(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), requestLogger(context.Background()))

	entry := logrus.WithField("requestId", "abc")
	ctx := context.WithValue(context.Background(), ctxLoggerKey, logrus.FieldLogger(entry))
	assert.Equal(t, entry, requestLogger(ctx))
}

func Test_newErrorResponse(t *testing.T) {
	resp := newErrorResponse(http.StatusBadRequest, assert.AnError)
	assert.Equal(t, assert.AnError.Error(), resp.Message)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = newErrorResponse(http.StatusInternalServerError, assert.AnError)
	assert.Equal(t, "Internal Server Error", resp.Message)

	resp = newErrorResponse(http.StatusUnsupportedMediaType, nil)
	assert.Equal(t, "Unsupported Media Type", resp.Message)
}
