package mux

import (
	"context"
	"net/http"
	appconfig "pokerhands/internal/config"
	"pokerhands/internal/util"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
)

// requestIDHeader is set on every response
const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config  config
	version string
}

type config struct {
	// maxHands is the largest number of hands accepted in one evaluation
	maxHands int
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		config: config{
			maxHands: appconfig.Instance().MaxHands,
		},
	}

	this.Router.Use(this.requestIDMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/winners").Handler(this.postWinners())
	r.Methods(http.MethodGet).Path("/winners/ws").Handler(this.getWinnersWS())

	return this
}

func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = util.NewRequestID()
		}

		log := logrus.WithFields(logrus.Fields{
			"requestId":  id,
			"remoteAddr": remoteAddr(r),
		})

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxLoggerKey, logrus.FieldLogger(log))
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
