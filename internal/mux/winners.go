package mux

import (
	"errors"
	"fmt"
	"net/http"
	"pokerhands/pkg/poker"

	"github.com/hashicorp/go-multierror"
)

type winnersRequest struct {
	Hands []string `json:"hands"`
}

type handResult struct {
	Hand     string `json:"hand"`
	Category string `json:"category"`
	Winner   bool   `json:"winner"`
}

type winnersResponse struct {
	Winners []string     `json:"winners"`
	Hands   []handResult `json:"hands"`
}

type handErrorResponse struct {
	Index   int    `json:"index"`
	Hand    string `json:"hand"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// evaluate runs a showdown over hands
// Exactly one of the return values is non-nil.
func (m *Mux) evaluate(hands []string) (*winnersResponse, *errorResponse) {
	if hands == nil {
		return nil, newErrorResponse(http.StatusBadRequest, errors.New("hands is required"))
	}

	if len(hands) > m.config.maxHands {
		err := fmt.Errorf("expected at most %d hands, got %d", m.config.maxHands, len(hands))
		return nil, newErrorResponse(http.StatusRequestEntityTooLarge, err)
	}

	showdown, err := poker.Evaluate(hands)
	if err != nil {
		resp := newErrorResponse(http.StatusBadRequest, errors.New("could not parse hands"))
		resp.Errors = handErrors(err)
		return nil, resp
	}

	results := make([]handResult, len(showdown.Hands))
	for i, h := range showdown.Hands {
		results[i] = handResult{
			Hand:     h.Source(),
			Category: h.Category().String(),
			Winner:   showdown.IsWinner(i),
		}
	}

	return &winnersResponse{
		Winners: showdown.WinningSources(),
		Hands:   results,
	}, nil
}

func handErrors(err error) []handErrorResponse {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return nil
	}

	out := make([]handErrorResponse, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var handErr *poker.HandError
		if !errors.As(e, &handErr) {
			continue
		}

		out = append(out, handErrorResponse{
			Index:   handErr.Index,
			Hand:    handErr.Source,
			Kind:    poker.ErrorKind(handErr),
			Message: handErr.Err.Error(),
		})
	}

	return out
}

func (m *Mux) postWinners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req winnersRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		log := requestLogger(r.Context()).WithField("hands", len(req.Hands))

		resp, errResp := m.evaluate(req.Hands)
		if errResp != nil {
			log.WithField("statusCode", errResp.StatusCode).Debug(errResp.Message)
			writeJSON(w, errResp.StatusCode, errResp)
			return
		}

		log.WithField("winners", len(resp.Winners)).Debug("evaluated hands")
		writeJSON(w, http.StatusOK, resp)
	}
}
