package mux

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsRequest is a single evaluation requested over a websocket
// ID is echoed back so clients can match responses to requests
type wsRequest struct {
	ID    string   `json:"id,omitempty"`
	Hands []string `json:"hands"`
}

type wsResponse struct {
	ID     string           `json:"id,omitempty"`
	Result *winnersResponse `json:"result,omitempty"`
	Error  *errorResponse   `json:"error,omitempty"`
}

func (m *Mux) getWinnersWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLogger(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		ctx, cancel := context.WithCancel(r.Context())
		send := make(chan wsResponse)
		done := make(chan struct{})

		go func() {
			defer close(done)
			m.webSocketWriteLoop(ctx, conn, send, log)
		}()

		m.webSocketReadLoop(conn, send, done, log)

		cancel()
		<-done
	}
}

func (m *Mux) webSocketWriteLoop(ctx context.Context, conn *websocket.Conn, send <-chan wsResponse, log logrus.FieldLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg := <-send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				log.WithError(err).Error("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop reads requests until the connection closes or the write loop exits
func (m *Mux) webSocketReadLoop(conn *websocket.Conn, send chan<- wsResponse, writerDone <-chan struct{}, log logrus.FieldLogger) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Error("could not read message")
			}

			return
		}

		var resp wsResponse
		var req wsRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			resp.Error = newErrorResponse(http.StatusBadRequest, err)
		} else {
			resp.ID = req.ID
			resp.Result, resp.Error = m.evaluate(req.Hands)
			log.WithField("id", req.ID).WithField("hands", len(req.Hands)).Trace("evaluated hands over websocket")
		}

		select {
		case send <- resp:
		case <-writerDone:
			return
		}
	}
}
