package main

import (
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/gobwas/ws"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type HTTPHandler struct {
	Server *Server
}

func NewHTTPServer(server *Server, staticDir string) http.Handler {
	httpHandler := HTTPHandler{server}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET"},
		AllowCredentials: false,
	}))
	r.Use(middleware.RealIP)
	r.Use(httprate.Limit(60, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint)))
	r.Use(middleware.Heartbeat("/healthz"))

	r.Get("/ws", httpHandler.websocket())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	return r
}

func (h HTTPHandler) websocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			LogErrorWhileUpgradingHTTP(err)
			return
		}
		h.serveSession(conn, r.RemoteAddr)
	}
}

// serveSession drives one connection from upgrade to teardown. The session
// is bound to at most one room; quit and disconnect both end it for good.
func (h HTTPHandler) serveSession(conn net.Conn, remoteAddr string) {
	defer conn.Close()
	connID := uuid.NewString()
	sock := NewPlayerSocket(conn)
	h.Server.RegisterConn(connID, sock)
	metricConnections.Inc()
	defer func() {
		h.Server.UnregisterConn(connID)
		metricConnections.Dec()
	}()
	LogConnected(connID, remoteAddr)

	joinedRoom := ""
	for {
		msg, err := sock.ReadMessage()
		if err != nil {
			if errors.Is(err, ErrUndefinedType) {
				continue
			}
			if joinedRoom != "" {
				GetRoomConnLogger(connID, joinedRoom).Disconnected()
				h.handleDisconnect(joinedRoom, connID)
			}
			return
		}
		switch m := msg.(type) {
		case JoinGameMessage:
			if joinedRoom != "" {
				continue
			}
			res := h.Server.Join(m.GameID, connID)
			if res.Full {
				sock.SendGameFull()
				continue
			}
			joinedRoom = m.GameID
			GetRoomConnLogger(connID, joinedRoom).JoinedRoom()
			sock.SendScoreUpdate(res.Record)
			if res.BothReady {
				h.sendEach(res.Players, func(p Player, s *PlayerSocket) {
					s.SendGameStart(p.Symbol)
				})
			}

		case MakeMoveMessage:
			res, room := h.Server.Move(m.GameID, m.Index, m.Symbol)
			if !res.Accepted {
				continue
			}
			metricMoves.Inc()
			if opp, ok := room.Opponent(connID); ok {
				if s, ok := h.Server.GetConn(opp.ConnID); ok {
					s.SendOpponentMove(m.Index, m.Symbol)
				}
			}
			if res.RoundOver {
				players := room.Players()
				h.sendEach(players, func(p Player, s *PlayerSocket) {
					s.SendGameOver(res.Winner)
				})
				result := "draw"
				if winners := h.Server.Scores().RecordOutcome(m.GameID, res.Winner, players); winners != nil {
					result = "win"
					h.sendEach(players, func(p Player, s *PlayerSocket) {
						s.SendScoreUpdate(winners[p.ConnID])
					})
				}
				metricRounds.WithLabelValues(result).Inc()
				GetRoomConnLogger(connID, m.GameID).RoundOver()
			}

		case RequestRematchMessage:
			res := h.Server.RequestRematch(m.GameID, connID)
			if res.NoRoom {
				sock.SendError("Game not found.")
				continue
			}
			if res.Agreed {
				h.sendEach(res.Players, func(p Player, s *PlayerSocket) {
					s.SendRematchStart(p.Symbol)
				})
			} else if res.Opponent != nil {
				if s, ok := h.Server.GetConn(res.Opponent.ConnID); ok {
					s.SendRematchRequested()
				}
			}

		case QuitGameMessage:
			// a quit naming a room this session isn't seated in is
			// protocol misuse, dropped like any other invalid input;
			// otherwise the session would die with its seat still taken
			if joinedRoom == "" || m.GameID != joinedRoom {
				continue
			}
			opp, roomRemoved := h.Server.Quit(m.GameID, connID)
			if opp != nil {
				if s, ok := h.Server.GetConn(opp.ConnID); ok {
					s.SendOpponentQuit()
				}
			}
			logger := GetRoomConnLogger(connID, m.GameID)
			logger.LeftRoom()
			if roomRemoved {
				logger.RemovingRoom()
			}
			return
		}
	}
}

func (h HTTPHandler) handleDisconnect(roomID, connID string) {
	opp, roomRemoved := h.Server.Disconnect(roomID, connID)
	if opp != nil {
		if s, ok := h.Server.GetConn(opp.ConnID); ok {
			s.SendOpponentDisconnected()
		}
	}
	if roomRemoved {
		GetRoomConnLogger(connID, roomID).RemovingRoom()
	}
}

// sendEach delivers to every seated player that still has a live socket;
// absent peers are skipped, not errors.
func (h HTTPHandler) sendEach(players []Player, send func(Player, *PlayerSocket)) {
	for _, p := range players {
		if s, ok := h.Server.GetConn(p.ConnID); ok {
			send(p, s)
		}
	}
}
