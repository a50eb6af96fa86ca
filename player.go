package main

import (
	"encoding/json"
	"errors"
	"net"
	"sync"

	"github.com/gobwas/ws/wsutil"
)

// PlayerSocket wraps one client's websocket connection. Writes are
// serialized because a finishing move fans out to both players from the
// mover's goroutine.
type PlayerSocket struct {
	conn net.Conn
	lock sync.Mutex
}

func NewPlayerSocket(conn net.Conn) *PlayerSocket {
	return &PlayerSocket{conn: conn}
}

func UnmarshalJSON[T any](data []byte) T {
	var parsed T
	json.Unmarshal(data, &parsed)
	return parsed
}

// Inbound messages
type JoinGameMessage struct {
	GameID string `json:"gameId"`
}

type MakeMoveMessage struct {
	GameID string `json:"gameId"`
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

type RequestRematchMessage struct {
	GameID string `json:"gameId"`
}

type QuitGameMessage struct {
	GameID string `json:"gameId"`
}

var ErrUndefinedType = errors.New("incorrect type")

// Returns one of the inbound message structs
func (p *PlayerSocket) ReadMessage() (any, error) {
	msg, err := wsutil.ReadClientText(p.conn)
	if err != nil {
		return nil, err
	}
	message := UnmarshalJSON[struct {
		Type string `json:"type"`
	}](msg)
	var parsedMessage any
	switch message.Type {
	case "joinGame":
		parsedMessage = UnmarshalJSON[JoinGameMessage](msg)
	case "makeMove":
		parsedMessage = UnmarshalJSON[MakeMoveMessage](msg)
	case "requestRematch":
		parsedMessage = UnmarshalJSON[RequestRematchMessage](msg)
	case "quitGame":
		parsedMessage = UnmarshalJSON[QuitGameMessage](msg)
	default:
		return nil, ErrUndefinedType
	}
	return parsedMessage, nil
}

// Outbound messages
type GameFullMessage struct {
	Type string `json:"type"`
}

type ScoreUpdateMessage struct {
	Type   string `json:"type"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type GameStartMessage struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
}

type OpponentMoveMessage struct {
	Type   string `json:"type"`
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

type GameOverMessage struct {
	Type   string  `json:"type"`
	Winner *string `json:"winner"` // null on a draw
}

type RematchRequestedMessage struct {
	Type string `json:"type"`
}

type RematchStartMessage struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
}

type OpponentQuitMessage struct {
	Type string `json:"type"`
}

type OpponentDisconnectedMessage struct {
	Type string `json:"type"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (p *PlayerSocket) sendMessage(message any) error {
	encoded, _ := json.Marshal(message)
	p.lock.Lock()
	defer p.lock.Unlock()
	return wsutil.WriteServerText(p.conn, encoded)
}

func (p *PlayerSocket) SendGameFull() error {
	return p.sendMessage(GameFullMessage{Type: "gameFull"})
}

func (p *PlayerSocket) SendScoreUpdate(record ScoreRecord) error {
	return p.sendMessage(ScoreUpdateMessage{Type: "scoreUpdate", Wins: record.Wins, Losses: record.Losses})
}

func (p *PlayerSocket) SendGameStart(symbol string) error {
	return p.sendMessage(GameStartMessage{Type: "gameStart", Symbol: symbol})
}

func (p *PlayerSocket) SendOpponentMove(index int, symbol string) error {
	return p.sendMessage(OpponentMoveMessage{Type: "opponentMove", Index: index, Symbol: symbol})
}

func (p *PlayerSocket) SendGameOver(winner string) error {
	message := GameOverMessage{Type: "gameOver"}
	if winner != "" {
		message.Winner = &winner
	}
	return p.sendMessage(message)
}

func (p *PlayerSocket) SendRematchRequested() error {
	return p.sendMessage(RematchRequestedMessage{Type: "rematchRequested"})
}

func (p *PlayerSocket) SendRematchStart(symbol string) error {
	return p.sendMessage(RematchStartMessage{Type: "rematchStart", Symbol: symbol})
}

func (p *PlayerSocket) SendOpponentQuit() error {
	return p.sendMessage(OpponentQuitMessage{Type: "opponentQuit"})
}

func (p *PlayerSocket) SendOpponentDisconnected() error {
	return p.sendMessage(OpponentDisconnectedMessage{Type: "opponentDisconnected"})
}

func (p *PlayerSocket) SendError(message string) error {
	return p.sendMessage(ErrorMessage{Type: "error", Message: message})
}
