package main

import (
	"sync"

	"tictactoe-backend/board"
)

type Player struct {
	ConnID string
	Symbol string
}

// RejectReason says why a move was dropped. The sender is never told; the
// reason exists so validation is testable.
type RejectReason int

const (
	RejectNone RejectReason = iota
	RejectNoRoom
	RejectBadIndex
	RejectCellOccupied
	RejectNotYourTurn
	RejectRoundEnded
)

type MoveResult struct {
	Accepted  bool
	Reason    RejectReason
	RoundOver bool
	Winner    string // empty on a draw
}

// Room is one two-player match. All methods serialize on the room's own
// lock, so unrelated rooms never contend.
type Room struct {
	players []Player
	cells   board.Cells
	turn    string
	ended   bool
	lock    sync.RWMutex
}

func NewRoom() *Room {
	return &Room{players: make([]Player, 0, 2), turn: "X"}
}

// Join seats a connection. A full room returns ok=false without mutation.
// The first player of a fresh room gets X; a later joiner gets whichever
// symbol is vacant, so a room never holds two players with the same symbol.
func (r *Room) Join(connID string) (symbol string, bothReady bool, ok bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.players) >= 2 {
		return "", false, false
	}
	symbol = "X"
	if len(r.players) == 1 && r.players[0].Symbol == "X" {
		symbol = "O"
	}
	r.players = append(r.players, Player{ConnID: connID, Symbol: symbol})
	return symbol, len(r.players) == 2, true
}

// ApplyMove validates and applies a move. Invalid moves leave the room
// untouched and come back as Rejected.
func (r *Room) ApplyMove(index int, symbol string) MoveResult {
	r.lock.Lock()
	defer r.lock.Unlock()
	if index < 0 || index >= board.Size {
		return MoveResult{Reason: RejectBadIndex}
	}
	if r.cells[index] != "" {
		return MoveResult{Reason: RejectCellOccupied}
	}
	if r.turn != symbol {
		return MoveResult{Reason: RejectNotYourTurn}
	}
	if r.ended {
		return MoveResult{Reason: RejectRoundEnded}
	}

	r.cells[index] = symbol
	if symbol == "X" {
		r.turn = "O"
	} else {
		r.turn = "X"
	}

	outcome, winner := board.Evaluate(r.cells)
	if outcome == board.InProgress {
		return MoveResult{Accepted: true}
	}
	r.ended = true
	return MoveResult{Accepted: true, RoundOver: true, Winner: winner}
}

// RemovePlayer unseats a connection. empty reports whether the room has no
// players left and should be deleted.
func (r *Room) RemovePlayer(connID string) (removed, empty bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for i, p := range r.players {
		if p.ConnID == connID {
			r.players = append(r.players[:i], r.players[i+1:]...)
			removed = true
			break
		}
	}
	return removed, removed && len(r.players) == 0
}

// ResetRound clears the board for a rematch. Seats and symbols are kept.
func (r *Room) ResetRound() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.cells = board.Cells{}
	r.turn = "X"
	r.ended = false
}

// Opponent returns the other seated player, if any.
func (r *Room) Opponent(connID string) (Player, bool) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	for _, p := range r.players {
		if p.ConnID != connID {
			return p, true
		}
	}
	return Player{}, false
}

func (r *Room) Players() []Player {
	r.lock.RLock()
	defer r.lock.RUnlock()
	players := make([]Player, len(r.players))
	copy(players, r.players)
	return players
}

func (r *Room) PlayerCount() int {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.players)
}

func (r *Room) Cells() board.Cells {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.cells
}

func (r *Room) Turn() string {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.turn
}

func (r *Room) Ended() bool {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return r.ended
}
