package main

import "sync"

// Server owns the three in-memory maps of the coordinator: rooms, scores
// and pending rematches, plus a directory of live sockets so one player's
// handler can address the other player.
type Server struct {
	rooms   map[string]*Room
	conns   map[string]*PlayerSocket
	scores  *ScoreLedger
	rematch *RematchCoordinator
	lock    sync.RWMutex
}

func NewServer() *Server {
	return &Server{
		rooms:   make(map[string]*Room),
		conns:   make(map[string]*PlayerSocket),
		scores:  NewScoreLedger(),
		rematch: NewRematchCoordinator(),
	}
}

func (s *Server) GetRoom(roomID string) (*Room, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	room, exists := s.rooms[roomID]
	return room, exists
}

// GetOrCreateRoom returns the room for an id, creating it lazily on first
// join. Any string is a valid id, including the empty one.
func (s *Server) GetOrCreateRoom(roomID string) (room *Room, created bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if room, ok := s.rooms[roomID]; ok {
		return room, false
	}
	room = NewRoom()
	s.rooms[roomID] = room
	metricRooms.Inc()
	return room, true
}

// RemoveRoom deletes a room and everything keyed on it.
func (s *Server) RemoveRoom(roomID string) {
	s.lock.Lock()
	if _, ok := s.rooms[roomID]; ok {
		delete(s.rooms, roomID)
		metricRooms.Dec()
	}
	s.lock.Unlock()
	s.scores.Drop(roomID)
	s.rematch.Clear(roomID)
}

func (s *Server) RoomCount() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.rooms)
}

func (s *Server) RegisterConn(connID string, sock *PlayerSocket) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.conns[connID] = sock
}

func (s *Server) UnregisterConn(connID string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.conns, connID)
}

func (s *Server) GetConn(connID string) (*PlayerSocket, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	sock, exists := s.conns[connID]
	return sock, exists
}

func (s *Server) Scores() *ScoreLedger { return s.scores }

type JoinResult struct {
	Full      bool
	Created   bool
	Symbol    string
	BothReady bool
	Record    ScoreRecord
	Players   []Player
}

// Join seats a connection in a room, creating the room on first use and
// zero-initializing the player's score record.
func (s *Server) Join(roomID, connID string) JoinResult {
	room, created := s.GetOrCreateRoom(roomID)
	symbol, bothReady, ok := room.Join(connID)
	if !ok {
		return JoinResult{Full: true}
	}
	record := s.scores.Ensure(roomID, connID)
	return JoinResult{
		Created:   created,
		Symbol:    symbol,
		BothReady: bothReady,
		Record:    record,
		Players:   room.Players(),
	}
}

// Move applies a move to a room. An unknown room rejects like any other
// invalid move: silently. The room itself is returned alongside an accepted
// result so the caller fans out against the room it just mutated, even if a
// concurrent departure deletes the registry entry in between.
func (s *Server) Move(roomID string, index int, symbol string) (MoveResult, *Room) {
	room, exists := s.GetRoom(roomID)
	if !exists {
		return MoveResult{Reason: RejectNoRoom}, nil
	}
	return room.ApplyMove(index, symbol), room
}

type RematchResult struct {
	NoRoom   bool
	Agreed   bool
	Opponent *Player  // set while waiting, to notify
	Players  []Player // seats after the reset, when agreed
}

// RequestRematch registers a rematch request. The missing-room case is the
// one place the protocol surfaces an explicit error to the caller.
func (s *Server) RequestRematch(roomID, connID string) RematchResult {
	room, exists := s.GetRoom(roomID)
	if !exists {
		return RematchResult{NoRoom: true}
	}
	if !s.rematch.Request(roomID, connID) {
		res := RematchResult{}
		if opp, ok := room.Opponent(connID); ok {
			res.Opponent = &opp
		}
		return res
	}
	room.ResetRound()
	s.rematch.Clear(roomID)
	return RematchResult{Agreed: true, Players: room.Players()}
}

// Quit removes a player on explicit quit. The whole pending rematch set is
// cleared, the opponent (if any) is returned for notification, and the room
// is deleted when the quitter was the last player.
func (s *Server) Quit(roomID, connID string) (opponent *Player, roomRemoved bool) {
	room, exists := s.GetRoom(roomID)
	if !exists {
		return nil, false
	}
	if opp, ok := room.Opponent(connID); ok {
		opponent = &opp
	}
	s.rematch.Clear(roomID)
	_, empty := room.RemovePlayer(connID)
	if empty {
		s.RemoveRoom(roomID)
	}
	return opponent, empty
}

// Disconnect removes a player whose transport dropped. Only the departed
// connection's own rematch request is withdrawn; the opponent's stands.
func (s *Server) Disconnect(roomID, connID string) (opponent *Player, roomRemoved bool) {
	room, exists := s.GetRoom(roomID)
	if !exists {
		return nil, false
	}
	if opp, ok := room.Opponent(connID); ok {
		opponent = &opp
	}
	s.rematch.Remove(roomID, connID)
	_, empty := room.RemovePlayer(connID)
	if empty {
		s.RemoveRoom(roomID)
	}
	return opponent, empty
}
