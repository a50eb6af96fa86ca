package main

import (
	"fmt"
	"sync"
)

type ScoreRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// ScoreLedger keeps per-room, per-connection win/loss tallies. Records live
// exactly as long as their room; a rejoin under a new connection id starts
// from zero.
type ScoreLedger struct {
	records map[string]map[string]*ScoreRecord // roomID -> connID -> record
	lock    sync.Mutex
}

func NewScoreLedger() *ScoreLedger {
	return &ScoreLedger{records: make(map[string]map[string]*ScoreRecord)}
}

// Ensure zero-initializes a record if absent and returns the current value.
func (l *ScoreLedger) Ensure(roomID, connID string) ScoreRecord {
	l.lock.Lock()
	defer l.lock.Unlock()
	if _, ok := l.records[roomID]; !ok {
		l.records[roomID] = make(map[string]*ScoreRecord)
	}
	if _, ok := l.records[roomID][connID]; !ok {
		l.records[roomID][connID] = &ScoreRecord{}
	}
	return *l.records[roomID][connID]
}

func (l *ScoreLedger) Get(roomID, connID string) (ScoreRecord, bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if rec, ok := l.records[roomID][connID]; ok {
		return *rec, true
	}
	return ScoreRecord{}, false
}

// RecordOutcome applies a finished round. A draw is a no-op and returns nil.
// On a decisive round both players must already hold records (they were
// created at join time); a missing one is a broken invariant, not a case to
// swallow.
func (l *ScoreLedger) RecordOutcome(roomID, winner string, players []Player) map[string]ScoreRecord {
	if winner == "" {
		return nil
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	updated := make(map[string]ScoreRecord, len(players))
	for _, p := range players {
		rec, ok := l.records[roomID][p.ConnID]
		if !ok {
			panic(fmt.Sprintf("score record missing for %s in room %s", p.ConnID, roomID))
		}
		if p.Symbol == winner {
			rec.Wins++
		} else {
			rec.Losses++
		}
		updated[p.ConnID] = *rec
	}
	return updated
}

// Drop deletes every record of a room.
func (l *ScoreLedger) Drop(roomID string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	delete(l.records, roomID)
}
