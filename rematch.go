package main

import "sync"

// RematchCoordinator tracks which connections asked for a rematch in the
// current round. The board reset itself happens on the Room; this only
// answers "have both agreed yet".
type RematchCoordinator struct {
	pending map[string]map[string]struct{} // roomID -> set of connIDs
	lock    sync.Mutex
}

func NewRematchCoordinator() *RematchCoordinator {
	return &RematchCoordinator{pending: make(map[string]map[string]struct{})}
}

// Request adds a connection to the room's pending set. Re-requesting is
// idempotent. agreed is true once two distinct connections have asked.
func (c *RematchCoordinator) Request(roomID, connID string) (agreed bool) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if _, ok := c.pending[roomID]; !ok {
		c.pending[roomID] = make(map[string]struct{})
	}
	c.pending[roomID][connID] = struct{}{}
	return len(c.pending[roomID]) == 2
}

// Remove withdraws a single connection's request, used when it leaves the
// room mid-window so a later joiner cannot trigger a stale rematch.
func (c *RematchCoordinator) Remove(roomID, connID string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.pending[roomID], connID)
}

// Clear empties a room's pending set: a rematch fired, a player quit, or
// the room itself went away.
func (c *RematchCoordinator) Clear(roomID string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	delete(c.pending, roomID)
}

// PendingCount reports how many distinct connections are waiting.
func (c *RematchCoordinator) PendingCount(roomID string) int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.pending[roomID])
}
