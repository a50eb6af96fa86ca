package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRematchRequest(t *testing.T) {
	coordinator := NewRematchCoordinator()

	assert.False(t, coordinator.Request("r1", "a"))
	assert.Equal(t, 1, coordinator.PendingCount("r1"))

	// re-requesting has no additional effect
	assert.False(t, coordinator.Request("r1", "a"))
	assert.Equal(t, 1, coordinator.PendingCount("r1"))

	assert.True(t, coordinator.Request("r1", "b"))
}

func TestRematchRoomsAreIndependent(t *testing.T) {
	coordinator := NewRematchCoordinator()

	coordinator.Request("r1", "a")
	assert.False(t, coordinator.Request("r2", "b"))
}

func TestRematchRemove(t *testing.T) {
	coordinator := NewRematchCoordinator()

	coordinator.Request("r1", "a")
	coordinator.Remove("r1", "a")
	assert.Equal(t, 0, coordinator.PendingCount("r1"))

	// a fresh pair must still be needed after the withdrawal
	assert.False(t, coordinator.Request("r1", "c"))
}

func TestRematchClear(t *testing.T) {
	coordinator := NewRematchCoordinator()

	coordinator.Request("r1", "a")
	coordinator.Request("r1", "b")
	coordinator.Clear("r1")

	assert.Equal(t, 0, coordinator.PendingCount("r1"))
	assert.False(t, coordinator.Request("r1", "a"))
}
