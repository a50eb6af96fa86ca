package main

import (
	"encoding/json"
	"net"
	"testing"

	"github.com/gobwas/ws/wsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGameStart(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		sock := NewPlayerSocket(server)
		sock.SendGameStart("X")
		server.Close()
	}()
	data, err := wsutil.ReadServerText(client)
	require.NoError(t, err)
	var parsed GameStartMessage
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, "gameStart", parsed.Type)
	assert.Equal(t, "X", parsed.Symbol)
	client.Close()
}

func TestSendGameOver(t *testing.T) {
	t.Run("decisive", func(t *testing.T) {
		client, server := net.Pipe()
		go func() {
			NewPlayerSocket(server).SendGameOver("O")
			server.Close()
		}()
		data, err := wsutil.ReadServerText(client)
		require.NoError(t, err)
		var parsed GameOverMessage
		require.NoError(t, json.Unmarshal(data, &parsed))
		require.NotNil(t, parsed.Winner)
		assert.Equal(t, "O", *parsed.Winner)
		client.Close()
	})

	t.Run("draw sends null winner", func(t *testing.T) {
		client, server := net.Pipe()
		go func() {
			NewPlayerSocket(server).SendGameOver("")
			server.Close()
		}()
		data, err := wsutil.ReadServerText(client)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"gameOver","winner":null}`, string(data))
		client.Close()
	})
}

func TestSendScoreUpdate(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		NewPlayerSocket(server).SendScoreUpdate(ScoreRecord{Wins: 2, Losses: 1})
		server.Close()
	}()
	data, err := wsutil.ReadServerText(client)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"scoreUpdate","wins":2,"losses":1}`, string(data))
	client.Close()
}

func TestReadMessage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected any
	}{
		{
			name:     "joinGame",
			raw:      `{"type":"joinGame","gameId":"r1"}`,
			expected: JoinGameMessage{GameID: "r1"},
		},
		{
			name:     "makeMove",
			raw:      `{"type":"makeMove","gameId":"r1","index":4,"symbol":"X"}`,
			expected: MakeMoveMessage{GameID: "r1", Index: 4, Symbol: "X"},
		},
		{
			name:     "requestRematch",
			raw:      `{"type":"requestRematch","gameId":"r1"}`,
			expected: RequestRematchMessage{GameID: "r1"},
		},
		{
			name:     "quitGame",
			raw:      `{"type":"quitGame","gameId":"r1"}`,
			expected: QuitGameMessage{GameID: "r1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server := net.Pipe()
			go func() {
				wsutil.WriteClientText(client, []byte(tt.raw))
			}()
			msg, err := NewPlayerSocket(server).ReadMessage()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, msg)
			client.Close()
			server.Close()
		})
	}
}

func TestReadMessageUndefinedType(t *testing.T) {
	client, server := net.Pipe()
	go func() {
		wsutil.WriteClientText(client, []byte(`{"type":"teleport"}`))
	}()
	_, err := NewPlayerSocket(server).ReadMessage()
	assert.ErrorIs(t, err, ErrUndefinedType)
	client.Close()
	server.Close()
}
