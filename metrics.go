package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictactoe_connections_active",
		Help: "Open websocket connections.",
	})
	metricRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictactoe_rooms_active",
		Help: "Rooms currently held in memory.",
	})
	metricMoves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictactoe_moves_accepted_total",
		Help: "Moves that passed validation and were applied.",
	})
	metricRounds = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_rounds_finished_total",
		Help: "Rounds that reached a terminal state.",
	}, []string{"result"})
)
