package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

type RoomConnLogger struct {
	zerolog zerolog.Logger
}

func GetRoomConnLogger(connID string, roomID string) RoomConnLogger {
	return RoomConnLogger{log.With().Str("conn-id", connID).Str("room", roomID).Logger()}
}

func (l RoomConnLogger) JoinedRoom() {
	l.zerolog.Info().Msg("Joined room")
}

func (l RoomConnLogger) LeftRoom() {
	l.zerolog.Info().Msg("Left room")
}

func (l RoomConnLogger) Disconnected() {
	l.zerolog.Info().Msg("Disconnected")
}

func (l RoomConnLogger) RoundOver() {
	l.zerolog.Info().Msg("Round over")
}

func (l RoomConnLogger) RemovingRoom() {
	l.zerolog.Info().Msg("Removing room")
}

func LogConnected(connID string, remoteAddr string) {
	log.Info().Str("conn-id", connID).Str("ip", remoteAddr).Msg("Connected")
}

func LogStartedServer(port string) {
	log.Info().Msgf("Starting server on port %v", port)
}

func LogErrorWhileUpgradingHTTP(err error) {
	log.Error().Err(err).Msg("Error while upgrading HTTP")
}
