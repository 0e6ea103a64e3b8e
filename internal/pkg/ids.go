package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for a game.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
