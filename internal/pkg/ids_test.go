package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: generating two ids
	first := GenerateGameID()
	second := GenerateGameID()

	// Then: both are valid and distinct uuids
	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestGenerateNewSessionID(t *testing.T) {
	assert.NotEmpty(t, GenerateNewSessionID())
	assert.NotEqual(t, GenerateNewSessionID(), GenerateNewSessionID())
}
