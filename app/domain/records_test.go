package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows(t *testing.T) {
	clientID := uuid.New()
	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rows := []Row{
		{
			"id":            clientID.String(),
			"name":          "Acme Ltd",
			"domain":        "acme.test",
			"contact_email": "ops@acme.test",
			"created_at":    created.Format(time.RFC3339),
			"updated_at":    created.Format(time.RFC3339),
		},
		{
			"id":         uuid.New().String(),
			"name":       "Globex",
			"created_at": created.Format(time.RFC3339),
			"updated_at": created.Format(time.RFC3339),
		},
	}

	clients, err := DecodeRows[Client](rows)

	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, clientID, clients[0].ID)
	assert.Equal(t, "Acme Ltd", clients[0].Name)
	require.NotNil(t, clients[0].Domain)
	assert.Equal(t, "acme.test", *clients[0].Domain)
	assert.Equal(t, created, clients[0].CreatedAt)
	assert.Nil(t, clients[1].Domain, "absent columns stay nil")
	assert.Nil(t, clients[1].LogoURL)
}

func TestDecodeRows_InvalidRow(t *testing.T) {
	rows := []Row{
		{"id": "not-a-uuid", "name": "Broken"},
	}

	_, err := DecodeRows[Client](rows)

	assert.Error(t, err)
}

func TestDecodeRows_Empty(t *testing.T) {
	clients, err := DecodeRows[Client](nil)

	require.NoError(t, err)
	assert.Empty(t, clients)
}
