package pagination_test

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/intl_pricing_service/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	fetchedAt := time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := pagination.EncodeToken(fetchedAt, "7d0c6f1e-2a1b-4c55-9a43-3f9e3c1d2b10")
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token must be safe in a query string")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	decodedAt, decodedID, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, fetchedAt.Equal(decodedAt))
	assert.Equal(t, "7d0c6f1e-2a1b-4c55-9a43-3f9e3c1d2b10", decodedID)
}

func TestEncodeToken_NormalisesToUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	fetchedAt := time.Date(2026, 5, 15, 9, 0, 0, 0, tokyo)

	decodedAt, _, err := pagination.DecodeToken(pagination.EncodeToken(fetchedAt, "id"))
	require.NoError(t, err)
	assert.True(t, fetchedAt.Equal(decodedAt))
	assert.Equal(t, time.UTC, decodedAt.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := pagination.DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = pagination.DecodeToken(base64.RawURLEncoding.EncodeToString([]byte("no-separator")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = pagination.DecodeToken(base64.RawURLEncoding.EncodeToString([]byte("2026-05-15T00:00:00Z|")))
	require.Error(t, err)

	_, _, err = pagination.DecodeToken(base64.RawURLEncoding.EncodeToString([]byte("yesterday|abc")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetched_at parse")
}
