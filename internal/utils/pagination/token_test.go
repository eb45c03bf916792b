package pagination_test

import (
	"testing"
	"time"

	"github.com/MboaHealth/hospital_admin_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	recordDate := time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 5, 17, 10, 32, 45, 123456789, time.UTC)

	token := pagination.EncodeToken(recordDate, createdAt)
	require.NotEmpty(t, token)

	gotDate, gotCreated, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, recordDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_InvalidBase64(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeToken_MissingSeparator(t *testing.T) {
	// Valid base64 but no separator inside
	_, _, err := pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}
