//go:build unit

package credential_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"hotel-booking-api/internal/domain/credential"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	t.Run("encodes exactly the keys scanners expect", func(t *testing.T) {
		userID := uuid.New()
		bookingID := uuid.New()

		data, err := credential.Payload{UserID: userID, BookingID: bookingID}.Encode()
		require.NoError(t, err)

		var raw map[string]string
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Len(t, raw, 2)
		assert.Equal(t, userID.String(), raw["user_id"])
		assert.Equal(t, bookingID.String(), raw["booking_id"])
	})

	t.Run("round-trips", func(t *testing.T) {
		original := credential.Payload{UserID: uuid.New(), BookingID: uuid.New()}

		data, err := original.Encode()
		require.NoError(t, err)

		decoded, err := credential.DecodePayload(data)
		require.NoError(t, err)
		assert.Equal(t, original, decoded)
	})

	t.Run("rejects malformed data", func(t *testing.T) {
		_, err := credential.DecodePayload([]byte("not json"))
		assert.Error(t, err)

		_, err = credential.DecodePayload([]byte(`{"user_id":"nope"}`))
		assert.Error(t, err)
	})

	t.Run("decodes hand-built scanner input", func(t *testing.T) {
		userID, bookingID := uuid.New(), uuid.New()
		data := fmt.Sprintf(`{"user_id":%q,"booking_id":%q}`, userID, bookingID)

		decoded, err := credential.DecodePayload([]byte(data))
		require.NoError(t, err)
		assert.Equal(t, userID, decoded.UserID)
		assert.Equal(t, bookingID, decoded.BookingID)
	})
}
