package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testSecret = "whsec_test"

func sign(t *testing.T, payload string) string {
	t.Helper()
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return signed.Header
}

func TestParseEvent(t *testing.T) {
	t.Run("IntentSucceeded", func(t *testing.T) {
		payload := `{
			"id": "evt_1",
			"object": "event",
			"type": "payment_intent.succeeded",
			"data": {"object": {
				"id": "pi_123",
				"object": "payment_intent",
				"amount": 4500,
				"status": "succeeded",
				"metadata": {"bookingId": "12", "paymentType": "Full Payment"}
			}}
		}`

		event, err := ParseEvent([]byte(payload), sign(t, payload), testSecret)
		require.NoError(t, err)
		assert.Equal(t, EventIntentSucceeded, event.Type)
		require.NotNil(t, event.Intent)
		assert.Equal(t, "pi_123", event.Intent.ID)
		assert.EqualValues(t, 4500, event.Intent.AmountCents)
		assert.Equal(t, "12", event.Intent.Metadata["bookingId"])
	})

	t.Run("OtherEventHasNoIntent", func(t *testing.T) {
		payload := `{"id":"evt_2","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge"}}}`
		event, err := ParseEvent([]byte(payload), sign(t, payload), testSecret)
		require.NoError(t, err)
		assert.Equal(t, "charge.refunded", event.Type)
		assert.Nil(t, event.Intent)
	})

	t.Run("BadSignature", func(t *testing.T) {
		payload := `{"id":"evt_3","object":"event","type":"payment_intent.succeeded","data":{"object":{}}}`
		_, err := ParseEvent([]byte(payload), "t=1,v1=deadbeef", testSecret)
		assert.Error(t, err)
	})
}
