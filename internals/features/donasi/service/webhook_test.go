package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(orderID, statusCode, grossAmount, key string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + key))
	return hex.EncodeToString(sum[:])
}

func validBody(key string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":           "DONASI-abc",
		"transaction_status": "settlement",
		"status_code":        "200",
		"gross_amount":       "100000.00",
		"signature_key":      signPayload("DONASI-abc", "200", "100000.00", key),
	}
}

func TestSignatureValid(t *testing.T) {
	key := "SB-Mid-server-test"

	t.Run("signature benar", func(t *testing.T) {
		assert.True(t, signatureValid(validBody(key), key))
	})

	t.Run("server key beda", func(t *testing.T) {
		assert.False(t, signatureValid(validBody(key), "key-lain"))
	})

	t.Run("gross_amount diubah", func(t *testing.T) {
		body := validBody(key)
		body["gross_amount"] = "999999.00"
		assert.False(t, signatureValid(body, key))
	})

	t.Run("signature kosong", func(t *testing.T) {
		body := validBody(key)
		delete(body, "signature_key")
		assert.False(t, signatureValid(body, key))
	})
}

// Signature palsu harus ditolak SEBELUM menyentuh database (db sengaja nil).
func TestHandleDonasiStatusWebhookSignaturePalsu(t *testing.T) {
	prev := serverKey
	serverKey = "SB-Mid-server-test"
	defer func() { serverKey = prev }()

	body := validBody("key-penyerang")
	err := HandleDonasiStatusWebhook(nil, body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "signature webhook tidak valid")
}

func TestHandleDonasiStatusWebhookPayloadKosong(t *testing.T) {
	err := HandleDonasiStatusWebhook(nil, map[string]interface{}{})
	assert.Error(t, err)
}
