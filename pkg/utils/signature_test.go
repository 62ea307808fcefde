package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "checksum-secret"

func TestVerifyPaymentSignature_RoundTrip(t *testing.T) {
	sig := SignPayment(testSecret, "order_abc", "pay_xyz")
	assert.True(t, VerifyPaymentSignature(testSecret, "order_abc", "pay_xyz", sig))
}

func TestVerifyPaymentSignature_AnyByteMutationFails(t *testing.T) {
	sig := SignPayment(testSecret, "order_abc", "pay_xyz")

	for i := 0; i < len(sig); i++ {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.False(t, VerifyPaymentSignature(testSecret, "order_abc", "pay_xyz", string(mutated)),
			"mutation at byte %d should fail verification", i)
	}
}

func TestVerifyPaymentSignature_MutatedInputsFail(t *testing.T) {
	sig := SignPayment(testSecret, "order_abc", "pay_xyz")

	assert.False(t, VerifyPaymentSignature(testSecret, "order_abd", "pay_xyz", sig))
	assert.False(t, VerifyPaymentSignature(testSecret, "order_abc", "pay_xyw", sig))
	assert.False(t, VerifyPaymentSignature("other-secret", "order_abc", "pay_xyz", sig))
}

func TestVerifyPaymentSignature_WrongLengthNeverPanics(t *testing.T) {
	require.NotPanics(t, func() {
		assert.False(t, VerifyPaymentSignature(testSecret, "order_abc", "pay_xyz", ""))
		assert.False(t, VerifyPaymentSignature(testSecret, "order_abc", "pay_xyz", "deadbeef"))
		assert.False(t, VerifyPaymentSignature(testSecret, "order_abc", "pay_xyz",
			SignPayment(testSecret, "order_abc", "pay_xyz")+"00"))
	})
}

func TestSignPayment_Deterministic(t *testing.T) {
	a := SignPayment(testSecret, "order_abc", "pay_xyz")
	b := SignPayment(testSecret, "order_abc", "pay_xyz")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // hex-encoded SHA-256
}
