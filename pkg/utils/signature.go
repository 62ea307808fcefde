package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignPayment computes the hex HMAC-SHA256 of "orderId|paymentId" with the
// gateway checksum secret. This is the signature the gateway attaches to a
// completed checkout.
func SignPayment(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(gatewayOrderID + "|" + gatewayPaymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature reports whether the supplied signature matches the
// expected HMAC for the order/payment pair. A signature of the wrong length
// returns false; the comparison itself is constant-time.
func VerifyPaymentSignature(secret, gatewayOrderID, gatewayPaymentID, signature string) bool {
	expected := SignPayment(secret, gatewayOrderID, gatewayPaymentID)
	if len(signature) != len(expected) {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}
