package utils

import "crypto/rand"

const tokenCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTransactionToken returns a fallback transaction id of the form
// DATA_XXXXXXXX (8 uppercase alphanumerics), used when the provider response
// carries no transaction id.
func GenerateTransactionToken() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unreachable; keep a stable shape.
		return "DATA_00000000"
	}
	for i := range b {
		b[i] = tokenCharset[int(b[i])%len(tokenCharset)]
	}
	return "DATA_" + string(b)
}
