package helper

import (
	"crypto/rand"
	"math/big"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomPassword returns a generated one-time password for provisioned
// accounts. Shown once, the user is asked to change it.
func RandomPassword(length int) string {
	if length <= 0 {
		length = 10
	}
	buf := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back to 'a'
			buf[i] = 'a'
			continue
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf)
}
