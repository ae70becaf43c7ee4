package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateUniqueCode builds a human-readable reference like
// PSY-1693526400000-H7K2QX: prefix, millisecond timestamp, six uppercase
// base36 characters. Display and support reference only, never a primary key.
func GenerateUniqueCode(prefix string) string {
	suffix := make([]byte, 6)
	max := big.NewInt(int64(len(codeAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			suffix[i] = codeAlphabet[0]
			continue
		}
		suffix[i] = codeAlphabet[n.Int64()]
	}
	return prefix + "-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + string(suffix)
}
