// internal/daily/daily.go
//
// Word of the day: every player gets the same word on a given UTC date.
// The index into the word list is HMAC-SHA256(salt, YYYY-MM-DD) mod len(list),
// so the sequence cannot be predicted without the salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes give plenty of spread for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Word picks the word of the day from list; "" for an empty list.
func Word(date time.Time, salt string, list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[WordIndex(date, salt, len(list))]
}
