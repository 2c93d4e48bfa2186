package util

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const runeChars = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	seedOnce sync.Once

	rngMu sync.Mutex
	rng   *rand.Rand
)

func seeded() *rand.Rand {
	seedOnce.Do(func() {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	})
	return rng
}

func RandomString(n int) string {
	var output strings.Builder

	rngMu.Lock()
	defer rngMu.Unlock()

	r := seeded()

	for i := 0; i < n; i++ {
		output.WriteByte(runeChars[r.Intn(len(runeChars))])
	}

	return output.String()
}

// RandomJitter returns a duration in [0, max).
func RandomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}

	rngMu.Lock()
	defer rngMu.Unlock()

	return time.Duration(seeded().Int63n(int64(max)))
}

// Shuffle randomizes s in place.
func Shuffle[T any](s []T) {
	rngMu.Lock()
	defer rngMu.Unlock()

	seeded().Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
}
