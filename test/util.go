package test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func Diff(t *testing.T, title string, vExpect, vCurrent interface{}) {
	if diff := cmp.Diff(vExpect, vCurrent); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", title, diff)
	}
}

// Eventually polls cond until it returns true or the timeout passes.
func Eventually(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if cond() {
			return true
		}

		time.Sleep(time.Millisecond * 10)
	}

	return false
}
