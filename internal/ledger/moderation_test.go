package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRemove(t *testing.T) {
	tests := []struct {
		name        string
		reportCount int64
		likeCount   int64
		removed     bool
		reason      string
	}{
		{"no activity", 0, 0, false, ""},
		{"few reports, no likes", 2, 0, false, ""},
		{"moderate reports on unengaged post", 3, 0, true, RemovalReasonUnengaged},
		{"absolute threshold", 5, 0, true, RemovalReasonThreshold},
		{"absolute threshold beats engagement", 5, 100, true, RemovalReasonThreshold},
		{"ratio reached", 4, 2, true, RemovalReasonRatio},
		{"ratio not reached", 3, 2, false, ""},
		{"likes absorb reports", 4, 3, false, ""},
		{"single report, single like", 2, 1, true, RemovalReasonRatio},
		{"one report never removes liked post", 1, 1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed, reason := ShouldRemove(tt.reportCount, tt.likeCount)
			assert.Equal(t, tt.removed, removed)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

// The classification is a pure read-time rule: calling it twice with the same
// counts must agree, regardless of order.
func TestShouldRemoveIsPure(t *testing.T) {
	first, reasonFirst := ShouldRemove(4, 2)
	second, reasonSecond := ShouldRemove(4, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, reasonFirst, reasonSecond)
}
