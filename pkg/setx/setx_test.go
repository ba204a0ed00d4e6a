package setx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name    string
		current []string
		known   []string
		want    []string
	}{
		{
			name:    "one new symbol",
			current: []string{"BTCUSDT", "ETHUSDT", "SOLUSDT"},
			known:   []string{"BTCUSDT", "ETHUSDT"},
			want:    []string{"SOLUSDT"},
		},
		{
			name:    "nothing new",
			current: []string{"BTCUSDT", "ETHUSDT"},
			known:   []string{"BTCUSDT", "ETHUSDT"},
			want:    []string{},
		},
		{
			name:    "result is sorted",
			current: []string{"ZENUSDT", "AAVEUSDT", "MKRUSDT"},
			known:   []string{},
			want:    []string{"AAVEUSDT", "MKRUSDT", "ZENUSDT"},
		},
		{
			name:    "delisted symbols do not show up",
			current: []string{"BTCUSDT"},
			known:   []string{"BTCUSDT", "LUNAUSDT"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Diff(FromSlice(tt.current), FromSlice(tt.known))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSorted(t *testing.T) {
	s := FromSlice([]string{"b", "a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(s))
	assert.Equal(t, []string{}, Sorted(map[string]struct{}{}))
}
