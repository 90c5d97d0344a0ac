package player

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want      string
		n         int
		total     int
		termWidth int
	}{
		"first of four": {
			n: 1, total: 4, termWidth: 28,
			want: "\n\n[==      ]  25.0%",
		},
		"halfway": {
			n: 5, total: 10, termWidth: 30,
			want: "\n\n[=====     ]  50.0%",
		},
		"complete": {
			n: 3, total: 3, termWidth: 24,
			want: "\n\n[====] 100.0%",
		},
		"past the reported count": {
			n: 12, total: 10, termWidth: 24,
			want: "\n\n[====] 100.0%",
		},
		"unknown count":     {n: 1, total: 0, termWidth: 80},
		"narrow terminal":   {n: 1, total: 4, termWidth: 20},
		"unknown width":     {n: 1, total: 4, termWidth: 0},
		"single bar column": {n: 0, total: 4, termWidth: 21, want: "\n\n[ ]   0.0%"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, progressBar(tc.n, tc.total, tc.termWidth))
		})
	}
}

func TestFitWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 80, fitWidth(80, 0))
	assert.Equal(t, 60, fitWidth(80, 60))
	assert.Equal(t, 40, fitWidth(40, 60))
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	assert.Empty(t, repeat('=', 0))
	assert.Empty(t, repeat('=', -3))
	assert.Equal(t, strings.Repeat("-", 5), repeat('-', 5))
}
