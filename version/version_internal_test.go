package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevision(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		want     string
		settings []debug.BuildSetting
	}{
		"no settings": {want: "unknown"},
		"clean": {
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "false"},
			},
			want: "abc123",
		},
		"dirty": {
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: "abc123-dirty",
		},
		"modified without revision": {
			settings: []debug.BuildSetting{{Key: "vcs.modified", Value: "true"}},
			want:     "unknown-dirty",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, revision(tc.settings))
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	s := String()

	if Version == "" {
		assert.Contains(t, s, devVersion+" (rev ")
	} else {
		assert.Contains(t, s, Version+" (rev ")
	}

	assert.Contains(t, s, GoVersion)
	assert.Contains(t, s, Platform)
}
