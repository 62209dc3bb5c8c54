package sitemap

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.Local)

func fixedClock() time.Time { return fixedNow }

// pagesFs returns an in-memory filesystem holding the given files.
func pagesFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("page"), 0644))
	}
	return fs
}

func readOutput(t *testing.T, fs afero.Fs, name string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, name)
	require.NoError(t, err)
	return string(b)
}
