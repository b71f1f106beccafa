package cmd

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"testindex/internal/domain"
)

func TestCheckCmd(t *testing.T) {
	t.Run("stale target fails with diff", func(t *testing.T) {
		sourcesDir, targetFile := newCLIProject(t, "x.md")

		output, err := runCLI(t, "check", "--sources-dir", sourcesDir, "--target-file", targetFile)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrOutOfDate))
		assert.Contains(t, output, `+    x: "sources/x.md",`)
		assert.Contains(t, output, "out of date")

		// check never writes.
		content, err := os.ReadFile(targetFile)
		require.NoError(t, err)
		assert.Equal(t, testTargetTemplate, string(content))
	})

	t.Run("fresh target passes", func(t *testing.T) {
		sourcesDir, targetFile := newCLIProject(t, "x.md")

		_, err := runCLI(t, "generate", "--sources-dir", sourcesDir, "--target-file", targetFile)
		require.NoError(t, err)

		output, err := runCLI(t, "check", "--sources-dir", sourcesDir, "--target-file", targetFile)
		require.NoError(t, err)
		assert.Contains(t, output, "up to date")
	})

	t.Run("target without markers fails", func(t *testing.T) {
		sourcesDir, targetFile := newCLIProject(t, "x.md")
		require.NoError(t, os.WriteFile(targetFile, []byte("no markers\n"), 0o644))

		_, err := runCLI(t, "check", "--sources-dir", sourcesDir, "--target-file", targetFile)
		require.Error(t, err)
		require.True(t, errors.Is(err, domain.ErrMarkerNotFound))
	})
}
