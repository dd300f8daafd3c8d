package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_WriteTextfile(t *testing.T) {
	m := New()
	m.FilesWritten.Add(6)
	m.JobsTotal.Add(180)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.FilesWritten))

	path := filepath.Join(t.TempDir(), "gensub.prom")
	require.NoError(t, m.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.Contains(text, "devotools_gensub_files_written_total 6"), text)
	assert.True(t, strings.Contains(text, "devotools_gensub_jobs_total 180"), text)
	assert.True(t, strings.Contains(text, "devotools_run_duration_seconds"), text)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.PlotsWritten.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.PlotsWritten))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.PlotsWritten))
}
