package jobfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_Success tests parsing a well-formed job file and the assignment
// of unique job IDs.
func TestParse_Success(t *testing.T) {
	t.Parallel()

	data := []byte(`
jobs:
  - op: copy
    src: hdfs://namenode:9000/data/input.csv
    dst: file:///tmp/input.csv
    verify: true
  - op: move
    src: /staging/part-0001
    dst: /warehouse/part-0001
`)

	jobs, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "copy", jobs[0].Op)
	assert.Equal(t, "hdfs://namenode:9000/data/input.csv", jobs[0].Src)
	assert.Equal(t, "file:///tmp/input.csv", jobs[0].Dst)
	assert.True(t, jobs[0].Verify)

	assert.Equal(t, "move", jobs[1].Op)
	assert.False(t, jobs[1].Verify)

	assert.NotEmpty(t, jobs[0].ID)
	assert.NotEmpty(t, jobs[1].ID)
	assert.NotEqual(t, jobs[0].ID, jobs[1].ID)
}

// TestParse_Fail_Table tests the validation failure modes.
func TestParse_Fail_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty file",
			data:    "",
			wantErr: ErrNoJobs,
		},
		{
			name:    "no jobs",
			data:    "jobs: []\n",
			wantErr: ErrNoJobs,
		},
		{
			name:    "null entry",
			data:    "jobs:\n  -\n  - op: copy\n    src: /a\n    dst: /b\n",
			wantErr: ErrEmptyJob,
		},
		{
			name:    "unknown op",
			data:    "jobs:\n  - op: sync\n    src: /a\n    dst: /b\n",
			wantErr: ErrInvalidOp,
		},
		{
			name:    "missing src",
			data:    "jobs:\n  - op: copy\n    dst: /b\n",
			wantErr: ErrMissingURI,
		},
		{
			name:    "missing dst",
			data:    "jobs:\n  - op: move\n    src: /a\n",
			wantErr: ErrMissingURI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jobs, err := Parse([]byte(tt.data))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, jobs)
		})
	}
}

// TestParse_Fail_Malformed tests that malformed YAML fails to parse.
func TestParse_Fail_Malformed(t *testing.T) {
	t.Parallel()

	jobs, err := Parse([]byte("jobs: {not valid"))
	require.Error(t, err)
	assert.Nil(t, jobs)
}

// TestLoad_Success tests loading a job file from disk.
func TestLoad_Success(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs:\n  - op: copy\n    src: /a\n    dst: /b\n"), 0o600))

	jobs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "copy", jobs[0].Op)
}

// TestLoad_Fail_MissingFile tests loading a non-existent job file.
func TestLoad_Fail_MissingFile(t *testing.T) {
	t.Parallel()

	jobs, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
	assert.Nil(t, jobs)
}
