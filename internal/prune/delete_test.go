package prune

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingRemover records every path it is asked to remove and fails for paths in fail.
type recordingRemover struct {
	removed []string
	fail    map[string]error
}

func (r *recordingRemover) Remove(path string) error {
	if err, ok := r.fail[path]; ok {
		return err
	}

	r.removed = append(r.removed, path)

	return os.Remove(path)
}

// deletionFixture creates n files of 10 bytes each.
func deletionFixture(t *testing.T, n int) []string {
	t.Helper()

	root := t.TempDir()
	files := make([]string, 0, n)

	for i := 0; i < n; i++ {
		path := filepath.Join(root, string(rune('a'+i))+".tmp")
		writeFile(t, path, 10)
		files = append(files, path)
	}

	return files
}

func TestDelete(t *testing.T) {
	files := deletionFixture(t, 3)

	outcome := Delete(files, Options{BatchSize: DefaultBatchSize}, OSRemover{}, Hooks{})

	assert.Equal(t, 3, outcome.Deleted)
	assert.Equal(t, int64(30), outcome.DeletedBytes)
	assert.Empty(t, outcome.Failures)

	for _, path := range files {
		assert.NoFileExists(t, path)
	}
}

func TestDeleteDryRunMatchesRealRun(t *testing.T) {
	files := deletionFixture(t, 5)
	remover := &recordingRemover{}

	dry := Delete(files, Options{DryRun: true, BatchSize: 2}, remover, Hooks{})

	assert.Empty(t, remover.removed)

	for _, path := range files {
		assert.FileExists(t, path)
	}

	applied := Delete(files, Options{BatchSize: 2}, remover, Hooks{})

	assert.Equal(t, dry, applied)
	assert.Equal(t, files, remover.removed)
}

func TestDeleteFailuresContinue(t *testing.T) {
	files := deletionFixture(t, 5)

	// One file disappears out of band, another cannot be removed.
	require.NoError(t, os.Remove(files[1]))

	remover := &recordingRemover{fail: map[string]error{files[3]: os.ErrPermission}}

	var notified []Failure

	outcome := Delete(files, Options{BatchSize: DefaultBatchSize}, remover, Hooks{
		Failure: func(f Failure) { notified = append(notified, f) },
	})

	assert.Equal(t, 3, outcome.Deleted)
	assert.Equal(t, int64(30), outcome.DeletedBytes)
	require.Len(t, outcome.Failures, 2)
	assert.Equal(t, files[1], outcome.Failures[0].Path)
	assert.Equal(t, files[3], outcome.Failures[1].Path)
	assert.Equal(t, os.ErrPermission.Error(), outcome.Failures[1].Err)
	assert.Equal(t, outcome.Failures, notified)
	assert.FileExists(t, files[3])
}

func TestDeleteProgress(t *testing.T) {
	files := deletionFixture(t, 7)
	remover := &recordingRemover{fail: map[string]error{files[3]: errors.New("boom")}}

	type tick struct{ done, total int }

	var ticks []tick

	Delete(files, Options{BatchSize: 2}, remover, Hooks{
		Progress: func(done, total int) { ticks = append(ticks, tick{done, total}) },
	})

	assert.Equal(t, []tick{{2, 7}, {4, 7}, {6, 7}}, ticks)
}

func TestDeleteEmpty(t *testing.T) {
	outcome := Delete(nil, Options{BatchSize: DefaultBatchSize}, nil, Hooks{})

	assert.Equal(t, Outcome{}, outcome)
}
