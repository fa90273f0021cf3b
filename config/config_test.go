package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dialogue-pipeline", conf.Pipeline.Name)
	assert.Equal(t, "info", conf.Pipeline.LogLvl)
	assert.Equal(t, "transcript", conf.Corpus.Genre)
	assert.False(t, conf.Parser.LeaveExisting)
	assert.Equal(t, 60*time.Second, conf.Parser.Timeout())
	assert.Equal(t, "outputs", conf.Paths.Outputs)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	body := `
pipeline:
  log_level: debug
corpus:
  genre: tutoring
parser:
  url: http://localhost:9000
  timeout: 5
  leave_existing: true
paths:
  data: /srv/transcripts
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	chdir(t, dir)

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.Pipeline.LogLvl)
	assert.Equal(t, "tutoring", conf.Corpus.Genre)
	assert.Equal(t, "http://localhost:9000", conf.Parser.URL)
	assert.Equal(t, 5*time.Second, conf.Parser.Timeout())
	assert.True(t, conf.Parser.LeaveExisting)
	assert.Equal(t, "/srv/transcripts", conf.Paths.Data)
	assert.Equal(t, "dialogue-pipeline", conf.Pipeline.Name, "unset keys keep defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CORPUS_CORPUS_GENRE", "meeting")

	conf, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "meeting", conf.Corpus.Genre)
}
