package iologger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/internal/iologger"
	"github.com/gnames/gnnutri/pkg/config"
	"github.com/gnames/gnnutri/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Format: "json", Level: "warn"}
	log := iologger.New(&buf, cfg)

	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Warn("unmatched key", "code", "99")
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "unmatched key", rec["msg"])
	assert.Equal(t, "99", rec["code"])
	assert.Equal(t, "gnnutri", rec["app"])

	buf.Reset()
	cfg = config.LogConfig{Format: "text", Level: "debug"}
	iologger.New(&buf, cfg).Debug("details")
	assert.Contains(t, buf.String(), "msg=details")
}

func TestInitFile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	err := iologger.Init(dir, cfg, false)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, iologger.LogFile))
	require.NoError(t, err)

	err = iologger.Init(filepath.Join(dir, "missing"), cfg, true)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}
