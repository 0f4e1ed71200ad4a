package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data", "app.db"), ExpandPath("~/data/app.db"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/absolute/path.db", ExpandPath("/absolute/path.db"))
	assert.Equal(t, "", ExpandPath(""))

	t.Setenv("PW_TEST_DIR", "/custom")
	assert.Equal(t, "/custom/app.db", ExpandPath("$PW_TEST_DIR/app.db"))
}

func TestDefaultDatabasePath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	assert.Equal(t, filepath.Join("/xdg/data", "pennywise", "pennywise.db"), DefaultDatabasePath(""))
	assert.Equal(t, filepath.Join("/xdg/data", "pennywise", "pennywise-user42.db"), DefaultDatabasePath("user42"))
}

func TestDefaultDatabasePathWithoutXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	path := DefaultDatabasePath("")
	assert.True(t, strings.HasSuffix(path, filepath.Join("pennywise", "pennywise.db")), "got %s", path)
}
