package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_OverlaysSetFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"listen_addr": ":5000",
		"access_token_secret": "json-access",
		"access_token_ttl": "10m",
		"secure_cookies": true
	}`)

	origArgs := os.Args
	os.Args = []string{"test", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	c := validConfig()
	require.NoError(t, parseJson(c))

	assert.Equal(t, ":5000", c.ListenAddr)
	assert.Equal(t, "json-access", c.AccessTokenSecret)
	assert.Equal(t, 10*time.Minute, c.AccessTokenValidityDuration)
	assert.True(t, c.SecureCookies)
	// untouched fields keep their previous values
	assert.Equal(t, "refresh-secret", c.RefreshTokenSecret)
}

func TestParseJson_InvalidFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	os.Args = []string{"test", "-config", path}
	t.Cleanup(func() { os.Args = origArgs })

	c := validConfig()
	require.Error(t, parseJson(c))
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"test"}
	t.Cleanup(func() { os.Args = origArgs })

	c := validConfig()
	require.NoError(t, parseJson(c))
	assert.Equal(t, ":4000", c.ListenAddr)
}
