// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable ParseFlags reads for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "APP_ENV", "CORS_ORIGIN", "CONFIG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func noDotenv(t *testing.T) string {
	return "-env-file=" + filepath.Join(t.TempDir(), "missing.env")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "file:test.db")

	cfg, err := ParseFlags([]string{noDotenv(t)})
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, DefaultEnv, cfg.Env)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.False(t, cfg.IsProduction())
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("APP_ENV", "production")

	cfg, err := ParseFlags([]string{noDotenv(t)})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.True(t, cfg.IsProduction())
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", noDotenv(t)})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
}

func TestParseFlags_MissingDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := ParseFlags([]string{noDotenv(t)})
	assert.Error(t, err)
}

func TestParseFlags_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "file:test.db")

	_, err := ParseFlags([]string{"-t", "mysql", noDotenv(t)})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-p", "70000", noDotenv(t)})
	assert.Error(t, err)

	t.Setenv("PORT", "abc")
	_, err = ParseFlags([]string{noDotenv(t)})
	assert.Error(t, err)
}

func TestParseFlags_Dotenv(t *testing.T) {
	clearEnv(t)
	envFile := writeFile(t, ".env", "DATABASE_URL=file:dotenv.db\nPORT=7000\n")
	t.Setenv("PORT", "7100")

	cfg, err := ParseFlags([]string{"-env-file", envFile})
	require.NoError(t, err)

	assert.Equal(t, "file:dotenv.db", cfg.DatabaseURL)
	// process environment wins over .env
	assert.Equal(t, 7100, cfg.Port)
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "config.yaml", `
port: 6000
database_url: postgres://yaml
database_type: postgres
cors_origin: https://records.example.org
`)
	t.Setenv("DATABASE_URL", "postgres://env")

	cfg, err := ParseFlags([]string{"-c", path, noDotenv(t)})
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "https://records.example.org", cfg.CORSOrigin)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestParseFlags_BadConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "file:test.db")

	_, err := ParseFlags([]string{"-c", filepath.Join(t.TempDir(), "nope.yaml"), noDotenv(t)})
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "port: [1, 2\n")
	_, err = ParseFlags([]string{"-c", path, noDotenv(t)})
	assert.Error(t, err)
}
