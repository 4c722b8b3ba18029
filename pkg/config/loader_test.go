package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusksociety/dsm/pkg/config"
	"github.com/dusksociety/dsm/pkg/records"
)

type TestConfigSuccess struct {
	TestString string   `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int      `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestList   []string `env:"TEST_LIST_SUCCESS" envDefault:"a,b"`
}

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigCached struct {
	Value string `env:"TEST_VALUE_CACHED" envDefault:"first"`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

type EnvFileConfig struct {
	Value string `env:"TEST_ENV_FILE_VALUE"`
}

func TestLoad_Success(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_LIST_SUCCESS", "x,y,z")

	var cfg TestConfigSuccess
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, []string{"x", "y", "z"}, cfg.TestList)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(config.Reset)
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.TestString)
	assert.True(t, cfg.TestBool)
}

func TestLoad_Cached(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Setenv("TEST_VALUE_CACHED", "first")

	var cfg TestConfigCached
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "first", cfg.Value)

	t.Setenv("TEST_VALUE_CACHED", "second")
	var again TestConfigCached
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first", again.Value, "config is parsed once per type")

	config.Reset()
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "second", again.Value)
}

func TestLoad_Concurrent(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Setenv("TEST_VALUE_CACHED", "shared")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg TestConfigCached
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, "shared", cfg.Value)
		}()
	}
	wg.Wait()
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Cleanup(config.Reset)
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigDefault
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad(t *testing.T) {
	t.Cleanup(config.Reset)
	os.Unsetenv("REQUIRED_VALUE")

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Cleanup(config.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("TEST_ENV_FILE_VALUE=from_file\n"), 0o600))
	t.Setenv("TEST_ENV_FILE_VALUE", "")
	os.Unsetenv("TEST_ENV_FILE_VALUE")

	require.NoError(t, config.LoadEnv(path))

	var cfg EnvFileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnvFile)
}

func TestLoad_RecordsConfig(t *testing.T) {
	t.Cleanup(config.Reset)
	t.Setenv("DSM_URL_SCHEMES", "https")

	var cfg records.Config
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, []string{"https"}, cfg.URLSchemes)
}
