package providers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-facade/framework/container"
	"github.com/km-arc/go-facade/framework/logging"
	"github.com/km-arc/go-facade/framework/providers"
)

func TestShared_RunsFactoryOnce(t *testing.T) {
	calls := 0
	f := providers.Shared(func(c *container.Container) (any, error) {
		calls++
		return &struct{ n int }{n: calls}, nil
	})
	c := container.New()
	c.Bind("shared", f)

	a, err := c.Make("shared")
	require.NoError(t, err)
	b, err := c.Make("shared")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
}

func TestShared_CachesError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	f := providers.Shared(func(c *container.Container) (any, error) {
		calls++
		return nil, boom
	})
	c := container.New()
	c.Bind("broken", f)

	_, err1 := c.Make("broken")
	_, err2 := c.Make("broken")

	assert.Same(t, boom, err1)
	assert.Same(t, boom, err2)
	assert.Equal(t, 1, calls)
}

func TestConfigServiceProvider(t *testing.T) {
	t.Setenv("APP_NAME", "ProviderTest")
	c := container.New()
	container.RegisterProviders(c, &providers.ConfigServiceProvider{
		EnvFiles: []string{filepath.Join(t.TempDir(), "none.env")},
	})

	a, err := container.Resolve(c, providers.ConfigKey)
	require.NoError(t, err)
	b, err := container.Resolve(c, providers.ConfigKey)
	require.NoError(t, err)

	assert.Equal(t, "ProviderTest", a.App.Name)
	assert.Same(t, a, b, "config is loaded once")
}

func TestLogServiceProvider_StdoutChannel(t *testing.T) {
	t.Setenv("LOG_CHANNEL", "stdout")
	var buf bytes.Buffer
	c := container.New()
	container.RegisterProviders(c,
		&providers.ConfigServiceProvider{},
		&providers.LogServiceProvider{Out: &buf},
	)

	logger, err := container.Resolve(c, providers.LoggerKey)
	require.NoError(t, err)
	require.NoError(t, logger.Log("Hello Service Provider!"))

	assert.Equal(t, "Hello Service Provider!\n", buf.String())
}

func TestLogServiceProvider_FileChannel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	t.Setenv("LOG_CHANNEL", "file")
	t.Setenv("LOG_PATH", path)
	c := container.New()
	container.RegisterProviders(c,
		&providers.LogServiceProvider{},
		&providers.ConfigServiceProvider{},
	)

	logger, err := container.Resolve(c, providers.LoggerKey)
	require.NoError(t, err)
	require.IsType(t, &logging.FileLogger{}, logger)
	require.NoError(t, logger.Log("to file"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(got), ": to file\n")
}

func TestLogServiceProvider_NewLoggerEachTime(t *testing.T) {
	t.Setenv("LOG_CHANNEL", "stdout")
	c := container.New()
	container.RegisterProviders(c, &providers.ConfigServiceProvider{}, &providers.LogServiceProvider{})

	a, err := container.Resolve(c, providers.LoggerKey)
	require.NoError(t, err)
	b, err := container.Resolve(c, providers.LoggerKey)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
}

func TestLogServiceProvider_ZapChannelShared(t *testing.T) {
	t.Setenv("LOG_CHANNEL", "zap")
	t.Setenv("LOG_LEVEL", "warn")
	c := container.New()
	container.RegisterProviders(c, &providers.ConfigServiceProvider{}, &providers.LogServiceProvider{})

	a, err := container.Resolve(c, providers.LoggerKey)
	require.NoError(t, err)
	b, err := container.Resolve(c, providers.LoggerKey)
	require.NoError(t, err)

	require.IsType(t, &logging.ZapLogger{}, a)
	assert.Same(t, a, b, "zap logger is built once")
}

func TestLogServiceProvider_WithoutConfig(t *testing.T) {
	c := container.New()
	container.RegisterProviders(c, &providers.LogServiceProvider{})

	_, err := container.Resolve(c, providers.LoggerKey)

	var notFound *container.BindingNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "config", notFound.Name)
}

func TestLogServiceProvider_UnknownChannel(t *testing.T) {
	t.Setenv("LOG_CHANNEL", "carrier-pigeon")
	c := container.New()
	container.RegisterProviders(c, &providers.ConfigServiceProvider{}, &providers.LogServiceProvider{})

	_, err := container.Resolve(c, providers.LoggerKey)

	assert.ErrorContains(t, err, `unknown channel "carrier-pigeon"`)
}

func TestRoutingServiceProvider_SharedRouter(t *testing.T) {
	c := container.New()
	container.RegisterProviders(c, &providers.RoutingServiceProvider{Bare: true})

	a, err := container.Resolve(c, providers.RouterKey)
	require.NoError(t, err)
	b, err := container.Resolve(c, providers.RouterKey)
	require.NoError(t, err)

	assert.Same(t, a, b)
}
