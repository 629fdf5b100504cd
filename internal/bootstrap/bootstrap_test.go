package bootstrap

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"portfolio/internal/config"
	"portfolio/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithFileSource(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Env: config.EnvProduction},
		Data:    config.DataConfig{Dir: t.TempDir(), Source: config.SourceFile},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}
	rt, err := New(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.Pool)
	assert.NotNil(t, rt.Exporter)
	assert.NotNil(t, rt.Templates.Lookup(web.BookTemplate))
	assert.Equal(t, config.ProductionCacheTTL, rt.Config.CacheTTL())

	// the empty data dir makes every load fail with a load error
	_, err = rt.Loader.Load(context.Background())
	assert.Error(t, err)
}
