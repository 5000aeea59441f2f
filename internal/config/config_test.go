package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "data/internships.json", cfg.CatalogPath)
	require.Equal(t, "data/user.json", cfg.ProfilePath)
	require.Equal(t, "text-embedding-3-small", cfg.EmbeddingsModel)
	require.Equal(t, "grok-2-latest", cfg.XAIModel)
	require.Equal(t, 60*time.Second, cfg.ChatTimeout)
	require.Equal(t, 100, cfg.RecCacheSize)
	require.True(t, cfg.IsDev())
	require.False(t, cfg.IsProd())
}

func Test_Load_ProviderFlags(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("XAI_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.False(t, cfg.EmbeddingsEnabled())
	require.False(t, cfg.ChatEnabled())

	t.Setenv("XAI_API_KEY", "xk")
	cfg, err = Load()
	require.NoError(t, err)
	require.False(t, cfg.EmbeddingsEnabled())
	require.True(t, cfg.ChatEnabled())

	t.Setenv("OPENAI_API_KEY", "ok")
	cfg, err = Load()
	require.NoError(t, err)
	require.True(t, cfg.EmbeddingsEnabled())
	require.True(t, cfg.ChatEnabled())
}
