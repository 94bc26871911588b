package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/point-exchange/internal/domain/entity"
	"github.com/amirhossein-jamali/point-exchange/internal/domain/usecase/balance"
)

func TestLoadConfig(t *testing.T) {
	// Config paths are resolved relative to the working directory, so run
	// from the module root where configs/ lives.
	// t.Chdir needs Go 1.24; do the equivalent manually on older toolchains.
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir("../../.."))
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	t.Setenv("PX_ENV", "test")

	t.Run("should load the test environment file", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, Test, cfg.Environment)
		assert.NotEmpty(t, cfg.Database.Database)
		assert.NotZero(t, cfg.Server.Port)
	})

	t.Run("should resolve a coefficient for every game despite key folding", func(t *testing.T) {
		// Viper lowercases map keys, so the loaded table must still serve
		// lookups by the canonical game names events carry.
		cfg, err := LoadConfig()
		require.NoError(t, err)

		provider, err := balance.NewCoefficientProvider(cfg.Games.Coefficients)
		require.NoError(t, err)

		expected := map[string]int64{
			entity.GameGDCards: 2,
			entity.GameBunker:  20,
			entity.GameMafia:   15,
			entity.GameQuiz:    5,
			entity.GameCasino:  1,
			entity.GameKarma:   10,
		}
		for game, want := range expected {
			coefficient, err := provider.Coefficient(game)
			require.NoError(t, err, "game %q", game)
			assert.Equal(t, want, coefficient, "game %q", game)
		}
	})

	t.Run("should let environment variables override database settings", func(t *testing.T) {
		t.Setenv("PX_DB_HOST", "db.internal")
		t.Setenv("PX_DB_NAME", "pointexchange_ci")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "pointexchange_ci", cfg.Database.Database)
	})
}
