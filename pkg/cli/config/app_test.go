package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/simplecounter/pkg/cli/config"
	"github.com/m-mizutani/simplecounter/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func TestApp_Mode(t *testing.T) {
	t.Run("defaults to development", func(t *testing.T) {
		var cfg config.App
		cmd := &cli.Command{
			Name:   "test",
			Flags:  cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error { return nil },
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

		env, err := cfg.Mode()
		gt.NoError(t, err)
		gt.Equal(t, env, types.EnvDevelopment)
	})

	t.Run("reads SIMPLECOUNTER_ENV", func(t *testing.T) {
		t.Setenv("SIMPLECOUNTER_ENV", "production")

		var cfg config.App
		cmd := &cli.Command{
			Name:   "test",
			Flags:  cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error { return nil },
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

		env, err := cfg.Mode()
		gt.NoError(t, err)
		gt.Equal(t, env, types.EnvProduction)
	})

	t.Run("rejects unknown value", func(t *testing.T) {
		cfg := config.App{Env: "staging"}
		_, err := cfg.Mode()
		gt.Error(t, err)
	})
}

func TestSentry_Configure(t *testing.T) {
	t.Run("disabled without DSN", func(t *testing.T) {
		cfg := config.Sentry{}
		gt.False(t, cfg.Enabled())
		gt.NoError(t, cfg.Configure(types.EnvTest))
	})

	t.Run("malformed DSN is an error", func(t *testing.T) {
		cfg := config.Sentry{DSN: "not a dsn"}
		gt.True(t, cfg.Enabled())
		gt.Error(t, cfg.Configure(types.EnvTest))
	})
}
