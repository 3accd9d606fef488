package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/simplecounter/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// App holds application-wide runtime settings
type App struct {
	Env string
}

// Flags returns CLI flags for application configuration
func (c *App) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "env",
			Usage:       "Runtime environment (development, test, production)",
			Value:       types.EnvDevelopment.String(),
			Destination: &c.Env,
			Sources:     cli.EnvVars("SIMPLECOUNTER_ENV"),
		},
	}
}

// Mode parses the configured runtime environment
func (c *App) Mode() (types.Env, error) {
	env, err := types.ParseEnv(c.Env)
	if err != nil {
		return "", goerr.Wrap(err, "invalid --env")
	}
	return env, nil
}
