package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/simplecounter/pkg/cli/config"
	"github.com/m-mizutani/simplecounter/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, nil)
}

// run writes command output and logs to w, or stdout when w is nil
func run(ctx context.Context, args []string, w io.Writer) error {
	loggerCfg := config.Logger{Writer: w}
	var logger *slog.Logger

	out := w
	if out == nil {
		out = os.Stdout
	}

	app := &cli.Command{
		Name:    "simplecounter",
		Usage:   "Counter service with health check and SQS/LocalStack wiring",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Writer:  out,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdCheck(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
