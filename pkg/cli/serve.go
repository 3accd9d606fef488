package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/simplecounter/pkg/cli/config"
	controller "github.com/m-mizutani/simplecounter/pkg/controller/http"
	"github.com/m-mizutani/simplecounter/pkg/domain/interfaces"
	awsinfra "github.com/m-mizutani/simplecounter/pkg/infra/aws"
	"github.com/m-mizutani/simplecounter/pkg/usecase"
	"github.com/m-mizutani/simplecounter/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		appCfg    config.App
		serverCfg config.Server
		sentryCfg config.Sentry
		awsCfg    = config.LoadAWS(os.LookupEnv)
	)

	var flags []cli.Flag
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, awsCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			env, err := appCfg.Mode()
			if err != nil {
				return err
			}

			logger.Info("Starting simplecounter server",
				slog.String("addr", serverCfg.Addr),
				slog.String("env", env.String()),
				slog.Any("aws", awsCfg),
				slog.Any("sentry", sentryCfg),
			)

			if err := sentryCfg.Configure(env); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			clients, err := awsinfra.NewClients(ctx, env, awsCfg.Model())
			if err != nil {
				return goerr.Wrap(err, "failed to initialize AWS clients")
			}
			logger.Info("AWS clients initialized", slog.Bool("emulated", clients.Emulated))

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				controller.WithAddr(serverCfg.Addr),
				controller.WithAllowedHosts(serverCfg.Hosts(env)),
				controller.WithReadiness(newReadiness(clients, &awsCfg)),
				controller.WithSentry(sentryCfg.Enabled()),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			serveErr := async.Dispatch(ctx, func(ctx context.Context) error {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "HTTP server stopped", goerr.V("addr", serverCfg.Addr))
				}
				return nil
			})

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-serveErr:
				return err
			}

			// Graceful shutdown; ctx may already be cancelled
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// newReadiness probes the counter queue, plus the object store when running
// against LocalStack
func newReadiness(clients *awsinfra.Clients, awsCfg *config.AWS) interfaces.ReadinessUseCase {
	var opts []usecase.ReadinessOption
	if clients.Emulated {
		opts = append(opts, usecase.WithObjectStorage(clients.S3, awsCfg.Endpoint))
	}
	return usecase.NewReadiness(clients.SQS, awsCfg.QueueURL, opts...)
}
