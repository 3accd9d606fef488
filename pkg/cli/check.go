package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/simplecounter/pkg/cli/config"
	awsinfra "github.com/m-mizutani/simplecounter/pkg/infra/aws"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		appCfg config.App
		awsCfg = config.LoadAWS(os.LookupEnv)
	)

	flags := append(appCfg.Flags(), awsCfg.Flags()...)

	return &cli.Command{
		Name:  "check",
		Usage: "Check connectivity to the counter queue and LocalStack",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			env, err := appCfg.Mode()
			if err != nil {
				return err
			}

			clients, err := awsinfra.NewClients(ctx, env, awsCfg.Model())
			if err != nil {
				return goerr.Wrap(err, "failed to initialize AWS clients")
			}

			report := newReadiness(clients, &awsCfg).Check(ctx)

			w := c.Root().Writer
			pass := color.New(color.FgGreen, color.Bold)
			fail := color.New(color.FgRed, color.Bold)
			for _, check := range report.Checks {
				if check.OK {
					_, _ = pass.Fprint(w, "[ OK ] ")
					_, _ = fmt.Fprintf(w, "%-15s %s\n", check.Name, check.Target)
				} else {
					_, _ = fail.Fprint(w, "[FAIL] ")
					_, _ = fmt.Fprintf(w, "%-15s %s: %s\n", check.Name, check.Target, check.Error)
				}
			}

			if !report.Ready() {
				return goerr.New("connectivity check failed", goerr.V("status", report.Status))
			}
			return nil
		},
	}
}
