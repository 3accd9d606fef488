package config

import (
	"github.com/m-mizutani/simplecounter/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// DevelopmentHosts is the host allow-list applied in development when no
// --allowed-host is given. Any IPv4 or IPv6 literal is admitted.
var DevelopmentHosts = []string{
	"0.0.0.0/0",
	"::/0",
	"localhost",
	"*.localhost",
	"rails-dev",
	"*.localstack.cloud",
}

// Server holds server configuration
type Server struct {
	Addr         string
	AllowedHosts []string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("SIMPLECOUNTER_ADDR"),
		},
		&cli.StringSliceFlag{
			Name:        "allowed-host",
			Usage:       "Host allowed to reach the server: exact, *.suffix or an IP range in CIDR form (repeatable)",
			Destination: &c.AllowedHosts,
			Sources:     cli.EnvVars("SIMPLECOUNTER_ALLOWED_HOSTS"),
		},
	}
}

// Hosts returns the effective host allow-list. An empty result admits every host.
func (c *Server) Hosts(env types.Env) []string {
	if len(c.AllowedHosts) > 0 {
		return c.AllowedHosts
	}
	if env.IsDevelopment() {
		return DevelopmentHosts
	}
	return nil
}
