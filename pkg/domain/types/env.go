package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Env is the runtime mode of the process
type Env string

// Supported runtime modes
const (
	EnvDevelopment Env = "development"
	EnvTest        Env = "test"
	EnvProduction  Env = "production"
)

// ParseEnv converts a case-insensitive mode name into Env
func ParseEnv(s string) (Env, error) {
	switch env := Env(strings.ToLower(strings.TrimSpace(s))); env {
	case EnvDevelopment, EnvTest, EnvProduction:
		return env, nil
	default:
		return "", goerr.New("unknown runtime environment", goerr.V("env", s))
	}
}

// IsDevelopment reports whether the emulator-backed development setup applies
func (e Env) IsDevelopment() bool {
	return e == EnvDevelopment
}

func (e Env) String() string {
	return string(e)
}
