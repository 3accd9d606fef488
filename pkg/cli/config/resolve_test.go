package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/simplecounter/pkg/cli/config"
)

func lookupFrom(env map[string]string) config.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "absent variable falls back",
			env:  map[string]string{},
			want: "fallback",
		},
		{
			name: "present variable wins",
			env:  map[string]string{"NAME": "value"},
			want: "value",
		},
		{
			name: "present but empty is kept",
			env:  map[string]string{"NAME": ""},
			want: "",
		},
		{
			name: "other variables are ignored",
			env:  map[string]string{"OTHER": "value"},
			want: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.Resolve(lookupFrom(tt.env), "NAME", "fallback")
			gt.Equal(t, got, tt.want)
		})
	}
}
