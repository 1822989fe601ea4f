package template

import (
	"os"
	"strings"
)

// Environment is a snapshot of environment variables.
type Environment map[string]string

// EnvironmentFromList builds a snapshot from KEY=value pairs as returned by
// os.Environ. The first occurrence of a key wins.
func EnvironmentFromList(pairs []string) Environment {
	env := make(Environment, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		if _, seen := env[key]; seen {
			continue
		}
		env[key] = value
	}
	return env
}

// EnvironmentFromOS snapshots the process environment.
func EnvironmentFromOS() Environment {
	return EnvironmentFromList(os.Environ())
}

// Lookup returns the value of the named variable.
func (e Environment) Lookup(name string) (string, bool) {
	v, ok := e[name]
	return v, ok
}
