package main

import (
	"fmt"
	"sort"
	"strings"
)

const envPrefix = "SITEFIX_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // SITEFIX_CONFIG: site config name or path
}

// knownEnvVars lists valid SITEFIX_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEFIX_CONFIG": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	return &envConfig{
		ConfigPath: strings.TrimSpace(getenv("SITEFIX_CONFIG")),
	}
}

// unknownEnvVars returns SITEFIX_* names in environ that are not recognized, sorted.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// warnUnknownEnvVars prints a warning for each unrecognized SITEFIX_* variable.
func warnUnknownEnvVars(deps *Dependencies) {
	if deps.Environ == nil {
		return
	}
	for _, name := range unknownEnvVars(deps.Environ()) {
		fmt.Fprintf(deps.Stderr, "warning: unknown environment variable %s\n", name)
	}
}
