package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-sitefix/internal/config"
	"github.com/alnah/go-sitefix/internal/fileutil"
	"github.com/alnah/go-sitefix/internal/hints"
	flag "github.com/spf13/pflag"
)

// runConfig prints or validates the resolved site configuration.
// The config source is --config, then SITEFIX_CONFIG, then the built-in defaults.
func runConfig(args []string, deps *Dependencies) error {
	flags, positional, err := parseConfigFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printConfigUsage(deps.Stdout)
		return nil
	}
	if err != nil {
		printConfigUsage(deps.Stderr)
		return err
	}
	if len(positional) > 0 {
		printConfigUsage(deps.Stderr)
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlags, positional[0])
	}

	cfg, source, err := resolveConfig(flags.config, loadEnvConfig(deps.Getenv))
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(deps.Stderr, "Using %s\n", source)
		printDerived(deps.Stderr, cfg)
	}

	if flags.check {
		if !flags.common.quiet {
			fmt.Fprintf(deps.Stdout, "Config OK: %s (%d menu items)\n", cfg.Site.Name, len(cfg.Menu))
		}
		return nil
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = deps.Stdout.Write(data)
	return err
}

// exampleSlug is the page slug used to show the expanded page patterns.
const exampleSlug = "example"

// printDerived prints values the site generator computes from cfg.
func printDerived(w io.Writer, cfg *config.Config) {
	css := cfg.Theme.BootswatchCSS()
	if css == "" {
		css = "none"
	}
	feeds := "disabled"
	if cfg.FeedsEnabled() {
		feeds = "enabled"
	}

	fmt.Fprintf(w, "  Bootswatch CSS: %s\n", css)
	fmt.Fprintf(w, "  Page %q: %s -> %s\n", exampleSlug, cfg.PageURL(exampleSlug), cfg.PageSaveAs(exampleSlug))
	fmt.Fprintf(w, "  Feeds: %s\n", feeds)
}

// resolveConfig loads the config named by flagValue or env, in that order.
// Returns the built-in defaults when neither is set.
func resolveConfig(flagValue string, env *envConfig) (*config.Config, string, error) {
	name := flagValue
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		cfg := config.DefaultConfig()
		return cfg, "built-in defaults", cfg.Validate()
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			var searched []string
			if !fileutil.IsFilePath(name) {
				searched = config.SearchPaths(name)
			}
			return nil, "", fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(searched))
		}
		if errors.Is(err, config.ErrUnknownBootswatch) {
			return nil, "", fmt.Errorf("loading config: %w%s", err, hints.ForBootswatch(config.BootswatchThemes))
		}
		return nil, "", fmt.Errorf("loading config: %w", err)
	}
	return cfg, name, nil
}
