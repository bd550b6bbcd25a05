// Package config holds the static configuration of the generated website.
// The values are consumed as-is by the external site generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alnah/go-sitefix/internal/fileutil"
	"github.com/alnah/go-sitefix/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrEmptyConfigName   = errors.New("config name cannot be empty")
	ErrConfigParse       = errors.New("failed to parse config")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
	ErrRequiredField     = errors.New("required field is empty")
	ErrInvalidURL        = errors.New("invalid URL")
	ErrMissingSlug       = errors.New("page pattern must contain " + SlugPlaceholder)
	ErrInvalidMenuItem   = errors.New("invalid menu item")
	ErrUnknownBootswatch = errors.New("unknown bootswatch theme")
)

// Field length limits.
const (
	MaxNameLength     = 200  // Site name, menu title
	MaxURLLength      = 2048 // Browser limit
	MaxPathLength     = 4096 // Theme path, asset paths
	MaxTimezoneLength = 64   // IANA zone names
	MaxMenuItems      = 50
)

// SlugPlaceholder is replaced by the page slug in page URL patterns.
const SlugPlaceholder = "{slug}"

// chameleonMarker identifies the pelican-chameleon theme in ThemeConfig.Path.
const chameleonMarker = "pelican-chameleon"

// BootswatchThemes lists the Bootswatch 3 themes shipped with the chameleon theme.
var BootswatchThemes = []string{
	"cerulean", "cosmo", "cyborg", "darkly", "flatly", "journal", "lumen",
	"paper", "readable", "sandstone", "simplex", "slate", "solar",
	"spacelab", "superhero", "united", "yeti",
}

// Config holds the site configuration.
type Config struct {
	Site            SiteConfig  `yaml:"site"`
	Pages           PagesConfig `yaml:"pages"`
	Menu            []MenuItem  `yaml:"menu"`
	Theme           ThemeConfig `yaml:"theme"`
	Feeds           FeedsConfig `yaml:"feeds"`
	DirectTemplates []string    `yaml:"directTemplates"`
}

// SiteConfig defines site identity.
type SiteConfig struct {
	Name         string `yaml:"name"`
	URL          string `yaml:"url"`
	GitHubURL    string `yaml:"githubURL"` // Project repository, used by GitHub()
	Timezone     string `yaml:"timezone"`
	RelativeURLs bool   `yaml:"relativeURLs"`
}

// PagesConfig defines where static pages are published.
type PagesConfig struct {
	DocRoot       string `yaml:"docRoot"` // Directory holding documentation pages
	URL           string `yaml:"url"`     // Must contain {slug}
	SaveAs        string `yaml:"saveAs"`  // Must contain {slug}
	DisplayOnMenu bool   `yaml:"displayOnMenu"`
}

// MenuItem is a (title, URL) pair of the navigation bar.
type MenuItem struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// ThemeConfig defines the theme and its third-party assets.
type ThemeConfig struct {
	Path            string `yaml:"path"`
	Bootswatch      string `yaml:"bootswatch"` // Empty = plain Bootstrap
	BootstrapJS     string `yaml:"bootstrapJS"`
	BootstrapCSS    string `yaml:"bootstrapCSS"`
	JQueryJS        string `yaml:"jqueryJS"`
	JQueryMigrateJS string `yaml:"jqueryMigrateJS"`
}

// FeedsConfig defines syndication feeds. Empty values disable a feed.
type FeedsConfig struct {
	AllAtom string `yaml:"allAtom"`
	AllRSS  string `yaml:"allRSS"`
	Domain  string `yaml:"domain"`
}

// IsChameleon reports whether the theme is pelican-chameleon.
func (t ThemeConfig) IsChameleon() bool {
	return strings.Contains(t.Path, chameleonMarker)
}

// BootswatchCSS returns the stylesheet path for the selected Bootswatch theme.
// Returns "" when no theme is selected or the theme is not chameleon.
func (t ThemeConfig) BootswatchCSS() string {
	if !t.IsChameleon() || t.Bootswatch == "" {
		return ""
	}
	return "/3rdparty/bootswatch/" + t.Bootswatch + "/bootstrap.min.css"
}

// PageURL expands the page URL pattern for slug.
func (c *Config) PageURL(slug string) string {
	return strings.ReplaceAll(c.Pages.URL, SlugPlaceholder, slug)
}

// PageSaveAs expands the page output path pattern for slug.
func (c *Config) PageSaveAs(slug string) string {
	return strings.ReplaceAll(c.Pages.SaveAs, SlugPlaceholder, slug)
}

// GitHub joins the repository URL and path.
func (c *Config) GitHub(path string) string {
	return c.Site.GitHubURL + path
}

// FeedsEnabled reports whether any feed is configured.
func (c *Config) FeedsEnabled() bool {
	return c.Feeds.AllAtom != "" || c.Feeds.AllRSS != ""
}

// DefaultConfig returns the configuration of the Expat website.
func DefaultConfig() *Config {
	const (
		siteURL   = "https://libexpat.github.io"
		githubURL = "https://github.com/libexpat/libexpat"
		docRoot   = "doc"
	)

	cfg := &Config{
		Site: SiteConfig{
			Name:         "Expat XML parser",
			URL:          siteURL,
			GitHubURL:    githubURL,
			Timezone:     "UTC",
			RelativeURLs: true,
		},
		Pages: PagesConfig{
			DocRoot:       docRoot,
			URL:           docRoot + "/" + SlugPlaceholder + "/",
			SaveAs:        docRoot + "/" + SlugPlaceholder + "/index.html",
			DisplayOnMenu: false,
		},
		Theme: ThemeConfig{
			Path:            "./pelican-chameleon-5e2d5ab49fc551b6becec539b211bfe872ebe836",
			Bootswatch:      "paper",
			BootstrapJS:     "/3rdparty/bootstrap/3.0.0/js/bootstrap.min.js",
			BootstrapCSS:    "/3rdparty/bootstrap/3.0.0/css/bootstrap.min.css",
			JQueryJS:        "/3rdparty/jquery/jquery-3.6.4.min.js",
			JQueryMigrateJS: "/3rdparty/jquery/jquery-migrate-3.4.1.min.js",
		},
		Feeds:           FeedsConfig{},
		DirectTemplates: []string{"index"},
	}

	cfg.Menu = []MenuItem{
		{Title: "Changelog", URL: cfg.GitHub("/blob/master/expat/Changes")},
		{Title: "Download", URL: githubURL + "/releases"},
		{Title: "Documentation", URL: siteURL + "/" + docRoot + "/"},
		{Title: "API", URL: siteURL + "/" + docRoot + "/api/latest/"},
		{Title: "Git Repository", URL: cfg.GitHub("")},
		{Title: "Users", URL: siteURL + "/" + cfg.PageURL("users")},
		{Title: "Report a Bug", URL: cfg.GitHub("/issues")},
	}

	return cfg
}

// Validate checks required fields, URLs, page patterns, menu items and the
// Bootswatch theme. Called automatically by LoadConfig.
func (c *Config) Validate() error {
	// Validate site fields
	if err := validateRequired("site.name", c.Site.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateURL("site.url", c.Site.URL, true); err != nil {
		return err
	}
	if c.Site.GitHubURL != "" {
		if err := validateURL("site.githubURL", c.Site.GitHubURL, true); err != nil {
			return err
		}
	}
	if err := validateFieldLength("site.timezone", c.Site.Timezone, MaxTimezoneLength); err != nil {
		return err
	}

	// Validate page patterns
	if err := validatePattern("pages.url", c.Pages.URL); err != nil {
		return err
	}
	if err := validatePattern("pages.saveAs", c.Pages.SaveAs); err != nil {
		return err
	}

	// Validate menu
	if len(c.Menu) > MaxMenuItems {
		return fmt.Errorf("%w: menu has %d items (max %d)", ErrInvalidMenuItem, len(c.Menu), MaxMenuItems)
	}
	for i, item := range c.Menu {
		field := fmt.Sprintf("menu[%d]", i)
		if item.Title == "" || item.URL == "" {
			return fmt.Errorf("%w: %s needs both title and url", ErrInvalidMenuItem, field)
		}
		if err := validateFieldLength(field+".title", item.Title, MaxNameLength); err != nil {
			return err
		}
		if err := validateURL(field+".url", item.URL, false); err != nil {
			return err
		}
	}

	// Validate theme
	if err := validateFieldLength("theme.path", c.Theme.Path, MaxPathLength); err != nil {
		return err
	}
	if c.Theme.Bootswatch != "" && !slices.Contains(BootswatchThemes, c.Theme.Bootswatch) {
		return fmt.Errorf("%w: %q", ErrUnknownBootswatch, c.Theme.Bootswatch)
	}
	assets := []struct{ field, value string }{
		{"theme.bootstrapJS", c.Theme.BootstrapJS},
		{"theme.bootstrapCSS", c.Theme.BootstrapCSS},
		{"theme.jqueryJS", c.Theme.JQueryJS},
		{"theme.jqueryMigrateJS", c.Theme.JQueryMigrateJS},
	}
	for _, a := range assets {
		if err := validateFieldLength(a.field, a.value, MaxPathLength); err != nil {
			return err
		}
	}

	// Validate feeds
	if err := validateFieldLength("feeds.allAtom", c.Feeds.AllAtom, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("feeds.allRSS", c.Feeds.AllRSS, MaxPathLength); err != nil {
		return err
	}
	if c.Feeds.Domain != "" {
		if err := validateURL("feeds.domain", c.Feeds.Domain, true); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateRequired(fieldName, value string, maxLength int) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrRequiredField, fieldName)
	}
	return validateFieldLength(fieldName, value, maxLength)
}

// validateURL accepts http(s) URLs, and site-absolute paths unless absolute is set.
func validateURL(fieldName, value string, absolute bool) error {
	if err := validateRequired(fieldName, value, MaxURLLength); err != nil {
		return err
	}
	if fileutil.IsURL(value) {
		return nil
	}
	if !absolute && strings.HasPrefix(value, "/") {
		return nil
	}
	return fmt.Errorf("%w: %s = %q", ErrInvalidURL, fieldName, value)
}

func validatePattern(fieldName, value string) error {
	if err := validateRequired(fieldName, value, MaxPathLength); err != nil {
		return err
	}
	if !strings.Contains(value, SlugPlaceholder) {
		return fmt.Errorf("%w: %s = %q", ErrMissingSlug, fieldName, value)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Values from the file are applied over DefaultConfig.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// SearchPaths returns the locations tried for a config name, in order:
// current directory, then ~/.config/go-sitefix/, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-sitefix", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
