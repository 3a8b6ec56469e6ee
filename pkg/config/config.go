package config

import (
	"regexp"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/replicator"
	"github.com/arthur-debert/photosort/pkg/template"
)

// Config is the decoded configuration.
type Config struct {
	Template    template.Template `koanf:"template"`
	Replicators []replicator.Kind `koanf:"replicators"`
	Overwrite   bool              `koanf:"overwrite"`
	Sources     []string          `koanf:"sources"`
	Watch       Watch             `koanf:"watch"`
}

// Watch holds settings used only by the watch command.
type Watch struct {
	IgnoreRegex string `koanf:"ignore_regex"`
	Lock        bool   `koanf:"lock"`
	LockFile    string `koanf:"lock_file"`
}

// Validate checks the settings every command needs.
func (c *Config) Validate() error {
	if c.Template.IsEmpty() {
		return errors.New(errors.ErrConfigValid, "a destination template is required").
			WithDetail("key", "template")
	}
	if len(c.Sources) == 0 {
		return errors.New(errors.ErrConfigValid, "at least one source is required").
			WithDetail("key", "sources")
	}
	if _, err := c.IgnorePattern(); err != nil {
		return err
	}
	return nil
}

// ReplicatorKinds returns the configured strategies, or the default order
// when none are set.
func (c *Config) ReplicatorKinds() []replicator.Kind {
	if len(c.Replicators) == 0 {
		return replicator.DefaultKinds()
	}
	return c.Replicators
}

// IgnorePattern compiles watch.ignore_regex. It returns nil when unset.
func (c *Config) IgnorePattern() (*regexp.Regexp, error) {
	if c.Watch.IgnoreRegex == "" {
		return nil, nil
	}
	re, err := regexp.Compile(c.Watch.IgnoreRegex)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid ignore pattern %q", c.Watch.IgnoreRegex).
			WithDetail("key", "watch.ignore_regex")
	}
	return re, nil
}

// LockPath returns the watch lock file, defaulting to the XDG runtime
// directory.
func (c *Config) LockPath() (string, error) {
	if c.Watch.LockFile != "" {
		return c.Watch.LockFile, nil
	}
	path, err := xdg.RuntimeFile("photosort/watch.lock")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfigValid, "failed to resolve lock file path").
			WithDetail("key", "watch.lock_file")
	}
	return path, nil
}
