package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/photosort/pkg/errors"
	"github.com/arthur-debert/photosort/pkg/replicator"
)

type starterWatch struct {
	IgnoreRegex string `toml:"ignore_regex" yaml:"ignore_regex" comment:"Events whose path matches this regular expression are not sorted"`
	Lock        bool   `toml:"lock" yaml:"lock" comment:"Refuse to start when another watcher holds the lock file"`
	LockFile    string `toml:"lock_file" yaml:"lock_file" comment:"Lock file path, empty for $XDG_RUNTIME_DIR/photosort/watch.lock"`
}

type starterConfig struct {
	Template    string       `toml:"template" yaml:"template" comment:"Destination path template"`
	Replicators []string     `toml:"replicators" yaml:"replicators" comment:"Replication strategies, tried in order (hardlink, softlink, copy, none)"`
	Overwrite   bool         `toml:"overwrite" yaml:"overwrite" comment:"Replace destinations that already exist"`
	Sources     []string     `toml:"sources" yaml:"sources" comment:"Directories and files to sort"`
	Watch       starterWatch `toml:"watch" yaml:"watch" comment:"Watch mode settings"`
}

// GenerateConfigContent returns a starter configuration with every value
// commented out. ext selects the format: ".yaml" and ".yml" give YAML,
// anything else TOML.
func GenerateConfigContent(ext string) (string, error) {
	kinds := replicator.DefaultKinds()
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}

	starter := starterConfig{
		Template:    filepath.Join(xdg.UserDirs.Pictures, ":date.year:", ":date.month:", ":file.name:"),
		Replicators: names,
		Sources:     []string{filepath.Join(xdg.UserDirs.Pictures, "inbox")},
		Watch: starterWatch{
			IgnoreRegex: `\.(tmp|part|crdownload)$`,
			Lock:        true,
		},
	}

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return generateYAML(starter)
	}

	content, err := toml.Marshal(starter)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode starter configuration")
	}
	return "# photosort configuration\n\n" + commentOutConfigValues(string(content)), nil
}

func generateYAML(starter starterConfig) (string, error) {
	var node yaml.Node
	if err := node.Encode(starter); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode starter configuration")
	}
	addYAMLComments(&node, reflect.TypeOf(starter))

	content, err := yaml.Marshal(&node)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to encode starter configuration")
	}
	return "# photosort configuration\n\n" + commentOutConfigValues(string(content)), nil
}

// addYAMLComments copies the comment tags of typ onto the keys of the
// mapping node that encodes it.
func addYAMLComments(node *yaml.Node, typ reflect.Type) {
	if node.Kind != yaml.MappingNode || typ.Kind() != reflect.Struct {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		for j := 0; j < typ.NumField(); j++ {
			field := typ.Field(j)
			if field.Tag.Get("yaml") != key.Value {
				continue
			}
			key.HeadComment = field.Tag.Get("comment")
			addYAMLComments(value, field.Type)
		}
	}
}

// WriteStarterConfig writes the starter configuration to path, or to the
// XDG config directory when path is empty. Existing files are kept unless
// force is set.
func WriteStarterConfig(path string, force bool) (string, error) {
	if path == "" {
		var err error
		path, err = xdg.ConfigFile(DefaultConfigFile)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrConfigLoad, "failed to resolve config path")
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, errors.Newf(errors.ErrConfigValid, "%s already exists", path).
			WithDetail("path", path)
	}

	content, err := GenerateConfigContent(filepath.Ext(path))
	if err != nil {
		return path, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, errors.Wrap(err, errors.ErrConfigLoad, "failed to create config directory").
			WithDetail("path", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return path, errors.Wrap(err, errors.ErrConfigLoad, "failed to write config").
			WithDetail("path", path)
	}
	return path, nil
}

// commentOutConfigValues takes the TOML or YAML content and comments out all non-comment, non-blank lines
// that contain configuration values
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep TOML section headers (e.g., [watch]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
