package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abiiranathan/cnabsearch/search"
	"gopkg.in/yaml.v3"
)

// ExampleName is the name reported for the bundled example file.
const ExampleName = "cnabExample.rem"

// Config holds the configuration for the CLI.
type Config struct {
	// Path to the CNAB file. When empty the bundled example is used.
	Path string `yaml:"path"`

	// Character encoding of the CNAB file: utf-8, latin1 or windows-1252.
	Encoding string `yaml:"encoding"`

	// Optional YAML file with defaults for the other fields.
	ConfigFile string `yaml:"-"`

	// Seconds allowed for loading the file. 0 disables the timeout.
	Timeout int `yaml:"timeout"`

	// Disable colored output.
	NoColor bool `yaml:"no_color"`

	// Segment query: code and 1-indexed inclusive column range.
	Segment string `yaml:"segmento"`
	From    int    `yaml:"from"`
	To      int    `yaml:"to"`

	// Name query.
	Name string `yaml:"nome"`

	// Export name query results to Output in Format.
	Export bool   `yaml:"export"`
	Output string `yaml:"output"`
	Format string `yaml:"format"`

	// Content of the bundled example file.
	Example []byte `yaml:"-"`
}

var DefaultConfig = Config{
	Encoding: "utf-8",
}

// Query returns the searches selected by the configuration.
func (c *Config) Query() search.Query {
	return search.Query{
		Segment: c.Segment,
		From:    c.From,
		To:      c.To,
		Name:    c.Name,
	}
}

// LoadTimeout returns the file load timeout.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// LoadConfigFile parses a YAML configuration file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Apply copies the non-zero fields of file into c.
// It runs before the command line is parsed so that every flag given
// explicitly, including zero values such as --from 0, wins over the file.
func (c *Config) Apply(file *Config) {
	if file.Path != "" {
		c.Path = file.Path
	}
	if file.Encoding != "" {
		c.Encoding = file.Encoding
	}
	if file.Timeout != 0 {
		c.Timeout = file.Timeout
	}
	if file.NoColor {
		c.NoColor = true
	}

	if file.Segment != "" {
		c.Segment = file.Segment
	}
	if file.From != 0 {
		c.From = file.From
	}
	if file.To != 0 {
		c.To = file.To
	}
	if file.Name != "" {
		c.Name = file.Name
	}

	if file.Export {
		c.Export = true
	}
	if file.Output != "" {
		c.Output = file.Output
	}
	if file.Format != "" {
		c.Format = file.Format
	}
}

// ConfigFileArg returns the value of --config (or -C) in args, or "".
// The file has to be read before the flags are parsed.
func ConfigFileArg(args []string) string {
	for i, arg := range args {
		for _, name := range []string{"--config", "-config", "-C"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if value, ok := strings.CutPrefix(arg, name+"="); ok {
				return value
			}
		}
	}
	return ""
}

// LoadConfig applies the config file named in args, if any, to c.
func LoadConfig(c *Config, args []string) error {
	path := ConfigFileArg(args)
	if path == "" {
		return nil
	}

	file, err := LoadConfigFile(path)
	if err != nil {
		return err
	}
	c.Apply(file)
	return nil
}
