package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete analyzer configuration
type Config struct {
	LogLevel string            `hcl:"log_level,optional"`
	Analyzer *AnalyzerSettings `hcl:"analyzer,block"`
	Server   *ServerSettings   `hcl:"server,block"`
}

// AnalyzerSettings controls how rounds are dealt and evaluated
type AnalyzerSettings struct {
	Hands   int   `hcl:"hands,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
	Color   *bool `hcl:"color,optional"`
}

// ServerSettings contains the HTTP/WebSocket listener configuration
type ServerSettings struct {
	Address string `hcl:"address,optional"`
	Port    int    `hcl:"port,optional"`
}

const (
	DefaultHands   = 6
	DefaultWorkers = 4
	DefaultAddress = "localhost"
	DefaultPort    = 8080
)

// Default returns the default configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var c Config
	diags = gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Analyzer == nil {
		c.Analyzer = &AnalyzerSettings{}
	}
	if c.Analyzer.Hands == 0 {
		c.Analyzer.Hands = DefaultHands
	}
	if c.Analyzer.Workers == 0 {
		c.Analyzer.Workers = DefaultWorkers
	}
	if c.Analyzer.Color == nil {
		color := true
		c.Analyzer.Color = &color
	}
	if c.Server == nil {
		c.Server = &ServerSettings{}
	}
	if c.Server.Address == "" {
		c.Server.Address = DefaultAddress
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	// Ten hands of five cards is the most a 52 card deck can deal.
	if c.Analyzer.Hands < 1 || c.Analyzer.Hands > 10 {
		return fmt.Errorf("hands must be between 1 and 10, got %d", c.Analyzer.Hands)
	}
	if c.Analyzer.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Analyzer.Workers)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	return nil
}

// ColorEnabled reports whether styled output is requested.
func (c *Config) ColorEnabled() bool {
	return c.Analyzer.Color == nil || *c.Analyzer.Color
}

// ServerAddress returns the full listen address
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Logger builds a logger at the configured level.
func (c *Config) Logger() *log.Logger {
	logger := log.New(os.Stderr)
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
