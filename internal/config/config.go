// Package config handles configuration loading for the regon command.
//
// Configuration is loaded from a YAML file with support for environment
// variable expansion (${VAR} or $VAR syntax), so the client key can be
// injected at runtime.
//
// # Example Configuration
//
//	environment: production
//	clientKey: ${REGON_CLIENT_KEY}
//
//	endpoints:
//	  production:
//	    wsdl: https://wyszukiwarkaregon.stat.gov.pl/wsBIR/wsdl/UslugaBIRzewnPubl-ver11-prod.wsdl
//	    service: https://wyszukiwarkaregon.stat.gov.pl/wsBIR/UslugaBIRzewnPubl.svc
//
//	http:
//	  timeout: 30s
//	  minTLSVersion: "1.2"
//
//	log:
//	  level: info
//
// See [Load] for loading configuration from a file.
package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sirosfoundation/go-regon/pkg/regon"
	"github.com/sirosfoundation/go-regon/pkg/transport"
)

// Config is the root configuration structure
type Config struct {
	Environment string          `yaml:"environment"`
	ClientKey   string          `yaml:"clientKey"`
	Endpoints   EndpointsConfig `yaml:"endpoints"`
	HTTP        HTTPConfig      `yaml:"http"`
	Log         LogConfig       `yaml:"log"`
}

// EndpointsConfig overrides the published endpoints per environment
type EndpointsConfig struct {
	Production regon.Endpoints `yaml:"production"`
	Test       regon.Endpoints `yaml:"test"`
}

// HTTPConfig holds HTTPS client settings
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout"`
	MinTLSVersion string        `yaml:"minTLSVersion"` // "1.2" or "1.3"
	UserAgent     string        `yaml:"userAgent"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

var tlsVersions = map[string]uint16{
	"1.2": tls.VersionTLS12,
	"1.3": tls.VersionTLS13,
}

// Load reads and validates configuration from a YAML file
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates configuration from YAML
func Parse(data []byte) (*Config, error) {
	cfg, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read reads configuration from a YAML file and applies defaults without
// validating it. Callers that override fields, such as the client key from a
// flag, call Validate afterwards.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Decode(data)
}

// Decode decodes configuration from YAML, expanding environment variables,
// and applies defaults
func Decode(data []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "test"
	}
	if c.HTTP.Timeout == 0 {
		c.HTTP.Timeout = 30 * time.Second
	}
	if c.HTTP.MinTLSVersion == "" {
		c.HTTP.MinTLSVersion = "1.2"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the configuration. A missing production key matches
// regon.ErrInvalidArgument.
func (c *Config) Validate() error {
	if err := c.validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	env, err := regon.ParseEnvironment(c.Environment)
	if err != nil {
		return fmt.Errorf("environment must be 'production' or 'test', got '%s'", c.Environment)
	}

	if env == regon.Production && c.ClientKey == "" {
		return &regon.InvalidArgumentError{
			Kind:    "client key",
			Message: "clientKey is required when environment is 'production'",
		}
	}

	if _, ok := tlsVersions[c.HTTP.MinTLSVersion]; !ok {
		return fmt.Errorf("http.minTLSVersion must be '1.2' or '1.3', got '%s'", c.HTTP.MinTLSVersion)
	}

	if c.HTTP.Timeout < 0 {
		return fmt.Errorf("http.timeout must not be negative")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got '%s'", c.Log.Level)
	}

	return nil
}

// Production reports whether the production environment is selected
func (c *Config) Production() bool {
	return c.Environment == "production"
}

// HTTPSConfig builds the transport configuration
func (c *Config) HTTPSConfig() *transport.HTTPSConfig {
	hc := transport.DefaultHTTPSConfig()
	hc.Timeout = c.HTTP.Timeout
	if v, ok := tlsVersions[c.HTTP.MinTLSVersion]; ok {
		hc.MinTLSVersion = v
	}
	if c.HTTP.UserAgent != "" {
		hc.UserAgent = c.HTTP.UserAgent
	}
	return hc
}

// ClientOptions returns the regon client options implied by the configuration
func (c *Config) ClientOptions() []regon.Option {
	opts := []regon.Option{regon.WithHTTPSConfig(c.HTTPSConfig())}

	endpoints := c.Endpoints.Test
	if c.Production() {
		endpoints = c.Endpoints.Production
	}
	if endpoints.Service != "" {
		if endpoints.WSDL == "" {
			endpoints.WSDL = endpoints.Service + "?wsdl"
		}
		opts = append(opts, regon.WithEndpoints(endpoints))
	}

	return opts
}
