package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/smarthome-core/internal/device"
)

// Config is the root configuration structure for the smart home core.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Home       HomeConfig       `yaml:"home"`
	Controller ControllerConfig `yaml:"controller"`
	Devices    []device.Spec    `yaml:"devices"`
	MQTT       MQTTConfig       `yaml:"mqtt"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// HomeConfig contains installation-specific information.
type HomeConfig struct {
	Name string `yaml:"name"`
}

// ControllerConfig contains device controller settings.
type ControllerConfig struct {
	// RejectDuplicateIDs makes the controller refuse devices whose ID is
	// already registered.
	RejectDuplicateIDs bool `yaml:"reject_duplicate_ids"`
}

// MQTTConfig contains MQTT broker connection settings.
type MQTTConfig struct {
	Enabled     bool                `yaml:"enabled"`
	Broker      MQTTBrokerConfig    `yaml:"broker"`
	Auth        MQTTAuthConfig      `yaml:"auth"`
	QoS         int                 `yaml:"qos"`
	Reconnect   MQTTReconnectConfig `yaml:"reconnect"`
	TopicPrefix string              `yaml:"topic_prefix"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings.
type MQTTReconnectConfig struct {
	// MaxDelay caps the reconnect backoff, in seconds.
	MaxDelay int `yaml:"max_delay"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	Output string `yaml:"output"` // stdout, stderr, none
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: SMARTHOME_SECTION_KEY
// For example: SMARTHOME_MQTT_HOST, SMARTHOME_LOG_LEVEL
//
// An empty path skips the file and loads defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Home: HomeConfig{
			Name: "Smart Home",
		},
		MQTT: MQTTConfig{
			Enabled: false,
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "smarthome-core",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				MaxDelay: 60,
			},
			TopicPrefix: "smarthome",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: SMARTHOME_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// MQTT
	if v := os.Getenv("SMARTHOME_MQTT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.MQTT.Enabled = b
		}
	}
	if v := os.Getenv("SMARTHOME_MQTT_HOST"); v != "" {
		cfg.MQTT.Broker.Host = v
	}
	if v := os.Getenv("SMARTHOME_MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MQTT.Broker.Port = port
		}
	}
	if v := os.Getenv("SMARTHOME_MQTT_USERNAME"); v != "" {
		cfg.MQTT.Auth.Username = v
	}
	if v := os.Getenv("SMARTHOME_MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Auth.Password = v
	}

	// Logging
	if v := os.Getenv("SMARTHOME_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Device seed list
	seen := make(map[int]struct{}, len(c.Devices))
	for i, spec := range c.Devices {
		if err := device.ValidateSpec(spec); err != nil {
			errs = append(errs, fmt.Sprintf("devices[%d]: %v", i, err))
			continue
		}
		if _, dup := seen[spec.ID]; dup && c.Controller.RejectDuplicateIDs {
			errs = append(errs, fmt.Sprintf("devices[%d]: duplicate id %d", i, spec.ID))
		}
		seen[spec.ID] = struct{}{}
	}

	// MQTT validation only matters when publishing is switched on
	if c.MQTT.Enabled {
		if c.MQTT.Broker.Host == "" {
			errs = append(errs, "mqtt.broker.host is required")
		}
		if c.MQTT.Broker.Port < 1 || c.MQTT.Broker.Port > 65535 {
			errs = append(errs, "mqtt.broker.port must be between 1 and 65535")
		}
		if c.MQTT.Broker.ClientID == "" {
			errs = append(errs, "mqtt.broker.client_id is required")
		}
		if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
			errs = append(errs, "mqtt.qos must be 0, 1, or 2")
		}
		if c.MQTT.TopicPrefix == "" || strings.ContainsAny(c.MQTT.TopicPrefix, "#+") {
			errs = append(errs, "mqtt.topic_prefix must be non-empty and contain no wildcards")
		}
		if c.MQTT.Reconnect.MaxDelay < 1 {
			errs = append(errs, "mqtt.reconnect.max_delay must be at least 1 second")
		}
	}

	// Logging validation
	if !oneOf(c.Logging.Level, "debug", "info", "warn", "warning", "error") {
		errs = append(errs, "logging.level must be debug, info, warn, or error")
	}
	if !oneOf(c.Logging.Format, "json", "text") {
		errs = append(errs, "logging.format must be json or text")
	}
	if !oneOf(c.Logging.Output, "stdout", "stderr", "none") {
		errs = append(errs, "logging.output must be stdout, stderr, or none")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// oneOf reports whether v case-insensitively matches one of allowed.
func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return true
		}
	}
	return false
}
