package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"go0183/internal/nmea"
)

// Default pipeline settings
const (
	DefaultBaudRate     = 4800 // NMEA-0183 standard rate
	DefaultLogDir       = "./logs"
	DefaultWebAddr      = ":8080"
	DefaultMQTTClientID = "go0183"
	DefaultMQTTTopic    = "go0183/fix"
)

// Receiver source kinds
const (
	SourceFile   = "file"
	SourceSerial = "serial"
	SourceStdin  = "stdin"
)

// Config is the full pipeline declaration loaded from YAML.
type Config struct {
	Receivers []Receiver `yaml:"receivers"`
	Log       Log        `yaml:"log"`
	MQTT      MQTT       `yaml:"mqtt"`
	Web       Web        `yaml:"web"`
}

// Receiver declares one data source and the decode capability of its
// engine context.
type Receiver struct {
	Name          string   `yaml:"name"`
	Source        string   `yaml:"source"` // file, serial or stdin
	Path          string   `yaml:"path"`   // file source
	Device        string   `yaml:"device"` // serial source
	Baud          uint     `yaml:"baud"`
	Modules       []string `yaml:"modules"`  // empty means all
	Disabled      []string `yaml:"disabled"` // sentence identifiers
	SkipChecksums bool     `yaml:"skip_checksums"`
}

// Log configures the rotated sentence/fix log.
type Log struct {
	Dir string `yaml:"dir"`
	UTC bool   `yaml:"utc"`
}

// MQTT configures the optional fix publisher.
type MQTT struct {
	Enable   bool   `yaml:"enable"`
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
}

// Web configures the optional status server.
type Web struct {
	Enable bool   `yaml:"enable"`
	Addr   string `yaml:"addr"`
}

// moduleNames maps the YAML module names onto the engine's module bits.
var moduleNames = map[string]nmea.Module{
	"gnss":       nmea.ModuleGNSS,
	"ais":        nmea.ModuleAIS,
	"navigation": nmea.ModuleNavigation,
	"heading":    nmea.ModuleHeading,
	"sensor":     nmea.ModuleSensor,
	"radar":      nmea.ModuleRadar,
	"safety":     nmea.ModuleSafety,
	"comm":       nmea.ModuleComm,
	"system":     nmea.ModuleSystem,
	"attitude":   nmea.ModuleAttitude,
	"waypoint":   nmea.ModuleWaypoint,
	"misc":       nmea.ModuleMisc,
	"all":        nmea.ModuleAll,
}

// ParseModules resolves a list of module names into the engine's bitmask.
// An empty list enables every module.
func ParseModules(names []string) (nmea.Module, error) {
	if len(names) == 0 {
		return nmea.ModuleAll, nil
	}
	var m nmea.Module
	for _, name := range names {
		bit, ok := moduleNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown module %q", name)
		}
		m |= bit
	}
	return m, nil
}

// Capability builds the engine capability descriptor for this receiver.
func (r Receiver) Capability() (nmea.Capability, error) {
	modules, err := ParseModules(r.Modules)
	if err != nil {
		return nmea.Capability{}, fmt.Errorf("receiver %s: %w", r.Name, err)
	}
	c := nmea.Capability{
		Modules:           modules,
		Disabled:          r.Disabled,
		ValidateChecksums: !r.SkipChecksums,
	}
	if err := c.Validate(); err != nil {
		return nmea.Capability{}, fmt.Errorf("receiver %s: %w", r.Name, err)
	}
	return c, nil
}

// Load reads, defaults and validates a pipeline config file.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize fills defaults and validates an assembled configuration,
// whether it came from a YAML file or from command line flags.
func (cfg *Config) Normalize() error {
	if len(cfg.Receivers) == 0 {
		return fmt.Errorf("at least one receiver is required")
	}

	seen := make(map[string]bool, len(cfg.Receivers))
	for i := range cfg.Receivers {
		r := &cfg.Receivers[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("receiver%d", i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("duplicate receiver name %q", r.Name)
		}
		seen[r.Name] = true

		switch r.Source {
		case SourceFile:
			if r.Path == "" {
				return fmt.Errorf("receiver %s: path is required for file sources", r.Name)
			}
		case SourceSerial:
			if r.Device == "" {
				return fmt.Errorf("receiver %s: device is required for serial sources", r.Name)
			}
			if r.Baud == 0 {
				r.Baud = DefaultBaudRate
			}
		case SourceStdin:
		case "":
			return fmt.Errorf("receiver %s: source is required", r.Name)
		default:
			return fmt.Errorf("receiver %s: unknown source %q", r.Name, r.Source)
		}

		if _, err := r.Capability(); err != nil {
			return err
		}
	}

	if cfg.Log.Dir == "" {
		cfg.Log.Dir = DefaultLogDir
	}

	if cfg.MQTT.Enable {
		if cfg.MQTT.Broker == "" {
			return fmt.Errorf("mqtt.broker is required when mqtt.enable is true")
		}
		if cfg.MQTT.ClientID == "" {
			cfg.MQTT.ClientID = DefaultMQTTClientID
		}
		if cfg.MQTT.Topic == "" {
			cfg.MQTT.Topic = DefaultMQTTTopic
		}
	}

	if cfg.Web.Enable && cfg.Web.Addr == "" {
		cfg.Web.Addr = DefaultWebAddr
	}

	return nil
}
