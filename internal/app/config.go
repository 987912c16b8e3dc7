package app

import (
	"go0183/internal/config"
)

// Config holds application configuration assembled from command line flags.
type Config struct {
	ConfigFile   string
	Input        string // NMEA log file to replay, "-" for stdin
	Serial       string // serial device to read
	Baud         uint
	Modules      []string
	Disabled     []string
	NoChecksum   bool
	LogDir       string
	LogRotateUTC bool
	MQTTBroker   string
	MQTTTopic    string
	WebEnable    bool
	WebAddr      string
	Verbose      bool
	ShowVersion  bool
}

// Pipeline assembles the pipeline configuration. A config file, when
// given, takes precedence over the single-receiver flags.
func (c Config) Pipeline() (config.Config, error) {
	if c.ConfigFile != "" {
		return config.Load(c.ConfigFile)
	}

	r := config.Receiver{
		Modules:       c.Modules,
		Disabled:      c.Disabled,
		SkipChecksums: c.NoChecksum,
	}
	switch {
	case c.Serial != "":
		r.Source = config.SourceSerial
		r.Device = c.Serial
		r.Baud = c.Baud
	case c.Input == "" || c.Input == "-":
		r.Source = config.SourceStdin
	default:
		r.Source = config.SourceFile
		r.Path = c.Input
	}

	cfg := config.Config{
		Receivers: []config.Receiver{r},
		Log:       config.Log{Dir: c.LogDir, UTC: c.LogRotateUTC},
		Web:       config.Web{Enable: c.WebEnable, Addr: c.WebAddr},
	}
	if c.MQTTBroker != "" {
		cfg.MQTT = config.MQTT{Enable: true, Broker: c.MQTTBroker, Topic: c.MQTTTopic}
	}

	if err := cfg.Normalize(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
