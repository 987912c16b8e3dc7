package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go0183/internal/app"
	"go0183/internal/config"
)

func main() {
	var cfg app.Config

	rootCmd := &cobra.Command{
		Use:   "go0183",
		Short: "NMEA-0183 decoder",
		Long: `NMEA-0183 sentence decoder and logger.

Reads sentences from a serial receiver, a capture file or stdin, decodes
them into per-module state, writes position fixes to a rotating CSV log
and optionally publishes fixes over MQTT and streams accepted sentences
to a web status page.

Example usage:
  go0183 --serial /dev/ttyUSB0 --baud 4800 --modules gnss,ais
  go0183 --input capture.nmea --web --web-addr :8080
  go0183 --config pipeline.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.ShowVersion {
				app.ShowVersion()
				return nil
			}

			application := app.NewApplication(cfg)
			return application.Start()
		},
	}

	rootCmd.Flags().StringVarP(&cfg.ConfigFile, "config", "c", "", "Pipeline config file (YAML)")
	rootCmd.Flags().StringVarP(&cfg.Input, "input", "i", "", "NMEA capture file to replay (\"-\" for stdin)")
	rootCmd.Flags().StringVarP(&cfg.Serial, "serial", "s", "", "Serial device to read")
	rootCmd.Flags().UintVarP(&cfg.Baud, "baud", "b", config.DefaultBaudRate, "Serial baud rate")
	rootCmd.Flags().StringSliceVarP(&cfg.Modules, "modules", "m", nil, "Sentence modules to enable (default all)")
	rootCmd.Flags().StringSliceVar(&cfg.Disabled, "disable", nil, "Sentence identifiers to reject")
	rootCmd.Flags().BoolVar(&cfg.NoChecksum, "no-checksum", false, "Skip checksum validation")
	rootCmd.Flags().StringVarP(&cfg.LogDir, "log-dir", "l", config.DefaultLogDir, "Log directory")
	rootCmd.Flags().BoolVarP(&cfg.LogRotateUTC, "utc", "u", true, "Use UTC for log rotation")
	rootCmd.Flags().StringVar(&cfg.MQTTBroker, "mqtt-broker", "", "MQTT broker URL (enables publishing)")
	rootCmd.Flags().StringVar(&cfg.MQTTTopic, "mqtt-topic", config.DefaultMQTTTopic, "MQTT topic for position fixes")
	rootCmd.Flags().BoolVarP(&cfg.WebEnable, "web", "w", false, "Serve the status API and sentence stream")
	rootCmd.Flags().StringVar(&cfg.WebAddr, "web-addr", config.DefaultWebAddr, "Status server listen address")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().BoolVar(&cfg.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
