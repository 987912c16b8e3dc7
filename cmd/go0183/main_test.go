package main

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go0183/internal/app"
	"go0183/internal/config"
)

func TestShowVersion(t *testing.T) {
	// Capture stdout to verify the version output.
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	app.ShowVersion()

	w.Close()
	os.Stdout = oldStdout

	output, err := io.ReadAll(r)
	require.NoError(t, err)

	text := string(output)
	assert.Contains(t, text, "go0183 NMEA-0183 Decoder")
	assert.Contains(t, text, "Version:")
	assert.Contains(t, text, "Build Time:")
	assert.Contains(t, text, "Git Commit:")
}

func TestVersionDefaults(t *testing.T) {
	// Build flags overwrite these; the defaults mark an untagged build.
	assert.Equal(t, "dev", app.Version)
	assert.Equal(t, "unknown", app.BuildTime)
	assert.Equal(t, "unknown", app.GitCommit)
}

func TestDefaultFlagsAssembleStdinPipeline(t *testing.T) {
	var cfg app.Config
	cfg.Baud = config.DefaultBaudRate
	cfg.LogDir = config.DefaultLogDir
	cfg.LogRotateUTC = true
	cfg.MQTTTopic = config.DefaultMQTTTopic
	cfg.WebAddr = config.DefaultWebAddr

	pipeline, err := cfg.Pipeline()
	require.NoError(t, err)

	require.Len(t, pipeline.Receivers, 1)
	assert.Equal(t, config.SourceStdin, pipeline.Receivers[0].Source)
	assert.Equal(t, config.DefaultLogDir, pipeline.Log.Dir)
	assert.False(t, pipeline.MQTT.Enable)
	assert.False(t, pipeline.Web.Enable)
}
