package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLogRotator_NewLogRotator(t *testing.T) {
	tests := []struct {
		name   string
		logDir string
		useUTC bool
	}{
		{
			name:   "Valid directory creation",
			logDir: "logs",
			useUTC: false,
		},
		{
			name:   "UTC timezone",
			logDir: "logs_utc",
			useUTC: true,
		},
		{
			name:   "Nested directory creation",
			logDir: "nested/deep/logs",
			useUTC: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logDir := filepath.Join(t.TempDir(), tt.logDir)

			rotator, err := NewLogRotator(logDir, tt.useUTC, testLogger())
			require.NoError(t, err)
			require.NotNil(t, rotator)
			defer rotator.Close()

			assert.DirExists(t, logDir)

			writer, err := rotator.GetWriter()
			assert.NoError(t, err)
			assert.NotNil(t, writer)

			currentFile := rotator.GetCurrentLogFile()
			assert.NotEmpty(t, currentFile)
			assert.FileExists(t, currentFile)
		})
	}
}

func TestLogRotator_GetWriter(t *testing.T) {
	rotator, err := NewLogRotator(t.TempDir(), false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	writer, err := rotator.GetWriter()
	require.NoError(t, err)

	record := "FIX,gps1,2026/08/25,12:35:19.000,48.117300,11.516670,545.4,,,8,0.9,1\n"
	n, err := writer.Write([]byte(record))
	assert.NoError(t, err)
	assert.Equal(t, len(record), n)

	content, err := os.ReadFile(rotator.GetCurrentLogFile())
	assert.NoError(t, err)
	assert.Equal(t, record, string(content))
}

func TestLogRotator_GetLogFiles(t *testing.T) {
	tempDir := t.TempDir()
	rotator, err := NewLogRotator(tempDir, false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	testFiles := []string{
		"nmea_2026-01-01.log",
		"nmea_2026-01-02.log.gz",
		"nmea_2026-01-03.log",
	}
	for _, filename := range testFiles {
		err := os.WriteFile(filepath.Join(tempDir, filename), []byte("test content"), 0644)
		require.NoError(t, err)
	}

	files, err := rotator.GetLogFiles()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(files), len(testFiles))

	fileSet := make(map[string]bool)
	for _, file := range files {
		fileSet[filepath.Base(file)] = true
	}
	for _, testFile := range testFiles {
		assert.True(t, fileSet[testFile], "expected file %s not found", testFile)
	}
}

func TestLogRotator_CleanupOldLogs(t *testing.T) {
	tempDir := t.TempDir()
	rotator, err := NewLogRotator(tempDir, false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	oldFile := filepath.Join(tempDir, "nmea_2026-01-01.log")
	err = os.WriteFile(oldFile, []byte("old content"), 0644)
	require.NoError(t, err)

	oldTime := time.Now().AddDate(0, 0, -10)
	require.NoError(t, os.Chtimes(oldFile, oldTime, oldTime))

	recentFile := filepath.Join(tempDir, "nmea_2026-12-31.log")
	err = os.WriteFile(recentFile, []byte("recent content"), 0644)
	require.NoError(t, err)

	require.NoError(t, rotator.CleanupOldLogs(5))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, recentFile)
	assert.FileExists(t, rotator.GetCurrentLogFile())
}

func TestLogRotator_CleanupOldLogs_InvalidMaxDays(t *testing.T) {
	rotator, err := NewLogRotator(t.TempDir(), false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	err = rotator.CleanupOldLogs(0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "maxDays must be positive")

	err = rotator.CleanupOldLogs(-1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "maxDays must be positive")
}

func TestLogRotator_Close(t *testing.T) {
	rotator, err := NewLogRotator(t.TempDir(), false, testLogger())
	require.NoError(t, err)

	writer, err := rotator.GetWriter()
	require.NoError(t, err)
	_, err = writer.Write([]byte("test data"))
	require.NoError(t, err)

	assert.NoError(t, rotator.Close())

	writer, err = rotator.GetWriter()
	assert.Error(t, err)
	assert.Nil(t, writer)
}

func TestLogRotator_CompressLogFile(t *testing.T) {
	tempDir := t.TempDir()
	rotator, err := NewLogRotator(tempDir, false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	testDate := "2026-01-01"
	testFile := filepath.Join(tempDir, fmt.Sprintf("nmea_%s.log", testDate))
	testContent := "Test log content\nLine 2\nLine 3\n"
	require.NoError(t, os.WriteFile(testFile, []byte(testContent), 0644))

	rotator.compressLogFile(testDate)

	assert.NoFileExists(t, testFile)

	compressedFile := testFile + ".gz"
	require.FileExists(t, compressedFile)

	gzFile, err := os.Open(compressedFile)
	require.NoError(t, err)
	defer gzFile.Close()

	gzReader, err := gzip.NewReader(gzFile)
	require.NoError(t, err)
	defer gzReader.Close()

	decompressed, err := io.ReadAll(gzReader)
	require.NoError(t, err)
	assert.Equal(t, testContent, string(decompressed))
}

func TestLogRotator_RotateSameDate(t *testing.T) {
	rotator, err := NewLogRotator(t.TempDir(), false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	initialFile := rotator.GetCurrentLogFile()
	require.NotEmpty(t, initialFile)

	writer, err := rotator.GetWriter()
	require.NoError(t, err)
	_, err = writer.Write([]byte("initial content"))
	require.NoError(t, err)

	// Rotating within the same date reopens the same file.
	require.NoError(t, rotator.rotate())
	assert.Equal(t, initialFile, rotator.GetCurrentLogFile())

	writer, err = rotator.GetWriter()
	require.NoError(t, err)
	_, err = writer.Write([]byte("new content"))
	assert.NoError(t, err)
}

func TestLogRotator_ConcurrentAccess(t *testing.T) {
	rotator, err := NewLogRotator(t.TempDir(), false, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	done := make(chan bool)
	numGoroutines := 10
	numOps := 100

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer func() { done <- true }()

			for j := 0; j < numOps; j++ {
				writer, err := rotator.GetWriter()
				if err != nil {
					t.Errorf("GetWriter failed: %v", err)
					return
				}
				data := fmt.Sprintf("goroutine-%d-op-%d\n", id, j)
				if _, err := writer.Write([]byte(data)); err != nil {
					t.Errorf("Write failed: %v", err)
					return
				}
				if rotator.GetCurrentLogFile() == "" {
					t.Error("GetCurrentLogFile returned empty string")
					return
				}
			}
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		<-done
	}

	content, err := os.ReadFile(rotator.GetCurrentLogFile())
	assert.NoError(t, err)
	assert.Contains(t, string(content), "goroutine-0-op-0")
	assert.Contains(t, string(content), fmt.Sprintf("goroutine-%d-op-%d", numGoroutines-1, numOps-1))
}

func TestLogRotator_UTCTimezone(t *testing.T) {
	rotator, err := NewLogRotator(t.TempDir(), true, testLogger())
	require.NoError(t, err)
	defer rotator.Close()

	currentFile := rotator.GetCurrentLogFile()
	assert.FileExists(t, currentFile)
	assert.Contains(t, currentFile, time.Now().UTC().Format("2006-01-02"))
}

func BenchmarkLogRotator_Write(b *testing.B) {
	rotator, err := NewLogRotator(b.TempDir(), false, testLogger())
	require.NoError(b, err)
	defer rotator.Close()

	writer, err := rotator.GetWriter()
	require.NoError(b, err)

	data := []byte("FIX,gps1,2026/08/25,12:35:19.000,48.117300,11.516670,545.4,,,8,0.9,1\n")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := writer.Write(data); err != nil {
			b.Fatal(err)
		}
	}
}
