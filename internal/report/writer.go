// Package report writes position fixes as CSV records through the
// rotating log.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"go0183/internal/logging"
	"go0183/internal/nmea"
)

// RecordFix is the record type tag of a position fix line.
const RecordFix = "FIX"

// Writer formats decoded position state as FIX records and appends them
// to the current log file.
type Writer struct {
	logRotator *logging.LogRotator
	logger     *logrus.Logger
}

// NewWriter creates a new fix writer.
func NewWriter(logRotator *logging.LogRotator, logger *logrus.Logger) *Writer {
	return &Writer{
		logRotator: logRotator,
		logger:     logger,
	}
}

// WriteFix writes one FIX record for the named receiver. States without a
// usable position are skipped. Fields the receiver has not reported yet
// are left empty.
func (w *Writer) WriteFix(receiver string, g nmea.GNSSState) error {
	if receiver == "" {
		return fmt.Errorf("receiver name cannot be empty")
	}

	if !g.HasFix {
		// No usable position yet.
		return nil
	}

	csvLine := formatCSV(receiver, g)

	writer, err := w.logRotator.GetWriter()
	if err != nil {
		return fmt.Errorf("failed to get log writer: %w", err)
	}

	if _, err := writer.Write([]byte(csvLine + "\n")); err != nil {
		return fmt.Errorf("failed to write to log: %w", err)
	}

	return nil
}

// formatCSV formats one position state as a FIX record.
func formatCSV(receiver string, g nmea.GNSSState) string {
	fields := []string{
		RecordFix,
		receiver,
		formatDate(g.Date),
		formatClock(g.Time),
		formatFloat(g.Latitude, 6),
		formatFloat(g.Longitude, 6),
		formatFloat(g.Altitude, 1),
		formatFloat(g.SpeedKnots, 1),
		formatFloat(g.CourseTrue, 1),
		formatInt(g.SatellitesUsed),
		formatFloat(g.HDOP, 1),
		formatInt(g.FixQuality),
	}

	return strings.Join(fields, ",")
}

func formatDate(d nmea.Date) string {
	if !d.Valid {
		return ""
	}
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

func formatClock(t nmea.TimeOfDay) string {
	if !t.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
}

func formatFloat(f nmea.Float, prec int) string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'f', prec, 64)
}

func formatInt(n nmea.Int) string {
	if !n.Valid {
		return ""
	}
	return strconv.Itoa(n.Value)
}
