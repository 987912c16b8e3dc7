package source

import (
	"context"
	"fmt"
	"io"

	"github.com/jacobsa/go-serial/serial"
)

// Serial reads sentences from a serial port. NMEA-0183 talkers ship
// 8N1 framing; only the device path and baud rate vary per installation.
type Serial struct {
	port io.ReadWriteCloser
}

// NewSerial opens a serial port in 8N1 mode at the given baud rate.
func NewSerial(device string, baud uint) (*Serial, error) {
	port, err := serial.Open(serial.OpenOptions{
		PortName:        device,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		ParityMode:      serial.PARITY_NONE,
		MinimumReadSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", device, err)
	}
	return &Serial{port: port}, nil
}

// Lines reads the port until ctx is done or the port is closed.
func (s *Serial) Lines(ctx context.Context, out chan<- []byte) error {
	return scanLines(ctx, s.port, out)
}

// Close closes the port, unblocking a pending read.
func (s *Serial) Close() error { return s.port.Close() }
