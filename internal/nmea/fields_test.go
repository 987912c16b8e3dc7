package nmea

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected int
		err      error
	}{
		{name: "Simple value", token: "08", expected: 8},
		{name: "Multi digit", token: "12345", expected: 12345},
		{name: "Explicit plus", token: "+7", expected: 7},
		{name: "Negative", token: "-210", expected: -210},
		{name: "Zero", token: "0", expected: 0},
		{name: "Empty token", token: "", err: ErrNoData},
		{name: "Bare sign", token: "-", err: ErrParseFailed},
		{name: "Trailing garbage", token: "12a", err: ErrParseFailed},
		{name: "Decimal point", token: "1.5", err: ErrParseFailed},
		{name: "Hex digits", token: "0x1F", err: ErrParseFailed},
		{name: "Oversized", token: "1234567890123456789", err: ErrParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseInt([]byte(tt.token))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected float64
		err      error
	}{
		{name: "Integer form", token: "545", expected: 545},
		{name: "Fraction", token: "545.4", expected: 545.4},
		{name: "Leading zero fraction", token: "0.9", expected: 0.9},
		{name: "Coordinate magnitude", token: "4807.038", expected: 4807.038},
		{name: "Negative", token: "-3.1", expected: -3.1},
		{name: "Explicit plus", token: "+12.5", expected: 12.5},
		{name: "Empty token", token: "", err: ErrNoData},
		{name: "Only dot", token: ".", err: ErrParseFailed},
		{name: "Exponent rejected", token: "1e5", err: ErrParseFailed},
		{name: "Infinity rejected", token: "Inf", err: ErrParseFailed},
		{name: "Double dot", token: "1.2.3", err: ErrParseFailed},
		{name: "Trailing garbage", token: "3.1M", err: ErrParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseFloat([]byte(tt.token))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-9)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected TimeOfDay
		err      error
	}{
		{
			name:     "Whole seconds",
			token:    "123519",
			expected: TimeOfDay{Hour: 12, Minute: 35, Second: 19, Valid: true},
		},
		{
			name:     "Fractional seconds",
			token:    "160012.71",
			expected: TimeOfDay{Hour: 16, Minute: 0, Second: 12, Millisecond: 710, Valid: true},
		},
		{
			name:     "Millisecond precision",
			token:    "000000.123",
			expected: TimeOfDay{Millisecond: 123, Valid: true},
		},
		{
			name:     "Sub-millisecond truncated",
			token:    "235959.9994",
			expected: TimeOfDay{Hour: 23, Minute: 59, Second: 59, Millisecond: 999, Valid: true},
		},
		{name: "Empty token", token: "", err: ErrNoData},
		{name: "Too short", token: "1235", err: ErrParseFailed},
		{name: "Hour out of range", token: "240000", err: ErrParseFailed},
		{name: "Minute out of range", token: "126000", err: ErrParseFailed},
		{name: "Second out of range", token: "123060", err: ErrParseFailed},
		{name: "Bare dot", token: "123519.", err: ErrParseFailed},
		{name: "Letters", token: "12a519", err: ErrParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseTimeOfDay([]byte(tt.token))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseDateCenturyWindow(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected Date
		err      error
	}{
		{
			name:     "Window maps 94 to 1994",
			token:    "230394",
			expected: Date{Day: 23, Month: 3, Year: 1994, Valid: true},
		},
		{
			name:     "Window maps 80 to 1980",
			token:    "010180",
			expected: Date{Day: 1, Month: 1, Year: 1980, Valid: true},
		},
		{
			name:     "Window maps 79 to 2079",
			token:    "311279",
			expected: Date{Day: 31, Month: 12, Year: 2079, Valid: true},
		},
		{
			name:     "Window maps 00 to 2000",
			token:    "150600",
			expected: Date{Day: 15, Month: 6, Year: 2000, Valid: true},
		},
		{name: "Empty token", token: "", err: ErrNoData},
		{name: "Wrong width", token: "2303941", err: ErrParseFailed},
		{name: "Day zero", token: "000394", err: ErrParseFailed},
		{name: "Month thirteen", token: "231394", err: ErrParseFailed},
		{name: "Letters", token: "23mar4", err: ErrParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseDate([]byte(tt.token))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hemi     string
		expected float64
		err      error
	}{
		{name: "Latitude north", value: "4807.038", hemi: "N", expected: 48.1173},
		{name: "Latitude south", value: "4807.038", hemi: "S", expected: -48.1173},
		{name: "Longitude east", value: "01131.000", hemi: "E", expected: 11.5166667},
		{name: "Longitude west", value: "12328.500", hemi: "W", expected: -123.475},
		{name: "Short degrees", value: "950.00", hemi: "N", expected: 9.8333333},
		{name: "No fraction", value: "4807", hemi: "N", expected: 48.1166667},
		{name: "Empty value", value: "", hemi: "N", err: ErrNoData},
		{name: "Empty hemisphere", value: "4807.038", hemi: "", err: ErrNoData},
		{name: "Bad hemisphere", value: "4807.038", hemi: "X", err: ErrParseFailed},
		{name: "Wide hemisphere", value: "4807.038", hemi: "NE", err: ErrParseFailed},
		{name: "Too few digits", value: "07.038", hemi: "N", err: ErrParseFailed},
		{name: "Minutes out of range", value: "4861.000", hemi: "N", err: ErrParseFailed},
		{name: "Letters", value: "48a7.038", hemi: "N", err: ErrParseFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseCoordinate([]byte(tt.value), []byte(tt.hemi))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-6)
		})
	}
}

func TestStripChecksum(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "Suffix removed", token: "W*6B", expected: "W"},
		{name: "Empty field with suffix", token: "*47", expected: ""},
		{name: "No suffix", token: "545.4", expected: "545.4"},
		{name: "Star without hex", token: "W*ZZ", expected: "W*ZZ"},
		{name: "Short token", token: "*4", expected: "*4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(stripChecksum([]byte(tt.token))))
		})
	}
}

func TestStickyFieldWrappers(t *testing.T) {
	t.Run("Float keeps previous value on bad token", func(t *testing.T) {
		f := Float{Value: 545.4, Valid: true}
		assert.False(t, f.set(nil))
		assert.False(t, f.set([]byte("x")))
		assert.Equal(t, 545.4, f.Value)
		assert.True(t, f.Valid)
	})

	t.Run("Signed direction", func(t *testing.T) {
		var f Float
		require.True(t, f.setSigned([]byte("003.1"), []byte("W")))
		assert.InDelta(t, -3.1, f.Value, 1e-9)
		require.True(t, f.setSigned([]byte("011.3"), []byte("E")))
		assert.InDelta(t, 11.3, f.Value, 1e-9)
		assert.False(t, f.setSigned([]byte("011.3"), []byte("Q")))
		assert.InDelta(t, 11.3, f.Value, 1e-9)
	})

	t.Run("Char requires single byte", func(t *testing.T) {
		var c Char
		assert.False(t, c.set([]byte("AV")))
		assert.False(t, c.set(nil))
		require.True(t, c.set([]byte("A")))
		assert.Equal(t, byte('A'), c.Value)
	})

	t.Run("Text truncates and never aliases", func(t *testing.T) {
		var x Text
		tok := []byte("WPT-ALPHA")
		require.True(t, x.set(tok))
		tok[0] = 'Z'
		assert.Equal(t, "WPT-ALPHA", x.String())
		assert.Equal(t, 9, x.Len())

		long := make([]byte, 100)
		for i := range long {
			long[i] = 'a'
		}
		require.True(t, x.set(long))
		assert.Equal(t, maxTextLen, x.Len())
	})

	t.Run("Date from parts", func(t *testing.T) {
		var d Date
		require.True(t, d.setParts([]byte("11"), []byte("03"), []byte("2004")))
		assert.Equal(t, Date{Day: 11, Month: 3, Year: 2004, Valid: true}, d)
		assert.False(t, d.setParts([]byte("11"), []byte(""), []byte("2004")))
		assert.Equal(t, 2004, d.Year)
	})
}
