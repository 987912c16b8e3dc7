package nmea

// Field decoding primitives. All work directly on token spans and never
// allocate. parseInt and parseFloat are deliberately stricter than strconv:
// NMEA numerics are plain decimal with an optional sign and fraction, so
// exponents, infinities and hex forms are malformed here.

// maxNumericDigits keeps the mantissa inside int64 range.
const maxNumericDigits = 18

var pow10 = [maxNumericDigits + 1]float64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18,
}

// parseInt decodes a signed decimal integer token.
func parseInt(tok []byte) (int, error) {
	if len(tok) == 0 {
		return 0, ErrNoData
	}
	i := 0
	neg := false
	if tok[0] == '+' || tok[0] == '-' {
		neg = tok[0] == '-'
		i++
	}
	if i == len(tok) {
		return 0, ErrParseFailed
	}
	n := 0
	digits := 0
	for ; i < len(tok); i++ {
		b := tok[i]
		if b < '0' || b > '9' {
			return 0, ErrParseFailed
		}
		if digits++; digits > maxNumericDigits {
			return 0, ErrParseFailed
		}
		n = n*10 + int(b-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

// parseFloat decodes a decimal token with an optional sign and fraction.
func parseFloat(tok []byte) (float64, error) {
	if len(tok) == 0 {
		return 0, ErrNoData
	}
	i := 0
	neg := false
	if tok[0] == '+' || tok[0] == '-' {
		neg = tok[0] == '-'
		i++
	}
	var mant int64
	digits := 0
	frac := 0
	for ; i < len(tok); i++ {
		b := tok[i]
		if b < '0' || b > '9' {
			break
		}
		if digits++; digits > maxNumericDigits {
			return 0, ErrParseFailed
		}
		mant = mant*10 + int64(b-'0')
	}
	if i < len(tok) && tok[i] == '.' {
		for i++; i < len(tok); i++ {
			b := tok[i]
			if b < '0' || b > '9' {
				return 0, ErrParseFailed
			}
			if digits++; digits > maxNumericDigits {
				return 0, ErrParseFailed
			}
			mant = mant*10 + int64(b-'0')
			frac++
		}
	}
	if digits == 0 || i != len(tok) {
		return 0, ErrParseFailed
	}
	v := float64(mant) / pow10[frac]
	if neg {
		v = -v
	}
	return v, nil
}

// parseTimeOfDay decodes an "hhmmss" or "hhmmss.sss" token. Fractional
// digits beyond milliseconds are truncated.
func parseTimeOfDay(tok []byte) (TimeOfDay, error) {
	var v TimeOfDay
	if len(tok) == 0 {
		return v, ErrNoData
	}
	if len(tok) < 6 {
		return v, ErrParseFailed
	}
	h, ok1 := twoDigits(tok[0:2])
	m, ok2 := twoDigits(tok[2:4])
	s, ok3 := twoDigits(tok[4:6])
	if !ok1 || !ok2 || !ok3 || h > 23 || m > 59 || s > 59 {
		return v, ErrParseFailed
	}
	ms := 0
	if len(tok) > 6 {
		if tok[6] != '.' || len(tok) == 7 {
			return v, ErrParseFailed
		}
		scale := 100
		for _, b := range tok[7:] {
			if b < '0' || b > '9' {
				return v, ErrParseFailed
			}
			ms += int(b-'0') * scale
			scale /= 10
		}
	}
	v.Hour, v.Minute, v.Second, v.Millisecond, v.Valid = h, m, s, ms, true
	return v, nil
}

// parseDate decodes a "ddmmyy" token. Two-digit years are windowed on the
// GPS epoch: 80..99 map to 1980..1999 and 00..79 map to 2000..2079. This is
// the single windowing policy for the whole engine.
func parseDate(tok []byte) (Date, error) {
	var v Date
	if len(tok) == 0 {
		return v, ErrNoData
	}
	if len(tok) != 6 {
		return v, ErrParseFailed
	}
	d, ok1 := twoDigits(tok[0:2])
	m, ok2 := twoDigits(tok[2:4])
	y, ok3 := twoDigits(tok[4:6])
	if !ok1 || !ok2 || !ok3 || d < 1 || d > 31 || m < 1 || m > 12 {
		return v, ErrParseFailed
	}
	if y >= 80 {
		y += 1900
	} else {
		y += 2000
	}
	v.Day, v.Month, v.Year, v.Valid = d, m, y, true
	return v, nil
}

// parseCoordinate decodes a "ddmm.mmmm" latitude or "dddmm.mmmm" longitude
// token plus its hemisphere letter into signed decimal degrees. Minutes are
// the last two integer digits plus the fraction; south and west come out
// negative.
func parseCoordinate(value, hemi []byte) (float64, error) {
	if len(value) == 0 || len(hemi) == 0 {
		return 0, ErrNoData
	}
	if len(hemi) != 1 {
		return 0, ErrParseFailed
	}
	dot := len(value)
	for i, b := range value {
		if b == '.' {
			dot = i
			break
		}
	}
	if dot < 3 || dot > 5 {
		return 0, ErrParseFailed
	}
	deg := 0
	for _, b := range value[:dot-2] {
		if b < '0' || b > '9' {
			return 0, ErrParseFailed
		}
		deg = deg*10 + int(b-'0')
	}
	min, err := parseFloat(value[dot-2:])
	if err != nil || min >= 60 {
		return 0, ErrParseFailed
	}
	v := float64(deg) + min/60
	switch hemi[0] {
	case 'N', 'E':
		return v, nil
	case 'S', 'W':
		return -v, nil
	}
	return 0, ErrParseFailed
}

// stripChecksum removes a trailing "*hh" suffix from a token. The suffix
// rides on the last data field as an artifact of comma-splitting a framed
// sentence.
func stripChecksum(tok []byte) []byte {
	if n := len(tok); n >= 3 && tok[n-3] == '*' &&
		hexNibble(tok[n-2]) >= 0 && hexNibble(tok[n-1]) >= 0 {
		return tok[:n-3]
	}
	return tok
}

func twoDigits(b []byte) (int, bool) {
	if b[0] < '0' || b[0] > '9' || b[1] < '0' || b[1] > '9' {
		return 0, false
	}
	return int(b[0]-'0')*10 + int(b[1]-'0'), true
}

// Sticky field wrappers. Every decoded state field is a value paired with
// its own validity flag. The set methods implement the shared mapper step
// (token present, non-empty and well formed, then store) exactly once; on
// any failure the previous value and flag are kept.

// Float is a decoded floating-point field.
type Float struct {
	Value float64
	Valid bool
}

func (f *Float) set(tok []byte) bool {
	v, err := parseFloat(tok)
	if err != nil {
		return false
	}
	f.Value, f.Valid = v, true
	return true
}

// setCoordinate stores a coordinate/hemisphere token pair as signed
// decimal degrees.
func (f *Float) setCoordinate(value, hemi []byte) bool {
	v, err := parseCoordinate(value, hemi)
	if err != nil {
		return false
	}
	f.Value, f.Valid = v, true
	return true
}

// setSigned stores a magnitude whose sign rides in a separate direction
// token: 'E' and 'N' positive, 'W' and 'S' negative. Magnetic variation
// and compass deviation fields use this form.
func (f *Float) setSigned(value, dir []byte) bool {
	v, err := parseFloat(value)
	if err != nil || len(dir) != 1 {
		return false
	}
	switch dir[0] {
	case 'E', 'N':
	case 'W', 'S':
		v = -v
	default:
		return false
	}
	f.Value, f.Valid = v, true
	return true
}

// Int is a decoded integer field.
type Int struct {
	Value int
	Valid bool
}

func (n *Int) set(tok []byte) bool {
	v, err := parseInt(tok)
	if err != nil {
		return false
	}
	n.Value, n.Valid = v, true
	return true
}

// Char is a decoded single-character field: status letters, mode
// indicators and unit codes.
type Char struct {
	Value byte
	Valid bool
}

func (c *Char) set(tok []byte) bool {
	if len(tok) != 1 {
		return false
	}
	c.Value, c.Valid = tok[0], true
	return true
}

// TimeOfDay is a decoded UTC time-of-day field.
type TimeOfDay struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Valid       bool
}

func (t *TimeOfDay) set(tok []byte) bool {
	v, err := parseTimeOfDay(tok)
	if err != nil {
		return false
	}
	*t = v
	return true
}

// Date is a decoded calendar date field. Year carries all four digits.
type Date struct {
	Day   int
	Month int
	Year  int
	Valid bool
}

func (d *Date) set(tok []byte) bool {
	v, err := parseDate(tok)
	if err != nil {
		return false
	}
	*d = v
	return true
}

// setParts stores a date spread across separate day, month and four-digit
// year tokens, the ZDA form.
func (d *Date) setParts(day, month, year []byte) bool {
	dd, err1 := parseInt(day)
	mm, err2 := parseInt(month)
	yy, err3 := parseInt(year)
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	if dd < 1 || dd > 31 || mm < 1 || mm > 12 || yy < 1000 || yy > 9999 {
		return false
	}
	d.Day, d.Month, d.Year, d.Valid = dd, mm, yy, true
	return true
}

// maxTextLen bounds every text field so contexts stay fixed-size. The
// longest token in practice is an AIS payload fragment at 62 characters.
const maxTextLen = 64

// Text is a decoded string field held in a fixed buffer; the engine never
// retains the caller's sentence bytes. Oversized tokens are truncated.
type Text struct {
	Valid bool
	n     uint8
	buf   [maxTextLen]byte
}

func (t *Text) set(tok []byte) bool {
	if len(tok) == 0 {
		return false
	}
	t.n = uint8(copy(t.buf[:], tok))
	t.Valid = true
	return true
}

// String returns the stored text.
func (t Text) String() string { return string(t.buf[:t.n]) }

// Len returns the stored length in bytes.
func (t Text) Len() int { return int(t.n) }
