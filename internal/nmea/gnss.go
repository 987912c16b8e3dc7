package nmea

// MaxSatellites caps the GSV satellite table: nine burst sentences of four
// blocks each.
const MaxSatellites = 36

// Satellite is one entry in the GSV satellite table. SNR is -1 while the
// satellite is not being tracked.
type Satellite struct {
	PRN       int
	Elevation int // degrees, 0..90
	Azimuth   int // degrees true, 0..359
	SNR       int // dB
}

// GNSSState is the merged position/velocity/time state of one source.
// Individual fields are sticky; HasFix reflects the most recent
// position-bearing sentence: true after a usable position, false after an
// explicit void or no-fix report.
type GNSSState struct {
	Latitude          Float // decimal degrees, north positive
	Longitude         Float // decimal degrees, east positive
	Altitude          Float // meters above mean sea level
	GeoidSeparation   Float // meters
	SpeedKnots        Float
	CourseTrue        Float // degrees
	CourseMagnetic    Float // degrees
	MagneticVariation Float // degrees, east positive
	Time              TimeOfDay
	Date              Date
	LocalZoneMinutes  Int  // offset from UTC (ZDA)
	FixQuality        Int  // GGA: 0 invalid, 1 GPS, 2 differential, ...
	Status            Char // 'A' data valid, 'V' void
	SelectionMode     Char // GSA: 'M' manual, 'A' automatic
	FixType           Int  // GSA: 1 none, 2 two-dimensional, 3 three-dimensional
	PosMode           Text // GNS: one mode letter per constellation
	SatellitesUsed    Int
	SatellitesInView  Int
	PDOP              Float
	HDOP              Float
	VDOP              Float
	DGPSAge           Float // seconds since the last correction
	DGPSStation       Int
	RangeRMS          Float // GST: RMS of pseudorange residuals
	LatitudeError     Float // meters, one sigma
	LongitudeError    Float // meters, one sigma
	AltitudeError     Float // meters, one sigma
	Datum             Text
	ReferenceDatum    Text
	UsedPRN           [12]int // satellite ids in the GSA solution
	UsedPRNCount      Int
	Satellites        [MaxSatellites]Satellite
	SatelliteCount    Int // updates when a GSV burst completes
	HasFix            bool

	gsvExpected int // sentences in the burst being assembled
	gsvNext     int // next burst sentence number expected
	gsvCount    int // satellites collected so far
}

// applyGGA maps a GGA fix sentence.
//
//	1: utc time         2: latitude    3: n/s
//	4: longitude        5: e/w         6: fix quality
//	7: satellites used  8: hdop        9: altitude    10: altitude units
//	11: geoid sep      12: sep units  13: dgps age    14: dgps station
func applyGGA(c *Context, t *TokenSet) {
	g := c.gnss
	g.Time.set(t.Field(1))
	okLat := g.Latitude.setCoordinate(t.Field(2), t.Field(3))
	okLon := g.Longitude.setCoordinate(t.Field(4), t.Field(5))
	g.SatellitesUsed.set(t.Field(7))
	g.HDOP.set(t.Field(8))
	g.Altitude.set(t.Field(9))
	g.GeoidSeparation.set(t.Field(11))
	g.DGPSAge.set(t.Field(13))
	g.DGPSStation.set(t.Field(14))
	if g.FixQuality.set(t.Field(6)) {
		if g.FixQuality.Value == 0 {
			g.HasFix = false
		} else if okLat && okLon {
			g.HasFix = true
		}
	}
}

// applyRMC maps an RMC recommended-minimum sentence.
//
//	1: utc time   2: status     3: latitude   4: n/s
//	5: longitude  6: e/w        7: speed kn   8: course true
//	9: date      10: mag var   11: var e/w
func applyRMC(c *Context, t *TokenSet) {
	g := c.gnss
	g.Time.set(t.Field(1))
	okLat := g.Latitude.setCoordinate(t.Field(3), t.Field(4))
	okLon := g.Longitude.setCoordinate(t.Field(5), t.Field(6))
	g.SpeedKnots.set(t.Field(7))
	g.CourseTrue.set(t.Field(8))
	g.Date.set(t.Field(9))
	g.MagneticVariation.setSigned(t.Field(10), t.Field(11))
	if g.Status.set(t.Field(2)) {
		switch g.Status.Value {
		case 'A':
			if okLat && okLon {
				g.HasFix = true
			}
		case 'V':
			g.HasFix = false
		}
	}
}

// applyGLL maps a GLL position sentence: latitude pair, longitude pair,
// time, status.
func applyGLL(c *Context, t *TokenSet) {
	g := c.gnss
	okLat := g.Latitude.setCoordinate(t.Field(1), t.Field(2))
	okLon := g.Longitude.setCoordinate(t.Field(3), t.Field(4))
	g.Time.set(t.Field(5))
	if g.Status.set(t.Field(6)) {
		switch g.Status.Value {
		case 'A':
			if okLat && okLon {
				g.HasFix = true
			}
		case 'V':
			g.HasFix = false
		}
	}
}

// applyGNS maps a GNS multi-constellation fix sentence.
//
//	1: utc time   2: latitude   3: n/s   4: longitude  5: e/w
//	6: pos mode   7: satellites used     8: hdop       9: altitude
//	10: geoid sep 11: dgps age 12: dgps station
func applyGNS(c *Context, t *TokenSet) {
	g := c.gnss
	g.Time.set(t.Field(1))
	okLat := g.Latitude.setCoordinate(t.Field(2), t.Field(3))
	okLon := g.Longitude.setCoordinate(t.Field(4), t.Field(5))
	g.SatellitesUsed.set(t.Field(7))
	g.HDOP.set(t.Field(8))
	g.Altitude.set(t.Field(9))
	g.GeoidSeparation.set(t.Field(10))
	g.DGPSAge.set(t.Field(11))
	g.DGPSStation.set(t.Field(12))
	if g.PosMode.set(t.Field(6)) {
		if noGNSFix(t.Field(6)) {
			g.HasFix = false
		} else if okLat && okLon {
			g.HasFix = true
		}
	}
}

// noGNSFix reports whether every constellation mode letter says no fix.
func noGNSFix(mode []byte) bool {
	for _, b := range mode {
		if b != 'N' {
			return false
		}
	}
	return true
}

// applyGSA maps a GSA solution sentence.
//
//	1: selection mode  2: fix type  3..14: used prn
//	15: pdop          16: hdop     17: vdop
func applyGSA(c *Context, t *TokenSet) {
	g := c.gnss
	g.SelectionMode.set(t.Field(1))
	g.FixType.set(t.Field(2))
	n := 0
	for i := 3; i <= 14; i++ {
		prn, err := parseInt(t.Field(i))
		if err != nil {
			continue
		}
		g.UsedPRN[n] = prn
		n++
	}
	if n > 0 {
		for i := n; i < len(g.UsedPRN); i++ {
			g.UsedPRN[i] = 0
		}
		g.UsedPRNCount.Value, g.UsedPRNCount.Valid = n, true
	}
	g.PDOP.set(t.Field(15))
	g.HDOP.set(t.Field(16))
	g.VDOP.set(t.Field(17))
}

// applyGSV maps one sentence of a GSV satellites-in-view burst. Bursts are
// assembled in order; the satellite table count updates only when the
// final sentence of a burst lands, so readers never see a half burst as
// complete.
//
//	1: sentences in burst  2: sentence number  3: satellites in view
//	4..19: up to four (prn, elevation, azimuth, snr) blocks
func applyGSV(c *Context, t *TokenSet) {
	g := c.gnss
	total, err1 := parseInt(t.Field(1))
	num, err2 := parseInt(t.Field(2))
	if err1 != nil || err2 != nil || total < 1 || num < 1 || num > total {
		return
	}
	g.SatellitesInView.set(t.Field(3))
	if num == 1 {
		g.gsvExpected = total
		g.gsvNext = 1
		g.gsvCount = 0
	}
	if total != g.gsvExpected || num != g.gsvNext {
		g.gsvExpected = 0 // out-of-order burst, drop it
		return
	}
	for base := 4; base+3 < t.Count() && g.gsvCount < MaxSatellites; base += 4 {
		prn, err := parseInt(t.Field(base))
		if err != nil {
			continue
		}
		sat := &g.Satellites[g.gsvCount]
		sat.PRN = prn
		sat.Elevation = intOr(t.Field(base+1), 0)
		sat.Azimuth = intOr(t.Field(base+2), 0)
		sat.SNR = intOr(t.Field(base+3), -1)
		g.gsvCount++
	}
	g.gsvNext++
	if num == g.gsvExpected {
		g.SatelliteCount.Value, g.SatelliteCount.Valid = g.gsvCount, true
		g.gsvExpected = 0
	}
}

// intOr decodes an optional integer token with a fallback.
func intOr(tok []byte, fallback int) int {
	v, err := parseInt(tok)
	if err != nil {
		return fallback
	}
	return v
}

// applyGST maps a GST pseudorange error statistics sentence: time, RMS,
// then one-sigma latitude/longitude/altitude errors in fields 6..8.
func applyGST(c *Context, t *TokenSet) {
	g := c.gnss
	g.Time.set(t.Field(1))
	g.RangeRMS.set(t.Field(2))
	g.LatitudeError.set(t.Field(6))
	g.LongitudeError.set(t.Field(7))
	g.AltitudeError.set(t.Field(8))
}

// applyVTG maps a VTG track/speed sentence: true course (1), magnetic
// course (3), speed in knots (5).
func applyVTG(c *Context, t *TokenSet) {
	g := c.gnss
	g.CourseTrue.set(t.Field(1))
	g.CourseMagnetic.set(t.Field(3))
	g.SpeedKnots.set(t.Field(5))
}

// applyZDA maps a ZDA time/date sentence: time, day, month, four-digit
// year, then the local zone offset split over hour and minute fields.
func applyZDA(c *Context, t *TokenSet) {
	g := c.gnss
	g.Time.set(t.Field(1))
	g.Date.setParts(t.Field(2), t.Field(3), t.Field(4))
	h, err1 := parseInt(t.Field(5))
	m, err2 := parseInt(t.Field(6))
	if err1 == nil && err2 == nil {
		off := h*60 + m
		if h < 0 {
			off = h*60 - m
		}
		g.LocalZoneMinutes.Value, g.LocalZoneMinutes.Valid = off, true
	}
}

// applyDTM maps a DTM datum reference sentence: local datum code (1) and
// reference datum (8).
func applyDTM(c *Context, t *TokenSet) {
	g := c.gnss
	g.Datum.set(t.Field(1))
	g.ReferenceDatum.set(t.Field(8))
}
