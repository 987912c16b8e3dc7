package nmea

// MaxTransducers caps the XDR measurement table; the 82-character sentence
// convention holds about six quadruples.
const MaxTransducers = 6

const transducerIDLen = 8

// Transducer is one XDR measurement quadruple.
type Transducer struct {
	Kind  byte // transducer type letter: 'C' temperature, 'P' pressure, 'A' angle, ...
	Value float64
	Unit  byte // unit letter, 0 when the sentence omitted it
	id    [transducerIDLen]byte
	idLen uint8
}

// Name returns the transducer identifier, truncated to eight characters.
func (t Transducer) Name() string { return string(t.id[:t.idLen]) }

// SensorState is the merged state of the vessel's environmental and log
// sensors: depth, water, wind and the generic XDR measurement table.
type SensorState struct {
	DepthBelowTransducer  Float // meters
	Depth                 Float // meters below surface (DPT)
	KeelOffset            Float // meters, positive above transducer
	WaterTemperature      Float // Celsius
	WindAngle             Float // degrees (MWV)
	WindReference         Char  // 'R' relative, 'T' true
	WindSpeed             Float // in WindSpeedUnit units
	WindSpeedUnit         Char  // 'N' knots, 'M' m/s, 'K' km/h
	WindStatus            Char
	WindDirectionTrue     Float // degrees (MWD)
	WindDirectionMagnetic Float
	WindSpeedKnots        Float
	WindSpeedMS           Float
	WaterSpeed            Float // knots (VHW)
	WaterHeadingTrue      Float
	WaterHeadingMagnetic  Float
	DistanceTotal         Float // nautical miles (VLW)
	DistanceSinceReset    Float
	Transducers           [MaxTransducers]Transducer
	TransducerCount       Int
}

// applyDBT maps a DBT depth-below-transducer sentence; the meters value
// sits in field 3.
func applyDBT(c *Context, t *TokenSet) {
	c.sensor.DepthBelowTransducer.set(t.Field(3))
}

// applyDPT maps a DPT depth sentence: depth in meters (1), keel offset (2).
func applyDPT(c *Context, t *TokenSet) {
	s := c.sensor
	s.Depth.set(t.Field(1))
	s.KeelOffset.set(t.Field(2))
}

// applyMTW maps an MTW water temperature sentence.
func applyMTW(c *Context, t *TokenSet) {
	c.sensor.WaterTemperature.set(t.Field(1))
}

// applyMWV maps an MWV wind sentence: angle (1), reference (2), speed (3),
// speed unit (4), status (5).
func applyMWV(c *Context, t *TokenSet) {
	s := c.sensor
	s.WindAngle.set(t.Field(1))
	s.WindReference.set(t.Field(2))
	s.WindSpeed.set(t.Field(3))
	s.WindSpeedUnit.set(t.Field(4))
	s.WindStatus.set(t.Field(5))
}

// applyMWD maps an MWD wind direction and speed sentence: true direction
// (1), magnetic direction (3), speed in knots (5) and in m/s (7).
func applyMWD(c *Context, t *TokenSet) {
	s := c.sensor
	s.WindDirectionTrue.set(t.Field(1))
	s.WindDirectionMagnetic.set(t.Field(3))
	s.WindSpeedKnots.set(t.Field(5))
	s.WindSpeedMS.set(t.Field(7))
}

// applyVHW maps a VHW water speed and heading sentence: true heading (1),
// magnetic heading (3), speed in knots (5).
func applyVHW(c *Context, t *TokenSet) {
	s := c.sensor
	s.WaterHeadingTrue.set(t.Field(1))
	s.WaterHeadingMagnetic.set(t.Field(3))
	s.WaterSpeed.set(t.Field(5))
}

// applyVLW maps a VLW distance log sentence: cumulative distance (1),
// distance since reset (3), both nautical miles.
func applyVLW(c *Context, t *TokenSet) {
	s := c.sensor
	s.DistanceTotal.set(t.Field(1))
	s.DistanceSinceReset.set(t.Field(3))
}

// applyXDR maps an XDR transducer sentence: repeating (type, value, unit,
// id) quadruples from field 1. Quadruples with no decodable value are
// skipped; the table updates only when at least one survives.
func applyXDR(c *Context, t *TokenSet) {
	s := c.sensor
	n := 0
	for base := 1; base+3 < t.Count() && n < MaxTransducers; base += 4 {
		kind := t.Field(base)
		value, err := parseFloat(t.Field(base + 1))
		if len(kind) != 1 || err != nil {
			continue
		}
		tr := &s.Transducers[n]
		tr.Kind = kind[0]
		tr.Value = value
		tr.Unit = 0
		if unit := t.Field(base + 2); len(unit) == 1 {
			tr.Unit = unit[0]
		}
		tr.idLen = uint8(copy(tr.id[:], t.Field(base+3)))
		n++
	}
	if n > 0 {
		s.TransducerCount.Value, s.TransducerCount.Valid = n, true
	}
}
