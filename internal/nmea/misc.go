package nmea

// MiscState collects the sentences that fit no dedicated module: the MDA
// meteorological composite, VBW dual speed components and the STN talker
// number.
type MiscState struct {
	PressureInches          Float
	PressureBars            Float
	AirTemperature          Float // Celsius
	WaterTemperature        Float // Celsius
	RelativeHumidity        Float // percent
	AbsoluteHumidity        Float // percent
	DewPoint                Float // Celsius
	WindDirectionTrue       Float // degrees
	WindDirectionMagnetic   Float
	WindSpeedKnots          Float
	WindSpeedMS             Float
	WaterSpeedLongitudinal  Float // knots, positive ahead
	WaterSpeedTransverse    Float // knots, positive starboard
	WaterSpeedStatus        Char
	GroundSpeedLongitudinal Float
	GroundSpeedTransverse   Float
	GroundSpeedStatus       Char
	TalkerNumber            Int
}

// applyMDA maps an MDA meteorological composite sentence.
//
//	1: pressure inHg   3: pressure bar   5: air temp     7: water temp
//	9: rel humidity   10: abs humidity  11: dew point
//	13: wind dir true 15: wind dir mag  17: wind knots  19: wind m/s
func applyMDA(c *Context, t *TokenSet) {
	m := c.misc
	m.PressureInches.set(t.Field(1))
	m.PressureBars.set(t.Field(3))
	m.AirTemperature.set(t.Field(5))
	m.WaterTemperature.set(t.Field(7))
	m.RelativeHumidity.set(t.Field(9))
	m.AbsoluteHumidity.set(t.Field(10))
	m.DewPoint.set(t.Field(11))
	m.WindDirectionTrue.set(t.Field(13))
	m.WindDirectionMagnetic.set(t.Field(15))
	m.WindSpeedKnots.set(t.Field(17))
	m.WindSpeedMS.set(t.Field(19))
}

// applyVBW maps a VBW dual ground/water speed sentence: water longitudinal
// (1) and transverse (2) with status (3), ground longitudinal (4) and
// transverse (5) with status (6).
func applyVBW(c *Context, t *TokenSet) {
	m := c.misc
	m.WaterSpeedLongitudinal.set(t.Field(1))
	m.WaterSpeedTransverse.set(t.Field(2))
	m.WaterSpeedStatus.set(t.Field(3))
	m.GroundSpeedLongitudinal.set(t.Field(4))
	m.GroundSpeedTransverse.set(t.Field(5))
	m.GroundSpeedStatus.set(t.Field(6))
}

// applySTN maps an STN talker id number sentence.
func applySTN(c *Context, t *TokenSet) {
	c.misc.TalkerNumber.set(t.Field(1))
}
