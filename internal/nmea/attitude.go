package nmea

// AttitudeState is the turn-rate and rudder state of one source.
type AttitudeState struct {
	RateOfTurn            Float // degrees per minute, negative to port
	RateOfTurnStatus      Char
	RudderStarboard       Float // degrees, negative means turn-to-port demand
	RudderStarboardStatus Char
	RudderPort            Float // degrees, dual-rudder vessels only
	RudderPortStatus      Char
}

// applyROT maps a ROT rate-of-turn sentence: rate (1), status (2).
func applyROT(c *Context, t *TokenSet) {
	a := c.attitude
	a.RateOfTurn.set(t.Field(1))
	a.RateOfTurnStatus.set(t.Field(2))
}

// applyRSA maps an RSA rudder angle sentence: starboard angle (1) and
// status (2), port angle (3) and status (4).
func applyRSA(c *Context, t *TokenSet) {
	a := c.attitude
	a.RudderStarboard.set(t.Field(1))
	a.RudderStarboardStatus.set(t.Field(2))
	a.RudderPort.set(t.Field(3))
	a.RudderPortStatus.set(t.Field(4))
}
