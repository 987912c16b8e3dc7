package nmea

// HeadingState is the compass state of one source.
type HeadingState struct {
	HeadingTrue     Float // degrees
	HeadingMagnetic Float // degrees
	Deviation       Float // degrees, east positive
	Variation       Float // degrees, east positive
	Mode            Char  // THS: 'A' autonomous, 'E' estimated, 'M' manual, 'S' simulator, 'V' invalid
}

// applyHDG maps an HDG sentence: magnetic heading (1), deviation with its
// direction (2, 3), variation with its direction (4, 5).
func applyHDG(c *Context, t *TokenSet) {
	h := c.heading
	h.HeadingMagnetic.set(t.Field(1))
	h.Deviation.setSigned(t.Field(2), t.Field(3))
	h.Variation.setSigned(t.Field(4), t.Field(5))
}

// applyHDM maps an HDM magnetic heading sentence.
func applyHDM(c *Context, t *TokenSet) {
	c.heading.HeadingMagnetic.set(t.Field(1))
}

// applyHDT maps an HDT true heading sentence.
func applyHDT(c *Context, t *TokenSet) {
	c.heading.HeadingTrue.set(t.Field(1))
}

// applyTHS maps a THS true heading and status sentence.
func applyTHS(c *Context, t *TokenSet) {
	h := c.heading
	h.HeadingTrue.set(t.Field(1))
	h.Mode.set(t.Field(2))
}
