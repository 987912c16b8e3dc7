package nmea

// SystemState carries device text reports and the equipment heartbeat.
type SystemState struct {
	TextTotal         Int // sentences in the text transfer
	TextNumber        Int
	TextID            Int
	Message           Text
	HeartbeatInterval Float // seconds between HBT sentences
	HeartbeatStatus   Char  // 'A' normal, 'V' fault
	HeartbeatSequence Int
}

// applyTXT maps a TXT sentence: total (1), number (2), identifier (3),
// message text (4).
func applyTXT(c *Context, t *TokenSet) {
	s := c.system
	s.TextTotal.set(t.Field(1))
	s.TextNumber.set(t.Field(2))
	s.TextID.set(t.Field(3))
	s.Message.set(t.Field(4))
}

// applyHBT maps an HBT heartbeat sentence: repeat interval (1), status
// (2), sequence number (3).
func applyHBT(c *Context, t *TokenSet) {
	s := c.system
	s.HeartbeatInterval.set(t.Field(1))
	s.HeartbeatStatus.set(t.Field(2))
	s.HeartbeatSequence.set(t.Field(3))
}
