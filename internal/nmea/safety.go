package nmea

// SafetyState is the alarm state of one source: the most recent alarm
// report plus the last acknowledgement sent back.
type SafetyState struct {
	AlarmTime         TimeOfDay
	AlarmID           Int
	AlarmCondition    Char // 'A' threshold exceeded, 'V' normal
	AlarmAcknowledged Char // 'A' acknowledged, 'V' not yet
	AlarmText         Text
	AcknowledgedID    Int // alarm id from the last ACK
}

// applyALR maps an ALR alarm sentence: time (1), alarm id (2), condition
// (3), acknowledgement state (4), descriptive text (5).
func applyALR(c *Context, t *TokenSet) {
	s := c.safety
	s.AlarmTime.set(t.Field(1))
	s.AlarmID.set(t.Field(2))
	s.AlarmCondition.set(t.Field(3))
	s.AlarmAcknowledged.set(t.Field(4))
	s.AlarmText.set(t.Field(5))
}

// applyACK maps an ACK alarm acknowledgement sentence.
func applyACK(c *Context, t *TokenSet) {
	c.safety.AcknowledgedID.set(t.Field(1))
}
