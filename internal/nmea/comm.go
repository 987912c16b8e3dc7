package nmea

// CommState is the digital selective calling and receiver signal state of
// one source.
type CommState struct {
	FormatSpecifier    Int  // DSC format code
	Address            Text // called MMSI or area
	Category           Int
	DistressNature     Int
	CommType           Int
	Position           Text // position or channel field, format dependent
	CallInfo           Text // time or telephone field, format dependent
	DistressMMSI       Text
	Acknowledgement    Char // 'R' acknowledge request, 'B' acknowledgement, 'S' neither
	ExpansionFragments Int  // DSE bookkeeping
	ExpansionFragment  Int
	ExpansionQuery     Char
	ExpansionMMSI      Text
	SignalStrength     Int   // MSS
	SignalToNoise      Int   // dB
	Frequency          Float // kHz
	BitRate            Int
	Channel            Int
}

// applyDSC maps a DSC call sentence.
//
//	1: format specifier  2: address   3: category
//	4: nature of distress 5: type of communication
//	6: position or channel 7: time or telephone
//	8: mmsi of ship in distress 10: acknowledgement
func applyDSC(c *Context, t *TokenSet) {
	s := c.comm
	s.FormatSpecifier.set(t.Field(1))
	s.Address.set(t.Field(2))
	s.Category.set(t.Field(3))
	s.DistressNature.set(t.Field(4))
	s.CommType.set(t.Field(5))
	s.Position.set(t.Field(6))
	s.CallInfo.set(t.Field(7))
	s.DistressMMSI.set(t.Field(8))
	s.Acknowledgement.set(t.Field(10))
}

// applyDSE maps a DSE expansion sentence: total fragments (1), fragment
// number (2), query flag (3), MMSI (4).
func applyDSE(c *Context, t *TokenSet) {
	s := c.comm
	s.ExpansionFragments.set(t.Field(1))
	s.ExpansionFragment.set(t.Field(2))
	s.ExpansionQuery.set(t.Field(3))
	s.ExpansionMMSI.set(t.Field(4))
}

// applyMSS maps an MSS receiver status sentence: signal strength (1), SNR
// (2), beacon frequency (3), bit rate (4), channel (5).
func applyMSS(c *Context, t *TokenSet) {
	s := c.comm
	s.SignalStrength.set(t.Field(1))
	s.SignalToNoise.set(t.Field(2))
	s.Frequency.set(t.Field(3))
	s.BitRate.set(t.Field(4))
	s.Channel.set(t.Field(5))
}
