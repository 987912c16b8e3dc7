package nmea

// AISState tracks the encapsulated AIS transport layer. Payloads stay
// opaque six-bit armored text; this engine does not unpack them.
type AISState struct {
	Fragments      Int  // fragments in the current message
	FragmentNumber Int  // this fragment's number, 1-based
	SequenceID     Int  // message sequence id, empty on single fragments
	Channel        Char // 'A' or 'B'
	Payload        Text // armored payload, at most 62 characters per fragment
	FillBits       Int  // padding bits in the final fragment
	Source         Char // 'M' other vessels (VDM), 'O' own ship (VDO)
}

// applyVDM maps a VDM sentence carrying other vessels' AIS traffic.
func applyVDM(c *Context, t *TokenSet) { c.ais.apply(t, 'M') }

// applyVDO maps a VDO sentence carrying own-ship AIS traffic.
func applyVDO(c *Context, t *TokenSet) { c.ais.apply(t, 'O') }

// apply maps the shared VDM/VDO field layout: fragment count (1), fragment
// number (2), sequence id (3), channel (4), payload (5), fill bits (6).
func (s *AISState) apply(t *TokenSet, source byte) {
	s.Fragments.set(t.Field(1))
	s.FragmentNumber.set(t.Field(2))
	s.SequenceID.set(t.Field(3))
	s.Channel.set(t.Field(4))
	s.Payload.set(t.Field(5))
	s.FillBits.set(t.Field(6))
	s.Source.Value, s.Source.Valid = source, true
}
