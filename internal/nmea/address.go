package nmea

// minSentenceLen is the marker byte plus the shortest talker/identifier
// pair a sentence can open with.
const minSentenceLen = 6

// address is the decoded sentence header.
type address struct {
	talker []byte
	id     []byte
}

// parseAddress extracts the talker and sentence identifiers. The first
// byte must be '$' (talk) or '!' (encapsulated). Two-character talkers are
// the norm, including user-configured codes such as "U1"; a leading 'P'
// marks a proprietary sentence with a one-character talker.
func parseAddress(sentence []byte) (address, error) {
	var a address
	if len(sentence) < minSentenceLen {
		return a, ErrInvalidSentence
	}
	if sentence[0] != '$' && sentence[0] != '!' {
		return a, ErrInvalidSentence
	}
	talkerLen := 2
	if sentence[1] == 'P' {
		talkerLen = 1
	}
	end := 1 + talkerLen + 3
	for _, b := range sentence[1:end] {
		if !isAddressChar(b) {
			return a, ErrInvalidSentence
		}
	}
	a.talker = sentence[1 : 1+talkerLen]
	a.id = sentence[1+talkerLen : end]
	return a, nil
}

func isAddressChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
