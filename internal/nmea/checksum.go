package nmea

import "bytes"

// validateChecksum verifies the XOR checksum of a framed sentence. The
// checksum covers every byte strictly between the leading marker and the
// final '*'; the two characters after the '*' carry its hexadecimal value.
// When enabled is false the sentence is accepted as-is.
func validateChecksum(sentence []byte, enabled bool) error {
	if !enabled {
		return nil
	}
	star := bytes.LastIndexByte(sentence, '*')
	if star < 0 {
		return ErrInvalidSentence
	}
	tail := trimLineEnding(sentence[star+1:])
	if len(tail) != 2 {
		return ErrInvalidSentence
	}
	hi := hexNibble(tail[0])
	lo := hexNibble(tail[1])
	if hi < 0 || lo < 0 {
		return ErrInvalidSentence
	}
	var sum byte
	for _, b := range sentence[1:star] {
		sum ^= b
	}
	if sum != byte(hi<<4|lo) {
		return ErrChecksumFailed
	}
	return nil
}

// hexNibble decodes one hexadecimal digit, returning -1 for anything else.
func hexNibble(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	}
	return -1
}

// trimLineEnding strips trailing CR and LF bytes.
func trimLineEnding(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\r' || b[len(b)-1] == '\n') {
		b = b[:len(b)-1]
	}
	return b
}
