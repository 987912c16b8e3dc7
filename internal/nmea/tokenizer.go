package nmea

// TokenSet is the caller-owned scratch buffer Parse splits a sentence
// into. Token 0 is always the full address field; tokens 1..Count()-1 are
// the comma-delimited data fields in sentence order. The spans point into
// the sentence passed to Parse and are only valid until the next call that
// uses the same TokenSet.
type TokenSet struct {
	fields [][]byte
	count  int
}

// NewTokenSet allocates scratch for up to capacity tokens. Size it with
// RequiredTokens for the Capability the Context was built from; a TokenSet
// is reused across calls and may be shared by Contexts that are never
// parsed into concurrently.
func NewTokenSet(capacity int) *TokenSet {
	if capacity < 1 {
		capacity = 1
	}
	return &TokenSet{fields: make([][]byte, capacity)}
}

// Count returns the number of tokens produced by the last tokenization.
func (t *TokenSet) Count() int { return t.count }

// Field returns token i, or nil when the current sentence has no such
// token. Mappers treat nil and zero-length tokens alike: field absent.
func (t *TokenSet) Field(i int) []byte {
	if i < 0 || i >= t.count {
		return nil
	}
	return t.fields[i]
}

// tokenize splits everything past the leading marker on commas. The final
// token gets any trailing checksum suffix and line ending stripped, so
// mappers never see "*hh". On overflow the TokenSet is emptied and
// ErrBufferTooSmall is returned; that is a capacity planning error, not a
// data error.
func tokenize(sentence []byte, t *TokenSet) error {
	t.count = 0
	body := trimLineEnding(sentence[1:])
	start := 0
	for i := 0; i <= len(body); i++ {
		if i < len(body) && body[i] != ',' {
			continue
		}
		if t.count == len(t.fields) {
			t.count = 0
			return ErrBufferTooSmall
		}
		t.fields[t.count] = body[start:i]
		t.count++
		start = i + 1
	}
	last := t.count - 1
	t.fields[last] = stripChecksum(t.fields[last])
	return nil
}
