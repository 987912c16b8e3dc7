package nmea

// Code identifies the outcome of a configuration or parse operation.
type Code uint8

// Result codes reported by the engine.
const (
	CodeOK Code = iota
	CodeNilParam
	CodeInvalidConfig
	CodeBufferTooSmall
	CodeInvalidSentence
	CodeChecksumFailed
	CodeUnknownSentence
	CodeSentenceDisabled
	CodeNoData
	CodeParseFailed
)

// String returns the name of the result code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeNilParam:
		return "nil parameter"
	case CodeInvalidConfig:
		return "invalid config"
	case CodeBufferTooSmall:
		return "buffer too small"
	case CodeInvalidSentence:
		return "invalid sentence"
	case CodeChecksumFailed:
		return "checksum failed"
	case CodeUnknownSentence:
		return "unknown sentence"
	case CodeSentenceDisabled:
		return "sentence disabled"
	case CodeNoData:
		return "no data"
	case CodeParseFailed:
		return "parse failed"
	}
	return "invalid code"
}

// ParseError is the error type returned by NewContext, Parse and the state
// accessors. The engine only ever returns the fixed sentinel values below,
// so the failure path never allocates; compare with errors.Is or switch on
// the Code field.
type ParseError struct {
	Code Code
	Msg  string
}

func (e *ParseError) Error() string { return e.Msg }

// Sentinel errors, one per failure code.
var (
	ErrNilParam         = &ParseError{Code: CodeNilParam, Msg: "nmea: nil parameter"}
	ErrInvalidConfig    = &ParseError{Code: CodeInvalidConfig, Msg: "nmea: invalid capability descriptor"}
	ErrBufferTooSmall   = &ParseError{Code: CodeBufferTooSmall, Msg: "nmea: token buffer too small"}
	ErrInvalidSentence  = &ParseError{Code: CodeInvalidSentence, Msg: "nmea: malformed sentence framing"}
	ErrChecksumFailed   = &ParseError{Code: CodeChecksumFailed, Msg: "nmea: checksum mismatch"}
	ErrUnknownSentence  = &ParseError{Code: CodeUnknownSentence, Msg: "nmea: unknown sentence identifier"}
	ErrSentenceDisabled = &ParseError{Code: CodeSentenceDisabled, Msg: "nmea: sentence disabled"}
	ErrNoData           = &ParseError{Code: CodeNoData, Msg: "nmea: no data"}
	ErrParseFailed      = &ParseError{Code: CodeParseFailed, Msg: "nmea: malformed field"}
)

// ErrorFunc observes parse failures for telemetry. It is invoked
// synchronously from within Parse, only on failure, and must not call back
// into the Context or alter control flow.
type ErrorFunc func(code Code, msg string)
