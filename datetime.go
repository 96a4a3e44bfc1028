package lexdata

import "time"

// DateTime is the RFC-3339-text-to-seconds codec: RFC-3339 text converted
// to signed seconds since the Unix epoch and stored via the Int64 codec
// (fixedint.go), distinct from the Long aspect so decode knows to
// rehydrate an RFC-3339 string rather than a bare integer. Only whole
// seconds round-trip; sub-second precision and the original UTC offset
// are both discarded.
const dateTimeLayout = "2006-01-02T15:04:05Z"

// appendDateTime parses text as RFC-3339, truncates to whole seconds since
// the epoch, and appends the Int64 encoding of those seconds to buf.
func appendDateTime(buf []byte, text string) ([]byte, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return nil, newError(BadDateFormat, "invalid RFC-3339 timestamp %q: %v", text, err)
	}
	return appendInt64(buf, t.Unix()), nil
}

// decodeDateTime reads an Int64-encoded seconds-since-epoch value from the
// front of buf and formats it as RFC-3339 text, returning the number of
// bytes consumed.
func decodeDateTime(buf []byte) (string, int, error) {
	seconds, consumed, err := decodeInt64(buf)
	if err != nil {
		return "", 0, err
	}
	return time.Unix(seconds, 0).UTC().Format(dateTimeLayout), consumed, nil
}
