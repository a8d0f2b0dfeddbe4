package header

import (
	"bytes"
	"fmt"
)

// ParseError reports a malformed message preamble. Response parsers built
// on top of this module return it as well.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

// Parse decodes a raw "Name: value" block. Lines may end in CRLF or LF and
// parsing stops at the first empty line. Repeated names are merged.
func Parse(block []byte) (Headers, error) {
	h := Empty()
	remaining := block
	for line := 1; len(remaining) > 0; line++ {
		lineEnd := bytes.IndexByte(remaining, '\n')
		if lineEnd == -1 {
			lineEnd = len(remaining)
		}

		raw := bytes.TrimRight(remaining[:lineEnd], "\r")
		if len(raw) == 0 {
			break
		}

		colonIdx := bytes.IndexByte(raw, ':')
		if colonIdx == -1 {
			return Headers{}, &ParseError{Msg: fmt.Sprintf("line %d: missing colon in %q", line, raw)}
		}

		name := bytes.TrimSpace(raw[:colonIdx])
		if len(name) == 0 {
			return Headers{}, &ParseError{Msg: fmt.Sprintf("line %d: empty field name", line)}
		}
		value := bytes.TrimSpace(raw[colonIdx+1:])
		h = h.Merge(string(name), string(value))

		if lineEnd == len(remaining) {
			break
		}
		remaining = remaining[lineEnd+1:]
	}
	return h, nil
}
