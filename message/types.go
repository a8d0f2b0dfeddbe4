package message

import (
	"fmt"
	"strconv"
)

type BodyMode int

const (
	BodyEmpty BodyMode = iota
	BodyChunked
	BodyFixed
)

// EntityBody declares how a request body is framed. It never carries the
// body bytes.
type EntityBody struct {
	Mode   BodyMode
	Length int64
}

var (
	EmptyBody   = EntityBody{Mode: BodyEmpty}
	ChunkedBody = EntityBody{Mode: BodyChunked}
)

func FixedBody(length int64) EntityBody {
	return EntityBody{Mode: BodyFixed, Length: length}
}

func (b EntityBody) String() string {
	switch b.Mode {
	case BodyEmpty:
		return "Empty"
	case BodyChunked:
		return "Chunked"
	case BodyFixed:
		return "Fixed(" + strconv.FormatInt(b.Length, 10) + ")"
	default:
		return fmt.Sprintf("EntityBody(%d)", int(b.Mode))
	}
}

type ExpectMode int

const (
	ExpectNormal ExpectMode = iota
	ExpectContinue
)

func (e ExpectMode) String() string {
	switch e {
	case ExpectNormal:
		return "Normal"
	case ExpectContinue:
		return "Continue"
	default:
		return fmt.Sprintf("ExpectMode(%d)", int(e))
	}
}

type TransferEncoding int

const (
	TransferNone TransferEncoding = iota
	TransferChunked
)

func (t TransferEncoding) String() string {
	switch t {
	case TransferNone:
		return "None"
	case TransferChunked:
		return "Chunked"
	default:
		return fmt.Sprintf("TransferEncoding(%d)", int(t))
	}
}

type ContentEncoding int

const (
	EncodingIdentity ContentEncoding = iota
	EncodingGzip
	EncodingDeflate
)

func (c ContentEncoding) String() string {
	switch c {
	case EncodingIdentity:
		return "Identity"
	case EncodingGzip:
		return "Gzip"
	case EncodingDeflate:
		return "Deflate"
	default:
		return fmt.Sprintf("ContentEncoding(%d)", int(c))
	}
}
