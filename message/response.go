package message

import (
	"fmt"
	"strconv"
	"strings"

	"httpcommon/header"
)

// Response is a parsed response preamble. Values are built once by a
// response parser and are read only through accessors.
type Response struct {
	statusCode       int
	statusMessage    string
	transferEncoding TransferEncoding
	contentEncoding  ContentEncoding
	contentLength    int64
	headers          header.Headers
}

// NewResponse builds a Response from already decoded fields. A negative
// contentLength means the length is unknown.
func NewResponse(code int, msg string, te TransferEncoding, ce ContentEncoding, contentLength int64, h header.Headers) Response {
	if contentLength < 0 {
		contentLength = -1
	}
	return Response{
		statusCode:       code,
		statusMessage:    msg,
		transferEncoding: te,
		contentEncoding:  ce,
		contentLength:    contentLength,
		headers:          h,
	}
}

// ResponseFromHeaders derives transfer encoding, content encoding and
// content length from h.
func ResponseFromHeaders(code int, msg string, h header.Headers) (Response, error) {
	te := TransferNone
	if v, ok := h.Lookup("Transfer-Encoding"); ok && strings.EqualFold(strings.TrimSpace(v), "chunked") {
		te = TransferChunked
	}

	ce := EncodingIdentity
	if v, ok := h.Lookup("Content-Encoding"); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "gzip", "x-gzip":
			ce = EncodingGzip
		case "deflate":
			ce = EncodingDeflate
		}
	}

	length := int64(-1)
	if v, ok := h.Lookup("Content-Length"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil || n < 0 {
			return Response{}, &header.ParseError{Msg: fmt.Sprintf("invalid Content-Length %q", v)}
		}
		length = n
	}

	return NewResponse(code, msg, te, ce, length, h), nil
}

func (r Response) StatusCode() int                    { return r.statusCode }
func (r Response) StatusMessage() string              { return r.statusMessage }
func (r Response) TransferEncoding() TransferEncoding { return r.transferEncoding }
func (r Response) ContentEncoding() ContentEncoding   { return r.contentEncoding }
func (r Response) HeaderMap() header.Headers          { return r.headers }

// ContentLength reports the declared body length, if any.
func (r Response) ContentLength() (int64, bool) {
	if r.contentLength < 0 {
		return 0, false
	}
	return r.contentLength, true
}

func (r Response) Header(name string) (string, bool) {
	return r.headers.Lookup(name)
}
