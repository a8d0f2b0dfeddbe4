package message

import "httpcommon/header"

// Request describes an outgoing request preamble. It is filled in by the
// builder package and treated as immutable afterwards. Host is empty until
// overridden; the transport supplies its own hostname otherwise.
type Request struct {
	Method   Method
	Host     string
	Path     string
	Body     EntityBody
	Expect   ExpectMode
	Headers  header.Headers
	Boundary Boundary
}

func DefaultRequest() Request {
	return Request{
		Method:  MethodGet,
		Path:    "/",
		Body:    EmptyBody,
		Expect:  ExpectNormal,
		Headers: header.Empty(),
	}
}

func (r Request) HasHost() bool {
	return r.Host != ""
}

func (r Request) HeaderMap() header.Headers {
	return r.Headers
}
