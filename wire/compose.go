package wire

import (
	"strconv"

	"httpcommon/header"
	"httpcommon/message"
)

const crlf = "\r\n"

// DisplayHost stands in for the transport's hostname when a request is
// rendered for logging.
const DisplayHost = "<default>"

// ComposeRequest renders the request line, a Host line and every header,
// followed by the blank line that ends the preamble. fallbackHost is used
// when req carries no host override.
//
// A Host entry in req.Headers is written as well, after the dedicated Host
// line. Consumers rely on this shape so it is not deduplicated.
func ComposeRequest(req message.Request, fallbackHost string) *Builder {
	b := &Builder{}

	path := req.Path
	if path == "" {
		path = "/"
	}
	b.WriteString(req.Method.String())
	b.WriteString(" ")
	b.WriteString(path)
	b.WriteString(" HTTP/1.1" + crlf)

	host := fallbackHost
	if req.HasHost() {
		host = req.Host
	}
	b.WriteString("Host: ")
	b.WriteString(host)
	b.WriteString(crlf)

	writeHeaders(b, req.Headers)
	b.WriteString(crlf)
	return b
}

// ComposeResponse renders the status line and headers of resp.
func ComposeResponse(resp message.Response) *Builder {
	b := &Builder{}

	b.WriteString("HTTP/1.1 ")
	b.WriteString(strconv.Itoa(resp.StatusCode()))
	b.WriteString(" ")
	b.WriteString(resp.StatusMessage())
	b.WriteString(crlf)

	writeHeaders(b, resp.HeaderMap())
	b.WriteString(crlf)
	return b
}

func writeHeaders(b *Builder, h header.Headers) {
	for _, p := range h.Pairs() {
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(crlf)
	}
}

func DisplayRequest(req message.Request) string {
	return Display(ComposeRequest(req, DisplayHost))
}

func DisplayResponse(resp message.Response) string {
	return Display(ComposeResponse(resp))
}
