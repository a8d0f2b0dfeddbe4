// Package builder configures a message.Request through a sequence of
// calls. A Builder is owned by a single goroutine while the request is
// being built; Request returns the finished value.
package builder

import (
	"encoding/base64"
	"strconv"
	"strings"

	"httpcommon/message"
)

type Builder struct {
	req message.Request
}

// Step is one configuration call, for use with Build.
type Step func(b *Builder)

// New returns a builder that has already run Begin(method, path).
func New(method message.Method, path string) *Builder {
	b := &Builder{req: message.DefaultRequest()}
	b.Begin(method, path)
	return b
}

// Build runs steps against a default request and returns the result.
// The first step is normally a Begin.
func Build(steps ...Step) message.Request {
	b := &Builder{req: message.DefaultRequest()}
	for _, step := range steps {
		step(b)
	}
	return b.Request()
}

func (b *Builder) Request() message.Request {
	return b.req
}

// Begin sets the method and path. It always asks for gzip; PUT and POST
// default to a chunked body, every other method to an empty one.
func (b *Builder) Begin(method message.Method, path string) {
	b.req.Method = method
	b.req.Path = path
	b.SetHeader("Accept-Encoding", "gzip")

	if method.Equal(message.MethodPut) || method.Equal(message.MethodPost) {
		b.RemoveHeader("Content-Length")
		b.req.Body = message.ChunkedBody
		b.SetHeader("Transfer-Encoding", "chunked")
		return
	}
	b.RemoveHeader("Transfer-Encoding")
	b.RemoveHeader("Content-Length")
	b.req.Body = message.EmptyBody
}

// SetHostname overrides the Host line. Port 80 is left implicit.
func (b *Builder) SetHostname(host string, port uint16) {
	if port == 80 {
		b.req.Host = host
		return
	}
	b.req.Host = host + ":" + strconv.Itoa(int(port))
}

func (b *Builder) SetHeader(name, value string) {
	b.req.Headers = b.req.Headers.Update(name, value)
}

// AddHeader appends value to any existing field of the same name,
// separated by a comma.
func (b *Builder) AddHeader(name, value string) {
	b.req.Headers = b.req.Headers.Merge(name, value)
}

func (b *Builder) RemoveHeader(name string) {
	b.req.Headers = b.req.Headers.Remove(name)
}

func (b *Builder) SetAccept(value string) {
	b.SetHeader("Accept", value)
}

// Quality is a media range with its q value.
type Quality struct {
	Type string
	Q    float64
}

// SetAcceptQuality writes a single Accept header, keeping the order of
// types.
func (b *Builder) SetAcceptQuality(types []Quality) {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, t.Type+"; q="+strconv.FormatFloat(t.Q, 'g', -1, 64))
	}
	b.SetAccept(strings.Join(parts, ", "))
}

func (b *Builder) SetAuthorizationBasic(user, password string) {
	token := base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
	b.SetHeader("Authorization", "Basic "+token)
}

func (b *Builder) SetContentType(value string) {
	b.SetHeader("Content-Type", value)
}

// SetContentMultipart records boundary on the request and announces it in
// Content-Type.
func (b *Builder) SetContentMultipart(boundary message.Boundary) {
	b.req.Boundary = boundary
	b.SetContentType("multipart/form-data; boundary=" + boundary.String())
}

// SetContentLength switches the body to a fixed length. It undoes any
// earlier SetTransferEncodingChunked.
func (b *Builder) SetContentLength(n int64) {
	b.RemoveHeader("Transfer-Encoding")
	b.req.Body = message.FixedBody(n)
	b.SetHeader("Content-Length", strconv.FormatInt(n, 10))
}

func (b *Builder) SetTransferEncodingChunked() {
	b.RemoveHeader("Content-Length")
	b.req.Body = message.ChunkedBody
	b.SetHeader("Transfer-Encoding", "chunked")
}

func (b *Builder) SetExpectContinue() {
	b.req.Expect = message.ExpectContinue
	b.SetHeader("Expect", "100-continue")
}
