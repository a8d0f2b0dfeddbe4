package main

import (
	"bytes"
	"testing"

	"httpcommon/header"
	"httpcommon/message"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfig struct {
	method            string
	path              string
	host              string
	port              uint16
	headers           header.Headers
	accept            string
	contentType       string
	contentLength     int64
	basicAuthUser     string
	basicAuthPassword string
	expectContinue    bool
	multipartBoundary string
	multipartField    string
	multipartFilename string
	multipartType     string
}

func (c *stubConfig) Method() string            { return c.method }
func (c *stubConfig) Path() string              { return c.path }
func (c *stubConfig) Host() string              { return c.host }
func (c *stubConfig) Port() uint16              { return c.port }
func (c *stubConfig) Headers() header.Headers   { return c.headers }
func (c *stubConfig) Accept() string            { return c.accept }
func (c *stubConfig) ContentType() string       { return c.contentType }
func (c *stubConfig) ContentLength() int64      { return c.contentLength }
func (c *stubConfig) BasicAuthUser() string     { return c.basicAuthUser }
func (c *stubConfig) BasicAuthPassword() string { return c.basicAuthPassword }
func (c *stubConfig) ExpectContinue() bool      { return c.expectContinue }
func (c *stubConfig) MultipartBoundary() string { return c.multipartBoundary }
func (c *stubConfig) MultipartField() string    { return c.multipartField }
func (c *stubConfig) MultipartFilename() string { return c.multipartFilename }
func (c *stubConfig) MultipartType() string     { return c.multipartType }
func (c *stubConfig) Color() bool               { return false }

func baseConfig() *stubConfig {
	return &stubConfig{
		method:         "GET",
		path:           "/",
		host:           "localhost",
		port:           80,
		contentLength:  -1,
		multipartField: "file",
	}
}

func TestBuildRequestDefaults(t *testing.T) {
	req, err := buildRequest(baseConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, message.MethodGet, req.Method)
	assert.Equal(t, "localhost", req.Host)
	assert.Equal(t, message.EmptyBody, req.Body)
	assert.Equal(t, "gzip", req.Headers.Value("Accept-Encoding"))
	assert.Contains(t, req.Headers.Value("User-Agent"), "httpcommon")
	assert.True(t, req.Boundary.IsEmpty())
}

func TestBuildRequestFromConfig(t *testing.T) {
	cfg := baseConfig()
	cfg.method = "POST"
	cfg.path = "/upload"
	cfg.port = 8080
	cfg.headers = header.Empty().Update("X-Trace", "abc")
	cfg.accept = "application/json"
	cfg.contentType = "text/plain"
	cfg.contentLength = 12
	cfg.basicAuthUser = "Aladdin"
	cfg.basicAuthPassword = "open sesame"
	cfg.expectContinue = true

	req, err := buildRequest(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", req.Host)
	assert.Equal(t, message.FixedBody(12), req.Body)
	assert.Equal(t, message.ExpectContinue, req.Expect)
	assert.Equal(t, "abc", req.Headers.Value("x-trace"))
	assert.Equal(t, "application/json", req.Headers.Value("Accept"))
	assert.Equal(t, "Basic QWxhZGRpbjpvcGVuIHNlc2FtZQ==", req.Headers.Value("Authorization"))
	_, ok := req.Headers.Lookup("Transfer-Encoding")
	assert.False(t, ok)
}

func TestBuildRequestConfiguredHeadersOverrideDefaults(t *testing.T) {
	cfg := baseConfig()
	cfg.headers = header.Empty().
		Update("accept-encoding", "identity").
		Update("User-Agent", "custom/1.0")

	req, err := buildRequest(cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, "identity", req.Headers.Value("Accept-Encoding"))
	assert.Equal(t, "custom/1.0", req.Headers.Value("user-agent"))
}

func TestBuildRequestRandomBoundary(t *testing.T) {
	cfg := baseConfig()
	cfg.method = "POST"
	cfg.multipartBoundary = "random"

	src := bytes.Repeat([]byte{10}, message.BoundaryLength)
	req, err := buildRequest(cfg, bytes.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, message.Boundary("AAAAAAAAAAAAAAAAAAAA"), req.Boundary)
	assert.Equal(t, "multipart/form-data; boundary=AAAAAAAAAAAAAAAAAAAA", req.Headers.Value("Content-Type"))
}

func TestBuildRequestBoundaryReadError(t *testing.T) {
	cfg := baseConfig()
	cfg.multipartBoundary = "random"

	_, err := buildRequest(cfg, bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestComposeWithMultipart(t *testing.T) {
	cfg := baseConfig()
	cfg.method = "POST"
	cfg.path = "/x"
	cfg.multipartBoundary = "XYZ"
	cfg.multipartFilename = "a.txt"
	cfg.multipartType = "text/plain"

	req, err := buildRequest(cfg, nil)
	require.NoError(t, err)

	out := compose(cfg, req).String()
	assert.Contains(t, out, "POST /x HTTP/1.1\r\nHost: localhost\r\n")
	assert.Contains(t, out, "Content-Type: multipart/form-data; boundary=XYZ\r\n")
	assert.Contains(t, out, "\r\n--XYZ\r\nContent-Disposition: form-data; name=\"file\"; filename=\"a.txt\"\r\nContent-Type: text/plain\r\n\r\n")
	assert.Contains(t, out, "\r\n--XYZ--\r\n")
}

func TestRenderPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	out, err := render(baseConfig(), nil)
	require.NoError(t, err)

	assert.NotContains(t, out, "\r")
	assert.Contains(t, out, "GET / HTTP/1.1\n")
	assert.Contains(t, out, "Host: localhost\n")
	assert.Contains(t, out, "Accept-Encoding: gzip\n")
}
