package config

import "httpcommon/header"

type Config interface {
	Method() string
	Path() string

	Host() string
	Port() uint16

	Headers() header.Headers
	Accept() string
	ContentType() string
	ContentLength() int64

	BasicAuthUser() string
	BasicAuthPassword() string

	ExpectContinue() bool

	MultipartBoundary() string
	MultipartField() string
	MultipartFilename() string
	MultipartType() string

	Color() bool
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Method() string            { return c.method }
func (c *config) Path() string              { return c.path }
func (c *config) Host() string              { return c.host }
func (c *config) Port() uint16              { return c.port }
func (c *config) Headers() header.Headers   { return c.headers }
func (c *config) Accept() string            { return c.accept }
func (c *config) ContentType() string       { return c.contentType }
func (c *config) ContentLength() int64      { return c.contentLength }
func (c *config) BasicAuthUser() string     { return c.basicAuthUser }
func (c *config) BasicAuthPassword() string { return c.basicAuthPassword }
func (c *config) ExpectContinue() bool      { return c.expectContinue }
func (c *config) MultipartBoundary() string { return c.multipartBoundary }
func (c *config) MultipartField() string    { return c.multipartField }
func (c *config) MultipartFilename() string { return c.multipartFilename }
func (c *config) MultipartType() string     { return c.multipartType }
func (c *config) Color() bool               { return c.color }
