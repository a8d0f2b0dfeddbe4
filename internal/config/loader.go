package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"httpcommon/header"

	"github.com/joho/godotenv"
)

type config struct {
	method string
	path   string

	host string
	port uint16

	headers       header.Headers
	accept        string
	contentType   string
	contentLength int64

	basicAuthUser     string
	basicAuthPassword string

	expectContinue bool

	multipartBoundary string
	multipartField    string
	multipartFilename string
	multipartType     string

	color bool
}

func parse() (*config, error) {
	method := strings.TrimSpace(getenv("REQUEST_METHOD", "GET"))
	if method == "" {
		return nil, fmt.Errorf("REQUEST_METHOD must not be empty")
	}
	path := getenv("REQUEST_PATH", "/")

	host := getenv("REQUEST_HOST", "localhost")
	port, err := parsePort()
	if err != nil {
		return nil, err
	}

	headers, err := header.Parse([]byte(getenv("REQUEST_HEADERS", "")))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_HEADERS: %w", err)
	}

	contentLength, err := parseContentLength()
	if err != nil {
		return nil, err
	}

	user := getenv("BASIC_AUTH_USER", "")
	password := getenv("BASIC_AUTH_PASSWORD", "")
	if user == "" && password != "" {
		return nil, fmt.Errorf("BASIC_AUTH_USER is required when BASIC_AUTH_PASSWORD is set")
	}

	boundary := getenv("MULTIPART_BOUNDARY", "")
	field := getenv("MULTIPART_FIELD", "file")

	return &config{
		method:            method,
		path:              path,
		host:              host,
		port:              port,
		headers:           headers,
		accept:            getenv("REQUEST_ACCEPT", ""),
		contentType:       getenv("REQUEST_CONTENT_TYPE", ""),
		contentLength:     contentLength,
		basicAuthUser:     user,
		basicAuthPassword: password,
		expectContinue:    getenvBool("EXPECT_CONTINUE", false),
		multipartBoundary: boundary,
		multipartField:    field,
		multipartFilename: getenv("MULTIPART_FILENAME", ""),
		multipartType:     getenv("MULTIPART_TYPE", ""),
		color:             getenvBool("COLOR", true),
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parsePort() (uint16, error) {
	port, err := strconv.ParseUint(getenv("REQUEST_PORT", "80"), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_PORT: %w", err)
	}
	return uint16(port), nil
}

func parseContentLength() (int64, error) {
	raw := getenv("REQUEST_CONTENT_LENGTH", "-1")
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid REQUEST_CONTENT_LENGTH: %w", err)
	}
	if n < 0 {
		return -1, nil
	}
	return n, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}
