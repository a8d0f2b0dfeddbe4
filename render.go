package main

import (
	"io"
	"strings"

	"httpcommon/builder"
	"httpcommon/internal/config"
	"httpcommon/internal/version"
	"httpcommon/message"
	"httpcommon/wire"

	"github.com/charmbracelet/lipgloss"
)

var (
	startLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))
	headerNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))
	boundaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// buildRequest turns the configuration into a request. entropy replaces
// crypto/rand for MULTIPART_BOUNDARY=random when non-nil.
func buildRequest(cfg config.Config, entropy io.Reader) (message.Request, error) {
	b := builder.New(message.Method(cfg.Method()), cfg.Path())
	b.SetHostname(cfg.Host(), cfg.Port())
	b.SetHeader("User-Agent", version.UserAgent())

	for _, p := range cfg.Headers().Pairs() {
		b.SetHeader(p.Name, p.Value)
	}
	if cfg.Accept() != "" {
		b.SetAccept(cfg.Accept())
	}
	if cfg.BasicAuthUser() != "" {
		b.SetAuthorizationBasic(cfg.BasicAuthUser(), cfg.BasicAuthPassword())
	}
	if cfg.ContentType() != "" {
		b.SetContentType(cfg.ContentType())
	}
	if cfg.ContentLength() >= 0 {
		b.SetContentLength(cfg.ContentLength())
	}
	if cfg.ExpectContinue() {
		b.SetExpectContinue()
	}

	switch raw := cfg.MultipartBoundary(); raw {
	case "":
	case "random":
		var (
			boundary message.Boundary
			err      error
		)
		if entropy != nil {
			boundary, err = message.NewBoundaryFrom(entropy)
		} else {
			boundary, err = message.NewBoundary()
		}
		if err != nil {
			return message.Request{}, err
		}
		b.SetContentMultipart(boundary)
	default:
		b.SetContentMultipart(message.FixedBoundary(raw))
	}

	return b.Request(), nil
}

// compose returns the wire bytes of the request preamble followed by an
// empty multipart section when the request carries a boundary.
func compose(cfg config.Config, req message.Request) *wire.Builder {
	out := wire.ComposeRequest(req, cfg.Host())
	if req.Boundary.IsEmpty() {
		return out
	}

	out.Append(wire.MultipartSection(req.Boundary, wire.Part{
		Name:        cfg.MultipartField(),
		Filename:    cfg.MultipartFilename(),
		ContentType: cfg.MultipartType(),
	}))
	out.Append(wire.MultipartTerminator(req.Boundary))
	return out
}

func render(cfg config.Config, entropy io.Reader) (string, error) {
	req, err := buildRequest(cfg, entropy)
	if err != nil {
		return "", err
	}
	return style(wire.Display(compose(cfg, req))), nil
}

func style(display string) string {
	lines := strings.Split(display, "\n")
	for i, line := range lines {
		switch {
		case i == 0:
			lines[i] = startLineStyle.Render(line)
		case strings.HasPrefix(line, "--"):
			lines[i] = boundaryStyle.Render(line)
		default:
			name, value, ok := strings.Cut(line, ": ")
			if ok {
				lines[i] = headerNameStyle.Render(name) + ": " + value
			}
		}
	}
	return strings.Join(lines, "\n")
}
