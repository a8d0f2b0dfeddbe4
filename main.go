package main

import (
	"log"
	"os"

	"httpcommon/internal/config"
	"httpcommon/internal/version"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	log.Printf("Starting %s", version.GetVersion())

	cfg, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	if cfg.Color() {
		lipgloss.SetColorProfile(termenv.TrueColor)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	out, err := render(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to compose request: %s", err)
	}

	if _, err := os.Stdout.WriteString(out); err != nil {
		log.Fatalf("Failed to write output: %s", err)
	}
}
