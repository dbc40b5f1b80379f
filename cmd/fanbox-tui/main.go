package main

import (
	"fmt"
	"os"

	"github.com/rnozawa/fanbox-dl/internal/config"
	"github.com/rnozawa/fanbox-dl/internal/download"
	"github.com/rnozawa/fanbox-dl/internal/fanbox"
	"github.com/rnozawa/fanbox-dl/internal/http"
	"github.com/rnozawa/fanbox-dl/internal/rules"
	"github.com/rnozawa/fanbox-dl/internal/tui"
)

const settingsPath = "fanbox-dl.json"

func main() {
	settings, err := config.Load(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	ruleSet, err := rules.Load(settings.IgnoreFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ignore rules: %v\n", err)
		os.Exit(1)
	}

	session := config.LoadSession(settings.SessionFile)

	httpClient := http.NewClient(session)
	catalog := fanbox.NewClient(httpClient, settings.ToPathConfig(), settings.RequestDelay(), settings.PageLimit)
	inflight := download.NewInflight()

	// Events flow into the TUI's log tail; a full buffer drops the event
	// rather than stalling a download worker.
	events := make(chan download.ProgressEvent, 64)
	manager := download.NewManager(settings, catalog, httpClient, ruleSet, inflight, false, func(event download.ProgressEvent) {
		select {
		case events <- event:
		default:
		}
	})

	if err := tui.Run(manager, inflight, events); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
