package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnozawa/fanbox-dl/internal/config"
	"github.com/rnozawa/fanbox-dl/internal/download"
	"github.com/rnozawa/fanbox-dl/internal/fanbox"
	"github.com/rnozawa/fanbox-dl/internal/http"
	"github.com/rnozawa/fanbox-dl/internal/rules"
	"github.com/spf13/cobra"
)

const settingsPath = "fanbox-dl.json"

var (
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
)

func main() {
	var force bool

	rootCmd := &cobra.Command{
		Use:   "fanbox-dl",
		Short: "Download pledged FANBOX content per creator and post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(force)
		},
		SilenceUsage: true,
	}
	rootCmd.Flags().BoolVarP(&force, "force", "f", false, "re-download files that already exist")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(force bool) error {
	settings, err := config.Load(settingsPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	session := config.LoadSession(settings.SessionFile)
	if session == "" {
		fmt.Println(warnStyle.Render("Warning: no session credential found; requests will be unauthenticated"))
	}

	ruleSet, err := rules.Load(settings.IgnoreFile)
	if err != nil {
		return fmt.Errorf("load ignore rules: %w", err)
	}

	httpClient := http.NewClient(session)
	catalog := fanbox.NewClient(httpClient, settings.ToPathConfig(), settings.RequestDelay(), settings.PageLimit)

	inflight := download.NewInflight()
	manager := download.NewManager(settings, catalog, httpClient, ruleSet, inflight, force, printEvent)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// On interrupt: stop issuing work, then sweep the in-flight partials
	// so no truncated file survives as a completed download.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, removing partial downloads...")
		cancel()
		removed := inflight.CleanupPartials()
		if removed > 0 {
			fmt.Printf("Removed %d partial file(s).\n", removed)
		}
		os.Exit(130)
	}()

	if err := manager.Initialize(ctx); err != nil {
		return fmt.Errorf("fetch supported plans: %w", err)
	}

	if err := manager.Run(ctx); err != nil {
		return err
	}

	p := manager.Progress()
	fmt.Println()
	fmt.Println(successStyle.Render(fmt.Sprintf(
		"Done. %d file(s) downloaded, %d skipped, %d failed (%.2f MB)",
		p.Downloaded, p.Skipped, p.Failed, float64(p.Received)/1024/1024,
	)))
	return nil
}

func printEvent(event download.ProgressEvent) {
	switch event.Level {
	case download.LevelError:
		fmt.Println(errStyle.Render("✗ " + event.Message))
	case download.LevelWarning:
		fmt.Println(warnStyle.Render("! " + event.Message))
	case download.LevelSuccess:
		fmt.Println(successStyle.Render("✓ " + event.Message))
	case download.LevelInfo:
		fmt.Println(infoStyle.Render("› " + event.Message))
	default:
		fmt.Println(dimStyle.Render("  " + event.Message))
	}
}
