package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/threadreader/infra/clipboard"
	"github.com/CrestNiraj12/threadreader/infra/config"
	"github.com/CrestNiraj12/threadreader/infra/logging"
	"github.com/CrestNiraj12/threadreader/infra/threadapi"
	"github.com/CrestNiraj12/threadreader/infra/tracing"
	"github.com/CrestNiraj12/threadreader/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliFetch
	cliVersion
	cliHelp
	cliInvalid
)

// parseCLIArgs returns the mode plus its argument: the thread URL for
// cliFetch, the URL to prefill for cliRun (possibly empty), or the error
// text for cliInvalid.
func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	case "--tui":
		if len(args) != 2 {
			return cliInvalid, fmt.Sprintf("--tui takes one thread url, got: %s", strings.Join(args[1:], " "))
		}
		return cliRun, strings.TrimSpace(args[1])
	}
	if strings.HasPrefix(args[0], "-") || len(args) > 1 {
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
	url := strings.TrimSpace(args[0])
	if url == "" {
		return cliInvalid, "thread url cannot be empty"
	}
	return cliFetch, url
}

func usage() string {
	return "Usage: threadreader [<thread-url> | --tui <thread-url>] [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	mode, arg := parseCLIArgs(args)
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("ThreadReader %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return 0
	case cliHelp:
		fmt.Println(usage())
		return 0
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", arg, usage())
		return 2
	}

	// 1. Load config from environment.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	// 2. Build infrastructure.
	logger, logFile, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return 1
	}
	defer logFile.Close()

	ctx := context.Background()
	v, _, _ := resolvedRuntimeVersionInfo(version, commit, date)
	tracer, err := tracing.Setup(ctx, v, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("tracing disabled")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("flushing traces")
		}
	}()

	opts := []threadapi.Option{threadapi.WithLogger(logger)}
	if tracer != nil {
		opts = append(opts, threadapi.WithTracerProvider(tracer))
	}
	processor := threadapi.NewClient(cfg.ServerURL, opts...)
	logger.Info().Str("server", cfg.ServerURL).Str("clipboard", cfg.ClipboardMode).Str("version", v).Msg("starting")

	if mode == cliFetch {
		return fetchOnce(ctx, processor, arg, os.Stdout, os.Stderr)
	}

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Processor:  processor,
		Clipboard:  clipboard.New(cfg.ClipboardMode, os.Stderr),
		Logger:     logger,
		InitialURL: arg,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("tui exited")
		fmt.Fprintf(os.Stderr, "threadreader: %v\n", err)
		return 1
	}
	return 0
}
