package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/nettriage/internal/config"
	"github.com/HerbHall/nettriage/internal/netinfo"
	"github.com/HerbHall/nettriage/internal/probe"
	"github.com/HerbHall/nettriage/internal/render"
	"github.com/HerbHall/nettriage/internal/router"
	"github.com/HerbHall/nettriage/internal/triage"
	"github.com/HerbHall/nettriage/internal/version"
	"github.com/HerbHall/nettriage/pkg/models"
)

// Exit codes: 0 all clear, 1 degraded connectivity, 2 usage or config errors.
const (
	exitDegraded = 1
	exitUsage    = 2
)

func main() {
	// Subcommand dispatch (before flag.Parse).
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "status":
			runStatus(os.Args[2:])
			return
		case "routers":
			runRouters(os.Args[2:])
			return
		case "dns":
			runDNS(os.Args[2:])
			return
		case "endpoints":
			runEndpoints(os.Args[2:])
			return
		case "version":
			fmt.Println(version.Info())
			return
		case "help", "-h", "--help":
			printUsage(os.Stdout)
			return
		default:
			if !strings.HasPrefix(os.Args[1], "-") {
				fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
				printUsage(os.Stderr)
				os.Exit(exitUsage)
			}
		}
	}

	// Bare invocation runs the full triage pass.
	runStatus(os.Args[1:])
}

func runStatus(args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	jsonOut := fs.Bool("json", false, "emit the report as JSON")
	verbose := fs.Bool("verbose", false, "log probe details")
	timeout := fs.Duration("timeout", 0, "per-probe timeout override")
	noDNS := fs.Bool("no-dns", false, "skip the DNS check and classify on gateway and internet only")
	_ = fs.Parse(args)
	rejectExtraArgs(fs)

	cfg, logger := setup(*configPath, *verbose)
	defer func() { _ = logger.Sync() }()

	if *timeout > 0 {
		cfg.Probe.Timeout = *timeout
	}

	provider := netinfo.NewProvider(logger.Named("netinfo"))
	routers := router.New(provider, logger.Named("router"))
	prober := probe.NewHTTPProber(cfg.Probe.Timeout, logger.Named("probe"))
	checker := triage.New(prober, routers, cfg.Endpoints, cfg.DNSTestDomains, logger.Named("triage"))

	ctx := context.Background()

	var status models.NetworkStatus
	var diagnosis models.Diagnosis
	if *noDNS {
		status = checker.CheckConnectivity(ctx)
		diagnosis = triage.DiagnoseTwoSignal(status)
	} else {
		status = checker.CheckNetworkStatus(ctx)
		diagnosis = triage.Diagnose(status)
	}

	report := render.NewReport(status, diagnosis,
		render.MeaningfulRouters(checker.ActiveRouters()), checker.DNSServers())

	var err error
	if *jsonOut {
		err = render.WriteJSON(os.Stdout, report)
	} else {
		err = render.WriteText(os.Stdout, report)
	}
	if err != nil {
		logger.Fatal("failed to render report", zap.Error(err))
	}

	if diagnosis != models.DiagAllOperational {
		_ = logger.Sync()
		os.Exit(exitDegraded)
	}
}

// setup loads configuration and builds the logger from it. Errors here are
// user-fixable, so they go to stderr and exit with the usage code.
func setup(configPath string, verbose bool) (*config.Config, *zap.Logger) {
	// Load configuration (before logger, so log level/format can be configured).
	cfg, v, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(exitUsage)
	}
	if verbose {
		v.Set("logging.level", "debug")
	}

	// Initialize logger from configuration.
	logger, err := config.NewLogger(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(exitUsage)
	}

	if f := v.ConfigFileUsed(); f != "" {
		logger.Debug("configuration loaded", zap.String("source", f))
	}

	return cfg, logger
}

// rejectExtraArgs exits when a command is handed positional arguments it does
// not take.
func rejectExtraArgs(fs *flag.FlagSet) {
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "unexpected argument %q\n", fs.Arg(0))
		os.Exit(exitUsage)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `nettriage %s

Usage:
  nettriage [flags]            full triage pass (same as "status")
  nettriage status [flags]     probe gateway, internet, and DNS, then classify
  nettriage routers [flags]    list active routers per interface
  nettriage dns [flags]        list system DNS servers
  nettriage endpoints [flags]  print the configured probe targets
  nettriage version            print version information

Run "nettriage <command> -h" for the flags a command takes.
`, version.Short())
}
