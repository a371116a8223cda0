package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"github.com/HerbHall/nettriage/internal/netinfo"
	"github.com/HerbHall/nettriage/internal/render"
	"github.com/HerbHall/nettriage/internal/router"
)

// runRouters lists the active routers per interface.
func runRouters(args []string) {
	fs := flag.NewFlagSet("routers", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	jsonOut := fs.Bool("json", false, "emit the list as JSON")
	all := fs.Bool("all", false, "include interfaces without a meaningful router address")
	verbose := fs.Bool("verbose", false, "log enumeration details")
	_ = fs.Parse(args)
	rejectExtraArgs(fs)

	_, logger := setup(*configPath, *verbose)
	defer func() { _ = logger.Sync() }()

	resolver := router.New(netinfo.NewProvider(logger.Named("netinfo")), logger.Named("router"))
	routers := resolver.ActiveRouters()
	if !*all {
		routers = render.MeaningfulRouters(routers)
	}

	var err error
	if *jsonOut {
		err = render.WriteJSON(os.Stdout, routers)
	} else {
		err = render.WriteRouters(os.Stdout, routers)
	}
	if err != nil {
		logger.Fatal("failed to render router list", zap.Error(err))
	}
}

// runDNS lists the system DNS servers.
func runDNS(args []string) {
	fs := flag.NewFlagSet("dns", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	jsonOut := fs.Bool("json", false, "emit the list as JSON")
	verbose := fs.Bool("verbose", false, "log enumeration details")
	_ = fs.Parse(args)
	rejectExtraArgs(fs)

	_, logger := setup(*configPath, *verbose)
	defer func() { _ = logger.Sync() }()

	resolver := router.New(netinfo.NewProvider(logger.Named("netinfo")), logger.Named("router"))
	servers := resolver.DNSServers()

	var err error
	if *jsonOut {
		err = render.WriteJSON(os.Stdout, servers)
	} else {
		err = render.WriteDNSServers(os.Stdout, servers)
	}
	if err != nil {
		logger.Fatal("failed to render dns server list", zap.Error(err))
	}
}

// runEndpoints prints the configured internet endpoints and DNS test domains.
func runEndpoints(args []string) {
	fs := flag.NewFlagSet("endpoints", flag.ExitOnError)
	configPath := fs.String("config", "", "path to configuration file")
	jsonOut := fs.Bool("json", false, "emit the lists as JSON")
	_ = fs.Parse(args)
	rejectExtraArgs(fs)

	cfg, logger := setup(*configPath, false)
	defer func() { _ = logger.Sync() }()

	var err error
	if *jsonOut {
		err = render.WriteJSON(os.Stdout, struct {
			Endpoints      []string `json:"endpoints"`
			DNSTestDomains []string `json:"dnsTestDomains"`
		}{cfg.Endpoints, cfg.DNSTestDomains})
	} else {
		err = render.WriteTargets(os.Stdout, cfg.Endpoints, cfg.DNSTestDomains)
	}
	if err != nil {
		logger.Fatal("failed to render target list", zap.Error(err))
	}
}
