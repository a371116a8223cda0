// Package triage runs the gateway, internet, and DNS reachability checks and
// classifies the combined outcome into a diagnosis.
package triage

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/nettriage/internal/probe"
	"github.com/HerbHall/nettriage/pkg/models"
)

// RouterSource supplies the gateway to probe and the router and DNS server
// listings a triage pass reports. DefaultGateway's second return is false
// when no gateway is known.
type RouterSource interface {
	DefaultGateway() (string, bool)
	ActiveRouters() []models.RouterAddress
	DNSServers() []models.DNSServerInfo
}

// Triage wires a prober, a router source, and the configured target lists
// into the three reachability checks. The lists are read-only snapshots
// passed in at construction; Triage holds no other state.
type Triage struct {
	prober    probe.Prober
	routers   RouterSource
	endpoints []string
	domains   []string
	logger    *zap.Logger
}

// New creates a Triage over the given collaborators.
func New(prober probe.Prober, routers RouterSource, endpoints, domains []string, logger *zap.Logger) *Triage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Triage{
		prober:    prober,
		routers:   routers,
		endpoints: endpoints,
		domains:   domains,
		logger:    logger,
	}
}

// CheckNetworkStatus runs the three checks concurrently and joins them into
// one snapshot. Each check writes a disjoint field, so no locking is needed;
// the timestamp is captured once, after all three complete.
func (t *Triage) CheckNetworkStatus(ctx context.Context) models.NetworkStatus {
	var status models.NetworkStatus

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		status.Gateway = t.CheckGatewayReachability(ctx)
	}()
	go func() {
		defer wg.Done()
		status.Internet = t.CheckInternetReachability(ctx)
	}()
	go func() {
		defer wg.Done()
		status.DNS = t.CheckDNSReachability(ctx)
	}()
	wg.Wait()

	status.Timestamp = time.Now().UTC()
	return status
}

// CheckConnectivity runs only the gateway and internet checks, for callers
// that skip DNS testing. The DNS slot of the snapshot stays unknown.
func (t *Triage) CheckConnectivity(ctx context.Context) models.NetworkStatus {
	status := models.NetworkStatus{DNS: models.Unknown()}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		status.Gateway = t.CheckGatewayReachability(ctx)
	}()
	go func() {
		defer wg.Done()
		status.Internet = t.CheckInternetReachability(ctx)
	}()
	wg.Wait()

	status.Timestamp = time.Now().UTC()
	return status
}

// CheckGatewayReachability resolves the default gateway and probes it. No
// discoverable gateway means unknown, not unreachable: nothing was probed.
func (t *Triage) CheckGatewayReachability(ctx context.Context) models.ReachabilityStatus {
	gw, ok := t.routers.DefaultGateway()
	if !ok {
		t.logger.Debug("no default gateway found")
		return models.Unknown()
	}
	return t.prober.Gateway(ctx, gw)
}

// CheckInternetReachability probes the configured endpoints in order and
// stops at the first reachable one. An exhausted list is unreachable as a
// whole, regardless of how the individual probes failed.
func (t *Triage) CheckInternetReachability(ctx context.Context) models.ReachabilityStatus {
	for _, endpoint := range t.endpoints {
		if status := t.prober.Endpoint(ctx, endpoint); status.IsReachable() {
			return status
		}
	}
	return models.Unreachable()
}

// CheckDNSReachability probes the configured test domains in order and stops
// at the first that resolves.
func (t *Triage) CheckDNSReachability(ctx context.Context) models.ReachabilityStatus {
	for _, domain := range t.domains {
		if status := t.prober.Domain(ctx, domain); status.IsReachable() {
			return status
		}
	}
	return models.Unreachable()
}

// ActiveRouters lists the active routers known to the router source.
func (t *Triage) ActiveRouters() []models.RouterAddress {
	return t.routers.ActiveRouters()
}

// DNSServers lists the system DNS servers known to the router source.
func (t *Triage) DNSServers() []models.DNSServerInfo {
	return t.routers.DNSServers()
}

// Endpoints returns the internet test endpoints in probe order.
func (t *Triage) Endpoints() []string {
	return append([]string(nil), t.endpoints...)
}

// DNSTestDomains returns the DNS test domains in probe order.
func (t *Triage) DNSTestDomains() []string {
	return append([]string(nil), t.domains...)
}
