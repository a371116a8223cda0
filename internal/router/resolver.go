// Package router resolves the active routers and system DNS servers from the
// raw records a netinfo provider reports. Enumeration failures are folded
// into empty results; callers treat a missing gateway as unknown, never as a
// fault.
package router

import (
	"strings"

	"go.uber.org/zap"

	"github.com/HerbHall/nettriage/internal/netinfo"
	"github.com/HerbHall/nettriage/pkg/models"
)

// Resolver merges per-family router records into per-interface addresses and
// answers which gateway a reachability check should probe.
type Resolver struct {
	provider netinfo.Provider
	logger   *zap.Logger
}

// New creates a Resolver on top of the given provider.
func New(provider netinfo.Provider, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{provider: provider, logger: logger}
}

// ActiveRouters lists router addresses per interface, in enumeration order.
// Records sharing an interface name are merged into a single entry: the
// last-seen value wins per field, and an IPv4 router learned earlier is never
// dropped when a later record adds IPv6, or vice versa.
func (r *Resolver) ActiveRouters() []models.RouterAddress {
	records, err := r.provider.NetworkServices()
	if err != nil {
		r.logger.Warn("network service enumeration failed", zap.Error(err))
		return nil
	}

	merged := make([]models.RouterAddress, 0, len(records))
	index := make(map[string]int, len(records))
	for _, rec := range records {
		if rec.InterfaceName == "" {
			continue
		}
		i, seen := index[rec.InterfaceName]
		if !seen {
			merged = append(merged, models.RouterAddress{
				InterfaceName: rec.InterfaceName,
				MediaType:     classifyMedia(rec.ServiceName, rec.Hardware, rec.InterfaceName),
			})
			i = len(merged) - 1
			index[rec.InterfaceName] = i
		}
		if rec.IPv4Router != "" {
			merged[i].IPv4Router = rec.IPv4Router
		}
		if rec.IPv6Router != "" {
			merged[i].IPv6Router = rec.IPv6Router
		}
		if merged[i].MediaType == models.MediaUnknown {
			// A later record may describe the hardware better.
			if mt := classifyMedia(rec.ServiceName, rec.Hardware, rec.InterfaceName); mt != models.MediaUnknown {
				merged[i].MediaType = mt
			}
		}
	}
	return merged
}

// DefaultGateway picks the gateway a reachability check should probe: the
// first enumerated router with an IPv4 address, else the first with an IPv6
// address. The second return is false when no router is known at all.
func (r *Resolver) DefaultGateway() (string, bool) {
	routers := r.ActiveRouters()
	for _, rt := range routers {
		if rt.IPv4Router != "" {
			return rt.IPv4Router, true
		}
	}
	for _, rt := range routers {
		if rt.IPv6Router != "" {
			return rt.IPv6Router, true
		}
	}
	return "", false
}

// DNSServers lists the system DNS servers, deduplicated by address in
// first-seen order.
func (r *Resolver) DNSServers() []models.DNSServerInfo {
	records, err := r.provider.DNSServers()
	if err != nil {
		r.logger.Debug("dns server enumeration failed", zap.Error(err))
		return nil
	}

	seen := make(map[string]struct{}, len(records))
	servers := make([]models.DNSServerInfo, 0, len(records))
	for _, rec := range records {
		if rec.Address == "" {
			continue
		}
		if _, dup := seen[rec.Address]; dup {
			continue
		}
		seen[rec.Address] = struct{}{}
		servers = append(servers, models.DNSServerInfo{
			Address:   rec.Address,
			Interface: rec.Interface,
			IsIPv6:    strings.Contains(rec.Address, ":"),
		})
	}
	return servers
}
