//go:build linux

package netinfo

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
	"go.uber.org/zap"
)

type linuxProvider struct {
	logger *zap.Logger
}

// NewProvider returns a Provider backed by the kernel routing table via
// netlink.
func NewProvider(logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &linuxProvider{logger: logger}
}

// NetworkServices lists up interfaces and appends one record per default
// route, per address family. Route records carry only the family they were
// read from; merging happens downstream.
func (p *linuxProvider) NetworkServices() ([]ServiceRecord, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	records := baseRecords(ifaces)

	v4, err := netlink.RouteList(nil, netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("list ipv4 routes: %w", err)
	}
	for _, route := range v4 {
		if route.Dst != nil || route.Gw == nil {
			continue
		}
		name, ok := p.interfaceName(route.LinkIndex)
		if !ok {
			continue
		}
		records = append(records, ServiceRecord{
			InterfaceName: name,
			IPv4Router:    route.Gw.String(),
		})
	}

	v6, err := netlink.RouteList(nil, netlink.FAMILY_V6)
	if err != nil {
		// IPv6 may be disabled; the IPv4 records are still usable.
		p.logger.Debug("ipv6 route enumeration failed", zap.Error(err))
		return records, nil
	}
	for _, route := range v6 {
		if route.Dst != nil || route.Gw == nil {
			continue
		}
		name, ok := p.interfaceName(route.LinkIndex)
		if !ok {
			continue
		}
		records = append(records, ServiceRecord{
			InterfaceName: name,
			IPv6Router:    routerAddr(route.Gw, name),
		})
	}

	return records, nil
}

// DNSServers reads the system resolver configuration.
func (p *linuxProvider) DNSServers() ([]DNSRecord, error) {
	return resolvConfServers(resolvConfPath)
}

func (p *linuxProvider) interfaceName(index int) (string, bool) {
	ifi, err := net.InterfaceByIndex(index)
	if err != nil {
		p.logger.Debug("interface lookup failed",
			zap.Int("index", index),
			zap.Error(err))
		return "", false
	}
	return ifi.Name, true
}
