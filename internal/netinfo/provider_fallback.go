//go:build !linux

package netinfo

import (
	"fmt"
	"net"

	"github.com/jackpal/gateway"
	"go.uber.org/zap"
)

type fallbackProvider struct {
	logger *zap.Logger
}

// NewProvider returns a portable Provider that discovers the default gateway
// through the jackpal/gateway library. Only the IPv4 default route is
// discoverable this way.
func NewProvider(logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &fallbackProvider{logger: logger}
}

// NetworkServices lists up interfaces and attributes the discovered default
// gateway to the interface whose subnet contains it.
func (p *fallbackProvider) NetworkServices() ([]ServiceRecord, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	records := baseRecords(ifaces)

	gw, err := gateway.DiscoverGateway()
	if err != nil || gw == nil {
		p.logger.Debug("gateway discovery failed", zap.Error(err))
		return records, nil
	}

	name := owningInterface(ifaces, gw)
	record := ServiceRecord{InterfaceName: name}
	if record.InterfaceName == "" {
		record.InterfaceName = "default"
	}
	if gw.To4() != nil {
		record.IPv4Router = gw.String()
	} else {
		record.IPv6Router = routerAddr(gw, name)
	}
	return append(records, record), nil
}

// DNSServers reads the system resolver configuration where one exists.
func (p *fallbackProvider) DNSServers() ([]DNSRecord, error) {
	return resolvConfServers(resolvConfPath)
}

// owningInterface finds the up interface whose subnet contains ip. Returns
// empty when no interface claims the address.
func owningInterface(ifaces []net.Interface, ip net.IP) string {
	for _, ifi := range ifaces {
		if ifi.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := ifi.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if ok && ipNet.Contains(ip) {
				return ifi.Name
			}
		}
	}
	return ""
}
