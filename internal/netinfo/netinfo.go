// Package netinfo abstracts the platform network-configuration store. It
// reports raw per-family router entries and system DNS servers; merging and
// classification happen in the router package.
package netinfo

import "net"

// ServiceRecord is one raw router entry as reported by the platform. A
// record carries at most one address family; entries for the same interface
// are merged downstream.
type ServiceRecord struct {
	ServiceName   string // user-visible service name, empty when the platform has none
	InterfaceName string
	IPv4Router    string
	IPv6Router    string
	Hardware      string // hardware descriptor, e.g. "Ethernet", empty when unknown
}

// DNSRecord is one raw system DNS server entry.
type DNSRecord struct {
	Address   string
	Interface string
}

// Provider reads the platform network configuration. Implementations exist
// per target OS; the probing and diagnosis logic never touches OS APIs
// directly.
type Provider interface {
	NetworkServices() ([]ServiceRecord, error)
	DNSServers() ([]DNSRecord, error)
}

// routerAddr renders a router IP for probing and display. A link-local IPv6
// router is only dialable with its zone, so the owning interface name is
// appended when one is known.
func routerAddr(ip net.IP, iface string) string {
	if ip == nil {
		return ""
	}
	if ip.To4() == nil && ip.IsLinkLocalUnicast() && iface != "" {
		return ip.String() + "%" + iface
	}
	return ip.String()
}

// baseRecords builds one empty router record per up interface, preserving
// enumeration order. Records for interfaces that later turn out to carry a
// default route are merged with the routed entries downstream.
func baseRecords(ifaces []net.Interface) []ServiceRecord {
	records := make([]ServiceRecord, 0, len(ifaces))
	for _, ifi := range ifaces {
		if ifi.Flags&net.FlagUp == 0 {
			continue
		}
		records = append(records, ServiceRecord{InterfaceName: ifi.Name})
	}
	return records
}
