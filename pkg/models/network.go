package models

// MediaType categorizes the physical transport behind a network interface.
type MediaType string

const (
	MediaEthernet    MediaType = "ethernet"
	MediaWiFi        MediaType = "wifi"
	MediaCellular    MediaType = "cellular"
	MediaBluetooth   MediaType = "bluetooth"
	MediaThunderbolt MediaType = "thunderbolt"
	MediaUSB         MediaType = "usb"
	MediaFireWire    MediaType = "firewire"
	MediaBridge      MediaType = "bridge"
	MediaTunnel      MediaType = "tunnel"
	MediaLoopback    MediaType = "loopback"
	MediaUnknown     MediaType = "unknown"
)

// linkLocalBare is the bare IPv6 link-local prefix that some configuration
// stores report when an interface has no usable IPv6 router.
const linkLocalBare = "fe80::"

// RouterAddress holds the router addresses learned for one network interface.
// IPv4 and IPv6 routes for the same interface are merged into a single record
// keyed by interface name.
type RouterAddress struct {
	InterfaceName string    `json:"interface_name"`
	IPv4Router    string    `json:"ipv4_router,omitempty"`
	IPv6Router    string    `json:"ipv6_router,omitempty"`
	MediaType     MediaType `json:"media_type"`
}

// Meaningful reports whether the record carries a router address worth acting
// on: any IPv4 router, or an IPv6 router more specific than the bare
// link-local prefix.
func (r RouterAddress) Meaningful() bool {
	if r.IPv4Router != "" {
		return true
	}
	return r.IPv6Router != "" && r.IPv6Router != linkLocalBare
}

// DNSServerInfo describes one system-configured DNS server.
type DNSServerInfo struct {
	Address   string `json:"address"`
	Interface string `json:"interface,omitempty"`
	IsIPv6    bool   `json:"is_ipv6"`
}
