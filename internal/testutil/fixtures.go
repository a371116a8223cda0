package testutil

import (
	"time"

	"github.com/HerbHall/nettriage/pkg/models"
)

// NewStatus returns a NetworkStatus snapshot with all three checks
// reachable, suitable as a test fixture. Override slots with the With
// options.
func NewStatus(opts ...func(*models.NetworkStatus)) models.NetworkStatus {
	s := models.NetworkStatus{
		Gateway:   models.Reachable(2 * time.Millisecond),
		Internet:  models.Reachable(40 * time.Millisecond),
		DNS:       models.Reachable(12 * time.Millisecond),
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithGateway sets the gateway slot.
func WithGateway(rs models.ReachabilityStatus) func(*models.NetworkStatus) {
	return func(s *models.NetworkStatus) { s.Gateway = rs }
}

// WithInternet sets the internet slot.
func WithInternet(rs models.ReachabilityStatus) func(*models.NetworkStatus) {
	return func(s *models.NetworkStatus) { s.Internet = rs }
}

// WithDNS sets the DNS slot.
func WithDNS(rs models.ReachabilityStatus) func(*models.NetworkStatus) {
	return func(s *models.NetworkStatus) { s.DNS = rs }
}

// WithTimestamp sets the snapshot timestamp.
func WithTimestamp(t time.Time) func(*models.NetworkStatus) {
	return func(s *models.NetworkStatus) { s.Timestamp = t }
}

// NewRouter returns a RouterAddress fixture for a wired home network.
func NewRouter(opts ...func(*models.RouterAddress)) models.RouterAddress {
	r := models.RouterAddress{
		InterfaceName: "en0",
		IPv4Router:    "192.168.1.1",
		MediaType:     models.MediaEthernet,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithInterface sets the interface name.
func WithInterface(name string) func(*models.RouterAddress) {
	return func(r *models.RouterAddress) { r.InterfaceName = name }
}

// WithIPv4 sets the IPv4 router address.
func WithIPv4(addr string) func(*models.RouterAddress) {
	return func(r *models.RouterAddress) { r.IPv4Router = addr }
}

// WithIPv6 sets the IPv6 router address.
func WithIPv6(addr string) func(*models.RouterAddress) {
	return func(r *models.RouterAddress) { r.IPv6Router = addr }
}

// WithMedia sets the media type.
func WithMedia(mt models.MediaType) func(*models.RouterAddress) {
	return func(r *models.RouterAddress) { r.MediaType = mt }
}
