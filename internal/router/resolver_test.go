package router

import (
	"errors"
	"testing"

	"github.com/HerbHall/nettriage/internal/netinfo"
	"github.com/HerbHall/nettriage/pkg/models"
)

type stubProvider struct {
	services    []netinfo.ServiceRecord
	servicesErr error
	dns         []netinfo.DNSRecord
	dnsErr      error
}

func (s *stubProvider) NetworkServices() ([]netinfo.ServiceRecord, error) {
	return s.services, s.servicesErr
}

func (s *stubProvider) DNSServers() ([]netinfo.DNSRecord, error) {
	return s.dns, s.dnsErr
}

func TestActiveRouters_MergesFamilies(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{InterfaceName: "en0", IPv4Router: "192.168.1.1"},
			{InterfaceName: "en0", IPv6Router: "fe80::1"},
		},
	}

	routers := New(provider, nil).ActiveRouters()

	if len(routers) != 1 {
		t.Fatalf("ActiveRouters() returned %d entries, want 1 merged entry", len(routers))
	}
	if routers[0].IPv4Router != "192.168.1.1" {
		t.Errorf("IPv4Router = %q, want %q", routers[0].IPv4Router, "192.168.1.1")
	}
	if routers[0].IPv6Router != "fe80::1" {
		t.Errorf("IPv6Router = %q, want %q", routers[0].IPv6Router, "fe80::1")
	}
}

func TestActiveRouters_LastSeenWinsPerField(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{InterfaceName: "en0", IPv4Router: "192.168.1.1", IPv6Router: "fe80::1"},
			{InterfaceName: "en0", IPv4Router: "10.0.0.1"},
		},
	}

	routers := New(provider, nil).ActiveRouters()

	if len(routers) != 1 {
		t.Fatalf("ActiveRouters() returned %d entries, want 1", len(routers))
	}
	if routers[0].IPv4Router != "10.0.0.1" {
		t.Errorf("IPv4Router = %q, want last-seen %q", routers[0].IPv4Router, "10.0.0.1")
	}
	if routers[0].IPv6Router != "fe80::1" {
		t.Errorf("IPv6Router = %q, want earlier value %q preserved", routers[0].IPv6Router, "fe80::1")
	}
}

func TestActiveRouters_PreservesEnumerationOrder(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{InterfaceName: "lo"},
			{InterfaceName: "eth0"},
			{InterfaceName: "wlan0"},
			{InterfaceName: "eth0", IPv4Router: "192.168.1.1"},
		},
	}

	routers := New(provider, nil).ActiveRouters()

	want := []string{"lo", "eth0", "wlan0"}
	if len(routers) != len(want) {
		t.Fatalf("ActiveRouters() returned %d entries, want %d", len(routers), len(want))
	}
	for i, name := range want {
		if routers[i].InterfaceName != name {
			t.Errorf("routers[%d].InterfaceName = %q, want %q", i, routers[i].InterfaceName, name)
		}
	}
}

func TestActiveRouters_SkipsNamelessRecords(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{IPv4Router: "192.168.1.1"},
			{InterfaceName: "en0", IPv4Router: "10.0.0.1"},
		},
	}

	routers := New(provider, nil).ActiveRouters()

	if len(routers) != 1 {
		t.Fatalf("ActiveRouters() returned %d entries, want 1", len(routers))
	}
	if routers[0].InterfaceName != "en0" {
		t.Errorf("InterfaceName = %q, want %q", routers[0].InterfaceName, "en0")
	}
}

func TestActiveRouters_ProviderErrorYieldsEmpty(t *testing.T) {
	provider := &stubProvider{servicesErr: errors.New("netlink: permission denied")}

	routers := New(provider, nil).ActiveRouters()

	if len(routers) != 0 {
		t.Errorf("ActiveRouters() returned %d entries on provider error, want 0", len(routers))
	}
}

func TestActiveRouters_MediaUpgradesFromUnknown(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{InterfaceName: "xyz0"},
			{InterfaceName: "xyz0", ServiceName: "Wi-Fi", IPv4Router: "192.168.1.1"},
		},
	}

	routers := New(provider, nil).ActiveRouters()

	if len(routers) != 1 {
		t.Fatalf("ActiveRouters() returned %d entries, want 1", len(routers))
	}
	if routers[0].MediaType != models.MediaWiFi {
		t.Errorf("MediaType = %q, want %q after merge", routers[0].MediaType, models.MediaWiFi)
	}
}

func TestDefaultGateway_PrefersIPv4(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{InterfaceName: "utun0", IPv6Router: "fe80::dead"},
			{InterfaceName: "en0", IPv4Router: "192.168.1.1"},
		},
	}

	gw, ok := New(provider, nil).DefaultGateway()

	if !ok {
		t.Fatal("DefaultGateway() ok = false, want true")
	}
	if gw != "192.168.1.1" {
		t.Errorf("DefaultGateway() = %q, want IPv4 %q over enumeration order", gw, "192.168.1.1")
	}
}

func TestDefaultGateway_FallsBackToIPv6(t *testing.T) {
	provider := &stubProvider{
		services: []netinfo.ServiceRecord{
			{InterfaceName: "en0"},
			{InterfaceName: "en1", IPv6Router: "fd00::1"},
		},
	}

	gw, ok := New(provider, nil).DefaultGateway()

	if !ok {
		t.Fatal("DefaultGateway() ok = false, want true")
	}
	if gw != "fd00::1" {
		t.Errorf("DefaultGateway() = %q, want %q", gw, "fd00::1")
	}
}

func TestDefaultGateway_NoneFound(t *testing.T) {
	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"no routers", &stubProvider{services: []netinfo.ServiceRecord{{InterfaceName: "lo"}}}},
		{"no services", &stubProvider{}},
		{"provider error", &stubProvider{servicesErr: errors.New("boom")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, ok := New(tt.provider, nil).DefaultGateway()
			if ok {
				t.Errorf("DefaultGateway() = %q, ok = true, want none", gw)
			}
		})
	}
}

func TestDNSServers_DeduplicatesByAddress(t *testing.T) {
	provider := &stubProvider{
		dns: []netinfo.DNSRecord{
			{Address: "192.168.1.1"},
			{Address: "2606:4700:4700::1111", Interface: "en0"},
			{Address: "192.168.1.1", Interface: "en0"},
			{Address: "8.8.8.8"},
		},
	}

	servers := New(provider, nil).DNSServers()

	if len(servers) != 3 {
		t.Fatalf("DNSServers() returned %d entries, want 3 deduplicated", len(servers))
	}
	if servers[0].Address != "192.168.1.1" || servers[1].Address != "2606:4700:4700::1111" || servers[2].Address != "8.8.8.8" {
		t.Errorf("DNSServers() order = [%s, %s, %s], want first-seen order",
			servers[0].Address, servers[1].Address, servers[2].Address)
	}
	if servers[0].IsIPv6 {
		t.Error("IsIPv6 = true for an IPv4 address")
	}
	if !servers[1].IsIPv6 {
		t.Error("IsIPv6 = false for an IPv6 address")
	}
}

func TestDNSServers_ErrorYieldsEmpty(t *testing.T) {
	provider := &stubProvider{dnsErr: errors.New("resolv.conf unreadable")}

	servers := New(provider, nil).DNSServers()

	if len(servers) != 0 {
		t.Errorf("DNSServers() returned %d entries on provider error, want 0", len(servers))
	}
}
