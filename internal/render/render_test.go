package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/HerbHall/nettriage/internal/testutil"
	"github.com/HerbHall/nettriage/pkg/models"
)

func TestNewReport(t *testing.T) {
	status := testutil.NewStatus()

	r1 := NewReport(status, models.DiagAllOperational, nil, nil)
	r2 := NewReport(status, models.DiagAllOperational, nil, nil)

	if r1.ID == "" {
		t.Fatal("NewReport() ID is empty")
	}
	if r1.ID == r2.ID {
		t.Error("two reports share an ID")
	}
	if r1.Label == "" || r1.Description == "" {
		t.Errorf("report text = %q / %q, want both filled", r1.Label, r1.Description)
	}
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	checked := time.Date(2026, 8, 25, 18, 4, 7, 0, time.UTC)
	report := NewReport(
		testutil.NewStatus(
			testutil.WithDNS(models.Timeout()),
			testutil.WithTimestamp(checked),
		),
		models.DiagDNSFailure,
		[]models.RouterAddress{testutil.NewRouter(testutil.WithIPv6("fe80::1"))},
		[]models.DNSServerInfo{{Address: "192.168.1.1"}},
	)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, report); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Diagnosis != models.DiagDNSFailure {
		t.Errorf("Diagnosis = %q, want %q", decoded.Diagnosis, models.DiagDNSFailure)
	}
	if decoded.Status.DNS.State != models.StateTimeout {
		t.Errorf("DNS state = %q, want %q", decoded.Status.DNS.State, models.StateTimeout)
	}
	if !decoded.Status.Timestamp.Equal(checked) {
		t.Errorf("Timestamp = %v, want %v", decoded.Status.Timestamp, checked)
	}
	if len(decoded.Routers) != 1 || decoded.Routers[0].IPv6Router != "fe80::1" {
		t.Errorf("Routers = %+v, want the fixture router", decoded.Routers)
	}
	if len(decoded.DNSServers) != 1 {
		t.Errorf("DNSServers = %+v, want one entry", decoded.DNSServers)
	}
}

func TestWriteText_CoversAllSlots(t *testing.T) {
	report := NewReport(
		testutil.NewStatus(
			testutil.WithGateway(models.Unreachable()),
			testutil.WithInternet(models.Reachable(40*time.Millisecond)),
			testutil.WithDNS(models.Unknown()),
		),
		models.DiagGatewayDown, nil, nil,
	)

	var buf bytes.Buffer
	if err := WriteText(&buf, report); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Gateway:", "unreachable",
		"Internet:", "reachable (40 ms)",
		"DNS:", "unknown",
		"Checked:", report.Label, report.Description,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteText_TimeoutLine(t *testing.T) {
	report := NewReport(
		testutil.NewStatus(testutil.WithInternet(models.Timeout())),
		models.DiagISPWANIssue, nil, nil,
	)

	var buf bytes.Buffer
	if err := WriteText(&buf, report); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "timeout") {
		t.Errorf("output missing timeout line:\n%s", buf.String())
	}
}

func TestWriteRouters_Table(t *testing.T) {
	routers := []models.RouterAddress{
		testutil.NewRouter(),
		testutil.NewRouter(
			testutil.WithInterface("wlan0"),
			testutil.WithIPv4(""),
			testutil.WithIPv6("fe80::1"),
			testutil.WithMedia(models.MediaWiFi),
		),
	}

	var buf bytes.Buffer
	if err := WriteRouters(&buf, routers); err != nil {
		t.Fatalf("WriteRouters() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"INTERFACE", "en0", "192.168.1.1", "wlan0", "wifi", "fe80::1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRouters_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRouters(&buf, nil); err != nil {
		t.Fatalf("WriteRouters() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No active routers") {
		t.Errorf("output = %q, want the empty-list message", buf.String())
	}
}

func TestMeaningfulRouters_DropsBareLinkLocal(t *testing.T) {
	routers := []models.RouterAddress{
		testutil.NewRouter(
			testutil.WithInterface("utun3"),
			testutil.WithIPv4(""),
			testutil.WithIPv6("fe80::"),
			testutil.WithMedia(models.MediaTunnel),
		),
		testutil.NewRouter(),
		testutil.NewRouter(
			testutil.WithInterface("wlan0"),
			testutil.WithIPv4(""),
			testutil.WithIPv6("fe80::1"),
			testutil.WithMedia(models.MediaWiFi),
		),
	}

	kept := MeaningfulRouters(routers)
	if len(kept) != 2 {
		t.Fatalf("MeaningfulRouters() kept %d routers, want 2: %+v", len(kept), kept)
	}
	if kept[0].InterfaceName != "en0" || kept[1].InterfaceName != "wlan0" {
		t.Errorf("kept = %q, %q; want en0, wlan0", kept[0].InterfaceName, kept[1].InterfaceName)
	}
}

func TestWriteDNSServers_Table(t *testing.T) {
	servers := []models.DNSServerInfo{
		{Address: "192.168.1.1"},
		{Address: "2606:4700:4700::1111", Interface: "en0", IsIPv6: true},
	}

	var buf bytes.Buffer
	if err := WriteDNSServers(&buf, servers); err != nil {
		t.Fatalf("WriteDNSServers() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ADDRESS", "192.168.1.1", "IPv4", "2606:4700:4700::1111", "IPv6", "en0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTargets(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTargets(&buf, []string{"https://dns.google"}, []string{"google.com", "example.com"})
	if err != nil {
		t.Fatalf("WriteTargets() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Internet endpoints:", "https://dns.google", "DNS test domains:", "google.com", "example.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
