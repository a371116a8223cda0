// Package render formats diagnostic results for terminal and JSON output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/HerbHall/nettriage/pkg/models"
)

// Report is one assembled diagnostic pass, ready to render.
type Report struct {
	ID          string                 `json:"id"`
	Status      models.NetworkStatus   `json:"status"`
	Diagnosis   models.Diagnosis       `json:"diagnosis"`
	Label       string                 `json:"label"`
	Description string                 `json:"description"`
	Routers     []models.RouterAddress `json:"routers,omitempty"`
	DNSServers  []models.DNSServerInfo `json:"dns_servers,omitempty"`
}

// NewReport assembles a report with a fresh identifier.
func NewReport(status models.NetworkStatus, diagnosis models.Diagnosis, routers []models.RouterAddress, dnsServers []models.DNSServerInfo) Report {
	return Report{
		ID:          uuid.New().String(),
		Status:      status,
		Diagnosis:   diagnosis,
		Label:       diagnosis.Label(),
		Description: diagnosis.Description(),
		Routers:     routers,
		DNSServers:  dnsServers,
	}
}

// WriteJSON writes a report or listing as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteText writes a terminal summary of the report.
func WriteText(w io.Writer, report Report) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "Gateway:\t%s\n", statusLine(report.Status.Gateway))
	fmt.Fprintf(tw, "Internet:\t%s\n", statusLine(report.Status.Internet))
	fmt.Fprintf(tw, "DNS:\t%s\n", statusLine(report.Status.DNS))
	fmt.Fprintf(tw, "Checked:\t%s\n", report.Status.Timestamp.Format(time.RFC3339))
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n%s\n", report.Label, report.Description)
	return err
}

// MeaningfulRouters narrows a router list to interfaces carrying a real
// router address. Interfaces whose only address is the bare link-local
// prefix are dropped.
func MeaningfulRouters(routers []models.RouterAddress) []models.RouterAddress {
	kept := make([]models.RouterAddress, 0, len(routers))
	for _, r := range routers {
		if r.Meaningful() {
			kept = append(kept, r)
		}
	}
	return kept
}

// WriteRouters writes a router list as a table.
func WriteRouters(w io.Writer, routers []models.RouterAddress) error {
	if len(routers) == 0 {
		_, err := fmt.Fprintln(w, "No active routers found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INTERFACE\tMEDIA\tIPV4 ROUTER\tIPV6 ROUTER")
	for _, r := range routers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.InterfaceName, r.MediaType, orDash(r.IPv4Router), orDash(r.IPv6Router))
	}
	return tw.Flush()
}

// WriteDNSServers writes the system DNS server list as a table.
func WriteDNSServers(w io.Writer, servers []models.DNSServerInfo) error {
	if len(servers) == 0 {
		_, err := fmt.Fprintln(w, "No DNS servers configured.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ADDRESS\tFAMILY\tINTERFACE")
	for _, s := range servers {
		family := "IPv4"
		if s.IsIPv6 {
			family = "IPv6"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Address, family, orDash(s.Interface))
	}
	return tw.Flush()
}

// WriteTargets lists the configured probe targets.
func WriteTargets(w io.Writer, endpoints, domains []string) error {
	fmt.Fprintln(w, "Internet endpoints:")
	for _, e := range endpoints {
		fmt.Fprintf(w, "  %s\n", e)
	}
	fmt.Fprintln(w, "DNS test domains:")
	for _, d := range domains {
		if _, err := fmt.Fprintf(w, "  %s\n", d); err != nil {
			return err
		}
	}
	return nil
}

// statusLine renders one probe outcome, with latency when one was measured.
func statusLine(s models.ReachabilityStatus) string {
	switch s.State {
	case models.StateReachable:
		if s.LatencyMs > 0 {
			return fmt.Sprintf("reachable (%.0f ms)", s.LatencyMs)
		}
		return "reachable"
	case models.StateUnreachable:
		return "unreachable"
	case models.StateTimeout:
		return "timeout"
	case models.StateUnknown:
		return "unknown"
	}
	return string(s.State)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
