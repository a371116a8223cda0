package netinfo

import (
	"fmt"

	"github.com/miekg/dns"
)

// resolvConfPath is the resolver configuration consulted for system DNS
// servers on Unix-like platforms.
const resolvConfPath = "/etc/resolv.conf"

// resolvConfServers reads the system DNS servers from a resolv.conf style
// file, preserving their configured order.
func resolvConfServers(path string) ([]DNSRecord, error) {
	conf, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resolver config %s: %w", path, err)
	}

	records := make([]DNSRecord, 0, len(conf.Servers))
	for _, server := range conf.Servers {
		records = append(records, DNSRecord{Address: server})
	}
	return records, nil
}
