package models

// Diagnosis names one classified connectivity situation derived from a
// NetworkStatus snapshot.
type Diagnosis string

// Diagnoses for the full three-signal snapshot, one per combination of
// gateway, internet, and DNS outcomes.
const (
	DiagAllOperational    Diagnosis = "all_operational"
	DiagDNSFailure        Diagnosis = "dns_failure"
	DiagISPWANIssue       Diagnosis = "isp_wan_issue"
	DiagISPIssueBoth      Diagnosis = "isp_issue_affecting_both"
	DiagGatewayDownRestUp Diagnosis = "gateway_down_rest_up"
	DiagVeryUnusual       Diagnosis = "very_unusual"
	DiagCheckCablesRouter Diagnosis = "check_cables_router"
	DiagNoConnectivity    Diagnosis = "no_connectivity"
)

// DiagGatewayDown is the reduced-form diagnosis used when only gateway and
// internet were checked and the gateway probe failed while internet worked.
const DiagGatewayDown Diagnosis = "gateway_down"

// Label returns a short human-readable title for the diagnosis.
func (d Diagnosis) Label() string {
	switch d {
	case DiagAllOperational:
		return "All systems operational"
	case DiagDNSFailure:
		return "DNS failure"
	case DiagISPWANIssue:
		return "ISP or WAN issue"
	case DiagISPIssueBoth:
		return "ISP issue affecting internet and DNS"
	case DiagGatewayDownRestUp:
		return "Gateway unresponsive, rest working"
	case DiagVeryUnusual:
		return "Very unusual state"
	case DiagCheckCablesRouter:
		return "Check cables and router"
	case DiagNoConnectivity:
		return "No connectivity"
	case DiagGatewayDown:
		return "Gateway unresponsive"
	}
	return "Unknown"
}

// Description returns a one-sentence explanation suitable for end users.
func (d Diagnosis) Description() string {
	switch d {
	case DiagAllOperational:
		return "Gateway, internet, and DNS all respond normally."
	case DiagDNSFailure:
		return "Connectivity works but name resolution fails; check the configured DNS servers."
	case DiagISPWANIssue:
		return "The local gateway responds but the wider internet does not; the problem is upstream of the router."
	case DiagISPIssueBoth:
		return "The local gateway responds but both internet and DNS fail; the upstream link is likely down."
	case DiagGatewayDownRestUp:
		return "Internet and DNS work even though the gateway probe failed; the router may be dropping probes."
	case DiagVeryUnusual:
		return "Internet works without a responding gateway while DNS fails; this combination is rarely seen."
	case DiagCheckCablesRouter:
		return "Only DNS responded; check the cable, Wi-Fi link, and router."
	case DiagNoConnectivity:
		return "Nothing responded; the machine has no working network path."
	case DiagGatewayDown:
		return "Internet works even though the gateway probe failed; the router may be dropping probes."
	}
	return "The snapshot did not match a known connectivity pattern."
}
