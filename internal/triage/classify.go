package triage

import "github.com/HerbHall/nettriage/pkg/models"

// Classify maps the three reachability outcomes to a diagnosis. The mapping
// is total over the eight gateway/internet/dns combinations.
func Classify(gateway, internet, dns bool) models.Diagnosis {
	switch {
	case gateway && internet && dns:
		return models.DiagAllOperational
	case gateway && internet && !dns:
		return models.DiagDNSFailure
	case gateway && !internet && dns:
		return models.DiagISPWANIssue
	case gateway && !internet && !dns:
		return models.DiagISPIssueBoth
	case !gateway && internet && dns:
		return models.DiagGatewayDownRestUp
	case !gateway && internet && !dns:
		return models.DiagVeryUnusual
	case !gateway && !internet && dns:
		return models.DiagCheckCablesRouter
	default: // !gateway && !internet && !dns
		return models.DiagNoConnectivity
	}
}

// ClassifyTwoSignal collapses the mapping to the four diagnoses available
// when DNS was not checked.
func ClassifyTwoSignal(gateway, internet bool) models.Diagnosis {
	switch {
	case gateway && internet:
		return models.DiagAllOperational
	case gateway && !internet:
		return models.DiagISPWANIssue
	case !gateway && internet:
		return models.DiagGatewayDown
	default: // neither
		return models.DiagNoConnectivity
	}
}

// Diagnose classifies a snapshot by each check's reachable predicate.
// Unknown and timeout both count as not reachable.
func Diagnose(status models.NetworkStatus) models.Diagnosis {
	return Classify(
		status.Gateway.IsReachable(),
		status.Internet.IsReachable(),
		status.DNS.IsReachable(),
	)
}

// DiagnoseTwoSignal classifies a gateway-and-internet-only snapshot.
func DiagnoseTwoSignal(status models.NetworkStatus) models.Diagnosis {
	return ClassifyTwoSignal(
		status.Gateway.IsReachable(),
		status.Internet.IsReachable(),
	)
}
