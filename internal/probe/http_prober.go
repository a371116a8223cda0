// Package probe issues single bounded reachability probes against gateway,
// internet, and DNS targets. All transport failures are folded into a
// reachability status; probes never return an error to the caller.
package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/HerbHall/nettriage/pkg/models"
)

// DefaultTimeout bounds every individual probe.
const DefaultTimeout = 3 * time.Second

// Prober issues one reachability probe per call. The three methods differ in
// success policy, not mechanics: a gateway answers with any HTTP response, an
// internet endpoint must answer 2xx, and a DNS domain only has to resolve.
type Prober interface {
	Gateway(ctx context.Context, host string) models.ReachabilityStatus
	Endpoint(ctx context.Context, url string) models.ReachabilityStatus
	Domain(ctx context.Context, domain string) models.ReachabilityStatus
}

// Compile-time interface guard.
var _ Prober = (*HTTPProber)(nil)

// HTTPProber probes targets with HTTP HEAD requests.
type HTTPProber struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTTPProber creates a prober whose probes are bounded by the given
// timeout (DefaultTimeout when zero). Self-signed TLS certificates are
// accepted (InsecureSkipVerify): the probes test reachability, not
// certificate validity.
func NewHTTPProber(timeout time.Duration, logger *zap.Logger) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPProber{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				TLSClientConfig:   &tls.Config{MinVersion: tls.VersionTLS12, InsecureSkipVerify: true}, //nolint:gosec // G402: reachability probing must work with self-signed certs
				DisableKeepAlives: true,
			},
		},
		logger: logger,
	}
}

// Gateway probes a bare router host over plain HTTP. Any HTTP response before
// the deadline proves the router is alive; the status code does not matter.
// An empty host means no gateway was discoverable, so no probe runs.
func (p *HTTPProber) Gateway(ctx context.Context, host string) models.ReachabilityStatus {
	if host == "" {
		return models.Unknown()
	}
	_, elapsed, err := p.head(ctx, hostURL(host))
	if err != nil {
		if isTimeout(err) {
			return models.Timeout()
		}
		p.logger.Debug("gateway probe failed", zap.String("host", host), zap.Error(err))
		return models.Unreachable()
	}
	return models.Reachable(elapsed)
}

// Endpoint probes one internet test URL. Only a 2xx response counts as
// reachable; any other status or transport failure is a negative result.
func (p *HTTPProber) Endpoint(ctx context.Context, url string) models.ReachabilityStatus {
	code, elapsed, err := p.head(ctx, url)
	if err != nil {
		if isTimeout(err) {
			return models.Timeout()
		}
		p.logger.Debug("endpoint probe failed", zap.String("url", url), zap.Error(err))
		return models.Unreachable()
	}
	if code < 200 || code > 299 {
		p.logger.Debug("endpoint probe rejected status",
			zap.String("url", url),
			zap.Int("status", code))
		return models.Unreachable()
	}
	return models.Reachable(elapsed)
}

// Domain probes a DNS test domain over HTTPS. The probe only has to prove the
// name resolves: any HTTP response counts, and so does any transport failure
// past name resolution. A refused connection still proves the name resolved.
func (p *HTTPProber) Domain(ctx context.Context, domain string) models.ReachabilityStatus {
	target := domain
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}
	_, elapsed, err := p.head(ctx, target)
	if err != nil {
		switch {
		case isTimeout(err):
			return models.Timeout()
		case isResolutionFailure(err):
			p.logger.Debug("domain did not resolve", zap.String("domain", domain), zap.Error(err))
			return models.Unreachable()
		case isParseFailure(err):
			// The URL never reached the network, so nothing resolved.
			p.logger.Debug("domain is not probeable", zap.String("domain", domain), zap.Error(err))
			return models.Unreachable()
		default:
			// Resolution succeeded; the failure happened after the lookup.
			return models.Reachable(elapsed)
		}
	}
	return models.Reachable(elapsed)
}

// head issues one HEAD request and reports the response status code together
// with the elapsed wall-clock time.
func (p *HTTPProber) head(ctx context.Context, url string) (int, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return 0, 0, err
	}

	start := time.Now()
	resp, err := p.client.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		return 0, elapsed, err
	}
	resp.Body.Close()

	return resp.StatusCode, elapsed, nil
}

// hostURL turns a bare host or IP into a plain-HTTP probe URL. IPv6 literals
// carry two or more colons and need brackets (plus an escaped zone separator)
// to parse as a URL; hosts and host:port pairs pass through untouched.
func hostURL(host string) string {
	if strings.Count(host, ":") >= 2 {
		return "http://[" + strings.ReplaceAll(host, "%", "%25") + "]"
	}
	return "http://" + host
}

// isTimeout reports whether err is a deadline expiry rather than an outright
// connection failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isResolutionFailure reports whether err means the host name could not be
// resolved.
func isResolutionFailure(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isParseFailure reports whether err means the probe URL itself was invalid.
func isParseFailure(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) && urlErr.Op == "parse"
}
