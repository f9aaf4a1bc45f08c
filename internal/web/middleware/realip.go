package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strings"
)

// TrustedRealIP rewrites RemoteAddr from X-Real-IP or X-Forwarded-For, but
// only when the connection itself comes from a trusted proxy CIDR. Requests
// from anywhere else keep their original RemoteAddr, so clients cannot spoof
// their way past rate limiting or audit logs by sending the headers directly.
func TrustedRealIP(trustedCIDRs []string) func(http.Handler) http.Handler {
	trustedNets := parseTrustedNets(trustedCIDRs)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remoteIP := extractIP(r.RemoteAddr)

			if isTrusted(remoteIP, trustedNets) {
				if rip := r.Header.Get("X-Real-IP"); rip != "" {
					if ip := net.ParseIP(strings.TrimSpace(rip)); ip != nil {
						r.RemoteAddr = ip.String()
					}
				} else if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
					// First entry in the chain is the original client.
					candidate := xff
					if idx := strings.Index(xff, ","); idx > 0 {
						candidate = xff[:idx]
					}
					if ip := net.ParseIP(strings.TrimSpace(candidate)); ip != nil {
						r.RemoteAddr = ip.String()
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// parseTrustedNets parses CIDRs once at startup. Bare IPs are accepted as
// /32 (or /128) networks; invalid entries are logged and skipped.
func parseTrustedNets(cidrs []string) []*net.IPNet {
	var nets []*net.IPNet
	for _, cidr := range cidrs {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}

		if _, network, err := net.ParseCIDR(cidr); err == nil {
			nets = append(nets, network)
			continue
		}

		if ip := net.ParseIP(cidr); ip != nil {
			mask := net.CIDRMask(128, 128)
			if ip.To4() != nil {
				mask = net.CIDRMask(32, 32)
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: mask})
			continue
		}

		slog.Warn("realip: invalid trusted proxy CIDR, skipping", "cidr", cidr)
	}
	return nets
}

// extractIP parses an IP from a host:port string or a plain IP.
func extractIP(addr string) net.IP {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return net.ParseIP(host)
	}
	return net.ParseIP(addr)
}

func isTrusted(ip net.IP, trusted []*net.IPNet) bool {
	if ip == nil {
		return false
	}
	for _, network := range trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
