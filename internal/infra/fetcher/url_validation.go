package fetcher

import (
	"fmt"
	"net"
	"net/url"

	"nbu-dashboard/internal/domain/entity"
	"nbu-dashboard/internal/usecase/dataset"
)

// hostOf extracts the hostname from an already format-validated URL.
func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// validateURL validates a URL before an HTTP request is made. Format
// checks come from the entity layer; when denyPrivateIPs is set, the
// host is additionally resolved and rejected if any address is
// private, loopback, or link-local (SSRF prevention for user-supplied
// custom endpoints).
func validateURL(urlStr string, denyPrivateIPs bool) error {
	if err := entity.ValidateURL(urlStr); err != nil {
		return fmt.Errorf("%w: %v", dataset.ErrInvalidURL, err)
	}

	if !denyPrivateIPs {
		return nil
	}

	hostname := hostOf(urlStr)
	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", dataset.ErrNetwork, hostname, err)
	}
	for _, ip := range ips {
		if entity.IsPrivateIP(ip) {
			return fmt.Errorf("%w: hostname %q resolves to private IP %s", dataset.ErrInvalidURL, hostname, ip)
		}
	}
	return nil
}
