package extract

import (
	"net/url"
	"strconv"
	"strings"
)

// MaxURLLen is the longest candidate URL the importer will consider.
const MaxURLLen = 2048

// IsSafeURL decides whether a candidate URL may be fetched at all. It inspects
// only the literal string: scheme must be http/https and the host must not be
// loopback or a private range. It never resolves DNS, so a hostname that
// rebinds to an internal IP at connect time is a residual risk.
func IsSafeURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return false
	}
	if len(raw) > MaxURLLen {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}

	return !isPrivateHost(host)
}

func isPrivateHost(host string) bool {
	host = strings.ToLower(host)
	if host == "localhost" || host == "127.0.0.1" {
		return true
	}
	// RFC1918 ranges by literal prefix: 10/8, 192.168/16, 172.16-31/12.
	if strings.HasPrefix(host, "10.") || strings.HasPrefix(host, "192.168.") {
		return true
	}
	for i := 16; i <= 31; i++ {
		if strings.HasPrefix(host, "172."+strconv.Itoa(i)+".") {
			return true
		}
	}
	return false
}
