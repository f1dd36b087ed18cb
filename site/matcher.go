package site

import (
	"net/url"
	"strings"

	"github.com/fwojciec/wixbook"
)

// HostSuffix matches URLs whose host ends with suffix, ignoring case.
// A leading dot restricts the match to subdomains.
func HostSuffix(suffix string) wixbook.Matcher {
	suffix = strings.ToLower(suffix)
	return func(raw string) bool {
		u, err := url.Parse(raw)
		if err != nil {
			return false
		}
		return strings.HasSuffix(strings.ToLower(u.Hostname()), suffix)
	}
}

// Host matches URLs whose host equals one of hosts, ignoring case.
func Host(hosts ...string) wixbook.Matcher {
	set := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		set[strings.ToLower(h)] = struct{}{}
	}
	return func(raw string) bool {
		u, err := url.Parse(raw)
		if err != nil {
			return false
		}
		_, ok := set[strings.ToLower(u.Hostname())]
		return ok
	}
}

// Any matches every URL.
func Any() wixbook.Matcher {
	return func(string) bool { return true }
}

// WixHosts matches the free hosting domain of Wix sites.
func WixHosts() wixbook.Matcher {
	return HostSuffix(".wixsite.com")
}
