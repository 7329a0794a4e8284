package ratelimit

import (
	"strings"
)

var unlimited = EndpointConfig{Path: "*", Limit: 0}

// MatchEndpoint returns the tier for a request, or nil when the default
// applies. Exact paths win over prefixes, and longer prefixes win over
// shorter ones. Probes and metrics scrapes are never limited.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if method == "GET" && (path == "/health" || path == "/metrics") {
		u := unlimited
		return &u
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if config.Method != method || !strings.HasSuffix(config.Path, "/") {
			continue
		}
		if strings.HasPrefix(path, config.Path) && (best == nil || len(config.Path) > len(best.Path)) {
			best = config
		}
	}
	return best
}
