package ratelimit

import (
	"net/http"
	"strings"
)

// unlimitedEndpoint is returned for probes that must never be throttled
var unlimitedEndpoint = EndpointConfig{Limit: 0}

// MatchEndpoint returns the configuration that applies to a request, or nil.
// GET /health and GET /metrics are always unlimited. An exact path wins;
// otherwise the longest configured prefix ending in "/" is used.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if method == http.MethodGet && (path == "/health" || path == "/metrics") {
		unlimited := unlimitedEndpoint
		return &unlimited
	}

	var best *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			if best == nil || len(c.Path) > len(best.Path) {
				best = c
			}
		}
	}
	return best
}
