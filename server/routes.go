package server

import (
	"strings"
)

// Routes registered by RegisterDefaultEndpoints.
var systemPaths = map[string]bool{
	"/health": true,
	"/ready":  true,
	"/info":   true,
}

// formatHandlerName extracts a short handler name from Gin's full handler path:
//
//	"github.com/kbukum/transcript-gateway/transcript.(*Handler).Transcript-fm" → "Handler.Transcript"
//	"github.com/kbukum/transcript-gateway/server/endpoint.Health.func1"        → "health"
func formatHandlerName(fullPath string) string {
	name := strings.TrimSuffix(fullPath, "-fm")

	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}

	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")

	if strings.Contains(name, ".func") {
		parts := strings.Split(name, ".")
		for i := len(parts) - 1; i >= 0; i-- {
			if !strings.HasPrefix(parts[i], "func") {
				return strings.ToLower(parts[i])
			}
		}
	}

	// Drop the package prefix when the first segment is all lowercase.
	if pkg, rest, ok := strings.Cut(name, "."); ok && rest != "" && strings.ToLower(pkg) == pkg {
		name = rest
	}
	return name
}

// methodOrder returns a sort key for HTTP methods (GET first).
func methodOrder(method string) int {
	switch method {
	case "GET":
		return 0
	case "POST":
		return 1
	case "PUT":
		return 2
	case "PATCH":
		return 3
	case "DELETE":
		return 4
	default:
		return 5
	}
}
