package bootstrap

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kbukum/transcript-gateway/component"
)

// InfrastructureInfo describes a component that reported itself through
// component.Describable.
type InfrastructureInfo struct {
	Name    string
	Type    string
	Details string
	Port    int
}

// Summary collects and prints what the application started with.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
	infrastructure  []InfrastructureInfo
	routes          []component.Route
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
	}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// TrackRoute records an HTTP route that no RouteProvider reports.
func (s *Summary) TrackRoute(method, path, handler string) {
	s.routes = append(s.routes, component.Route{Method: method, Path: path, Handler: handler})
}

// collect pulls descriptions and routes from the registry. It replaces
// anything collected by a previous call.
func (s *Summary) collect(registry *component.Registry) {
	s.infrastructure = s.infrastructure[:0]
	for _, c := range registry.All() {
		if d, ok := c.(component.Describable); ok {
			desc := d.Describe()
			name := desc.Name
			if name == "" {
				name = c.Name()
			}
			s.infrastructure = append(s.infrastructure, InfrastructureInfo{
				Name:    name,
				Type:    desc.Type,
				Details: desc.Details,
				Port:    desc.Port,
			})
		}
		if rp, ok := c.(component.RouteProvider); ok {
			for _, r := range rp.Routes() {
				if !s.hasRoute(r) {
					s.routes = append(s.routes, r)
				}
			}
		}
	}
}

func (s *Summary) hasRoute(r component.Route) bool {
	for _, existing := range s.routes {
		if existing.Method == r.Method && existing.Path == r.Path {
			return true
		}
	}
	return false
}

// Display writes the summary to w, including live health from registry.
// A nil registry prints only what was tracked manually.
func (s *Summary) Display(ctx context.Context, w io.Writer, registry *component.Registry) {
	if registry != nil {
		s.collect(registry)
	}

	fmt.Fprintf(w, "\n🚀 %s v%s started in %.2fs\n\n", s.serviceName, s.version, s.startupDuration.Seconds())

	fmt.Fprintf(w, "📊 Infrastructure\n")
	if len(s.infrastructure) == 0 {
		fmt.Fprintf(w, "   └── No components registered\n")
	}
	for i, inf := range s.infrastructure {
		details := inf.Details
		if inf.Port > 0 {
			details = fmt.Sprintf("%s (:%d)", details, inf.Port)
		}
		fmt.Fprintf(w, "   %s %s [%s]: %s\n", treePrefix(i, len(s.infrastructure)), inf.Name, inf.Type, details)
	}

	if len(s.routes) > 0 {
		fmt.Fprintf(w, "\n🌐 Routes (%d)\n", len(s.routes))
		for i, r := range s.routes {
			fmt.Fprintf(w, "   %s %s%-7s%s %s → %s\n",
				treePrefix(i, len(s.routes)), methodColor(r.Method), r.Method, colorReset, r.Path, r.Handler)
		}
	}

	if registry != nil {
		results := registry.HealthAll(ctx)
		if len(results) > 0 {
			fmt.Fprintf(w, "\n🏥 Health Check\n")
			healthy := 0
			for i, h := range results {
				msg := ""
				if h.Message != "" {
					msg = " (" + h.Message + ")"
				}
				if h.Status == component.StatusHealthy {
					healthy++
				}
				fmt.Fprintf(w, "   %s %s %s: %s%s\n",
					treePrefix(i, len(results)), healthStatusIcon(h.Status), h.Name, strings.ToLower(string(h.Status)), msg)
			}
			if healthy == len(results) {
				fmt.Fprintf(w, "\n✅ All components healthy (%d/%d)\n", healthy, len(results))
			} else {
				fmt.Fprintf(w, "\n⚠️  Some components have issues (%d/%d healthy)\n", healthy, len(results))
			}
		}
	}

	fmt.Fprintf(w, "\n")
}

const colorReset = "\033[0m"

func treePrefix(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func healthStatusIcon(status component.HealthStatus) string {
	switch status {
	case component.StatusHealthy:
		return "✅"
	case component.StatusDegraded:
		return "⚠️"
	case component.StatusUnhealthy:
		return "❌"
	default:
		return "❓"
	}
}

func methodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m"
	case "POST":
		return "\033[32m"
	case "PUT", "PATCH":
		return "\033[33m"
	case "DELETE":
		return "\033[31m"
	default:
		return "\033[36m"
	}
}
