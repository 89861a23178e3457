package registry

import (
	"fmt"

	"github.com/mosaicterm/mosaic/internal/workspace"
)

// Environment describes what the running host can serve: which panel types
// are allowed at all, and which capabilities its backends currently provide.
// Zero-value fields mean unrestricted.
type Environment struct {
	AllowedTypes []string
	Capabilities []string
	// Warming lists capabilities that exist but are still starting up;
	// panel types needing them resolve to loading instead of unavailable.
	Warming []string
}

// NewResolver builds the availability resolver for an environment.
func NewResolver(env Environment) workspace.Resolver {
	allowed := toSet(env.AllowedTypes)
	caps := toSet(env.Capabilities)
	warming := toSet(env.Warming)
	return func(m workspace.Manifest) workspace.Availability {
		if len(allowed) > 0 && !allowed[m.Type] {
			return workspace.Availability{
				State:  workspace.Unavailable,
				Reason: fmt.Sprintf("panel type %q not allowed here", m.Type),
			}
		}
		for _, c := range m.Capabilities {
			if warming[c] {
				return workspace.Availability{
					State:  workspace.Loading,
					Reason: fmt.Sprintf("capability %q is starting", c),
				}
			}
			if len(caps) > 0 && !caps[c] {
				return workspace.Availability{
					State:  workspace.Unavailable,
					Reason: fmt.Sprintf("capability %q missing", c),
				}
			}
		}
		return workspace.Availability{State: workspace.Available}
	}
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
