package tap

import (
	"runtime"

	"github.com/offlinefirst/dragscroll/pkg/permissions"
)

// Environment summarises event tap backend support.
type Environment struct {
	Provider   string
	Available  bool
	Permission string
	Message    string
	Guidance   string
}

const (
	providerQuartz      = "quartz_event_tap"
	providerUnsupported = "unsupported"
)

// DetectEnvironment reports the availability of a real Quartz event tap.
func DetectEnvironment(lookup permissions.LookupEnvFunc) Environment {
	accessibility := permissions.ProbeAccessibility(lookup)
	env := Environment{
		Provider:   providerUnsupported,
		Permission: accessibility.StatusString(),
		Message:    accessibility.Message,
		Guidance:   accessibility.Guidance,
	}

	if runtime.GOOS == "darwin" {
		env.Provider = providerQuartz
		env.Available = accessibility.Status != permissions.StatusDenied
		if !env.Available && env.Message == "" {
			env.Message = "accessibility permission missing"
		}
		return env
	}

	env.Permission = "not_applicable"
	env.Message = ErrUnsupported.Error()
	return env
}
