package domain

// Environment codes selecting a deployment tier.
const (
	EnvPRD = "PRD"
	EnvTST = "TST"
	EnvDEV = "DEV"
)

// SupportedEnvironments lists the recognized identifier prefixes.
var SupportedEnvironments = []string{EnvPRD, EnvTST, EnvDEV}

// IsSupportedEnvironment reports whether code is one of the recognized
// environment codes. Codes are compared as-is; callers uppercase first.
func IsSupportedEnvironment(code string) bool {
	for _, env := range SupportedEnvironments {
		if code == env {
			return true
		}
	}
	return false
}

// AppMapping associates an application name with its GUIDs. Entries carry
// either a single AppGUID valid for every environment, or a per-environment
// GUID table in Environments.
type AppMapping struct {
	AppName      string            `json:"AppName"`
	AppGUID      string            `json:"AppGUID,omitempty"`
	Environments map[string]string `json:"Environments,omitempty"`
}

// Configuration is the validated mapping table. It is immutable after a
// successful load and shared by all requests for the process lifetime.
type Configuration struct {
	// EnvironmentGUID is the global environment GUID used when no
	// per-environment table is configured.
	EnvironmentGUID string

	// EnvironmentGUIDs maps environment codes to environment GUIDs.
	// When non-empty it takes precedence over EnvironmentGUID and an
	// unlisted code is unresolvable.
	EnvironmentGUIDs map[string]string

	// IsGov selects the government cloud host suffix.
	IsGov bool

	// Apps is the ordered mapping table. Lookup is by exact,
	// case-sensitive name; the first match wins.
	Apps []AppMapping
}

// ResolvedMapping is the outcome of a successful lookup, computed per
// request and never persisted.
type ResolvedMapping struct {
	AppName         string
	Environment     string
	EnvironmentGUID string
	AppGUID         string
}
