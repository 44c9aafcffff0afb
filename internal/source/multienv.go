package source

import (
	"encoding/json"
	"sort"

	"github.com/amaumene/appredirect/internal/domain"
	log "github.com/sirupsen/logrus"
)

// MultiEnvFileSource loads the richer shape: per-environment GUID tables
// for both environments and apps, plus the IS_GOV environment variable.
//
//	{
//	  "EnvironmentGUIDs": {"PRD": "...", "TST": "...", "DEV": "..."},
//	  "Apps": {"cip": {"PRD": "...", "TST": "..."}}
//	}
type MultiEnvFileSource struct {
	Path string
}

type multiEnvDocument struct {
	EnvironmentGUIDs map[string]string            `json:"EnvironmentGUIDs"`
	Apps             map[string]map[string]string `json:"Apps"`
}

func (s *MultiEnvFileSource) Load() (*domain.Configuration, error) {
	data, err := readSourceFile(s.Path)
	if err != nil {
		return nil, err
	}

	var doc multiEnvDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewConfigError("parsing configuration file", err)
	}

	if doc.EnvironmentGUIDs == nil {
		return nil, domain.NewConfigError("EnvironmentGUIDs not found in configuration", nil)
	}
	if doc.Apps == nil {
		return nil, domain.NewConfigError("Apps not found in configuration", nil)
	}

	warnMissingEnvironments(doc.EnvironmentGUIDs)

	return &domain.Configuration{
		EnvironmentGUIDs: doc.EnvironmentGUIDs,
		IsGov:            isGovFromEnv(),
		Apps:             flattenApps(doc.Apps),
	}, nil
}

// warnMissingEnvironments flags supported codes without a GUID entry.
// Requests for those environments resolve to not-found, so this is
// diagnostic rather than fatal.
func warnMissingEnvironments(guids map[string]string) {
	for _, env := range domain.SupportedEnvironments {
		if _, ok := guids[env]; !ok {
			log.WithFields(log.Fields{
				"environment": env,
			}).Warn("no environment GUID configured for supported environment")
		}
	}
}

// flattenApps converts the app map to the ordered table form. Names are
// sorted so the table order is deterministic across loads.
func flattenApps(apps map[string]map[string]string) []domain.AppMapping {
	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	sort.Strings(names)

	table := make([]domain.AppMapping, 0, len(apps))
	for _, name := range names {
		table = append(table, domain.AppMapping{
			AppName:      name,
			Environments: apps[name],
		})
	}
	return table
}
