package source

import (
	"encoding/json"
	"os"

	"github.com/amaumene/appredirect/internal/domain"
)

// FileSource loads the canonical shape: one JSON document carrying the
// environment GUID, the government cloud flag and the mapping list.
//
//	{
//	  "environment_guid": "...",
//	  "is_gov": false,
//	  "app_mappings": [{"AppName": "cip", "AppGUID": "..."}]
//	}
type FileSource struct {
	Path string
}

type fileDocument struct {
	EnvironmentGUID *string             `json:"environment_guid"`
	IsGov           *bool               `json:"is_gov"`
	AppMappings     []domain.AppMapping `json:"app_mappings"`
}

func (s *FileSource) Load() (*domain.Configuration, error) {
	data, err := readSourceFile(s.Path)
	if err != nil {
		return nil, err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domain.NewConfigError("parsing configuration file", err)
	}

	if doc.EnvironmentGUID == nil {
		return nil, domain.NewConfigError("environment_guid not found in configuration", nil)
	}
	if doc.IsGov == nil {
		return nil, domain.NewConfigError("is_gov not found in configuration", nil)
	}
	if doc.AppMappings == nil {
		return nil, domain.NewConfigError("app_mappings not found in configuration", nil)
	}

	return &domain.Configuration{
		EnvironmentGUID: *doc.EnvironmentGUID,
		IsGov:           *doc.IsGov,
		Apps:            doc.AppMappings,
	}, nil
}

// FileEnvSource loads the mapping list from a bare JSON file and the
// environment GUID and government cloud flag from environment variables.
type FileEnvSource struct {
	MappingsPath string
}

func (s *FileEnvSource) Load() (*domain.Configuration, error) {
	environmentGUID := os.Getenv("ENVIRONMENT_GUID")
	if environmentGUID == "" {
		return nil, domain.NewConfigError("ENVIRONMENT_GUID environment variable not found", nil)
	}

	data, err := readSourceFile(s.MappingsPath)
	if err != nil {
		return nil, err
	}

	var apps []domain.AppMapping
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, domain.NewConfigError("parsing app mappings file", err)
	}

	return &domain.Configuration{
		EnvironmentGUID: environmentGUID,
		IsGov:           isGovFromEnv(),
		Apps:            apps,
	}, nil
}

// EnvSource loads everything from environment variables, with the
// mapping list inlined as JSON in APP_MAPPINGS.
type EnvSource struct{}

func (s *EnvSource) Load() (*domain.Configuration, error) {
	environmentGUID := os.Getenv("ENVIRONMENT_GUID")
	if environmentGUID == "" {
		return nil, domain.NewConfigError("ENVIRONMENT_GUID environment variable not found", nil)
	}

	raw := os.Getenv("APP_MAPPINGS")
	if raw == "" {
		return nil, domain.NewConfigError("APP_MAPPINGS environment variable not found", nil)
	}

	var apps []domain.AppMapping
	if err := json.Unmarshal([]byte(raw), &apps); err != nil {
		return nil, domain.NewConfigError("parsing APP_MAPPINGS", err)
	}

	return &domain.Configuration{
		EnvironmentGUID: environmentGUID,
		IsGov:           isGovFromEnv(),
		Apps:            apps,
	}, nil
}
