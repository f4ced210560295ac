package config

import "os"

// DefaultConfigFile is the config file path relative to the working
// directory. The tool runs from the repository root in CI, so the file
// lives next to the Cargo manifest it describes.
const DefaultConfigFile = ".trigger-release.yaml"

// GetConfigFile returns the config file path.
// If TRIGGER_CONFIG is set, it takes precedence.
func GetConfigFile() string {
	if envPath := os.Getenv("TRIGGER_CONFIG"); envPath != "" {
		return envPath
	}
	return DefaultConfigFile
}
