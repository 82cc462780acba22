package environment

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// ToMap converts an environment variable specification from a slice of
// "KEY=value" strings to a map with equivalent contents. Any entries not
// adhering to the specified format are ignored. Entries are processed in
// order, meaning that the last entry seen for a key will be what populates
// the map.
func ToMap(environment []string) map[string]string {
	// Allocate result storage.
	result := make(map[string]string, len(environment))

	// Convert variables.
	for _, specification := range environment {
		keyValue := strings.SplitN(specification, "=", 2)
		if len(keyValue) != 2 {
			continue
		}
		result[keyValue[0]] = keyValue[1]
	}

	// Done.
	return result
}

// FromMap converts a map of environment variables into a slice of "KEY=value"
// strings.
func FromMap(environment map[string]string) []string {
	// Allocate result storage.
	result := make([]string, 0, len(environment))

	// Convert entries.
	for key, value := range environment {
		result = append(result, key+"="+value)
	}

	// Done.
	return result
}

// LoadOverrides loads a "dotenv" environment variable file from disk.
// Interpolation is enabled by default for the contents of the file. If the
// target file doesn't exist, then a nil map is returned without error.
func LoadOverrides(path string) (map[string]string, error) {
	// Load the environment file, if it exists.
	overrides, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to load environment file (%s): %w", path, err)
	}

	// Success.
	return overrides, nil
}

// Merge composes an environment variable specification from a base
// environment and a set of overrides, with the overrides merged beneath the
// base (i.e. base entries take precedence on conflict).
func Merge(base []string, overrides map[string]string) []string {
	// If there are no overrides, then the base environment can be used
	// directly.
	if len(overrides) == 0 {
		return base
	}

	// Merge the environments, with base entries winning.
	merged := make(map[string]string, len(base)+len(overrides))
	for key, value := range overrides {
		merged[key] = value
	}
	for key, value := range ToMap(base) {
		merged[key] = value
	}

	// Done.
	return FromMap(merged)
}
