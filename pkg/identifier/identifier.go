package identifier

import (
	"github.com/stubgen-io/stubgen/pkg/encoding"
	"github.com/stubgen-io/stubgen/pkg/random"
)

const (
	// PrefixRun is the prefix used for generation run identifiers.
	PrefixRun = "run_"
)

// New generates a new collision-resistant identifier with the specified
// prefix.
func New(prefix string) (string, error) {
	// Create the random value.
	value, err := random.New(random.CollisionResistantLength)
	if err != nil {
		return "", err
	}

	// Encode the random value.
	return prefix + encoding.EncodeBase62(value), nil
}
