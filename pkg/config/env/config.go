package env

import (
	"context"
	"crypto/ed25519"
	"os"
	"strings"

	"github.com/code-payments/token-metadata-client/pkg/config"
	"github.com/code-payments/token-metadata-client/pkg/config/wrapper"
)

type conf struct {
	val string
}

// NewConfig reads the upper cased environment variable key once
func NewConfig(key string) config.Config {
	client := &conf{
		val: os.Getenv(strings.ToUpper(key)),
	}

	return client
}

// Get implements Config.Get
func (c *conf) Get(ctx context.Context) (interface{}, error) {
	if len(c.val) == 0 {
		return nil, config.ErrNoValue
	}

	return []byte(c.val), nil
}

// Shutdown implements Config.Shutdown
func (c *conf) Shutdown() {
}

// NewStringConfig creates a env-based string config
func NewStringConfig(key string, defaultValue string) config.String {
	return wrapper.NewStringConfig(NewConfig(key), defaultValue)
}

// NewPublicKeyConfig creates a env-based base58 address config
func NewPublicKeyConfig(key string, defaultValue ed25519.PublicKey) config.PublicKey {
	return wrapper.NewPublicKeyConfig(NewConfig(key), defaultValue)
}

// ProgramOverrideKey is the environment variable consulted for a program
// address override, eg. METADATA_PROGRAM_MPLTOKENMETADATA
func ProgramOverrideKey(prefix, program string) string {
	return strings.ToUpper(prefix + "_PROGRAM_" + program)
}
