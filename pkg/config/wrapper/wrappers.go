package wrapper

import (
	"context"
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"github.com/code-payments/token-metadata-client/pkg/config"
)

var (
	// ErrUnsuportedConversion indicates the wrapper does not implement conversion from the source type
	ErrUnsuportedConversion = errors.New("config: wrapper conversion from source type not implemented")

	// ErrInvalidPublicKey indicates the source value is not a 32 byte base58 address
	ErrInvalidPublicKey = errors.New("config: invalid public key")
)

// StringConfig is a utility wrapper for a string config
type StringConfig struct {
	config       config.Config
	defaultValue string

	stateMu   sync.RWMutex
	lastValue string
}

// NewStringConfig returns a new string utility wrapper
func NewStringConfig(config config.Config, defaultValue string) config.String {
	return &StringConfig{
		config:       config,
		defaultValue: defaultValue,
		lastValue:    defaultValue,
	}
}

// GetSafe gets a config value and propagates any errors that arise. A best-effort
// attempt is made to return the last known value
func (c *StringConfig) GetSafe(ctx context.Context) (string, error) {
	override, err := c.config.Get(ctx)
	c.stateMu.RLock()
	lastValue := c.lastValue
	c.stateMu.RUnlock()
	if err == config.ErrNoValue {
		c.setLastValue(c.defaultValue)
		return c.defaultValue, nil
	} else if err != nil {
		return lastValue, err
	}
	switch override := override.(type) {
	case []byte:
		newValue := string(override)
		c.setLastValue(newValue)
		return newValue, nil
	case string:
		c.setLastValue(override)
		return override, nil
	default:
		return lastValue, ErrUnsuportedConversion
	}
}

func (c *StringConfig) setLastValue(value string) {
	c.stateMu.Lock()
	c.lastValue = value
	c.stateMu.Unlock()
}

// Get is a wrapper for GetSafe that ignores the returned error
func (c *StringConfig) Get(ctx context.Context) string {
	val, _ := c.GetSafe(ctx)
	return val
}

// Shutdown signals the config to stop all underlying resources
func (c *StringConfig) Shutdown() {
	c.config.Shutdown()
}

// PublicKeyConfig is a utility wrapper for an address config. Source values
// are base58 strings or byte slices, or raw 32 byte keys.
type PublicKeyConfig struct {
	config       config.Config
	defaultValue ed25519.PublicKey

	stateMu   sync.RWMutex
	lastValue ed25519.PublicKey
}

// NewPublicKeyConfig returns a new address utility wrapper
func NewPublicKeyConfig(config config.Config, defaultValue ed25519.PublicKey) config.PublicKey {
	return &PublicKeyConfig{
		config:       config,
		defaultValue: defaultValue,
		lastValue:    defaultValue,
	}
}

// GetSafe gets a config value and propagates any errors that arise. A best-effort
// attempt is made to return the last known value
func (c *PublicKeyConfig) GetSafe(ctx context.Context) (ed25519.PublicKey, error) {
	override, err := c.config.Get(ctx)
	c.stateMu.RLock()
	lastValue := c.lastValue
	c.stateMu.RUnlock()
	if err == config.ErrNoValue {
		c.setLastValue(c.defaultValue)
		return c.defaultValue, nil
	} else if err != nil {
		return lastValue, err
	}

	var newValue ed25519.PublicKey
	switch override := override.(type) {
	case ed25519.PublicKey:
		newValue = override
	case []byte:
		newValue, err = decodePublicKey(string(override))
	case string:
		newValue, err = decodePublicKey(override)
	default:
		return lastValue, ErrUnsuportedConversion
	}
	if err != nil {
		return lastValue, err
	}
	if len(newValue) != ed25519.PublicKeySize {
		return lastValue, ErrInvalidPublicKey
	}

	c.setLastValue(newValue)
	return newValue, nil
}

func (c *PublicKeyConfig) setLastValue(value ed25519.PublicKey) {
	c.stateMu.Lock()
	c.lastValue = value
	c.stateMu.Unlock()
}

// Get is a wrapper for GetSafe that ignores the returned error
func (c *PublicKeyConfig) Get(ctx context.Context) ed25519.PublicKey {
	val, _ := c.GetSafe(ctx)
	return val
}

// Shutdown signals the config to stop all underlying resources
func (c *PublicKeyConfig) Shutdown() {
	c.config.Shutdown()
}

func decodePublicKey(value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPublicKey, err.Error())
	}
	return decoded, nil
}
