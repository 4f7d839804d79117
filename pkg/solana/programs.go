package solana

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"sync"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/token-metadata-client/pkg/config"
)

// ErrUnknownProgram indicates no address could be resolved for a program name
var ErrUnknownProgram = errors.New("unknown program")

// ProgramRegistry maps program names to addresses.
//
// Lookups resolve, in order, a configured override, a registered address and
// the caller supplied default.
type ProgramRegistry struct {
	log *logrus.Entry

	mu        sync.RWMutex
	addresses map[string]ed25519.PublicKey
	overrides map[string]config.PublicKey
}

func NewProgramRegistry() *ProgramRegistry {
	return &ProgramRegistry{
		log:       logrus.StandardLogger().WithField("type", "solana/programs"),
		addresses: make(map[string]ed25519.PublicKey),
		overrides: make(map[string]config.PublicKey),
	}
}

// Register binds name to address, replacing any previous registration
func (r *ProgramRegistry) Register(name string, address ed25519.PublicKey) error {
	if len(address) != ed25519.PublicKeySize {
		return errors.Wrapf(ErrInvalidPublicKey, "program %s", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.addresses[name] = address
	return nil
}

// Override binds name to an address config, shutting down any previous
// override. A nil config removes the override.
func (r *ProgramRegistry) Override(name string, address config.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.overrides[name]; ok && previous != nil {
		previous.Shutdown()
	}

	if address == nil {
		delete(r.overrides, name)
		return
	}
	r.overrides[name] = address
}

// GetPublicKey resolves the address of the named program. A nil
// defaultAddress makes an unresolved name an error.
func (r *ProgramRegistry) GetPublicKey(ctx context.Context, name string, defaultAddress ed25519.PublicKey) (ed25519.PublicKey, error) {
	r.mu.RLock()
	override, hasOverride := r.overrides[name]
	registered, isRegistered := r.addresses[name]
	r.mu.RUnlock()

	log := r.log.WithField("program", name)

	if hasOverride && override != nil {
		address, err := override.GetSafe(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load address override for program %s", name)
		}

		if len(address) > 0 {
			if !bytes.Equal(address, defaultAddress) {
				log.WithField("address", base58.Encode(address)).Trace("using program address override")
			}
			return address, nil
		}
	}

	if isRegistered {
		return registered, nil
	}

	if len(defaultAddress) == 0 {
		return nil, errors.Wrap(ErrUnknownProgram, name)
	}
	return defaultAddress, nil
}

// Shutdown releases all override configs
func (r *ProgramRegistry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, override := range r.overrides {
		override.Shutdown()
		delete(r.overrides, name)
	}
}
