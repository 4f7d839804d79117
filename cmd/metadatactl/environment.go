package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/json-iterator/go/extra"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/code-payments/token-metadata-client/pkg/config"
	"github.com/code-payments/token-metadata-client/pkg/config/env"
	"github.com/code-payments/token-metadata-client/pkg/config/memory"
	"github.com/code-payments/token-metadata-client/pkg/config/wrapper"
	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/tokenmetadata"
)

const (
	encodingEnv = "METADATACTL_ENCODING"
	identityEnv = "METADATACTL_IDENTITY"
)

var programOverrideEnv = env.ProgramOverrideKey("metadatactl", tokenmetadata.ProgramName)

var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

func init() {
	extra.SetNamingStrategy(extra.LowerCaseWithUnderscores)

	// Addresses are printed as base58, unset ones as null
	jsoniter.RegisterTypeEncoderFunc(
		"ed25519.PublicKey",
		func(ptr unsafe.Pointer, stream *jsoniter.Stream) {
			key := *(*ed25519.PublicKey)(ptr)
			if len(key) == 0 {
				stream.WriteNil()
				return
			}
			stream.WriteString(base58.Encode(key))
		},
		func(ptr unsafe.Pointer) bool {
			return len(*(*ed25519.PublicKey)(ptr)) == 0
		},
	)
}

type payloadEncoding string

const (
	encodingBase58 payloadEncoding = "base58"
	encodingHex    payloadEncoding = "hex"
	encodingBase64 payloadEncoding = "base64"
)

func parsePayloadEncoding(value string) (payloadEncoding, error) {
	switch encoding := payloadEncoding(value); encoding {
	case encodingBase58, encodingHex, encodingBase64:
		return encoding, nil
	}
	return "", errors.Errorf("unsupported encoding %q", value)
}

func (e payloadEncoding) encode(data []byte) string {
	switch e {
	case encodingHex:
		return hex.EncodeToString(data)
	case encodingBase64:
		return base64.StdEncoding.EncodeToString(data)
	}
	return base58.Encode(data)
}

func (e payloadEncoding) decode(value string) ([]byte, error) {
	var data []byte
	var err error
	switch e {
	case encodingHex:
		data, err = hex.DecodeString(value)
	case encodingBase64:
		data, err = base64.StdEncoding.DecodeString(value)
	default:
		if len(value) == 0 {
			return nil, nil
		}
		data, err = base58.Decode(value)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s payload", e)
	}
	return data, nil
}

// environment is what every command resolves from the global flags
type environment struct {
	log      *logrus.Entry
	encoding payloadEncoding
	build    *solana.BuildContext
	program  ed25519.PublicKey
}

func newEnvironment(c *cli.Context) (*environment, error) {
	encodingSetting := stringSetting(c, "encoding", encodingEnv, string(encodingBase58))
	defer encodingSetting.Shutdown()

	encoding, err := parsePayloadEncoding(encodingSetting.Get(c.Context))
	if err != nil {
		return nil, err
	}

	identitySetting := stringSetting(c, "identity", identityEnv, "")
	defer identitySetting.Shutdown()

	var identity ed25519.PublicKey
	if value := identitySetting.Get(c.Context); len(value) > 0 {
		identity, err = parsePublicKey("identity", value)
		if err != nil {
			return nil, err
		}
	}

	registry := solana.NewProgramRegistry()
	registry.Override(tokenmetadata.ProgramName, env.NewPublicKeyConfig(programOverrideEnv, nil))
	if c.IsSet("program") {
		program, err := publicKeyFlag(c, "program")
		if err != nil {
			return nil, err
		}
		registry.Override(tokenmetadata.ProgramName, wrapper.NewPublicKeyConfig(memory.NewConfig(program), nil))
	}

	build := &solana.BuildContext{
		Identity: identity,
		Programs: registry,
	}

	program, err := build.Program(c.Context, tokenmetadata.ProgramName, tokenmetadata.PROGRAM_ID)
	if err != nil {
		return nil, err
	}

	return &environment{
		log:      logrus.StandardLogger().WithField("type", "metadatactl").WithField("command", c.Command.FullName()),
		encoding: encoding,
		build:    build,
		program:  program,
	}, nil
}

// stringSetting resolves a global setting from its flag when set, otherwise
// from its environment variable
func stringSetting(c *cli.Context, flag, envKey, defaultValue string) config.String {
	if c.IsSet(flag) {
		return wrapper.NewStringConfig(memory.NewConfig(c.String(flag)), defaultValue)
	}
	return env.NewStringConfig(envKey, defaultValue)
}

// publicKeyFlag returns the base58 address of a string flag, nil when unset
func publicKeyFlag(c *cli.Context, name string) (ed25519.PublicKey, error) {
	value := c.String(name)
	if len(value) == 0 {
		return nil, nil
	}
	return parsePublicKey(name, value)
}

func parsePublicKey(name, value string) (ed25519.PublicKey, error) {
	decoded, err := base58.Decode(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s address", name)
	}
	if len(decoded) != ed25519.PublicKeySize {
		return nil, errors.Wrapf(solana.ErrInvalidPublicKey, "%s: %d bytes", name, len(decoded))
	}
	return decoded, nil
}

func (e *environment) writeJSON(c *cli.Context, v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	encoded = append(encoded, '\n')
	_, err = c.App.Writer.Write(encoded)
	return err
}

// payloadArg decodes the first positional argument with the configured
// encoding
func (e *environment) payloadArg(c *cli.Context) ([]byte, error) {
	if c.Args().Len() != 1 {
		return nil, errors.Errorf("expected a single %s encoded payload argument", e.encoding)
	}
	return e.encoding.decode(c.Args().First())
}
