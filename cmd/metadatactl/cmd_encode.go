package main

import (
	"crypto/ed25519"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/tokenmetadata"
)

type instructionOutput struct {
	Type     string
	Program  ed25519.PublicKey
	Data     string
	Accounts []solana.AccountMeta
	Signers  []ed25519.PublicKey
}

func newCmd_Encode() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Build a token metadata instruction or type and print its encoding",
		Subcommands: []*cli.Command{
			newCmd_EncodeCollect(),
			newCmd_EncodeSetCollectionSize(),
			newCmd_EncodeBubblegumSetCollectionSize(),
			newCmd_EncodeUtilize(),
			newCmd_EncodeUsesToggle(),
		},
	}
}

func newCmd_EncodeCollect() *cli.Command {
	return &cli.Command{
		Name:  "collect",
		Usage: "Collect fees from a PDA",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "authority", Usage: "fee authority, defaults to --identity"},
			&cli.StringFlag{Name: "pda-account", Usage: "PDA to retrieve fees from", Required: true},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			keys, err := publicKeyFlags(c, "authority", "pda-account")
			if err != nil {
				return err
			}

			ixn, err := tokenmetadata.NewCollectInstruction(
				c.Context,
				e.build,
				&tokenmetadata.CollectInstructionAccounts{
					Authority:  keys["authority"],
					PdaAccount: keys["pda-account"],
				},
				&tokenmetadata.CollectInstructionArgs{},
			)
			if err != nil {
				return err
			}
			return e.writeInstruction(c, tokenmetadata.InstructionTypeCollect, ixn)
		},
	}
}

func collectionSizeFlags(additional ...cli.Flag) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "collection-metadata", Usage: "collection metadata account", Required: true},
		&cli.StringFlag{Name: "collection-authority", Usage: "collection update authority", Required: true},
		&cli.StringFlag{Name: "collection-mint", Usage: "mint of the collection", Required: true},
		&cli.StringFlag{Name: "collection-authority-record", Usage: "collection authority record PDA"},
		&cli.Uint64Flag{Name: "size", Usage: "collection size", Required: true},
	}
	return append(flags, additional...)
}

func newCmd_EncodeSetCollectionSize() *cli.Command {
	return &cli.Command{
		Name:  "set-collection-size",
		Usage: "Set the size of a sized collection",
		Flags: collectionSizeFlags(),
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			keys, err := publicKeyFlags(c, "collection-metadata", "collection-authority", "collection-mint", "collection-authority-record")
			if err != nil {
				return err
			}

			ixn, err := tokenmetadata.NewSetCollectionSizeInstruction(
				c.Context,
				e.build,
				&tokenmetadata.SetCollectionSizeInstructionAccounts{
					CollectionMetadata:        keys["collection-metadata"],
					CollectionAuthority:       keys["collection-authority"],
					CollectionMint:            keys["collection-mint"],
					CollectionAuthorityRecord: keys["collection-authority-record"],
				},
				&tokenmetadata.SetCollectionSizeInstructionArgs{
					SetCollectionSizeArgs: tokenmetadata.SetCollectionSizeArgs{Size: c.Uint64("size")},
				},
			)
			if err != nil {
				return err
			}
			return e.writeInstruction(c, tokenmetadata.InstructionTypeSetCollectionSize, ixn)
		},
	}
}

func newCmd_EncodeBubblegumSetCollectionSize() *cli.Command {
	return &cli.Command{
		Name:  "bubblegum-set-collection-size",
		Usage: "Set the size of a sized collection through the Bubblegum signer",
		Flags: collectionSizeFlags(
			&cli.StringFlag{Name: "bubblegum-signer", Usage: "signing PDA of the Bubblegum program", Required: true},
		),
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			keys, err := publicKeyFlags(c, "collection-metadata", "collection-authority", "collection-mint", "collection-authority-record", "bubblegum-signer")
			if err != nil {
				return err
			}

			ixn, err := tokenmetadata.NewBubblegumSetCollectionSizeInstruction(
				c.Context,
				e.build,
				&tokenmetadata.BubblegumSetCollectionSizeInstructionAccounts{
					CollectionMetadata:        keys["collection-metadata"],
					CollectionAuthority:       keys["collection-authority"],
					CollectionMint:            keys["collection-mint"],
					BubblegumSigner:           keys["bubblegum-signer"],
					CollectionAuthorityRecord: keys["collection-authority-record"],
				},
				&tokenmetadata.BubblegumSetCollectionSizeInstructionArgs{
					SetCollectionSizeArgs: tokenmetadata.SetCollectionSizeArgs{Size: c.Uint64("size")},
				},
			)
			if err != nil {
				return err
			}
			return e.writeInstruction(c, tokenmetadata.InstructionTypeBubblegumSetCollectionSize, ixn)
		},
	}
}

func newCmd_EncodeUtilize() *cli.Command {
	return &cli.Command{
		Name:  "utilize",
		Usage: "Consume uses of an asset",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "metadata", Required: true},
			&cli.StringFlag{Name: "token-account", Required: true},
			&cli.StringFlag{Name: "mint", Required: true},
			&cli.StringFlag{Name: "use-authority", Required: true},
			&cli.StringFlag{Name: "owner", Required: true},
			&cli.StringFlag{Name: "use-authority-record"},
			&cli.StringFlag{Name: "burner"},
			&cli.Uint64Flag{Name: "number-of-uses", Value: 1},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			keys, err := publicKeyFlags(c, "metadata", "token-account", "mint", "use-authority", "owner", "use-authority-record", "burner")
			if err != nil {
				return err
			}

			ixn, err := tokenmetadata.NewUtilizeInstruction(
				c.Context,
				e.build,
				&tokenmetadata.UtilizeInstructionAccounts{
					Metadata:           keys["metadata"],
					TokenAccount:       keys["token-account"],
					Mint:               keys["mint"],
					UseAuthority:       keys["use-authority"],
					Owner:              keys["owner"],
					UseAuthorityRecord: keys["use-authority-record"],
					Burner:             keys["burner"],
				},
				&tokenmetadata.UtilizeInstructionArgs{
					UtilizeArgs: tokenmetadata.UtilizeArgs{NumberOfUses: c.Uint64("number-of-uses")},
				},
			)
			if err != nil {
				return err
			}
			return e.writeInstruction(c, tokenmetadata.InstructionTypeUtilize, ixn)
		},
	}
}

func newCmd_EncodeUsesToggle() *cli.Command {
	return &cli.Command{
		Name:  "uses-toggle",
		Usage: "Encode a UsesToggle value",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "kind", Usage: "None, Clear or Set", Value: "None"},
			&cli.StringFlag{Name: "use-method", Usage: "Burn, Multiple or Single", Value: "Single"},
			&cli.Uint64Flag{Name: "remaining"},
			&cli.Uint64Flag{Name: "total"},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			kind, err := tokenmetadata.ParseUsesToggleKind(c.String("kind"))
			if err != nil {
				return err
			}

			var uses *tokenmetadata.Uses
			if kind == tokenmetadata.UsesToggleKindSet {
				method, err := tokenmetadata.ParseUseMethod(c.String("use-method"))
				if err != nil {
					return err
				}
				uses = &tokenmetadata.Uses{
					UseMethod: method,
					Remaining: c.Uint64("remaining"),
					Total:     c.Uint64("total"),
				}
			}

			toggle, err := tokenmetadata.NewUsesToggle(kind, uses)
			if err != nil {
				return err
			}
			encoded, err := tokenmetadata.MarshalUsesToggle(toggle)
			if err != nil {
				return err
			}

			return e.writeJSON(c, map[string]interface{}{
				"value": usesToggleOutput(toggle),
				"data":  e.encoding.encode(encoded),
			})
		},
	}
}

func (e *environment) writeInstruction(c *cli.Context, typ tokenmetadata.InstructionType, ixn solana.Instruction) error {
	e.log.WithField("instruction", typ.String()).Debug("built instruction")

	return e.writeJSON(c, &instructionOutput{
		Type:     typ.String(),
		Program:  ixn.Program,
		Data:     e.encoding.encode(ixn.Data),
		Accounts: ixn.Accounts,
		Signers:  ixn.Signers(),
	})
}

// publicKeyFlags parses the named address flags, leaving unset ones nil
func publicKeyFlags(c *cli.Context, names ...string) (map[string]ed25519.PublicKey, error) {
	keys := make(map[string]ed25519.PublicKey, len(names))
	for _, name := range names {
		key, err := publicKeyFlag(c, name)
		if err != nil {
			return nil, errors.WithMessage(err, c.Command.Name)
		}
		keys[name] = key
	}
	return keys, nil
}
