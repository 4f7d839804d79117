package main

import (
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/code-payments/token-metadata-client/pkg/solana"
	"github.com/code-payments/token-metadata-client/pkg/solana/tokenmetadata"
)

func newCmd_Decode() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "Decode token metadata instructions, types and accounts",
		Subcommands: []*cli.Command{
			newCmd_DecodeInstruction(),
			newCmd_DecodeUsesToggle(),
			newCmd_DecodeHolderDelegateRecord(),
		},
	}
}

func newCmd_DecodeInstruction() *cli.Command {
	return &cli.Command{
		Name:      "instruction",
		Usage:     "Decode instruction data and its accounts",
		ArgsUsage: "<data>",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "account", Usage: "instruction account address, in order"},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			data, err := e.payloadArg(c)
			if err != nil {
				return err
			}

			var accounts []solana.AccountMeta
			for _, value := range c.StringSlice("account") {
				key, err := parsePublicKey("account", value)
				if err != nil {
					return err
				}
				accounts = append(accounts, solana.NewReadonlyAccountMeta(key, false))
			}

			decompiled, err := tokenmetadata.DecompileProgramInstruction(e.program, solana.NewInstruction(e.program, data, accounts...))
			if err != nil {
				return err
			}

			return e.writeJSON(c, map[string]interface{}{
				"type":          decompiled.Type.String(),
				"discriminator": uint8(decompiled.Type),
				"accounts":      decompiled.Accounts,
				"args":          decompiled.Args,
			})
		},
	}
}

func newCmd_DecodeUsesToggle() *cli.Command {
	return &cli.Command{
		Name:      "uses-toggle",
		Usage:     "Decode a UsesToggle value",
		ArgsUsage: "<data>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "offset", Usage: "byte offset of the value within the payload"},
		},
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			data, err := e.payloadArg(c)
			if err != nil {
				return err
			}

			toggle, next, err := tokenmetadata.UnmarshalUsesToggle(data, c.Int("offset"))
			if err != nil {
				return err
			}
			if next != len(data) {
				e.log.WithField("remaining", len(data)-next).Warn("ignoring trailing payload bytes")
			}

			return e.writeJSON(c, map[string]interface{}{
				"value": usesToggleOutput(toggle),
				"next":  next,
			})
		},
	}
}

func newCmd_DecodeHolderDelegateRecord() *cli.Command {
	return &cli.Command{
		Name:      "holder-delegate-record",
		Usage:     "Decode HolderDelegateRecord account data",
		ArgsUsage: "<data>",
		Action: func(c *cli.Context) error {
			e, err := newEnvironment(c)
			if err != nil {
				return err
			}

			data, err := e.payloadArg(c)
			if err != nil {
				return err
			}

			var record tokenmetadata.HolderDelegateRecord
			if err := record.Unmarshal(data); err != nil {
				return errors.Wrapf(err, "%d bytes of account data", len(data))
			}

			return e.writeJSON(c, map[string]interface{}{
				"key":              record.Key.String(),
				"bump":             record.Bump,
				"mint":             record.Mint,
				"delegate":         record.Delegate,
				"update_authority": record.UpdateAuthority,
			})
		},
	}
}

func usesToggleOutput(toggle tokenmetadata.UsesToggle) map[string]interface{} {
	out := map[string]interface{}{
		"kind": toggle.Kind().String(),
	}
	if set, ok := toggle.(tokenmetadata.UsesToggleSet); ok {
		out["uses"] = map[string]interface{}{
			"use_method": set.Uses.UseMethod.String(),
			"remaining":  set.Uses.Remaining,
			"total":      set.Uses.Total,
		}
	}
	return out
}
