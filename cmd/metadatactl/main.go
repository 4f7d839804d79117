package main

import (
	"context"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	// set up a context that is canceled when a command is interrupted
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			logrus.StandardLogger().WithField("type", "metadatactl").Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(interrupt)
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logrus.StandardLogger().WithField("type", "metadatactl").WithError(err).Fatal("command failed")
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "metadatactl",
		Usage:   "Encode and decode token metadata program instructions and accounts",
		Version: GitTag,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "logrus level: trace, debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"METADATACTL_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:        "encoding",
				Usage:       "encoding of binary payloads: base58, hex or base64, overrides " + encodingEnv,
				DefaultText: string(encodingBase58),
			},
			&cli.StringFlag{
				Name:  "identity",
				Usage: "base58 address used for unset authority accounts, overrides " + identityEnv,
			},
			&cli.StringFlag{
				Name:  "program",
				Usage: "base58 token metadata program address, overrides " + programOverrideEnv,
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			logrus.SetLevel(level)
			logrus.SetOutput(c.App.ErrWriter)
			return nil
		},
		Commands: []*cli.Command{
			newCmd_Encode(),
			newCmd_Decode(),
			newCmd_Version(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}
