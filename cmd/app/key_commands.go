package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/MehanikTMYT/chatbot/cmd/app/commands"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-key",
			Usage: "Generate a new tunnel key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "algorithm",
					Aliases: []string{"alg"},
					Value:   "aes-gcm",
					Usage:   "Encryption algorithm to use (aes-gcm or chacha20-poly1305)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "KMS keeper URI to wrap the key with (omit to print the raw key)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunGenerateKey(
					ctx,
					commands.DefaultIO().Writer,
					cmd.String("algorithm"),
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
