// submodule cmd contains command definitions
package main

import (
	"time"

	"github.com/urfave/cli/v3"
)

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
		},
	}
}

func tokenFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "token",
		Aliases: []string{"t"},
		Usage:   "Access token to use instead of the stored session",
		Sources: cli.EnvVars("SCX_ACCESS_TOKEN"),
	}
}

// setupCommand handles configuration and database setup
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the configuration file and local database",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a configuration file from the built-in template",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing configuration file",
					},
					&cli.StringFlag{
						Name:  "client-id",
						Usage: "SoundCloud application client ID",
					},
					&cli.StringFlag{
						Name:  "client-secret",
						Usage: "SoundCloud application client secret",
					},
					&cli.StringFlag{
						Name:  "redirect-uri",
						Usage: "Redirect URI registered for the application",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the database and run migrations",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "status",
						Usage: "List migrations and whether each is applied",
					},
					&cli.BoolFlag{
						Name:  "rollback",
						Usage: "Roll back the most recent migration",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// authCommand handles the OAuth2 authorization flow
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Connect a SoundCloud account",
		Commands: []*cli.Command{
			{
				Name:  "url",
				Usage: "Print the authorization URL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "state",
						Usage: "Opaque value echoed back to the redirect URI",
					},
				},
				Action: r.AuthURL,
			},
			{
				Name:  "login",
				Usage: "Authorize in the browser and store the access token",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "How long to wait for the redirect",
						Value: 2 * time.Minute,
					},
					&cli.BoolFlag{
						Name:  "no-browser",
						Usage: "Print the authorization URL without opening a browser",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "token",
				Usage: "Exchange an authorization code for an access token",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:     "code",
						Usage:    "Authorization code from the redirect",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "grant-type",
						Usage: "OAuth2 grant type",
						Value: "authorization_code",
					},
				}, outputFlags()...),
				Action: r.AuthToken,
			},
			{
				Name:   "status",
				Usage:  "Show the stored session",
				Flags:  []cli.Flag{&cli.BoolFlag{Name: "verify", Usage: "Check the token against the API"}},
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Forget the stored session",
				Action: r.AuthLogout,
			},
		},
	}
}

// meCommand shows the authenticated user's profile
func meCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "me",
		Usage:  "Show the profile of the authenticated user",
		Flags:  append([]cli.Flag{tokenFlag()}, outputFlags()...),
		Action: r.Me,
	}
}

// uploadCommand creates a track
func uploadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Upload a track",
		Flags: append([]cli.Flag{
			tokenFlag(),
			&cli.StringFlag{
				Name:  "title",
				Usage: "Track title",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Track description",
			},
			&cli.StringFlag{
				Name:  "sharing",
				Usage: "public or private",
			},
			&cli.StringSliceFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "Additional track attribute as key=value (repeatable)",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Audio file to send as the track asset",
			},
		}, outputFlags()...),
		Action: r.Upload,
	}
}

// uploadsCommand lists tracks uploaded from this machine
func uploadsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "uploads",
		Usage: "List uploads recorded for the stored session",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Include uploads from every session",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Export as csv, markdown or text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write the export to a file",
			},
		}, outputFlags()...),
		Action: r.Uploads,
	}
}
