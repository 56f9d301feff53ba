package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/quill/internal"
	"github.com/starford/quill/internal/authors"
	pkgconfig "github.com/starford/quill/pkg/config"
)

func loadOptions(cmd *cli.Command) ([]internal.Option, error) {
	root := cmd.Root()
	configPath := root.String("config")

	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if root.Bool("verbose") {
		cfg.App.LogLevel = slog.LevelDebug
	}

	return []internal.Option{
		internal.WithConfig(cfg),
		internal.WithProgress(root.Bool("verbose")),
	}, nil
}

func deleteAuthor(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunDeleteAuthor(ctx, authors.Options{
		ID:    cmd.String("id"),
		Force: cmd.Bool("force"),
	}, opts...)
}

func listAuthors(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunListAuthors(ctx, opts...)
}

func authorReferences(ctx context.Context, cmd *cli.Command) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	return internal.RunAuthorReferences(ctx, cmd.String("id"), opts...)
}

func main() {
	cmd := &cli.Command{
		Name:  "quill",
		Usage: "Manage the content collections of a Markdown site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show progress and debug logs",
				Sources: cli.EnvVars("QUILL_VERBOSE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "authors",
				Usage: "Work with author entries",
				Commands: []*cli.Command{
					{
						Name:   "delete",
						Usage:  "Delete an author, warning about articles that reference it",
						Action: deleteAuthor,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:  "id",
								Usage: "Author to delete; prompts for one when omitted",
							},
							&cli.BoolFlag{
								Name:    "force",
								Aliases: []string{"f"},
								Usage:   "Skip confirmation when no article references the author",
							},
						},
					},
					{
						Name:   "list",
						Usage:  "List author ids",
						Action: listAuthors,
					},
					{
						Name:   "refs",
						Usage:  "List articles that reference an author",
						Action: authorReferences,
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "id",
								Usage:    "Author to look up",
								Required: true,
							},
						},
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
