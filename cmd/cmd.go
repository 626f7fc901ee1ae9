// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and the operation journal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// videosCommand handles video operations
func videosCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "videos",
		Aliases: []string{"v"},
		Usage:   "Video catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all videos with author and categories",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.VideosList,
			},
			{
				Name:  "search",
				Usage: "Search videos by author",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "term",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.VideosSearch,
			},
			{
				Name:  "save",
				Usage: "Create or update a video",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "id",
						Usage: "Video ID (omit to create)",
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Video name",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "author",
						Usage:    "Author ID",
						Required: true,
					},
					&cli.IntSliceFlag{
						Name:     "category",
						Usage:    "Category ID (repeatable)",
						Required: true,
					},
				},
				Action: r.VideoSave,
			},
			{
				Name:  "delete",
				Usage: "Delete a video and detach it from its author",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Video ID",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip confirmation",
					},
				},
				Action: r.VideoDelete,
			},
		},
	}
}

// authorsCommand handles author operations
func authorsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "authors",
		Aliases: []string{"a"},
		Usage:   "Author operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all authors with their videos",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.AuthorsList,
			},
		},
	}
}

// categoriesCommand handles category operations
func categoriesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "categories",
		Aliases: []string{"cat"},
		Usage:   "Category operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all categories",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CategoriesList,
			},
		},
	}
}

func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the catalog to CSV, Markdown, or plain text",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Export format: csv, markdown, txt",
				Value:   "csv",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (stdout when omitted)",
			},
			&cli.BoolFlag{
				Name:  "authors",
				Usage: "Export authors instead of videos (markdown only)",
			},
		},
		Action: r.Export,
	}
}

func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show the local journal of saves, moves & deletes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of entries (0 for all)",
				Value: 20,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "counts",
				Usage: "Show per-operation counts instead of entries",
			},
		},
		Action: r.History,
	}
}

// apiCommand handles direct backend API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the catalog backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.BoolFlag{
						Name:  "curl",
						Usage: "Print the equivalent cURL command instead of issuing the request",
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "put",
				Usage: "Direct PUT with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "curl",
						Usage: "Print the equivalent cURL command instead of issuing the request",
					},
				},
				Action: r.APIPut,
			},
		},
	}
}

func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Browse and edit the catalog interactively",
		Action: r.Tui,
	}
}
