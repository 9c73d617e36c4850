package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pitwall/internal/bootstrap"
	sessiondto "pitwall/internal/modules/session/dto"
)

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Manage isolated data sessions"}

	session.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				sessions, err := app.SessionCLI.List(ctx)
				if err != nil {
					return err
				}
				for _, s := range sessions {
					marker := " "
					if s.Active {
						marker = "*"
					}
					printf(cmd, "%s %s\t%s %s\tlast opened %s\n", marker, s.ID, s.Emoji, s.Name, s.LastAccessedAt.Local().Format("2006-01-02 15:04"))
				}
				return nil
			})
		},
	})

	var description, emoji string
	var load bool
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a session with empty data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if load {
					meta, ok, err := app.SessionCLI.CreateAndLoad(ctx, args[0], description, emoji)
					if err != nil {
						return err
					}
					printf(cmd, "created %s (%s), %s\n", meta.Name, meta.ID, yesNo(ok, "loaded", "not loaded"))
					return nil
				}
				meta, err := app.SessionCLI.Create(ctx, args[0], description, emoji)
				if err != nil {
					return err
				}
				printf(cmd, "created %s (%s)\n", meta.Name, meta.ID)
				return nil
			})
		},
	}
	createCmd.Flags().StringVar(&description, "description", "", "session description")
	createCmd.Flags().StringVar(&emoji, "emoji", "", "session emoji")
	createCmd.Flags().BoolVar(&load, "load", false, "load the new session right away")

	loadCmd := &cobra.Command{
		Use:   "load <id>",
		Short: "Save the current session and load another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.SessionCLI.Load(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("session %s has no stored data", args[0])
				}
				printf(cmd, "loaded %s\n", args[0])
				return nil
			})
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Write the working data back to the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Save(ctx); err != nil {
					return err
				}
				printf(cmd, "saved\n")
				return nil
			})
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a session and its data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.SessionCLI.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "deleted "+args[0], "no session "+args[0]))
				return nil
			})
		},
	}

	var newName, newDescription, newEmoji string
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a session's name, description or emoji",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch sessiondto.MetadataPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &newName
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &newDescription
			}
			if cmd.Flags().Changed("emoji") {
				patch.Emoji = &newEmoji
			}
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.SessionCLI.Update(ctx, args[0], patch)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "updated "+args[0], "no session "+args[0]))
				return nil
			})
		},
	}
	updateCmd.Flags().StringVar(&newName, "name", "", "new name")
	updateCmd.Flags().StringVar(&newDescription, "description", "", "new description")
	updateCmd.Flags().StringVar(&newEmoji, "emoji", "", "new emoji")

	activeCmd := &cobra.Command{
		Use:   "active",
		Short: "Show the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				active, ok, err := app.SessionCLI.Active(ctx)
				if err != nil {
					return err
				}
				switch {
				case !ok:
					printf(cmd, "no active session\n")
				case active.TeamID != "":
					printf(cmd, "team %s session %s\n", active.TeamID, active.TeamSessionID)
				default:
					printf(cmd, "%s\n", active.SessionID)
				}
				return nil
			})
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the working data to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				written, data, err := app.SessionCLI.Export(ctx, path)
				if err != nil {
					return err
				}
				printf(cmd, "exported %d notes, %d setups to %s\n",
					len(data.Notes.OrElse(nil)), len(data.Setups.OrElse(nil)), written)
				return nil
			})
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Create a new session from an exported JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				meta, err := app.SessionCLI.Import(ctx, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "imported as %s (%s)\n", meta.Name, meta.ID)
				return nil
			})
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every personal session and clear working data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.SessionCLI.Reset(ctx); err != nil {
					return err
				}
				printf(cmd, "all sessions cleared\n")
				return nil
			})
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move data from before sessions existed into its own session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.SessionCLI.Migrate(ctx)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(out.Migrated, "migrated into "+out.SessionID, "nothing to migrate"))
				return nil
			})
		},
	}

	demoCmd := func(use string, hidden bool) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: yesNo(hidden, "Hide", "Show") + " the demo session in listings",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
					return app.SessionCLI.SetDemoHidden(ctx, hidden)
				})
			},
		}
	}

	session.AddCommand(createCmd, loadCmd, saveCmd, deleteCmd, updateCmd, activeCmd,
		exportCmd, importCmd, resetCmd, migrateCmd, demoCmd("hide-demo", true), demoCmd("show-demo", false))
	return session
}
