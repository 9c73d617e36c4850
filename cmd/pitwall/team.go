package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pitwall/internal/bootstrap"
	teamdto "pitwall/internal/modules/team/dto"
)

func newTeamCmd(dataDir *string) *cobra.Command {
	team := &cobra.Command{Use: "team", Short: "Teams, members and shared sessions"}

	team.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List teams",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				teams, err := app.TeamCLI.List(ctx)
				if err != nil {
					return err
				}
				for _, t := range teams {
					printf(cmd, "%s\t%s\t%d members, %d sessions\n", t.ID, t.Name, len(t.Members), len(t.Sessions))
				}
				return nil
			})
		},
	})

	team.AddCommand(&cobra.Command{
		Use:   "show <team>",
		Short: "Show members, sessions and your permissions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				t, access, err := app.TeamCLI.Show(ctx, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s (%s)\n", t.Name, t.ID)
				if t.Description != "" {
					printf(cmd, "%s\n", t.Description)
				}
				printf(cmd, "you: %s  manage members=%v edit roles=%v manage sessions=%v\n",
					access.Role.Label(), access.Capabilities.ManageMembers,
					access.Capabilities.EditMemberRoles, access.Capabilities.ManageSessions)
				printf(cmd, "members:\n")
				for _, m := range t.Members {
					printf(cmd, "  %s\t%s\t%s\t%s\n", m.ID, m.Name, m.Email, m.Role.Label())
				}
				printf(cmd, "sessions:\n")
				for _, s := range t.Sessions {
					printf(cmd, "  %s\t%s %s\t%s\n", s.ID, s.Emoji, s.Name, s.TrackID)
				}
				return nil
			})
		},
	})

	var description string
	createCmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a team with you as admin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				t, err := app.TeamCLI.Create(ctx, args[0], description)
				if err != nil {
					return err
				}
				printf(cmd, "created team %s (%s)\n", t.Name, t.ID)
				return nil
			})
		},
	}
	createCmd.Flags().StringVar(&description, "description", "", "team description")

	deleteTeamCmd := &cobra.Command{
		Use:   "delete <team>",
		Short: "Delete a team and all of its session data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.TeamCLI.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "deleted team "+args[0], "no team "+args[0]))
				return nil
			})
		},
	}

	var role string
	inviteCmd := &cobra.Command{
		Use:   "invite <team> <email>",
		Short: "Invite a member by email",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				m, err := app.TeamCLI.Invite(ctx, args[0], args[1], role)
				if err != nil {
					return err
				}
				printf(cmd, "invited %s as %s (%s)\n", m.Name, m.Role.Label(), m.ID)
				return nil
			})
		},
	}
	inviteCmd.Flags().StringVar(&role, "role", "member", "admin|crew_chief|driver|member")

	removeMemberCmd := &cobra.Command{
		Use:   "remove-member <team> <member>",
		Short: "Remove a member from a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.TeamCLI.RemoveMember(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "removed "+args[1], "no member "+args[1]))
				return nil
			})
		},
	}

	roleCmd := &cobra.Command{
		Use:   "role <team> <member> <role>",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.TeamCLI.SetRole(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, fmt.Sprintf("%s is now %s", args[1], args[2]), "no member "+args[1]))
				return nil
			})
		},
	}

	team.AddCommand(createCmd, deleteTeamCmd, inviteCmd, removeMemberCmd, roleCmd, newTeamSessionCmd(dataDir))
	return team
}

func newTeamSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Shared team sessions"}

	var input teamdto.TeamSessionInput
	createCmd := &cobra.Command{
		Use:   "create <team> <name>",
		Short: "Create a team session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = args[1]
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.TeamCLI.CreateSession(ctx, args[0], input)
				if err != nil {
					return err
				}
				printf(cmd, "created team session %s (%s)\n", s.Name, s.ID)
				return nil
			})
		},
	}
	createCmd.Flags().StringVar(&input.Description, "description", "", "session description")
	createCmd.Flags().StringVar(&input.Emoji, "emoji", "", "session emoji")
	createCmd.Flags().StringVar(&input.TrackID, "track", "", "track id")

	deleteCmd := &cobra.Command{
		Use:   "delete <team> <session>",
		Short: "Delete a team session and its data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.TeamCLI.DeleteSession(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "deleted "+args[1], "no team session "+args[1]))
				return nil
			})
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save <team> <session>",
		Short: "Write the working data into a team session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.TeamCLI.SaveSession(ctx, args[0], args[1]); err != nil {
					return err
				}
				printf(cmd, "saved %s\n", args[1])
				return nil
			})
		},
	}

	switchCmd := &cobra.Command{
		Use:   "switch <team> <session>",
		Short: "Load a team session into the working data",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.TeamCLI.Switch(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("team session %s/%s not found", args[0], args[1])
				}
				printf(cmd, "switched to %s/%s\n", args[0], args[1])
				return nil
			})
		},
	}

	session.AddCommand(createCmd, deleteCmd, saveCmd, switchCmd)
	return session
}
