package main

import (
	"context"

	"github.com/spf13/cobra"

	"pitwall/internal/bootstrap"
	recordsdto "pitwall/internal/modules/records/dto"
)

func newNoteCmd(dataDir *string) *cobra.Command {
	note := &cobra.Command{Use: "note", Short: "Track notes in the working data"}

	var track string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, optionally for one track",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				notes, err := app.RecordsCLI.ListNotes(ctx, track)
				if err != nil {
					return err
				}
				if len(notes) == 0 {
					printf(cmd, "no notes\n")
				}
				for _, n := range notes {
					printf(cmd, "%s\t[%s] %s\t%s\n", n.ID, n.Type, n.Title, n.TrackName)
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&track, "track", "", "filter by track id")

	var content, noteType string
	addCmd := &cobra.Command{
		Use:   "add <track> <title>",
		Short: "Add a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				n, err := app.RecordsCLI.AddNote(ctx, args[0], args[1], content, noteType)
				if err != nil {
					return err
				}
				printf(cmd, "added note %s\n", n.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&content, "content", "", "note body")
	addCmd.Flags().StringVar(&noteType, "type", "general", "general|condition|strategy|setup|weather")

	var title, newContent, newType string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch recordsdto.NotePatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("content") {
				patch.Content = &newContent
			}
			if cmd.Flags().Changed("type") {
				patch.Type = &newType
			}
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				_, ok, err := app.RecordsCLI.UpdateNote(ctx, args[0], patch)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "updated "+args[0], "no note "+args[0]))
				return nil
			})
		},
	}
	editCmd.Flags().StringVar(&title, "title", "", "new title")
	editCmd.Flags().StringVar(&newContent, "content", "", "new body")
	editCmd.Flags().StringVar(&newType, "type", "", "new type")

	note.AddCommand(listCmd, addCmd, editCmd, deleteCmd(dataDir, "note", func(ctx context.Context, app *bootstrap.App, id string) (bool, error) {
		return app.RecordsCLI.DeleteNote(ctx, id)
	}))
	return note
}

func newSetupCmd(dataDir *string) *cobra.Command {
	setup := &cobra.Command{Use: "setup", Short: "Car setups in the working data"}

	setup.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List setups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				setups, err := app.RecordsCLI.ListSetups(ctx)
				if err != nil {
					return err
				}
				if len(setups) == 0 {
					printf(cmd, "no setups\n")
				}
				for _, s := range setups {
					printf(cmd, "%s\t%s\t%s %s\n", s.ID, s.Name, s.TrackName, s.CarModel)
				}
				return nil
			})
		},
	})

	var input recordsdto.SetupInput
	var tires []float64
	var wing []float64
	addCmd := &cobra.Command{
		Use:   "add <track> <name>",
		Short: "Add a setup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.TrackID, input.Name = args[0], args[1]
			if len(tires) == 4 {
				input.TirePressures = &recordsdto.TirePressures{FrontLeft: tires[0], FrontRight: tires[1], RearLeft: tires[2], RearRight: tires[3]}
			}
			if len(wing) == 2 {
				input.Wing = &recordsdto.WingSettings{Front: wing[0], Rear: wing[1]}
			}
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.RecordsCLI.AddSetup(ctx, input)
				if err != nil {
					return err
				}
				printf(cmd, "added setup %s\n", s.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVar(&input.CarModel, "car", "", "car model")
	addCmd.Flags().StringVar(&input.Conditions, "conditions", "", "track conditions")
	addCmd.Flags().StringVar(&input.Suspension, "suspension", "", "suspension notes")
	addCmd.Flags().StringVar(&input.Notes, "notes", "", "free-form notes")
	addCmd.Flags().Float64SliceVar(&tires, "tires", nil, "pressures fl,fr,rl,rr")
	addCmd.Flags().Float64SliceVar(&wing, "wing", nil, "wing front,rear")

	setup.AddCommand(addCmd, deleteCmd(dataDir, "setup", func(ctx context.Context, app *bootstrap.App, id string) (bool, error) {
		return app.RecordsCLI.DeleteSetup(ctx, id)
	}))
	return setup
}

func newWeekendCmd(dataDir *string) *cobra.Command {
	weekend := &cobra.Command{Use: "weekend", Short: "Race weekend itineraries"}

	weekend.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List race weekends with their schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				weekends, err := app.RecordsCLI.ListWeekends(ctx)
				if err != nil {
					return err
				}
				if len(weekends) == 0 {
					printf(cmd, "no race weekends\n")
				}
				for _, w := range weekends {
					printf(cmd, "%s\t%s\t%s → %s\n", w.ID, w.Name, w.StartDate, w.EndDate)
					for _, d := range w.Days {
						printf(cmd, "  %s %s (%s)\n", d.Date, d.Label, d.ID)
						for _, it := range d.Items {
							printf(cmd, "    %s %s %s [%s] %s\n", yesNo(it.Completed, "✓", "·"), it.Time, it.Title, it.Category, it.ID)
						}
					}
				}
				return nil
			})
		},
	})

	weekend.AddCommand(&cobra.Command{
		Use:   "create <track> <name> <start> <end>",
		Short: "Create a weekend with one day per date in range",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				w, err := app.RecordsCLI.CreateWeekend(ctx, args[0], args[1], args[2], args[3])
				if err != nil {
					return err
				}
				printf(cmd, "created weekend %s with %d days\n", w.ID, len(w.Days))
				return nil
			})
		},
	})

	weekend.AddCommand(&cobra.Command{
		Use:   "add-day <weekend> <date> <label>",
		Short: "Add a day to a weekend",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				d, ok, err := app.RecordsCLI.AddDay(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "added day "+d.ID, "no weekend "+args[0]))
				return nil
			})
		},
	})

	weekend.AddCommand(&cobra.Command{
		Use:   "remove-day <weekend> <day>",
		Short: "Remove a day from a weekend",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.RecordsCLI.RemoveDay(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "removed day "+args[1], "no such day"))
				return nil
			})
		},
	})

	var item recordsdto.ItemInput
	addItemCmd := &cobra.Command{
		Use:   "add-item <weekend> <day> <HH:MM> <title>",
		Short: "Schedule an item on a day",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			item.Time, item.Title = args[2], args[3]
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				it, ok, err := app.RecordsCLI.AddItem(ctx, args[0], args[1], item)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "added item "+it.ID, "no such day"))
				return nil
			})
		},
	}
	addItemCmd.Flags().StringVar(&item.Category, "category", "other", "practice|qualifying|race|travel|meeting|other")
	addItemCmd.Flags().StringVar(&item.Notes, "notes", "", "item notes")

	doneCmd := func(use string, completed bool) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <weekend> <day> <item>",
			Short: "Mark a schedule item " + yesNo(completed, "completed", "pending"),
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
					_, ok, err := app.RecordsCLI.UpdateItem(ctx, args[0], args[1], args[2], recordsdto.ItemPatch{Completed: &completed})
					if err != nil {
						return err
					}
					printf(cmd, "%s\n", yesNo(ok, "updated "+args[2], "no such item"))
					return nil
				})
			},
		}
	}

	weekend.AddCommand(&cobra.Command{
		Use:   "remove-item <weekend> <day> <item>",
		Short: "Remove a schedule item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.RecordsCLI.RemoveItem(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "removed "+args[2], "no such item"))
				return nil
			})
		},
	})

	weekend.AddCommand(addItemCmd, doneCmd("done", true), doneCmd("undone", false),
		deleteCmd(dataDir, "weekend", func(ctx context.Context, app *bootstrap.App, id string) (bool, error) {
			return app.RecordsCLI.DeleteWeekend(ctx, id)
		}))
	return weekend
}

func newFavoriteCmd(dataDir *string) *cobra.Command {
	fav := &cobra.Command{Use: "fav", Short: "Favorite tracks"}

	fav.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite tracks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				favorites, err := app.RecordsCLI.Favorites(ctx)
				if err != nil {
					return err
				}
				for _, id := range favorites {
					printf(cmd, "%s\n", id)
				}
				return nil
			})
		},
	})
	fav.AddCommand(&cobra.Command{
		Use:   "add <track>",
		Short: "Add a favorite track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.RecordsCLI.AddFavorite(ctx, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "added "+args[0], "unchanged (duplicate or list full)"))
				return nil
			})
		},
	})
	fav.AddCommand(&cobra.Command{
		Use:   "remove <track>",
		Short: "Remove a favorite track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := app.RecordsCLI.RemoveFavorite(ctx, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "removed "+args[0], "not a favorite"))
				return nil
			})
		},
	})
	return fav
}

func newSettingsCmd(dataDir *string) *cobra.Command {
	var temperature, wind, distance string
	settings := &cobra.Command{
		Use:   "settings",
		Short: "Show or change unit settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var patch recordsdto.SettingsPatch
			if cmd.Flags().Changed("temperature") {
				patch.TemperatureUnit = &temperature
			}
			if cmd.Flags().Changed("wind") {
				patch.WindSpeedUnit = &wind
			}
			if cmd.Flags().Changed("distance") {
				patch.DistanceUnit = &distance
			}
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				var s recordsdto.UserSettings
				var err error
				if patch == (recordsdto.SettingsPatch{}) {
					s, err = app.RecordsCLI.Settings(ctx)
				} else {
					s, err = app.RecordsCLI.UpdateSettings(ctx, patch)
				}
				if err != nil {
					return err
				}
				printf(cmd, "temperature=%s wind=%s distance=%s\n", s.TemperatureUnit, s.WindSpeedUnit, s.DistanceUnit)
				return nil
			})
		},
	}
	settings.Flags().StringVar(&temperature, "temperature", "", "celsius|fahrenheit")
	settings.Flags().StringVar(&wind, "wind", "", "kmh|mph|ms")
	settings.Flags().StringVar(&distance, "distance", "", "km|mi")
	return settings
}

func newThemeCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark|system]",
		Short: "Show or set the UI theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				if len(args) == 1 {
					if err := app.RecordsCLI.SetTheme(ctx, args[0]); err != nil {
						return err
					}
				}
				t, err := app.RecordsCLI.Theme(ctx)
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", t)
				return nil
			})
		},
	}
}

func newTracksCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "List known tracks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				tracks, err := app.RecordsCLI.Tracks(ctx)
				if err != nil {
					return err
				}
				for _, t := range tracks {
					printf(cmd, "%s\t%s\t%s\n", t.ID, t.Name, t.Country)
				}
				return nil
			})
		},
	}
}

func deleteCmd(dataDir *string, noun string, fn func(ctx context.Context, app *bootstrap.App, id string) (bool, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, *dataDir, func(ctx context.Context, app *bootstrap.App) error {
				ok, err := fn(ctx, app, args[0])
				if err != nil {
					return err
				}
				printf(cmd, "%s\n", yesNo(ok, "deleted "+args[0], "no "+noun+" "+args[0]))
				return nil
			})
		},
	}
}
