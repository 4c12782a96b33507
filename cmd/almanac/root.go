package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/internal/config"
	"github.com/aretw0/almanac/internal/platform"
	"github.com/aretw0/almanac/pkg/core"
)

// app carries the resolved configuration shared by every subcommand.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "almanac",
		Short: "Keep notes and tasks in plain JSON documents",
		Long: `Almanac keeps two personal collections, notes and tasks.
Every change rewrites the collection's document (notes.json, tasks.json) in full.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.logger)
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (default: almanac.yaml in . or ~/.config/almanac)")
	flags.String("notes-file", "notes.json", "Path of the notes document")
	flags.String("tasks-file", "tasks.json", "Path of the tasks document")
	flags.Bool("read-only", false, "Refuse every change to the documents")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newNoteCmd(a),
		newTaskCmd(a),
		newWatchCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) options() []platform.Option {
	return []platform.Option{
		platform.WithLogger(a.logger),
		platform.WithReadOnly(a.cfg.ReadOnly),
	}
}

func (a *app) notes(ctx context.Context) (*core.NoteManager, error) {
	return platform.OpenNotes(ctx, a.cfg.NotesFile, a.options()...)
}

func (a *app) tasks(ctx context.Context) (*core.TaskManager, error) {
	return platform.OpenTasks(ctx, a.cfg.TasksFile, a.options()...)
}
