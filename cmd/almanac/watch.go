package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "watch [notes|tasks]",
		Short:     "Print a collection again whenever its document changes",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"notes", "tasks"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			out := cmd.OutOrStdout()
			switch args[0] {
			case "notes":
				notes, err := a.notes(ctx)
				if err != nil {
					return err
				}
				return follow(ctx, out, notes.Collection, "No note entries.")
			case "tasks":
				tasks, err := a.tasks(ctx)
				if err != nil {
					return err
				}
				return follow(ctx, out, tasks.Collection, "No task entries.")
			default:
				return fmt.Errorf("unknown collection %q (want notes or tasks)", args[0])
			}
		},
	}
}

// follow renders c, then reloads and renders it after every document event
// until ctx is done. Load failures are reported and the previous view kept.
func follow[T interface {
	core.Entity
	fmt.Stringer
}](ctx context.Context, w io.Writer, c *core.Collection[T], empty string) error {
	events, err := c.Watch(ctx)
	if err != nil {
		return err
	}
	if err := render(w, c.List(), false, empty); err != nil {
		return err
	}

	for e := range events {
		if e.Type == core.EventDelete {
			fmt.Fprintf(w, "-- %s removed\n", e.Path)
			continue
		}
		if err := c.Load(ctx); err != nil {
			fmt.Fprintf(w, "-- reload failed: %v\n", err)
			continue
		}
		fmt.Fprintf(w, "-- %s\n", e)
		if err := render(w, c.List(), false, empty); err != nil {
			return err
		}
	}
	return nil
}
