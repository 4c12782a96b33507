package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/almanac/pkg/core"
)

func newNoteCmd(a *app) *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}
	noteCmd.AddCommand(
		newNoteAddCmd(a),
		newNoteDeleteCmd(a),
		newNoteSearchCmd(a),
		newNoteListCmd(a),
	)
	return noteCmd
}

func newNoteAddCmd(a *app) *cobra.Command {
	var (
		id       int
		category string
		date     string
		topic    string
		text     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.notes(cmd.Context())
			if err != nil {
				return err
			}

			if err := notes.AddNote(cmd.Context(), id, category, date,
				core.WithTopic(topic), core.WithNoteText(text)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Note added.")
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Unique note id")
	cmd.Flags().StringVar(&category, "category", "", "Category of the note")
	cmd.Flags().StringVar(&date, "date", "", "Date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&topic, "topic", core.DefaultTopic, "Topic of the note")
	cmd.Flags().StringVar(&text, "note", "", "Free text")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newNoteDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			notes, err := a.notes(cmd.Context())
			if err != nil {
				return err
			}

			if err := notes.DeleteByID(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Note removed.")
			return nil
		},
	}
}

func newNoteSearchCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [field] [value]",
		Short: "Find notes whose field equals value",
		Long:  fmt.Sprintf("Find notes whose field equals value exactly. Fields: %v.", core.FieldNames(core.NoteFields)),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.notes(cmd.Context())
			if err != nil {
				return err
			}

			found, err := notes.Search(args[0], args[1])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), found, asJSON, "")
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newNoteListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.notes(cmd.Context())
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), notes.DisplayAll(), asJSON, "No note entries.")
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
