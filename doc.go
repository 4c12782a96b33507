// Package almanac is the Composition Root for the Almanac application.
//
// It connects the note and task domain (pkg/core) with the file-backed
// persistence adapter (pkg/adapters/fs).
//
// Almanac keeps two independent collections:
//
//   - Notes, stored as {"Notes": [...]} in notes.json.
//   - Tasks, stored as {"tasks": [...]} in tasks.json.
//
// Every entry is validated before it enters a collection, ids are unique per
// collection, and every change rewrites the whole document.
//
// Usage:
//
//	notes, err := almanac.OpenNotes(ctx, "notes.json", almanac.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	err = notes.AddNote(ctx, 1, "Work", "2024-01-02", core.WithTopic("Standup"))
package almanac
