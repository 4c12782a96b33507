package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

func render[T fmt.Stringer](w io.Writer, items []T, asJSON bool, empty string) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if items == nil {
			items = []T{}
		}
		return encoder.Encode(items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("ID must be a number: %q", s)
	}
	return id, nil
}
