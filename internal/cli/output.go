package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/piwi3910/gridsnap/internal/project"
)

// splitJoined returns one line per error wrapped by errors.Join.
func splitJoined(err error) []string {
	var errs []error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		errs = joined.Unwrap()
	} else {
		errs = []error{err}
	}
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, strings.ReplaceAll(e.Error(), "\n", "; "))
	}
	return lines
}

// writeLayout prints items as indented JSON, or saves them to out when set.
func writeLayout(cmd *cobra.Command, items []model.LayoutItem, settings model.GridSettings, out string) error {
	if out != "" {
		if err := project.SaveLayout(out, items, settings); err != nil {
			return err
		}
		loggerFromContext(cmd.Context()).Info("saved layout", "file", out, "items", len(items))
		return nil
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = w.Write([]byte("\n"))
	return err
}
