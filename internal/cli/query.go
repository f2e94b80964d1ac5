package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/gridsnap/internal/engine"
	"github.com/piwi3910/gridsnap/internal/model"
)

func (a *app) dimsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dims <layout>",
		Short: "Print the grid size a layout needs as \"cols rows\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadLayout(cmd, args[0])
			if err != nil {
				return err
			}
			dims := engine.GetGridDimensions(items)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", dims.Cols, dims.Rows)
			return err
		},
	}
}

func (a *app) collisionsCommand() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "collisions <layout>",
		Short: "List overlapping items",
		Long:  `Without --id every overlapping pair is printed, one pair per line. With --id only the items overlapping that item are printed.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := loadLayout(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if id != "" {
				idx := model.IndexOf(items, id)
				if idx < 0 {
					return fmt.Errorf("%q: %w", id, engine.ErrItemNotFound)
				}
				hits := engine.GetCollisions(items[idx], items)
				if len(hits) == 0 {
					fmt.Fprintln(out, "no collisions")
					return nil
				}
				for _, hit := range hits {
					fmt.Fprintln(out, hit.ID)
				}
				return nil
			}

			pairs := engine.FindAllCollisions(items)
			if len(pairs) == 0 {
				fmt.Fprintln(out, "no collisions")
				return nil
			}
			for _, p := range pairs {
				fmt.Fprintf(out, "%s %s\n", p.A.ID, p.B.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "only list items overlapping this item")
	return cmd
}

func (a *app) placeCommand() *cobra.Command {
	var w, h int

	cmd := &cobra.Command{
		Use:   "place <layout>",
		Short: "Print where a new w x h item would go as \"x y\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if w < 1 || h < 1 {
				return fmt.Errorf("place %dx%d: %w", w, h, model.ErrInvalidSize)
			}
			items, err := a.loadBase(cmd, args[0])
			if err != nil {
				return err
			}
			ctrl, err := a.controller(cmd, "")
			if err != nil {
				return err
			}

			pos, ok := ctrl.FirstAvailablePosition(w, h, items)
			if !ok {
				loggerFromContext(cmd.Context()).Debug("no position", "w", w, "h", h,
					"max_cols", model.LimitFromBound(ctrl.Settings.Bounds.MaxCols),
					"max_rows", model.LimitFromBound(ctrl.Settings.Bounds.MaxRows))
				fmt.Fprintln(cmd.OutOrStdout(), "no position")
				return nil
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", pos.X, pos.Y)
			return err
		},
	}

	cmd.Flags().IntVar(&w, "w", 1, "item width in columns")
	cmd.Flags().IntVar(&h, "h", 1, "item height in rows")
	return cmd
}

func (a *app) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <layout>",
		Short: "Report malformed rows, invalid items and overlaps",
		Long:  `Malformed rows and invalid items are errors and make the command fail. Overlaps are reported but are not errors.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			result, err := importPath(cmd, path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			problems := append([]string{}, result.Errors...)
			if err := model.ValidateLayout(result.Items); err != nil {
				problems = append(problems, splitJoined(err)...)
			}
			for _, p := range problems {
				fmt.Fprintf(out, "error: %s\n", p)
			}

			pairs := engine.FindAllCollisions(result.Items)
			for _, p := range pairs {
				fmt.Fprintf(out, "overlap: %s %s\n", p.A.ID, p.B.ID)
			}

			fmt.Fprintf(out, "%d items, %d errors, %d overlaps\n", len(result.Items), len(problems), len(pairs))
			if len(problems) > 0 {
				return fmt.Errorf("%s: %w", path, ErrInvalidLayout)
			}
			return nil
		},
	}
}
