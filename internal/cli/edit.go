package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/gridsnap/internal/engine"
	"github.com/piwi3910/gridsnap/internal/model"
)

func (a *app) compressCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "compress <layout>",
		Short: "Move every item up as far as it goes and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.loadBase(cmd, args[0])
			if err != nil {
				return err
			}
			ctrl, err := a.controller(cmd, "")
			if err != nil {
				return err
			}
			return writeLayout(cmd, ctrl.Compress(items), ctrl.Settings, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "save the result to this file instead of printing it")
	return cmd
}

func (a *app) moveCommand() *cobra.Command {
	var (
		id   string
		x, y int
		mode string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "move <layout>",
		Short: "Move an item and print the resulting layout",
		Long:  `Move the item with the given id so its top-left corner is at (x, y). Items it lands on are left alone, pushed to the first free position, or pushed and then compacted, depending on --mode.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.loadBase(cmd, args[0])
			if err != nil {
				return err
			}
			ctrl, err := a.controller(cmd, mode)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("moving item", "id", id, "x", x, "y", y, "mode", ctrl.Settings.Collision)
			moved, err := ctrl.Move(id, model.Position{X: x, Y: y}, items)
			if err != nil {
				return err
			}
			return writeLayout(cmd, moved, ctrl.Settings, out)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "id of the item to move")
	cmd.Flags().IntVar(&x, "x", 0, "target column")
	cmd.Flags().IntVar(&y, "y", 0, "target row")
	cmd.Flags().StringVar(&mode, "mode", "", "collision mode: none, push or compress (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the result to this file instead of printing it")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (a *app) resizeCommand() *cobra.Command {
	var (
		id   string
		w, h int
		mode string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "resize <layout>",
		Short: "Resize an item and print the resulting layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.loadBase(cmd, args[0])
			if err != nil {
				return err
			}
			ctrl, err := a.controller(cmd, mode)
			if err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("resizing item", "id", id, "w", w, "h", h, "mode", ctrl.Settings.Collision)
			resized, err := ctrl.Resize(id, w, h, items)
			if err != nil {
				return err
			}
			return writeLayout(cmd, resized, ctrl.Settings, out)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "id of the item to resize")
	cmd.Flags().IntVar(&w, "w", 1, "new width in columns")
	cmd.Flags().IntVar(&h, "h", 1, "new height in rows")
	cmd.Flags().StringVar(&mode, "mode", "", "collision mode: none, push or compress (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "save the result to this file instead of printing it")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func (a *app) packCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "pack <layout> <new-items>",
		Short: "Add a batch of items, largest first, and print the result",
		Long:  `Every item in the second file is placed at the first free position, largest area first. Items that do not fit the bounds, or whose id is already in the layout, are skipped and reported as warnings. Existing items are never replaced.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.loadBase(cmd, args[0])
			if err != nil {
				return err
			}
			additions, err := loadLayout(cmd, args[1])
			if err != nil {
				return err
			}
			ctrl, err := a.controller(cmd, "")
			if err != nil {
				return err
			}

			result := ctrl.PlaceAll(additions, items)
			logger := loggerFromContext(cmd.Context())
			for _, u := range result.Unplaced {
				logger.Warn("not placed", "id", u.Item.ID, "reason", u.Err)
			}
			logger.Debug("packed items", "placed", len(result.Placed), "unplaced", len(result.Unplaced))
			return writeLayout(cmd, result.Items, ctrl.Settings, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "save the result to this file instead of printing it")
	return cmd
}

func (a *app) compareCommand() *cobra.Command {
	var (
		id   string
		x, y int
	)

	cmd := &cobra.Command{
		Use:   "compare <layout>",
		Short: "Compare a move under every collision mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.loadBase(cmd, args[0])
			if err != nil {
				return err
			}
			base, err := a.settings(cmd, "")
			if err != nil {
				return err
			}

			move := func(c *engine.Controller, items []model.LayoutItem) ([]model.LayoutItem, error) {
				return c.Move(id, model.Position{X: x, Y: y}, items)
			}
			results := engine.CompareScenarios(engine.BuildModeScenarios(base), move, items)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-20s %7s %5s %5s %7s %8s\n", "SCENARIO", "CHANGED", "COLS", "ROWS", "FILL", "OVERLAPS")
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(w, "%-20s error: %v\n", r.Scenario.Name, r.Err)
					continue
				}
				fmt.Fprintf(w, "%-20s %7d %5d %5d %6.1f%% %8d\n", r.Scenario.Name, r.Changed,
					r.Stats.Cols, r.Stats.Rows, r.Stats.FillPercent, r.Stats.Overlaps)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "id of the item to move")
	cmd.Flags().IntVar(&x, "x", 0, "target column")
	cmd.Flags().IntVar(&y, "y", 0, "target row")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
