package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/bidicaret"
	"github.com/iw2rmb/bidicaret/motion"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		text string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print every caret position of a line in visual order",
		Long: `walk starts at the visual edge of the line opposite to --dir and moves the
caret until no position is left, printing "index sticky row" per step.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := parseDir(dir)
			if err != nil {
				return err
			}

			line := bidicaret.NewLine(text, a.opt)
			a.log.Debug("walk", "runes", len([]rune(text)), "runs", len(line.Order()), "rows", len(line.Layout().Rows()), "dir", d)

			out := cmd.OutOrStdout()
			for _, c := range line.Walk(d, a.cfg.ByUnit) {
				if _, err := fmt.Fprintf(out, "%d %s %d\n", c.Index, c.Sticky, line.CaretRow(c)); err != nil {
					return fmt.Errorf("writing walk: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&text, "text", "t", "", "line of text to walk")
	cmd.Flags().StringVarP(&dir, "dir", "d", "right", "direction: right or left")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func parseDir(s string) (motion.Dir, error) {
	switch s {
	case "right", "r":
		return motion.Right, nil
	case "left", "l":
		return motion.Left, nil
	default:
		return 0, fmt.Errorf("dir: unknown direction %q (want right or left)", s)
	}
}
