package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"adaptive-life/internal/loader"
)

func newParseCmd(_ *options) *cobra.Command {
	var cells bool
	cmd := &cobra.Command{
		Use:   "parse <file.rle>",
		Short: "Decode an RLE pattern and print its extent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loader.ParseFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "width %d, height %d, %d live cells\n", p.Width, p.Height, len(p.Cells))
			if !cells {
				return nil
			}
			for _, c := range p.Cells {
				fmt.Fprintf(out, "%d %d\n", c.Col, c.Row)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&cells, "cells", false, "list live cell coordinates (col row)")
	return cmd
}
