package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/companyscout/internal/research"
	"github.com/user/companyscout/internal/research/schema"
)

func init() {
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the research tools",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range research.Definitions() {
			_, structured := schema.Get(d.Name)
			fmt.Fprintf(os.Stdout, "%-24s depth=%-8s max_results=%-3d structured=%v\n",
				d.Name, d.Depth, d.DefaultMaxResults, structured)
		}
		return nil
	},
}
