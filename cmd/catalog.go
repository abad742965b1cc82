package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zhubert/charchat/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the characters in the catalog",
	Long: `Prints every character with its like and comment counts. Use --catalog
to check a custom catalog file before running the TUI with it.`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}
	return printCatalog(cmd.OutOrStdout(), cat)
}

// printCatalog writes one row per character and a history summary.
func printCatalog(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLIKES\tCOMMENTS")
	for _, c := range cat.Characters {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Name, catalog.FormatCount(c.Likes), catalog.FormatCount(c.Comments))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d characters, %d history messages\n", len(cat.Characters), len(cat.History))
	return err
}
