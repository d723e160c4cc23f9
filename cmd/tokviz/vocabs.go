package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tokviz/tokviz"
)

var vocabsCmd = &cobra.Command{
	Use:   "vocabs",
	Short: "List registered vocabularies",
	RunE:  runVocabs,
}

func runVocabs(cmd *cobra.Command, args []string) error {
	ids, err := tokviz.ListVocabs()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Name", "Vocab Size", "Description"})
	table.SetAutoWrapText(false)

	for _, id := range ids {
		meta, ok, err := tokviz.VocabInfo(id)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		table.Append([]string{
			meta.ID,
			meta.Name,
			humanize.Comma(int64(meta.VocabSize)),
			meta.Description,
		})
	}

	table.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "%d vocabularies registered\n", len(ids))
	return nil
}
