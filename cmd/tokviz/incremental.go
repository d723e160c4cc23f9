package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tokviz/tokviz"
)

var incrementalVocab string

var incrementalCmd = &cobra.Command{
	Use:   "incremental",
	Short: "Feed stdin lines as successive buffer states and show what re-tokenized",
	Long: "Each line read from stdin is treated as the full buffer content at\n" +
		"that point in time (not an append), simulating a sequence of edits to\n" +
		"a single text box. tokviz reports the token index range that had to\n" +
		"be re-tokenized for each line.",
	Args: cobra.NoArgs,
	RunE: runIncremental,
}

func init() {
	incrementalCmd.Flags().StringVarP(&incrementalVocab, "vocab", "v", "cl100k_base", "vocabulary id to tokenize with")
}

func runIncremental(cmd *cobra.Command, args []string) error {
	h, err := tokviz.NewIncrementalTokenizer(incrementalVocab)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		result, start, end, changed := h.Update(line)

		if !changed {
			fmt.Fprintf(out, "%q -> %d tokens (unchanged)\n", line, result.TotalTokens)
			continue
		}
		fmt.Fprintf(out, "%q -> %d tokens, re-tokenized indices [%d:%d)\n", line, result.TotalTokens, start, end)
	}
	return scanner.Err()
}
