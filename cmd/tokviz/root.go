package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokviz",
	Short: "Byte-pair tokenizer and live token-stream visualizer",
	Long: "tokviz exposes the BPE tokenizer core from a terminal: list the\n" +
		"registered vocabularies, tokenize text once, or watch how an\n" +
		"incremental edit session re-tokenizes as input grows.",
}

func init() {
	rootCmd.AddCommand(vocabsCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(incrementalCmd)
}
