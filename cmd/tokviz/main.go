// Command tokviz is a terminal client for the tokenizer core: it lists
// registered vocabularies, tokenizes one-shot input, and runs a small
// incremental-tokenization demo over stdin.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
