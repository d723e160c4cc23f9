package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/tokviz/tokviz"
)

var (
	tokenizeVocab string
	tokenizeStats bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [text]",
	Short: "Tokenize text once and print each token's id, span, and category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringVarP(&tokenizeVocab, "vocab", "v", "cl100k_base", "vocabulary id to tokenize with")
	tokenizeCmd.Flags().BoolVar(&tokenizeStats, "stats", false, "print summary statistics instead of the token stream")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	result, err := tokviz.Tokenize(text, tokenizeVocab)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if tokenizeStats {
		printStats(out, result)
		return nil
	}

	colorize := isatty.IsTerminal(os.Stdout.Fd())

	for _, t := range result.Tokens {
		display := strings.ReplaceAll(t.Text, "\n", "\\n")
		pad := maxDisplayWidth - runewidth.StringWidth(display)
		if pad < 0 {
			pad = 0
		}

		if colorize {
			fmt.Fprintf(out, "\x1b[38;2;%d;%d;%dm%5d  %q%s  [%d:%d) %-11s w=%.2f\x1b[0m\n",
				t.Color[0], t.Color[1], t.Color[2],
				t.ID, display, strings.Repeat(" ", pad), t.ByteStart, t.ByteEnd, t.Category, t.Weight)
		} else {
			fmt.Fprintf(out, "%5d  %q%s  [%d:%d) %-11s w=%.2f\n",
				t.ID, display, strings.Repeat(" ", pad), t.ByteStart, t.ByteEnd, t.Category, t.Weight)
		}
	}

	fmt.Fprintf(out, "%d tokens (%s)\n", result.TotalTokens, result.VocabID)
	return nil
}

const maxDisplayWidth = 16

// printStats reproduces the small token-count/average-length/unique-count
// summary the original WASM bindings exposed for a debug panel. It's a
// derived CLI convenience, not a core operation: it reads a TokenizeResult
// and nothing else.
func printStats(out io.Writer, result tokviz.TokenizeResult) {
	if result.TotalTokens == 0 {
		fmt.Fprintln(out, "0 tokens")
		return
	}

	seen := make(map[int]bool, result.TotalTokens)
	totalBytes := 0
	for _, t := range result.Tokens {
		seen[t.ID] = true
		totalBytes += t.ByteEnd - t.ByteStart
	}

	avgLen := float64(totalBytes) / float64(result.TotalTokens)
	fmt.Fprintf(out, "%d tokens, %d unique, avg %.2f bytes/token (%s)\n",
		result.TotalTokens, len(seen), avgLen, result.VocabID)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	var sb strings.Builder
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
