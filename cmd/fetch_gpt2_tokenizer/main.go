// Command fetch_gpt2_tokenizer downloads the real GPT-2 vocab.json and
// merges.txt into testdata/gpt2/, producing the fixture that
// cmd/test_vocab_load and vocab.LoadFromFiles consume to build an
// exact (non-approximate) vocabulary instead of the registry's
// built-in approximations.
package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
)

var files = map[string]string{
	"vocab.json": "https://huggingface.co/openai-community/gpt2/resolve/main/vocab.json",
	"merges.txt": "https://huggingface.co/openai-community/gpt2/resolve/main/merges.txt",
}

func download(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("write %s: %w", destPath, err)
	}
	if n == 0 {
		return fmt.Errorf("download %s: got 0 bytes", url)
	}

	return nil
}

func main() {
	targetDir := filepath.Join("testdata", "gpt2")

	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		log.Fatalf("mkdir %s: %v", targetDir, err)
	}

	for name, url := range files {
		destPath := filepath.Join(targetDir, name)
		log.Printf("-> downloading %s", name)

		if err := download(url, destPath); err != nil {
			log.Fatalf("downloading %s: %v", name, err)
		}
	}

	log.Printf("done, files in %s; run cmd/test_vocab_load to smoke-test them", targetDir)
}
