package main

import (
	"log"
	"path/filepath"

	"github.com/tokviz/tokviz/internal/vocab"
)

func main() {
	vocabPath := filepath.Join("testdata", "gpt2", "vocab.json")
	mergesPath := filepath.Join("testdata", "gpt2", "merges.txt")

	v, err := vocab.LoadFromFiles("gpt2", vocabPath, mergesPath, nil)
	if err != nil {
		log.Fatalf("failed to load vocab: %v", err)
	}

	log.Printf("vocab %q loaded: %d tokens, max token length %d bytes\n",
		v.ID(), v.VocabSize(), v.MaxTokenByteLen())
}
