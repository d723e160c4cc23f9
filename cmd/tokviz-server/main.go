// Command tokviz-server exposes the tokenizer core's external interface
// (spec §6) as an HTTP JSON API, so a browser-based live token-stream
// display can drive it over the network instead of linking the Go package
// directly.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/tokviz/tokviz"
	"github.com/tokviz/tokviz/internal/session"
)

func main() {
	addr := flag.String("addr", ":8787", "address to listen on")
	flag.Parse()

	if _, err := tokviz.ListVocabs(); err != nil {
		slog.Error("failed to build vocab registry", "error", err)
		os.Exit(1)
	}

	s := &Server{sessions: session.NewManager()}
	router := s.routes()

	slog.Info("tokviz-server starting", "addr", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
