// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"minipy/internal/config"
	"minipy/internal/lsp"

	"github.com/spf13/pflag"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

var (
	version = "0.1.0"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	configPath := pflag.StringP("config", "c", "", "config file (default: $MINIPY_CONFIG, ./minipy.toml or ~/.config/minipy/config.toml)")
	pflag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, _, err = config.Discover()
	}
	if err != nil {
		log.Println("Error loading config:", err)
		os.Exit(1)
	}

	// Stdout carries the protocol, so logs go to stderr or the configured file
	commonlog.Configure(cfg.Log.Verbosity, cfg.LogFile())

	minipyHandler := lsp.NewMinipyHandler()

	handler = protocol.Handler{
		Initialize:                     minipyHandler.Initialize,
		Initialized:                    minipyHandler.Initialized,
		Shutdown:                       minipyHandler.Shutdown,
		SetTrace:                       minipyHandler.SetTrace,
		TextDocumentDidOpen:            minipyHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           minipyHandler.TextDocumentDidClose,
		TextDocumentDidChange:          minipyHandler.TextDocumentDidChange,
		TextDocumentCompletion:         minipyHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: minipyHandler.TextDocumentSemanticTokensFull,
	}

	// The last argument enables glsp's internal debug logging
	s := server.NewServer(&handler, cfg.LSP.Name, false)

	log.Printf("Starting %s LSP server v%s...", cfg.LSP.Name, version)

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting LSP server:", err)
		os.Exit(1)
	}
}
