// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jview displays a JSON value as a collapsible tree in the terminal.
//
// Usage:
//
//	jview [flags] [file]
//
// If no file is given, the value is read from standard input.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creachadair/jview"
)

var (
	maxDepth  = flag.Int("depth", -1, "Collapse arrays and objects at this depth or deeper (-1 for none)")
	basePath  = flag.String("path", "$", "Access path of the root value")
	indent    = flag.Int("indent", 2, "Spaces of indentation per level")
	preRender = flag.Int("prerender", 5, "Rows to render beyond each edge of the screen")
	huJSON    = flag.Bool("hujson", false, "Accept comments and trailing commas in the input")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jview: ")

	data, err := readInput(flag.Args())
	if err != nil {
		log.Fatalf("Reading input: %v", err)
	}
	v, err := decodeInput(data, *huJSON)
	if err != nil {
		log.Fatalf("Decoding input: %v", err)
	}
	tree, err := jview.NewTree(v, &jview.Options{
		MaxDepth: *maxDepth,
		Path:     *basePath,
		Name:     "jview",
	})
	if err != nil {
		log.Fatalf("Tokenize: %v", err)
	}

	m := newModel(tree, config{Indent: *indent, PreRender: *preRender})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if flag.NArg() == 0 {
		opts = append(opts, tea.WithInputTTY()) // stdin carries the document
	}
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Run: %v", err)
	}
}

func readInput(args []string) ([]byte, error) {
	switch len(args) {
	case 0:
		return io.ReadAll(os.Stdin)
	case 1:
		return os.ReadFile(args[0])
	default:
		return nil, errors.New("at most one input file may be given")
	}
}

func decodeInput(data []byte, allowHuJSON bool) (any, error) {
	if allowHuJSON {
		return jview.DecodeHuJSON(data)
	}
	return jview.Decode(bytes.NewReader(data))
}
