// Package main is the entry point for the wordmine CLI.
//
// It opens the given files as documents, gives each one a view, places the
// cursor at the end of the last file, runs a word completion pass and prints
// the mined suggestions. With -prefix, the mined words are loaded into a
// patricia trie and only those under the prefix are printed.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/dshills/wordmine/internal/completion"
	"github.com/dshills/wordmine/internal/config"
	"github.com/dshills/wordmine/internal/editor"
	"github.com/dshills/wordmine/internal/logger"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	automatic  bool
	height     int
	prefix     string
	verbose    bool
}

func run() int {
	opts := parseFlags()
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}
	logg := logger.Default("wordmine")

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: wordmine [flags] <file>...")
		flag.PrintDefaults()
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logg.Error("loading config", "err", err)
		return 1
	}

	ed := editor.New()
	var lastView *editor.View
	var lastDoc *editor.Document
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			logg.Error("reading file", "path", path, "err", err)
			return 1
		}
		doc := ed.OpenDocument(filepath.Base(path), string(data))
		view := ed.OpenView(doc.ID(), opts.height)
		lastView, lastDoc = view, doc
	}

	// Trigger from the end of the last opened file, as if the user had just
	// typed its final word.
	ed.SetFocus(lastView.ID())
	snap := lastDoc.Snapshot()
	lastDoc.Selection().Set(lastDoc.Selection().Primary().MoveTo(snap.Len()))

	kind := completion.TriggerManual
	if opts.automatic {
		kind = completion.TriggerAutomatic
	}
	trig := completion.Trigger{Kind: kind, Pos: snap.Len()}

	task := completion.Complete(context.Background(), ed, trig, cfg, snap.RevisionID())
	if task == nil {
		logg.Info("no suggestions", "trigger", kind.String())
		return 0
	}

	resp := task.Run()
	logg.Debug("scan complete", "items", len(resp.Items), "priority", resp.Context.Priority)

	words := patricia.NewTrie()
	for _, item := range resp.Items {
		words.Insert(patricia.Prefix(item.Label), item)
	}

	visit := func(prefix patricia.Prefix, item patricia.Item) error {
		fmt.Println(string(prefix))
		return nil
	}
	if opts.prefix != "" {
		if err := words.VisitSubtree(patricia.Prefix(opts.prefix), visit); err != nil {
			logg.Error("prefix lookup", "err", err)
			return 1
		}
	} else {
		if err := words.Visit(visit); err != nil {
			logg.Error("listing words", "err", err)
			return 1
		}
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "wordmine.toml", "path to configuration file")
	flag.BoolVar(&opts.automatic, "auto", false, "use the automatic (as-you-type) trigger kind")
	flag.IntVar(&opts.height, "height", 40, "view height in lines (the visible window per file)")
	flag.StringVar(&opts.prefix, "prefix", "", "only print mined words under this prefix")
	flag.BoolVar(&opts.verbose, "v", false, "verbose logging")
	flag.Parse()
	return opts
}
