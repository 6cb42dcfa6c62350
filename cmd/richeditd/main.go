// Command richeditd serves the rich code editor core over JSON-RPC 2.0 on
// stdin/stdout, for embedding hosts that speak the editing-delta protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/TimWhiting/rich-code-editor/pkg/channel"
	"github.com/TimWhiting/rich-code-editor/pkg/edit"
	"github.com/TimWhiting/rich-code-editor/pkg/highlight"
	"github.com/TimWhiting/rich-code-editor/pkg/logutil"
)

var (
	grammarFile = flag.String("grammar", "", "YAML grammar definition (default: built-in generic grammar)")
	themeFile   = flag.String("theme", "", "YAML theme definition (default: built-in theme)")
	verbose     = flag.Bool("verbose", false, "log server activity to stderr")
)

func main() {
	flag.Parse()
	if isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintln(os.Stderr,
			"richeditd speaks JSON-RPC on stdin/stdout and must not be run on a terminal")
		os.Exit(2)
	}
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "richeditd:", err)
		os.Exit(2)
	}
}

func run() error {
	grammar := highlight.DefaultGrammar()
	if *grammarFile != "" {
		data, err := os.ReadFile(*grammarFile)
		if err != nil {
			return err
		}
		if grammar, err = highlight.LoadGrammar(data); err != nil {
			return err
		}
	}
	theme := highlight.DefaultTheme()
	if *themeFile != "" {
		data, err := os.ReadFile(*themeFile)
		if err != nil {
			return err
		}
		if theme, err = highlight.LoadTheme(data); err != nil {
			return err
		}
	}

	logger := logutil.Discard
	if *verbose {
		logger = logutil.New(os.Stderr, "richeditd ")
	}

	editor := edit.NewEditor(highlight.NewSyntax(grammar, theme))
	server := channel.NewServer(editor, logger)
	server.Serve(context.Background(),
		jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}))
	return nil
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdrwc) Write(p []byte) (int, error) { return os.Stdout.Write(p) }

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		os.Stdout.Close()
		return err
	}
	return os.Stdout.Close()
}
