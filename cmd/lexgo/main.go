// Command lexgo loads a corpus and answers queries interactively.
//
// Usage:
//
//	lexgo [-lenient] [-v] <corpus-file>
//
// Queries are read from stdin; an empty line exits. Matches are printed
// with their sentence, the matched span highlighted.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/lexgo"
)

const (
	colorRed      = "\033[1;31m"
	colorGreen    = "\033[1;32m"
	colorReset    = "\033[0m"
	boldUnderline = "\033[1;4m"
)

const maxDisplayed = 10

func main() {
	lenient := flag.Bool("lenient", false, "treat unknown literal values as empty posting lists")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-lenient] [-v] <corpus-file>\n", os.Args[0])
		os.Exit(2)
	}

	opts := []lexgo.Option{lexgo.WithLogLevel(slog.LevelInfo)}
	if *verbose {
		opts = []lexgo.Option{lexgo.WithLogLevel(slog.LevelDebug)}
	}
	if *lenient {
		opts = append(opts, lexgo.WithLenientLookup())
	}

	ctx := context.Background()

	lx, err := lexgo.OpenFile(ctx, flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Corpus loaded successfully from %s\n", flag.Arg(0))

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter a query (or leave empty to exit): ")
		if !in.Scan() {
			break
		}
		text := strings.TrimSpace(in.Text())
		if text == "" {
			fmt.Println(colorGreen + "Exiting program." + colorReset)
			break
		}

		handleQuery(ctx, lx, text)
	}
}

func handleQuery(ctx context.Context, lx *lexgo.Lexgo, text string) {
	matches, err := lx.Query(ctx, text)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	case len(matches) == 0:
		fmt.Println(colorRed + "No matches found." + colorReset)
		return
	}

	displayMatches(lx, matches)
}

func displayMatches(lx *lexgo.Lexgo, matches []lexgo.Match) {
	displayed := min(len(matches), maxDisplayed)
	fmt.Printf("Found %d matches. Showing first %d\n", len(matches), displayed)

	c := lx.Corpus()
	for i, m := range matches[:displayed] {
		start, end := c.SentenceSpan(m.Sentence)

		fmt.Printf("%sMatch %d%s in sentence %d: ", boldUnderline, i+1, colorReset, m.Sentence+1)
		for p := start; p < end; p++ {
			word := c.Dict().Reveal(c.Token(p).Word)
			if p >= m.Start && p < m.Start+m.Length {
				fmt.Print(colorGreen + word + colorReset + " ")
			} else {
				fmt.Print(word + " ")
			}
		}
		fmt.Println()
	}
}
