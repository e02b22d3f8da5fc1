// Command voikkocheck is a debug front-end over the voikko engine: it
// loads a dictionary directory and runs spell, suggest, analyze and
// grammar checks over each line of stdin, color-highlighting misspelled
// words and grammar errors (spec.md §1's "command-line front-ends" are
// out of scope for the core; this is the minimal smoke-test harness the
// ambient tooling section calls for).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/voikkofi/vfst/voikko"
)

func main() {
	dictDir := flag.String("dict", "", "dictionary directory (containing mor.vfst)")
	showAnalysis := flag.Bool("analyze", false, "print morphological analyses for each word")
	maxSuggestions := flag.Int("suggestions", 5, "maximum number of suggestions to print per misspelled word")
	flag.Parse()

	if *dictDir == "" {
		fmt.Fprintln(os.Stderr, "usage: voikkocheck -dict <dictionary-dir> [-analyze] < text.txt")
		os.Exit(2)
	}

	opts := voikko.DefaultOptions()
	opts.MaxSuggestions = *maxSuggestions
	h, err := voikko.New(*dictDir, opts)
	if err != nil {
		log.Fatalf("loading dictionary %s: %v", *dictDir, err)
	}
	defer h.Close()

	if name := h.DictionaryInfo()["info:name"]; name != "" {
		fmt.Fprintf(os.Stderr, "dictionary: %s\n", name)
	}

	misspelled := color.New(color.FgRed, color.Bold)
	errHeader := color.New(color.FgYellow, color.Bold)
	suggestionColor := color.New(color.FgCyan)
	okColor := color.New(color.FgGreen)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		printWords(h, line, okColor, misspelled, suggestionColor, *showAnalysis)

		for _, e := range h.GrammarErrors(line) {
			errHeader.Printf("  [%d] %s", e.Code, e.ShortDescription)
			fmt.Printf(" (pos %d, len %d)", e.StartPos, e.ErrorLen)
			if len(e.Suggestions) > 0 {
				suggestionColor.Printf(" -> %s", strings.Join(e.Suggestions, ", "))
			}
			fmt.Println()
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}

// printWords walks one line's Word tokens, highlighting misspellings and
// optionally printing each word's morphological analyses.
func printWords(h *voikko.Handle, line string, ok, misspelled, suggestionColor *color.Color, showAnalysis bool) {
	for _, tok := range h.Tokens(line) {
		if tok.Type != voikko.TokenWord {
			fmt.Print(tok.Text)
			continue
		}
		if h.Spell(tok.Text) {
			ok.Print(tok.Text)
			continue
		}
		misspelled.Print(tok.Text)
		if suggestions := h.Suggest(tok.Text); len(suggestions) > 0 {
			suggestionColor.Printf("[%s]", strings.Join(suggestions, ", "))
		}
		if showAnalysis {
			for _, a := range h.Analyze(tok.Text) {
				fmt.Printf("{%s}", a[voikko.KeyBaseform])
			}
		}
	}
	fmt.Println()
}
