// Command openregex-repl compiles one pattern and then lets the user try
// it against lines typed interactively, printing the whole match and any
// capture groups. Grounded on client9-cardinal's cmd/cardinal REPL
// (NewREPL/RunInteractive/isInteractive), adapted from an s-expression
// evaluator loop to a single-pattern match loop.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/lmorg/readline/v4"
	"golang.org/x/term"

	"github.com/mishumausam/openregex"
	"github.com/mishumausam/openregex/words"
)

type repl struct {
	pattern *openregex.RegularExpression[string]
	rl      *readline.Instance
}

func newREPL(pattern *openregex.RegularExpression[string]) *repl {
	rl := readline.NewInstance()
	rl.SetPrompt("openregex> ")
	return &repl{pattern: pattern, rl: rl}
}

func (r *repl) isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func (r *repl) run() error {
	if r.isInteractive() {
		fmt.Printf("matching against: %s\n", r.pattern.String())
	}

	for {
		line, err := r.rl.Readline()
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		words := openregex.Split(line)
		match, ok := r.pattern.Find(words, 0)
		if !ok {
			fmt.Println("no match")
			continue
		}

		fmt.Printf("match: %v\n", words[match.Start:match.End])
		for i := 1; i <= r.pattern.GroupCount(); i++ {
			g := match.Group(i)
			if !g.Matched {
				continue
			}
			fmt.Printf("  group %d: %v\n", i, words[g.Start:g.End])
		}
	}
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: openregex-repl <pattern>\n")
		os.Exit(2)
	}

	started := time.Now()
	re, err := openregex.Compile(os.Args[1], words.Factory)
	if err != nil {
		log.Fatalf("openregex: compile pattern: %v", err)
	}
	log.Printf("start up in %g ms", time.Since(started).Seconds()*1000)

	r := newREPL(re)
	if err := r.run(); err != nil {
		if err.Error() != "EOF" {
			log.Fatalf("openregex: %v", err)
		}
	}
}
