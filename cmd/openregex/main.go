// Command openregex matches a word-sequence pattern against stdin, one
// line at a time, generalizing the teacher's matchStdin path (which
// operated on raw bytes) to the word vocabulary in
// github.com/mishumausam/openregex/words.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/mishumausam/openregex"
	"github.com/mishumausam/openregex/words"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: openregex <pattern>\n")
		os.Exit(2)
	}

	re, err := openregex.Compile(os.Args[1], words.Factory)
	if err != nil {
		log.Fatalf("openregex: compile pattern: %v", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		wordList := openregex.Split(line)

		_, contains := re.Find(wordList, 0)
		matches := re.Matches(wordList)

		fmt.Printf("contains: %v\n", contains)
		fmt.Printf("matches: %v\n", matches)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: read stdin: %v\n", err)
		os.Exit(2)
	}
}
