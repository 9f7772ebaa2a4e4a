package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tokeniser "github.com/prihantoro-corpus/tokeniser-tagger"
	"github.com/prihantoro-corpus/tokeniser-tagger/resources"
)

// A REPL for interacting with the Indonesian clitic-aware tokeniser.

func main() {
	configOpt := flag.String("config",
		"",
		"Optional YAML config naming lexicon/exception word lists.")
	renderOpt := flag.String("render",
		"line",
		"Output rendering: `line` (space-joined) or `column` (one "+
			"token per line).")

	flag.Parse()

	var config *resources.Config
	if *configOpt != "" {
		var err error
		if config, err = resources.LoadConfig(*configOpt); err != nil {
			log.Fatal(err)
		}
		if config.Render != "" {
			*renderOpt = config.Render
		}
	}

	lexicon, exceptions, err := resources.Resolve(config)
	if err != nil {
		log.Fatal(err)
	}
	tk, err := tokeniser.NewTokeniser(lexicon, exceptions)
	if err != nil {
		log.Fatal(err)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(">>> ")
		input, err := reader.ReadString('\n')
		if err == io.EOF {
			return
		} else if err != nil {
			log.Fatal(err)
		}
		// Remove trailing newline and replace \n with newline.
		input = strings.Replace(strings.TrimSuffix(input, "\n"),
			"\\n", "\n", -1)

		tokens := tk.Tokenise(&input)
		if *renderOpt == "column" {
			fmt.Println(tokens.Lines())
		} else {
			fmt.Println(tokens.Join())
		}
	}
}
