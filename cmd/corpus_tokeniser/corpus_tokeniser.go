package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	mmap "github.com/edsrzf/mmap-go"
	"github.com/yargevad/filepathx"

	tokeniser "github.com/prihantoro-corpus/tokeniser-tagger"
	"github.com/prihantoro-corpus/tokeniser-tagger/resources"
)

// Batch tokenizer: walks a directory of `.txt` corpus files and writes
// one `.tok` file per input, one token per line, ready for a
// downstream part-of-speech tagger.

// GlobTexts
// Given a directory path, recursively finds all `.txt` files.
func GlobTexts(dirPath string) ([]string, error) {
	textPaths, err := filepathx.Glob(dirPath + "/**/*.txt")
	if err != nil {
		return nil, err
	}
	if len(textPaths) == 0 {
		return nil, errors.New(fmt.Sprintf(
			"%s does not contain any .txt files", dirPath))
	}
	return textPaths, nil
}

// tokeniseFile maps a corpus file read-only and streams it through the
// tokeniser, writing the column rendering next to outDir. Returns the
// token and byte counts for progress reporting.
func tokeniseFile(tk *tokeniser.Tokeniser, path string,
	outDir string) (int, uint64, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}

	var tokens tokeniser.Tokens
	if stat.Size() > 0 {
		file, openErr := os.Open(path)
		if openErr != nil {
			return 0, 0, openErr
		}
		mapped, mapErr := mmap.Map(file, mmap.RDONLY, 0)
		if mapErr != nil {
			file.Close()
			return 0, 0, mapErr
		}
		tokens = tk.TokeniseReader(bytes.NewReader(mapped))
		mapped.Unmap()
		file.Close()
	}

	outPath := filepath.Join(outDir, filepath.Base(path)+".tok")
	out, err := os.Create(outPath)
	if err != nil {
		return 0, 0, err
	}
	writer := bufio.NewWriter(out)
	if _, err = writer.WriteString(tokens.Lines()); err != nil {
		out.Close()
		return 0, 0, err
	}
	if len(tokens) > 0 {
		writer.WriteByte('\n')
	}
	if err = writer.Flush(); err != nil {
		out.Close()
		return 0, 0, err
	}
	return len(tokens), uint64(stat.Size()), out.Close()
}

func main() {
	inputOpt := flag.String("input",
		"",
		"Directory containing `.txt` corpus files to tokenise.")
	outputOpt := flag.String("output",
		"",
		"Directory to write `.tok` files to (defaults to the input "+
			"directory).")
	configOpt := flag.String("config",
		"",
		"Optional YAML config naming lexicon/exception word lists.")

	flag.Parse()
	if *inputOpt == "" {
		flag.Usage()
		log.Fatal("corpus_tokeniser: -input directory is required")
	}
	if *outputOpt == "" {
		*outputOpt = *inputOpt
	}

	var config *resources.Config
	if *configOpt != "" {
		var err error
		if config, err = resources.LoadConfig(*configOpt); err != nil {
			log.Fatal(err)
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

	paths, err := GlobTexts(*inputOpt)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	totalTokens := int64(0)
	totalBytes := uint64(0)
	for _, path := range paths {
		numTokens, numBytes, err := tokeniseFile(tk, path, *outputOpt)
		if err != nil {
			log.Fatal(err)
		}
		totalTokens += int64(numTokens)
		totalBytes += numBytes
	}
	duration := time.Since(start).Seconds()
	log.Printf("%s tokens from %s across %d files in %0.2fs",
		humanize.Comma(totalTokens), humanize.Bytes(totalBytes),
		len(paths), duration)
}
