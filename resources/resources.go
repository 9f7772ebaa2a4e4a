// Package resources loads the lexical resources the tokeniser runs on:
// the root lexicon and the exception set. Word lists resolve from
// explicit file paths or fall back to the embedded Indonesian defaults.
package resources

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.txt
//go:embed data/exceptions.txt
var f embed.FS

// LoadWordSet reads a word list, one entry per line. Entries are
// trimmed of surrounding whitespace; blank lines and `#` comments are
// skipped. Lexicon entries are folded to lower case at load time,
// exception entries are kept as written.
func LoadWordSet(reader io.Reader, foldCase bool) mapset.Set {
	words := mapset.NewThreadUnsafeSet()
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if foldCase {
			word = strings.ToLower(word)
		}
		words.Add(word)
	}
	return words
}

// Open loads a word list from a file path.
func Open(path string, foldCase bool) (mapset.Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadWordSet(file, foldCase), nil
}

// DefaultLexicon returns the embedded Indonesian root lexicon.
func DefaultLexicon() mapset.Set {
	return embeddedSet("data/lexicon.txt", true)
}

// DefaultExceptions returns the embedded exception set of protected
// abbreviations.
func DefaultExceptions() mapset.Set {
	return embeddedSet("data/exceptions.txt", false)
}

func embeddedSet(path string, foldCase bool) mapset.Set {
	data, err := f.ReadFile(path)
	if err != nil {
		log.Fatalf("resources: missing embedded word list `%s`: %v", path, err)
	}
	return LoadWordSet(bytes.NewReader(data), foldCase)
}

// Config selects the word lists and the default rendering mode for the
// command line front ends.
type Config struct {
	Lexicon    string `yaml:"lexicon"`
	Exceptions string `yaml:"exceptions"`
	Render     string `yaml:"render"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("resources: parsing `%s`: %w", path, err)
	}
	return config, nil
}

// Resolve loads the word lists named by the config, falling back to
// the embedded defaults where no path is given. A missing lexicon file
// is an error; a missing exception file degrades to an empty set, as
// the tokeniser still recognises abbreviations structurally.
func Resolve(config *Config) (mapset.Set, mapset.Set, error) {
	var lexicon mapset.Set
	if config == nil || config.Lexicon == "" {
		lexicon = DefaultLexicon()
	} else {
		var err error
		if lexicon, err = Open(config.Lexicon, true); err != nil {
			return nil, nil, err
		}
	}

	var exceptions mapset.Set
	if config == nil || config.Exceptions == "" {
		exceptions = DefaultExceptions()
	} else {
		var err error
		if exceptions, err = Open(config.Exceptions, false); err != nil {
			log.Printf("resources: exception list `%s` unavailable, "+
				"continuing without: %v", config.Exceptions, err)
			exceptions = mapset.NewThreadUnsafeSet()
		}
	}
	return lexicon, exceptions, nil
}
