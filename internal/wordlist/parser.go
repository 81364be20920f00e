// Package wordlist parses uploaded word list files and imports them into
// the catalog.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/wordquiz/internal/word"
)

// Parse reads a plain text word list where each line is
//
//	term part-of-speech translation...
//
// split on any whitespace. The translation keeps everything after the
// second field, so multi-word translations survive. Blank lines and lines
// with fewer than three fields are skipped rather than failing the upload.
func Parse(r io.Reader) ([]word.Entry, error) {
	var entries []word.Entry

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		entries = append(entries, word.Entry{
			Word:         fields[0],
			PartOfSpeech: fields[1],
			Translation:  strings.Join(fields[2:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return entries, nil
}
