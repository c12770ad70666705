package model

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrParse is returned when a text grid contains an unknown cell token
var ErrParse = errors.New("unparseable board text")

const commentPrefix = "!"

// ParseBoard reads a board back from its String form.
//
// Rows may also be written compactly ("..O.") as in plaintext pattern
// files. Blank lines and lines starting with "!" are skipped.
func ParseBoard(text string) (*Board, error) {
	var (
		seed    [][]rules.Cell
		scanner = bufio.NewScanner(strings.NewReader(text))
		lineNo  = 0
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) == 1 {
			tokens = strings.Split(tokens[0], "")
		}

		row := make([]rules.Cell, 0, len(tokens))
		for _, tok := range tokens {
			cell, ok := parseCell(tok)
			if !ok {
				return nil, errors.Wrapf(ErrParse, "[ParseBoard] line %d: unknown cell %q", lineNo, tok)
			}
			row = append(row, cell)
		}
		seed = append(seed, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParseBoard] failed to scan text")
	}

	return NewBoard(seed)
}

func parseCell(tok string) (rules.Cell, bool) {
	switch tok {
	case "0", ".":
		return rules.Dead, true
	case "1", "O", "#", "*":
		return rules.Alive, true
	}
	return rules.Dead, false
}
