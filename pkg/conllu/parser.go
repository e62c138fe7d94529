package conllu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Reader streams sentences out of CoNLL-U text. Token blocks are terminated
// by blank lines; comment lines of the form "# key = value" become sentence
// metadata, other comments are ignored. Lines that are neither comments nor
// ten-column token lines are skipped.
type Reader struct {
	scanner *bufio.Scanner
	err     error
	done    bool
}

// NewReader creates a streaming CoNLL-U reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Reader{scanner: sc}
}

// Next returns the next sentence in the input, or io.EOF when the input is
// exhausted. A sentence is returned as soon as its terminating blank line
// (or the end of input) is reached.
func (r *Reader) Next() (*Sentence, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.done {
		return nil, io.EOF
	}

	sent := &Sentence{Meta: make(map[string]string)}
	for r.scanner.Scan() {
		line := strings.TrimRight(r.scanner.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			if len(sent.Tokens) > 0 || len(sent.Meta) > 0 {
				return sent, nil
			}
			// leading blank lines: keep scanning
		case strings.HasPrefix(line, "#"):
			if key, val, ok := parseMetaLine(line); ok {
				if _, seen := sent.Meta[key]; !seen {
					sent.MetaKeys = append(sent.MetaKeys, key)
				}
				sent.Meta[key] = val
			}
		default:
			if tok, ok := parseTokenLine(line); ok {
				sent.Tokens = append(sent.Tokens, tok)
			}
		}
	}
	if err := r.scanner.Err(); err != nil {
		r.err = err
		return nil, err
	}
	r.done = true
	if len(sent.Tokens) > 0 || len(sent.Meta) > 0 {
		return sent, nil
	}
	return nil, io.EOF
}

// ParseAll reads every sentence from r in input order.
func ParseAll(r io.Reader) ([]Sentence, error) {
	cr := NewReader(r)
	var sentences []Sentence
	for {
		s, err := cr.Next()
		if err == io.EOF {
			return sentences, nil
		}
		if err != nil {
			return sentences, err
		}
		sentences = append(sentences, *s)
	}
}

// parseMetaLine reads "# key = value" comments. Comments without an equals
// sign carry no metadata and are dropped.
func parseMetaLine(line string) (key, val string, ok bool) {
	body := strings.TrimPrefix(line, "#")
	k, v, found := strings.Cut(body, "=")
	if !found {
		return "", "", false
	}
	k = strings.TrimSpace(k)
	if k == "" {
		return "", "", false
	}
	return k, strings.TrimSpace(v), true
}

// parseTokenLine reads a tab-separated token line. Lines with the wrong
// column count or a non-numeric leading ID are rejected; the caller skips
// them so a half-edited file still previews.
func parseTokenLine(line string) (Token, bool) {
	cols := strings.Split(line, "\t")
	if len(cols) != numColumns {
		return Token{}, false
	}
	id := cols[0]
	if id == "" || id[0] < '0' || id[0] > '9' {
		return Token{}, false
	}

	tok := Token{
		ID:     id,
		Kind:   idKind(id),
		Index:  leadingInt(id),
		Form:   StripEmphasis(cols[1]),
		Lemma:  StripEmphasis(cols[2]),
		Upos:   StripEmphasis(cols[3]),
		Xpos:   StripEmphasis(cols[4]),
		Feats:  cols[5],
		Head:   NoHead,
		Deprel: StripEmphasis(cols[7]),
		Deps:   cols[8],
		Misc:   cols[9],
	}
	if tok.Kind == IDWord {
		if head, err := strconv.Atoi(cols[6]); err == nil && head >= 0 {
			tok.Head = head
		}
	}
	return tok, true
}

func idKind(id string) IDKind {
	switch {
	case strings.Contains(id, "-"):
		return IDRange
	case strings.Contains(id, "."):
		return IDEmpty
	default:
		return IDWord
	}
}

// leadingInt parses the integer prefix of an ID ("4-5" → 4, "7.1" → 7).
func leadingInt(id string) int {
	end := 0
	for end < len(id) && id[end] >= '0' && id[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(id[:end])
	if err != nil {
		return 0
	}
	return n
}
