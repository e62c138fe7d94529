// Package conllu reads CoNLL-U treebank text into sentences of tokens.
//
// The parser is deliberately forgiving: live-preview consumers feed it
// half-edited files, so malformed lines are skipped rather than failing the
// whole input. Multiword ranges ("4-5") and empty nodes ("7.1") are parsed
// and carried along but never treated as head-bearing tokens.
package conllu

import "strings"

// Field identifies one of the ten CoNLL-U columns.
type Field string

// The standard CoNLL-U columns, in file order.
const (
	FieldID     Field = "ID"
	FieldForm   Field = "FORM"
	FieldLemma  Field = "LEMMA"
	FieldUpos   Field = "UPOS"
	FieldXpos   Field = "XPOS"
	FieldFeats  Field = "FEATS"
	FieldHead   Field = "HEAD"
	FieldDeprel Field = "DEPREL"
	FieldDeps   Field = "DEPS"
	FieldMisc   Field = "MISC"
)

// numColumns is the fixed column count of a CoNLL-U token line.
const numColumns = 10

// StandardFields is the set of all CoNLL-U columns.
var StandardFields = map[Field]bool{
	FieldID: true, FieldForm: true, FieldLemma: true, FieldUpos: true,
	FieldXpos: true, FieldFeats: true, FieldHead: true, FieldDeprel: true,
	FieldDeps: true, FieldMisc: true,
}

// SupportedFields is the subset of columns the renderer can display.
// FEATS, DEPS and MISC are parsed but never drawn.
var SupportedFields = map[Field]bool{
	FieldID: true, FieldForm: true, FieldLemma: true, FieldUpos: true,
	FieldXpos: true, FieldHead: true, FieldDeprel: true,
}

// DefaultFields is the default display selection.
var DefaultFields = []Field{FieldForm, FieldUpos, FieldHead, FieldDeprel}

// ParseField normalizes a user-supplied field name ("form", "Upos", ...).
// The second result reports whether the name is a standard CoNLL-U column.
func ParseField(name string) (Field, bool) {
	f := Field(strings.ToUpper(strings.TrimSpace(name)))
	return f, StandardFields[f]
}

// IDKind classifies the ID column of a token line.
type IDKind int

const (
	// IDWord is a regular 1-based integer token ID.
	IDWord IDKind = iota
	// IDRange is a multiword token span like "4-5".
	IDRange
	// IDEmpty is an elided/empty node like "7.1".
	IDEmpty
)

// Text is a field value with inline emphasis markers already stripped.
type Text struct {
	Value string
	Bold  bool
}

// Token is one line of a CoNLL-U token block.
type Token struct {
	ID    string // raw ID column
	Kind  IDKind
	Index int // leading integer of ID (1-based sentence position for words)

	Form   Text
	Lemma  Text
	Upos   Text
	Xpos   Text
	Head   int // 0 = root, NoHead = absent/unparseable
	Deprel Text

	// Carried but never drawn.
	Feats string
	Deps  string
	Misc  string
}

// NoHead marks a token whose HEAD column is absent or unparseable.
// Range and empty-node tokens always have NoHead.
const NoHead = -1

// IsWord reports whether the token is a regular head-bearing word.
func (t Token) IsWord() bool { return t.Kind == IDWord }

// Sentence is an ordered token block plus the metadata collected from the
// comment lines around it. MetaKeys preserves comment order.
type Sentence struct {
	Tokens   []Token
	Meta     map[string]string
	MetaKeys []string
}

// Words returns the regular word tokens in textual order, excluding
// multiword ranges and empty nodes.
func (s *Sentence) Words() []Token {
	words := make([]Token, 0, len(s.Tokens))
	for _, t := range s.Tokens {
		if t.IsWord() {
			words = append(words, t)
		}
	}
	return words
}

// Text reconstructs the surface sentence from the word forms.
func (s *Sentence) Text() string {
	if text, ok := s.Meta["text"]; ok {
		return text
	}
	var parts []string
	for _, t := range s.Tokens {
		if t.IsWord() {
			parts = append(parts, t.Form.Value)
		}
	}
	return strings.Join(parts, " ")
}

// ID returns the sent_id metadata value, if present.
func (s *Sentence) ID() string { return s.Meta["sent_id"] }
