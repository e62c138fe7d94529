package conllu

import (
	"io"
	"strings"
	"testing"
)

const sampleSentence = `# sent_id = test-1
# text = the cat sat .
1	the	the	DET	DT	Definite=Def	2	det	_	_
2	cat	cat	NOUN	NN	Number=Sing	3	nsubj	_	_
3	sat	sit	VERB	VBD	Tense=Past	0	root	_	_
4	.	.	PUNCT	.	_	3	punct	_	_
`

func TestParseAllSingleSentence(t *testing.T) {
	sentences, err := ParseAll(strings.NewReader(sampleSentence))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("ParseAll() returned %d sentences, want 1", len(sentences))
	}

	s := sentences[0]
	if len(s.Tokens) != 4 {
		t.Fatalf("got %d tokens, want 4", len(s.Tokens))
	}
	if s.ID() != "test-1" {
		t.Errorf("ID() = %q, want %q", s.ID(), "test-1")
	}
	if s.Text() != "the cat sat ." {
		t.Errorf("Text() = %q, want %q", s.Text(), "the cat sat .")
	}

	sat := s.Tokens[2]
	if sat.Form.Value != "sat" || sat.Lemma.Value != "sit" || sat.Upos.Value != "VERB" {
		t.Errorf("token 3 parsed as %+v", sat)
	}
	if sat.Head != 0 {
		t.Errorf("token 3 Head = %d, want 0 (root)", sat.Head)
	}
	if s.Tokens[1].Head != 3 || s.Tokens[1].Deprel.Value != "nsubj" {
		t.Errorf("token 2 head/deprel = %d/%q, want 3/nsubj", s.Tokens[1].Head, s.Tokens[1].Deprel.Value)
	}
}

func TestParseAllMultipleSentences(t *testing.T) {
	input := sampleSentence + "\n" + sampleSentence + "\n\n" + sampleSentence
	sentences, err := ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(sentences) != 3 {
		t.Fatalf("ParseAll() returned %d sentences, want 3", len(sentences))
	}
	for i, s := range sentences {
		if len(s.Tokens) != 4 {
			t.Errorf("sentence %d has %d tokens, want 4", i, len(s.Tokens))
		}
	}
}

func TestParseMalformedLinesSkipped(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"too few columns", "1\tthe\tthe\tDET"},
		{"too many columns", "1\ta\tb\tc\td\te\tf\tg\th\ti\tj"},
		{"non-numeric id", "one\tthe\tthe\tDET\tDT\t_\t2\tdet\t_\t_"},
		{"prose line", "this is not conllu at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.line + "\n" + "1\tok\tok\tNOUN\tNN\t_\t0\troot\t_\t_\n"
			sentences, err := ParseAll(strings.NewReader(input))
			if err != nil {
				t.Fatalf("ParseAll() error = %v", err)
			}
			if len(sentences) != 1 {
				t.Fatalf("got %d sentences, want 1", len(sentences))
			}
			if got := len(sentences[0].Tokens); got != 1 {
				t.Errorf("got %d tokens, want 1 (bad line skipped)", got)
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	input := `# sent_id = m-1
# text = hi
# newpar
# source = UD test
1	hi	hi	INTJ	UH	_	0	root	_	_
`
	sentences, err := ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	s := sentences[0]

	// "# newpar" has no "=", so it carries no metadata.
	if _, ok := s.Meta["newpar"]; ok {
		t.Error("comment without = should not produce metadata")
	}
	wantKeys := []string{"sent_id", "text", "source"}
	if len(s.MetaKeys) != len(wantKeys) {
		t.Fatalf("MetaKeys = %v, want %v", s.MetaKeys, wantKeys)
	}
	for i, k := range wantKeys {
		if s.MetaKeys[i] != k {
			t.Errorf("MetaKeys[%d] = %q, want %q", i, s.MetaKeys[i], k)
		}
	}
	if s.Meta["source"] != "UD test" {
		t.Errorf("Meta[source] = %q, want %q", s.Meta["source"], "UD test")
	}
}

func TestParseSpecialIDs(t *testing.T) {
	input := `1	I	I	PRON	PRP	_	3	nsubj	_	_
2-3	don't	_	_	_	_	_	_	_	_
2	do	do	AUX	VBP	_	3	aux	_	_
3	not	not	PART	RB	_	3	advmod	_	_
3.1	stop	stop	VERB	VB	_	_	_	_	_
`
	sentences, err := ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	s := sentences[0]
	if len(s.Tokens) != 5 {
		t.Fatalf("got %d tokens, want 5", len(s.Tokens))
	}

	rng := s.Tokens[1]
	if rng.Kind != IDRange || rng.Index != 2 || rng.Head != NoHead {
		t.Errorf("range token = kind %v index %d head %d, want IDRange/2/NoHead", rng.Kind, rng.Index, rng.Head)
	}
	empty := s.Tokens[4]
	if empty.Kind != IDEmpty || empty.Index != 3 || empty.Head != NoHead {
		t.Errorf("empty node = kind %v index %d head %d, want IDEmpty/3/NoHead", empty.Kind, empty.Index, empty.Head)
	}

	words := s.Words()
	if len(words) != 3 {
		t.Fatalf("Words() returned %d tokens, want 3", len(words))
	}
	for _, w := range words {
		if !w.IsWord() {
			t.Errorf("Words() returned non-word token %q", w.ID)
		}
	}
}

func TestReaderStreaming(t *testing.T) {
	r := NewReader(strings.NewReader(sampleSentence + "\n" + sampleSentence))

	first, err := r.Next()
	if err != nil {
		t.Fatalf("first Next() error = %v", err)
	}
	if first.ID() != "test-1" {
		t.Errorf("first sentence ID = %q", first.ID())
	}

	if _, err := r.Next(); err != nil {
		t.Fatalf("second Next() error = %v", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() after exhaustion = %v, want io.EOF", err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Errorf("repeated Next() after EOF = %v, want io.EOF", err)
	}
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"only blank lines", "\n\n\n"},
		{"only whitespace", "   \n\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentences, err := ParseAll(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseAll() error = %v", err)
			}
			if len(sentences) != 0 {
				t.Errorf("got %d sentences, want 0", len(sentences))
			}
		})
	}
}

func TestParseCRLFInput(t *testing.T) {
	input := strings.ReplaceAll(sampleSentence, "\n", "\r\n")
	sentences, err := ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseAll() error = %v", err)
	}
	if len(sentences) != 1 || len(sentences[0].Tokens) != 4 {
		t.Fatalf("CRLF input parsed as %d sentences", len(sentences))
	}
	if got := sentences[0].Tokens[3].Misc; got != "_" {
		t.Errorf("last column = %q, want %q (no trailing \\r)", got, "_")
	}
}

func TestParseField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Field
		ok    bool
	}{
		{"lowercase", "form", FieldForm, true},
		{"mixed case", "Upos", FieldUpos, true},
		{"padded", " head ", FieldHead, true},
		{"unsupported but standard", "feats", FieldFeats, true},
		{"unknown", "color", Field("COLOR"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseField(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseField(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
