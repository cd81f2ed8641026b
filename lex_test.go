package abacus

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, 0},
		{"1e", []lexToken{{pos: 1}}, 1},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{"1.0e1", []lexToken{{text: "1.0e1", kind: tokenNum, pos: 1}}, 0},
		{".", []lexToken{{pos: 1}}, 1},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{".1e1", []lexToken{{text: ".1e1", kind: tokenNum, pos: 1}}, 0},
		{"1a", []lexToken{{pos: 1}}, 1},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}, 0},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}}, 0},
		{"sin", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}}, 0},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}, 0},
		{"e(", []lexToken{{text: "e", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}, 0},
		{"2^3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "^", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		{"2×3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "×", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		{"2÷3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "÷", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		// parentheses and separators
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"a,b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: ",", kind: tokenSep, pos: 2}, {text: "b", kind: tokenIdent, pos: 3}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 2}}, 1},
		{"0$", []lexToken{{pos: 1}}, 1},
		{"$0", []lexToken{{pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, 1},
		{"[1]", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {pos: 3}}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		errs := c.errs
		for _, want := range c.tokens {
			got, err := scan.next("")
			if err != nil {
				if errs > 0 {
					errs--
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				continue
			}
			if got.kind == tokenEOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		for {
			got, err := scan.next("")
			if err == io.EOF {
				break
			}
			if err != nil {
				if errs > 0 {
					errs--
					continue
				}
				t.Errorf("scanning %q: unexpected trailing error %v", c.src, err)
				continue
			}
			if got.kind == tokenEOF {
				continue
			}
			t.Errorf("scanning %q: extra token %v", c.src, got)
		}
		if errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexStopOnWhitespace(t *testing.T) {
	scan := lex(strings.NewReader("1\n2"))
	tok, err := scan.next("\n")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tok.kind != tokenNum || tok.text != "1" {
		t.Errorf("want number 1, got %v", tok)
	}
	tok, err = scan.next("\n")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tok.kind != tokenEOF {
		t.Errorf("newline should lex as EOF, got %v", tok)
	}
}

func TestLexPushback(t *testing.T) {
	scan := lex(strings.NewReader("1 2"))
	tok, err := scan.next("")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	scan.push(tok)
	again := scan.must()
	if again != tok {
		t.Errorf("pushed %v but got back %v", tok, again)
	}
}
