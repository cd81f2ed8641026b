// Command abacus is an interactive calculator.
//
// Lines are evaluated as expressions. Lines beginning with a command word
// drive the rest of the calculator:
//
//	mode [standard|scientific|programmer]
//	mem+ mem- mr mc
//	hist clearhist
//	conv VALUE FROMBASE TOBASE
//	and|or|xor A B
//	not A
//	quit
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"abacus"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		mode   string
		prec   int
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin)")
	flag.StringVar(&mode, "mode", "standard", "initial keypad mode")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	in, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}

	s := abacus.NewSession(abacus.Prec(uint(prec)))
	m, err := parseMode(mode)
	if err != nil {
		log.Fatal(err)
	}
	s.SetMode(m)

	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if out, handled := command(s, line); handled {
			if out != "" {
				fmt.Println(out)
			}
			continue
		}
		fmt.Println(s.Evaluate(line))
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string) (io.Reader, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}

func parseMode(s string) (abacus.Mode, error) {
	switch s {
	case "standard":
		return abacus.ModeStandard, nil
	case "scientific":
		return abacus.ModeScientific, nil
	case "programmer":
		return abacus.ModeProgrammer, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// display replaces the session's display buffer with the given words, or with
// "ans" if there are none.
func display(s *abacus.Session, words []string) {
	s.Clear()
	if len(words) == 0 {
		s.Press("ans")
		return
	}
	s.Press(strings.Join(words, " "))
}

// command interprets a calculator command line. The second result is false if
// the line is not a command and should be evaluated as an expression instead.
func command(s *abacus.Session, line string) (string, bool) {
	f := strings.Fields(line)
	switch f[0] {
	case "mode":
		if len(f) == 1 {
			return s.Mode().String(), true
		}
		m, err := parseMode(f[1])
		if err != nil {
			return "error: " + err.Error(), true
		}
		s.SetMode(m)
		return "", true
	case "mem+":
		// With no argument, fold in the last result.
		display(s, f[1:])
		if err := s.MemoryAdd(); err != nil {
			return "error: " + err.Error(), true
		}
		return "", true
	case "mem-":
		display(s, f[1:])
		if err := s.MemorySubtract(); err != nil {
			return "error: " + err.Error(), true
		}
		return "", true
	case "mr":
		return s.MemoryRecall(), true
	case "mc":
		s.MemoryClear()
		return "", true
	case "hist":
		h := s.Recent()
		if len(h) == 0 {
			return "(empty)", true
		}
		var b strings.Builder
		for i, e := range h {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(e.Expression)
			b.WriteString(" = ")
			b.WriteString(e.Result)
		}
		return b.String(), true
	case "clearhist":
		s.ClearHistory()
		return "", true
	case "conv":
		if len(f) != 4 {
			return "usage: conv VALUE FROMBASE TOBASE", true
		}
		from, err1 := strconv.Atoi(f[2])
		to, err2 := strconv.Atoi(f[3])
		if err1 != nil || err2 != nil {
			return "usage: conv VALUE FROMBASE TOBASE", true
		}
		out, err := abacus.Convert(f[1], from, to)
		if err != nil {
			return "error: " + err.Error(), true
		}
		return out, true
	case "and", "or", "xor":
		if len(f) != 3 {
			return "usage: " + f[0] + " A B", true
		}
		a, err1 := strconv.ParseInt(f[1], 0, 64)
		b, err2 := strconv.ParseInt(f[2], 0, 64)
		if err1 != nil || err2 != nil {
			return "error: operands must be integers", true
		}
		switch f[0] {
		case "and":
			return strconv.FormatInt(abacus.BitwiseAnd(a, b), 10), true
		case "or":
			return strconv.FormatInt(abacus.BitwiseOr(a, b), 10), true
		default:
			return strconv.FormatInt(abacus.BitwiseXor(a, b), 10), true
		}
	case "not":
		if len(f) != 2 {
			return "usage: not A", true
		}
		a, err := strconv.ParseInt(f[1], 0, 64)
		if err != nil {
			return "error: operand must be an integer", true
		}
		return strconv.FormatInt(abacus.BitwiseNot(a), 10), true
	}
	return "", false
}
