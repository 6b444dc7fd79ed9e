package gocalc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -src=lib

// SelfTestError describes the first failing case of a self-test table.
type SelfTestError struct {
	File string
	Line int
	Expr string
	Want string
	Got  string
	Err  error
}

func (e *SelfTestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %s: %v", e.File, e.Line, e.Expr, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s: want %s but got %s", e.File, e.Line, e.Expr, e.Want, e.Got)
}

func (e *SelfTestError) Unwrap() error {
	return e.Err
}

// SelfTest evaluates every embedded table of "expression want" lines with p
// and writes a line per passing case to w.
func SelfTest(p *Parser, w io.Writer) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	for _, fi := range fis {
		f, err := statikFS.Open(path.Join("/", fi.Name()))
		if err != nil {
			return err
		}
		err = RunTable(p, fi.Name(), f, w)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// RunTable runs the cases read from r. Blank lines and lines starting with
// '#' are skipped; otherwise the last field is the expected value.
func RunTable(p *Parser, name string, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		i := strings.LastIndexAny(text, " \t")
		if i < 0 {
			return &SelfTestError{File: name, Line: line, Expr: text, Err: errors.New("missing expected value")}
		}
		expr, want := strings.TrimSpace(text[:i]), text[i+1:]
		got, err := p.Parse(expr)
		if err != nil {
			return &SelfTestError{File: name, Line: line, Expr: expr, Want: want, Err: err}
		}
		if got.String() != want {
			return &SelfTestError{File: name, Line: line, Expr: expr, Want: want, Got: got.String()}
		}
		fmt.Fprintf(w, "ok %s = %s\n", expr, got)
	}
	return scanner.Err()
}
