package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
)

var cli struct {
	Expressions []string `arg:"" optional:"" help:"Bracketed expressions such as ((45*66)+(66*11))."`
	SelfTest    bool     `help:"Run the built-in example computations."`
	Lisp        bool     `help:"Print the prefix form instead of the value."`
	Dump        bool     `help:"Dump the expression tree before evaluating."`
	MaxDepth    int      `default:"1000" help:"Maximum bracket nesting depth. Negative disables the limit."`
	Random      int      `help:"Print N random expressions with their values."`
	Seed        int64    `help:"Seed for --random. Zero uses the current time."`
}

func eval(p *gocalc.Parser, w io.Writer, expr string) error {
	node, err := p.Tree(expr)
	if err != nil {
		return err
	}
	if cli.Dump {
		fmt.Fprintln(w, repr.String(node, repr.Indent("  ")))
	}
	if cli.Lisp {
		fmt.Fprintln(w, node)
		return nil
	}
	v, err := gocalc.Eval(node)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, v)
	return nil
}

func repl(p *gocalc.Parser) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := eval(p, os.Stdout, text); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func random(n int, seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := gocalc.Generator{
		Rand: rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < n; i++ {
		node := g.GenerateOp(4)
		v, err := gocalc.Eval(node)
		if err != nil {
			fmt.Printf("%s: %v\n", gocalc.Infix(node), err)
			continue
		}
		fmt.Printf("%s = %v\n", gocalc.Infix(node), v)
	}
}

func main() {
	kong.Parse(&cli, kong.Description(`
Evaluate fully bracketed integer expressions over + - * / %.
Every sub-expression is a number or (operand operator operand).
`))

	p := &gocalc.Parser{
		MaxDepth: cli.MaxDepth,
	}

	if cli.SelfTest {
		if err := gocalc.SelfTest(p, io.Discard); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All tests passed!")
		return
	}

	if cli.Random > 0 {
		random(cli.Random, cli.Seed)
		return
	}

	if len(cli.Expressions) > 0 {
		for _, expr := range cli.Expressions {
			if err := eval(p, os.Stdout, expr); err != nil {
				log.Fatal(err)
			}
		}
		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		repl(p)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := eval(p, os.Stdout, text); err != nil {
			log.Fatal(err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal(err)
	}
}
