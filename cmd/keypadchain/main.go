// Command keypadchain scores door codes for the robot keypad chain puzzle.
//
// It reads one code per line and prints the total complexity for two robot
// keypads (part one) and twenty-five (part two), or for a single depth when
// -layers is given.
//
// Usage:
//
//	keypadchain [-input input/day21.txt] [-layers n] [-workers n] [-v] [-expand] [-human]
//
// An -input of "-" reads standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/text/message"

	"github.com/katalvlaran/keypadchain/chain"
	"github.com/katalvlaran/keypadchain/evaluate"
	"github.com/katalvlaran/keypadchain/keypad"
)

// expandLimit caps -expand output per code.
const expandLimit = 1 << 16

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("keypadchain: %v", err)
	}
}

// run parses args, evaluates the codes, and writes results to stdout.
// Progress goes to stderr when -v is set.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("keypadchain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "input/day21.txt", "file with one code per line; \"-\" reads stdin")
	layers := fs.Int("layers", -1, "robot keypads between you and the door; -1 runs both parts (2 and 25)")
	workers := fs.Int("workers", 1, "codes evaluated concurrently")
	verbose := fs.Bool("v", false, "log every computed transition and code")
	expand := fs.Bool("expand", false, "also print one shortest press sequence per code")
	human := fs.Bool("human", false, "group digits of large totals")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *layers < -1 {
		return fmt.Errorf("%w: -layers %d", evaluate.ErrOptionViolation, *layers)
	}

	codes, err := readInput(*input, stdin)
	if err != nil {
		return err
	}

	depths := []int{2, 25}
	if *layers != -1 {
		depths = []int{*layers}
	}

	logger := log.New(stderr, "keypadchain: ", 0)
	p := message.NewPrinter(message.MatchLanguage("en"))
	for _, depth := range depths {
		opts := []evaluate.Option{evaluate.WithWorkers(*workers)}
		if *verbose {
			opts = append(opts,
				evaluate.WithOnCode(func(c evaluate.Code, n uint64) {
					logger.Printf("layers=%d code=%s presses=%d", depth, c, n)
				}),
				evaluate.WithChainOptions(chain.WithOnTransition(func(l int, from, to keypad.Symbol, cost uint64) {
					logger.Printf("layers=%d transition %c→%c costs %d", l, from, to, cost)
				})),
			)
		}
		e, err := evaluate.New(depth, opts...)
		if err != nil {
			return err
		}

		total, err := e.TotalComplexity(codes)
		if err != nil {
			return err
		}
		if *human {
			p.Fprintf(stdout, "%d\n", total)
		} else {
			fmt.Fprintf(stdout, "%d\n", total)
		}

		if *expand {
			for _, c := range codes {
				seq, err := e.ExpandCode(c, expandLimit)
				if errors.Is(err, chain.ErrExpansionTooLarge) {
					fmt.Fprintf(stdout, "%s: too long to print\n", c)
					continue
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(stdout, "%s: %s\n", c, keypad.FormatSymbols(seq))
			}
		}
	}
	return nil
}

// readInput loads codes from path, or from stdin when path is "-".
func readInput(path string, stdin io.Reader) ([]evaluate.Code, error) {
	if path == "-" {
		return evaluate.ReadCodes(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	codes, err := evaluate.ReadCodes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return codes, nil
}
