package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"pokerhands/internal/rng"
	"pokerhands/pkg/deck"
	"pokerhands/pkg/poker"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

type options struct {
	file    string
	json    bool
	table   bool
	deal    int
	seed    int64
	noColor bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "f", "", "read hands from a file, one per line")
	flag.BoolVar(&opts.json, "json", false, "print the winners as JSON")
	flag.BoolVar(&opts.table, "table", false, "print every hand with its category")
	flag.IntVar(&opts.deal, "deal", 0, "deal this many random hands instead of reading them")
	flag.Int64Var(&opts.seed, "seed", 0, "shuffle the dealt deck with this seed so a deal can be replayed")
	flag.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flag.Parse()

	if opts.noColor {
		pterm.DisableColor()
	}

	if flag.NArg() == 0 && opts.file == "" && opts.deal == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		pterm.Info.Println("Enter one hand per line, then Ctrl-D")
	}

	os.Exit(run(opts, flag.Args(), os.Stdin, os.Stdout, logrus.StandardLogger()))
}

// run evaluates the hands and returns the process exit code
func run(opts options, args []string, stdin io.Reader, out io.Writer, log logrus.FieldLogger) int {
	hands, err := collectHands(opts, args, stdin, log)
	if err != nil {
		log.WithError(err).Error("could not read hands")
		return 1
	}

	showdown, err := poker.Evaluate(hands)
	if err != nil {
		logHandErrors(log, err)
		return 1
	}

	if err := printShowdown(opts, showdown, out); err != nil {
		log.WithError(err).Error("could not write output")
		return 1
	}

	return 0
}

func collectHands(opts options, args []string, stdin io.Reader, log logrus.FieldLogger) ([]string, error) {
	switch {
	case opts.deal > 0:
		return dealHands(opts.deal, opts.seed, log)
	case len(args) > 0:
		return args, nil
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return readHands(f)
	default:
		return readHands(stdin)
	}
}

// readHands reads one hand per line, skipping blank lines and # comments
func readHands(r io.Reader) ([]string, error) {
	hands := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		hands = append(hands, line)
	}

	return hands, scanner.Err()
}

// dealHands deals n hands from a shuffled deck.
// A positive seed gives a repeatable deal, otherwise crypto/rand is used.
func dealHands(n int, seed int64, log logrus.FieldLogger) ([]string, error) {
	if n*poker.HandSize > 52 {
		return nil, fmt.Errorf("cannot deal %d hands from one deck", n)
	}
	if seed < 0 {
		return nil, fmt.Errorf("seed cannot be negative: %d", seed)
	}

	d := deck.New()
	if seed > 0 {
		d.Shuffle(seed)
	} else {
		d.ShuffleWith(rng.Crypto{})
	}

	log.WithFields(logrus.Fields{
		"seed": d.GetSeed(),
		"deck": d.HashCode(),
	}).Debug("dealing hands")

	hands := make([]string, n)
	for i := range hands {
		h, err := d.Deal(poker.HandSize)
		if err != nil {
			return nil, err
		}

		hands[i] = h.String()
	}

	return hands, nil
}

func logHandErrors(log logrus.FieldLogger, err error) {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		log.WithError(err).Error("could not evaluate hands")
		return
	}

	for _, e := range merr.Errors {
		var handErr *poker.HandError
		if errors.As(e, &handErr) {
			log.WithFields(logrus.Fields{
				"index": handErr.Index,
				"hand":  handErr.Source,
				"kind":  poker.ErrorKind(handErr),
			}).WithError(handErr.Err).Error("could not parse hand")
		} else {
			log.WithError(e).Error("could not parse hand")
		}
	}
}

func printShowdown(opts options, s *poker.Showdown, out io.Writer) error {
	if opts.json {
		return json.NewEncoder(out).Encode(struct {
			Winners []string `json:"winners"`
		}{s.WinningSources()})
	}

	if opts.table {
		data := pterm.TableData{{"#", "Hand", "Cards", "Category", "Winner"}}
		for i, h := range s.Hands {
			winner := ""
			if s.IsWinner(i) {
				winner = "✔"
			}

			cards := h.Cards()
			pretty := make([]string, len(cards))
			for j, c := range cards {
				pretty[j] = c.Pretty()
			}

			data = append(data, []string{fmt.Sprint(i + 1), h.Source(), strings.Join(pretty, " "), h.Category().String(), winner})
		}

		return pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render()
	}

	printer := pterm.Success.WithWriter(out)
	for _, w := range s.Winners {
		h := s.Hands[w]
		printer.Printfln("%s (%s)", h.Source(), h.Category())
	}

	return nil
}
