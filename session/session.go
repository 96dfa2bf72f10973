// Package session implements the interactive dialog that fills a portfolio.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tracker"
	"github.com/rs/zerolog"
)

// Done is the symbol that ends the collection of stocks, in any case.
const Done = "done"

// Session reads the user's answers from a reader and writes prompts and
// feedback to a writer.
type Session struct {
	w         io.Writer
	r         *bufio.Reader
	portfolio *tracker.Portfolio
	log       zerolog.Logger

	// reads are done by a single goroutine, one line per request, so that a
	// prompt can be abandoned when the context is done.
	requests chan struct{}
	lines    chan line
	pending  bool // a line was requested and not received yet
}

// line is the result of one read.
type line struct {
	text string
	err  error
}

// New creates a Session that adds stocks to 'p'.
//
// It takes an io.Writer for the prompts (e.g., os.Stdout), and an io.Reader
// for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, p *tracker.Portfolio, log zerolog.Logger) *Session {
	return &Session{
		w:         w,
		r:         bufio.NewReader(r),
		portfolio: p,
		log:       log,
	}
}

// Portfolio returns the portfolio filled by the session.
func (s *Session) Portfolio() *tracker.Portfolio { return s.portfolio }

// errEOF reports that the input is exhausted.
var errEOF = errors.New("end of input")

// readLoop reads one line from the input for each request.
func (s *Session) readLoop() {
	for range s.requests {
		text, err := s.r.ReadString('\n')
		s.lines <- line{text: text, err: err}
	}
}

// readLine prints 'prompt' and returns the next line, without surrounding spaces.
//
// It returns ctx.Err() as soon as ctx is done, even if the input is blocked.
// The abandoned line is then returned by the next call.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.requests == nil {
		s.requests = make(chan struct{})
		s.lines = make(chan line)
		go s.readLoop()
	}

	fmt.Fprint(s.w, prompt)
	if !s.pending {
		s.requests <- struct{}{}
		s.pending = true
	}
	var l line
	select {
	case <-ctx.Done():
		fmt.Fprintln(s.w)
		return "", ctx.Err()
	case l = <-s.lines:
		s.pending = false
	}

	if l.err != nil {
		if l.err == io.EOF {
			if l.text == "" {
				fmt.Fprintln(s.w)
				return "", errEOF
			}
			// last line without a newline
			return strings.TrimSpace(l.text), nil
		}
		return "", l.err
	}
	return strings.TrimSpace(l.text), nil
}

// Collect asks for stock symbols and quantities until the user types 'done'
// or the input ends.
//
// Invalid answers are reported to the user who is asked again, they are never
// returned as errors. Only read errors and context cancellation are.
func (s *Session) Collect(ctx context.Context) error {
	fmt.Fprintln(s.w, "📈 Welcome to the Stock Portfolio Tracker!")
	fmt.Fprintf(s.w, "Known symbols: %s\n", joinSymbols(s.portfolio.Prices().Symbols()))
	fmt.Fprintf(s.w, "Enter stock symbol and quantity. Type '%s' to finish.\n\n", Done)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := s.readLine(ctx, fmt.Sprintf("Enter stock symbol (or '%s'): ", Done))
		if err == errEOF {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.EqualFold(input, Done) {
			return nil
		}
		symbol, err := tracker.ParseSymbol(input)
		if err != nil {
			continue // blank line
		}

		input, err = s.readLine(ctx, fmt.Sprintf("Enter quantity of %s: ", symbol))
		if err == errEOF {
			return nil
		}
		if err != nil {
			return err
		}
		quantity, err := tracker.ParseQuantity(input)
		if err != nil {
			fmt.Fprintf(s.w, "⚠️ %v\n\n", err)
			continue
		}

		err = s.portfolio.AddStock(symbol.String(), quantity)
		switch {
		case errors.Is(err, tracker.ErrInvalidQuantity):
			fmt.Fprintf(s.w, "❌ Quantity must be positive.\n\n")
		case err != nil:
			fmt.Fprintf(s.w, "⚠️ %v\n\n", err)
		default:
			fmt.Fprintf(s.w, "✅ Added %s shares of %s.\n\n", quantity, symbol)
			h, _ := s.portfolio.Holding(symbol)
			s.log.Debug().
				Str("symbol", symbol.String()).
				Stringer("quantity", h.Quantity).
				Stringer("value", h.Value).
				Stringer("total", s.portfolio.TotalValue()).
				Msg("stock added")
		}
	}
}

// Confirm asks a yes/no 'question'. Only "yes" or "y", in any case, is a yes.
// The end of input is a no.
func (s *Session) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := s.readLine(ctx, question+" (yes/no): ")
	if err == errEOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "yes", "y":
		return true, nil
	}
	return false, nil
}

func joinSymbols(symbols []tracker.Symbol) string {
	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
