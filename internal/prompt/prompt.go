package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/maheswardileep829-blip/stock-analyzer/internal/logger"
)

// MaxSymbols bounds one run's batch size.
const MaxSymbols = 10

// ErrNoSymbols indicates the user supplied no tickers. The run aborts before
// any network call.
var ErrNoSymbols = errors.New("no tickers entered")

// ReadSymbols prompts on w and reads one line of tickers from r.
func ReadSymbols(r io.Reader, w io.Writer) ([]string, error) {
	fmt.Fprint(w, "Enter stock tickers (separated by spaces): ")
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return nil, ErrNoSymbols
	}
	return ParseSymbols(scanner.Text())
}

// ParseSymbols normalizes a raw ticker line: uppercase, whitespace-split,
// deduplicated preserving first occurrence. Symbols beyond MaxSymbols are
// ignored with a warning.
func ParseSymbols(raw string) ([]string, error) {
	fields := strings.Fields(strings.ToUpper(raw))
	if len(fields) == 0 {
		return nil, ErrNoSymbols
	}

	seen := make(map[string]struct{}, len(fields))
	symbols := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		symbols = append(symbols, f)
	}

	if len(symbols) > MaxSymbols {
		logger.L().Warn().
			Int("entered", len(symbols)).
			Int("dropped", len(symbols)-MaxSymbols).
			Msgf("more than %d tickers entered, extras ignored", MaxSymbols)
		symbols = symbols[:MaxSymbols]
	}
	return symbols, nil
}
