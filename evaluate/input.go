package evaluate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadCodes reads one code per line from r. Blank lines are skipped and
// surrounding whitespace is trimmed. Errors carry the 1-based line number.
func ReadCodes(r io.Reader) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseCode(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("evaluate: reading codes: %w", err)
	}
	return codes, nil
}
