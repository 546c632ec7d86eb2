package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformed is returned when a line cannot be parsed as the requested type
var ErrMalformed = errors.New("malformed input")

// Input is a source of typed values, one line per value.
// All methods return io.EOF once the source is exhausted.
type Input interface {
	ReadLine() (string, error)
	ReadToken() (string, error)
	ReadInt() (int, error)
	ReadDecimal() (decimal.Decimal, error)
}

// LineReader reads values from a line-oriented stream such as stdin
type LineReader struct {
	in *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{in: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator.
func (l *LineReader) ReadLine() (string, error) {
	s, err := l.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// ReadToken returns the first whitespace-separated field of the next line.
func (l *LineReader) ReadToken() (string, error) {
	s, err := l.ReadLine()
	if err != nil {
		return "", err
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

func (l *LineReader) ReadInt() (int, error) {
	s, err := l.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrMalformed, strings.TrimSpace(s))
	}
	return n, nil
}

func (l *LineReader) ReadDecimal() (decimal.Decimal, error) {
	s, err := l.ReadLine()
	if err != nil {
		return decimal.Zero, err
	}
	raw := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrMalformed, raw)
	}
	return v, nil
}
