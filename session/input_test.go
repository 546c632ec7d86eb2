package session

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineReader(t *testing.T) {
	r := NewLineReader(strings.NewReader(" 42 \r\nJohn Smith\nACC-1 trailing\n12,50\nx\nlast"))

	if n, err := r.ReadInt(); err != nil || n != 42 {
		t.Fatalf("ReadInt=%d,%v", n, err)
	}
	if s, err := r.ReadLine(); err != nil || s != "John Smith" {
		t.Fatalf("ReadLine=%q,%v", s, err)
	}
	if s, err := r.ReadToken(); err != nil || s != "ACC-1" {
		t.Fatalf("ReadToken=%q,%v", s, err)
	}
	if v, err := r.ReadDecimal(); err != nil || v.String() != "12.5" {
		t.Fatalf("ReadDecimal=%s,%v", v, err)
	}
	if _, err := r.ReadInt(); !errors.Is(err, ErrMalformed) {
		t.Fatalf("want ErrMalformed, got %v", err)
	}
	if s, err := r.ReadLine(); err != nil || s != "last" {
		t.Fatalf("unterminated last line=%q,%v", s, err)
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}
