package fontdata

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	stdStrconv "strconv"
	"unicode"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/text/unicode/runenames"
)

// literalCommentColumn is the column at which WriteLiteral starts the character name comments.
const literalCommentColumn = 36

// WriteLiteral writes the table as an object literal, one entry per line in ascending order:
//
//	{
//	  0x430: [460,10,450,37,446],     // CYRILLIC SMALL LETTER A
//	  ...
//	}
func WriteLiteral(w io.Writer, t *Table) error {
	b := bufio.NewWriter(w)
	b.WriteString("{\n")
	n := t.Len()
	i := 0
	t.Each(func(r rune, m Metrics) bool {
		i++
		entry := fmt.Sprintf("  0x%X: %v", r, m)
		if i < n {
			entry += ","
		}
		if name := runenames.Name(r); name != "" {
			fmt.Fprintf(b, "%-*s // %s\n", literalCommentColumn-1, entry, name)
		} else {
			b.WriteString(entry)
			b.WriteByte('\n')
		}
		return true
	})
	b.WriteString("}\n")
	return b.Flush()
}

// ParseLiteral parses a table written as an object literal mapping code points to five-integer arrays.
// Keys are hexadecimal (0x) or decimal, and comments, whitespace and a trailing comma are allowed.
func ParseLiteral(b []byte) (*Table, error) {
	p := literalParser{b: b}
	metrics := map[rune]Metrics{}

	p.skip()
	if !p.consume('{') {
		return nil, p.errorf("expected {")
	}
	for {
		p.skip()
		if p.consume('}') {
			break
		}

		start := p.pos
		r, err := p.parseKey()
		if err != nil {
			return nil, err
		}
		if _, ok := metrics[r]; ok {
			return nil, p.errorAt(start, "duplicate code point 0x%X", r)
		}

		p.skip()
		if !p.consume(':') {
			return nil, p.errorf("expected :")
		}
		p.skip()
		if !p.consume('[') {
			return nil, p.errorf("expected [")
		}
		var tuple [5]int16
		for k := 0; k < 5; k++ {
			if 0 < k {
				p.skip()
				if !p.consume(',') {
					return nil, p.errorf("expected five values for code point 0x%X", r)
				}
			}
			p.skip()
			if tuple[k], err = p.parseValue(); err != nil {
				return nil, err
			}
		}
		p.skip()
		if !p.consume(']') {
			return nil, p.errorf("expected ] after five values for code point 0x%X", r)
		}
		metrics[r] = MetricsFromTuple(tuple)

		p.skip()
		if p.consume(',') {
			continue
		} else if p.consume('}') {
			break
		}
		return nil, p.errorf("expected , or }")
	}
	p.skip()
	if p.pos < len(p.b) {
		return nil, p.errorf("unexpected data after table")
	}
	return NewTable(metrics)
}

type literalParser struct {
	b   []byte
	pos int
}

func (p *literalParser) errorAt(pos int, format string, a ...interface{}) error {
	return parse.NewError(bytes.NewReader(p.b), pos, format, a...)
}

func (p *literalParser) errorf(format string, a ...interface{}) error {
	return p.errorAt(p.pos, format, a...)
}

func (p *literalParser) consume(c byte) bool {
	if p.pos < len(p.b) && p.b[p.pos] == c {
		p.pos++
		return true
	}
	return false
}

// skip skips whitespace and comments.
func (p *literalParser) skip() {
	for p.pos < len(p.b) {
		switch c := p.b[p.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '/' && p.pos+1 < len(p.b) && p.b[p.pos+1] == '/':
			if i := bytes.IndexByte(p.b[p.pos:], '\n'); i != -1 {
				p.pos += i + 1
			} else {
				p.pos = len(p.b)
			}
		case c == '/' && p.pos+1 < len(p.b) && p.b[p.pos+1] == '*':
			if i := bytes.Index(p.b[p.pos+2:], []byte("*/")); i != -1 {
				p.pos += i + 4
			} else {
				p.pos = len(p.b)
			}
		default:
			return
		}
	}
}

func (p *literalParser) parseKey() (rune, error) {
	b := p.b[p.pos:]
	if 2 < len(b) && b[0] == '0' && (b[1] == 'x' || b[1] == 'X') {
		n := 2
		for n < len(b) && isHexDigit(b[n]) {
			n++
		}
		v, err := stdStrconv.ParseUint(string(b[2:n]), 16, 32)
		if err != nil {
			return 0, p.errorf("invalid code point: %v", err)
		} else if unicode.MaxRune < v {
			return 0, fmt.Errorf("%w: %v", ErrInvalidCodePoint, p.errorf("0x%X", v))
		}
		p.pos += n
		return rune(v), nil
	}

	v, n := strconv.ParseInt(b)
	if n == 0 {
		return 0, p.errorf("expected code point")
	} else if v < 0 || unicode.MaxRune < v {
		return 0, p.errorf("%v: %d", ErrInvalidCodePoint, v)
	}
	p.pos += n
	return rune(v), nil
}

func (p *literalParser) parseValue() (int16, error) {
	v, n := strconv.ParseInt(p.b[p.pos:])
	if n == 0 {
		return 0, p.errorf("expected integer")
	} else if v < math.MinInt16 || math.MaxInt16 < v {
		return 0, p.errorf("value out of range: %d", v)
	}
	p.pos += n
	return int16(v), nil
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
