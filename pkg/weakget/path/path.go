package path

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ib-77/weakget/pkg/weakget"
	"github.com/ib-77/weakget/pkg/weakget/lookup"
)

// ErrSyntax is returned by Parse, wrapped with the failing byte offset.
var ErrSyntax = errors.New("invalid chain expression")

// Kind tells which chain operation a Step performs.
type Kind int

const (
	// AttrStep is .Name.
	AttrStep Kind = iota
	// ItemStep is [key] or [lo:hi].
	ItemStep
	// CallStep is ().
	CallStep
)

// Step is one parsed operation. Name is set for AttrStep, Key for ItemStep.
type Step struct {
	Kind Kind
	Name string
	Key  any
}

// Path is a parsed expression, applied left to right.
type Path []Step

// Apply runs every step against c in order.
func (p Path) Apply(c weakget.Chain) weakget.Chain {
	for _, s := range p {
		switch s.Kind {
		case AttrStep:
			c = c.Attr(s.Name)
		case ItemStep:
			c = c.Item(s.Key)
		case CallStep:
			c = c.Call()
		}
	}
	return c
}

func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		switch s.Kind {
		case AttrStep:
			b.WriteString("." + s.Name)
		case ItemStep:
			b.WriteString(lookup.FormatKey(s.Key))
		case CallStep:
			b.WriteString("()")
		}
	}
	return b.String()
}

// Eval parses expr, applies it to c and ends the chain with def.
func Eval(c weakget.Chain, expr string, def any) (any, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return p.Apply(c).Or(def)
}

// Parse reads an expression such as .users[0]["name"][1:3].Upper().
func Parse(expr string) (Path, error) {
	ps := &parser{src: expr}
	var out Path
	for !ps.done() {
		s, err := ps.step()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type parser struct {
	src string
	pos int
}

func (ps *parser) done() bool {
	return ps.pos >= len(ps.src)
}

func (ps *parser) peek() byte {
	if ps.done() {
		return 0
	}
	return ps.src[ps.pos]
}

func (ps *parser) fail(format string, args ...any) error {
	return errors.Wrapf(ErrSyntax, "offset %d: "+format, append([]any{ps.pos}, args...)...)
}

func (ps *parser) expect(c byte) error {
	if ps.peek() != c {
		return ps.fail("expected %q", c)
	}
	ps.pos++
	return nil
}

func (ps *parser) step() (Step, error) {
	switch ps.peek() {
	case '.':
		ps.pos++
		name := ps.ident()
		if name == "" {
			return Step{}, ps.fail("expected attribute name")
		}
		return Step{Kind: AttrStep, Name: name}, nil
	case '[':
		ps.pos++
		key, err := ps.key()
		if err != nil {
			return Step{}, err
		}
		if err := ps.expect(']'); err != nil {
			return Step{}, err
		}
		return Step{Kind: ItemStep, Key: key}, nil
	case '(':
		ps.pos++
		if err := ps.expect(')'); err != nil {
			return Step{}, err
		}
		return Step{Kind: CallStep}, nil
	}
	return Step{}, ps.fail("unexpected %q", ps.peek())
}

func (ps *parser) ident() string {
	start := ps.pos
	for !ps.done() {
		c := ps.peek()
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || ps.pos > start && c >= '0' && c <= '9' {
			ps.pos++
			continue
		}
		break
	}
	return ps.src[start:ps.pos]
}

// key parses the inside of brackets: a quoted string, an int or a range.
func (ps *parser) key() (any, error) {
	if ps.peek() == '"' {
		quoted, err := strconv.QuotedPrefix(ps.src[ps.pos:])
		if err != nil {
			return nil, ps.fail("bad string key")
		}
		ps.pos += len(quoted)
		s, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, ps.fail("bad string key")
		}
		return s, nil
	}

	start, hasStart, err := ps.integer()
	if err != nil {
		return nil, err
	}
	if ps.peek() != ':' {
		if !hasStart {
			return nil, ps.fail("expected key")
		}
		return start, nil
	}
	ps.pos++
	stop, hasStop, err := ps.integer()
	if err != nil {
		return nil, err
	}

	var rg lookup.Range
	if hasStart {
		rg.Start = &start
	}
	if hasStop {
		rg.Stop = &stop
	}
	return rg, nil
}

func (ps *parser) integer() (int, bool, error) {
	start := ps.pos
	if ps.peek() == '-' {
		ps.pos++
	}
	for c := ps.peek(); c >= '0' && c <= '9'; c = ps.peek() {
		ps.pos++
	}
	if ps.pos == start {
		return 0, false, nil
	}
	text := ps.src[start:ps.pos]
	n, err := strconv.Atoi(text)
	if err != nil {
		ps.pos = start
		return 0, false, ps.fail("bad integer %q", text)
	}
	return n, true, nil
}
