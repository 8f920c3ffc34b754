package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AaronKutch/awint/bits"
	"github.com/AaronKutch/awint/config"
)

// Session is the state behind the inspector REPL: the working width and
// signedness, display preferences, named values, and command history.
type Session struct {
	Width   int
	Signed  bool
	Radix   int
	Group   int
	Upper   bool
	Vars    map[string]*bits.Ext
	History *CommandHistory
}

// NewSession creates a session from the loaded configuration
func NewSession(cfg *config.Config) *Session {
	return &Session{
		Width:   cfg.Repl.DefaultWidth,
		Signed:  cfg.Repl.DefaultSigned,
		Radix:   cfg.Display.Radix,
		Group:   cfg.Display.GroupDigits,
		Upper:   cfg.Display.Uppercase,
		Vars:    make(map[string]*bits.Ext),
		History: NewCommandHistory(cfg.Repl.HistorySize),
	}
}

// literal parses a numeric literal at the session width. The radix
// comes from the literal's own prefix, defaulting to decimal.
func (s *Session) literal(lit string) (*bits.Ext, error) {
	e, err := bits.NewExt(s.Width)
	if err != nil {
		return nil, err
	}
	if err := e.Bits().ParseRadix(lit, 0, s.Signed); err != nil {
		return nil, err
	}
	return e, nil
}

// clone copies a stored value so expression evaluation never mutates a
// variable in place
func (s *Session) clone(v *bits.Ext) (*bits.Ext, error) {
	return bits.ExtFromBits(v.Bits())
}

// FormatValue renders a value with the session display preferences
func (s *Session) FormatValue(b *bits.Bits) string {
	out, err := b.Format(s.Radix, s.Signed, s.Upper)
	if err != nil {
		return "?"
	}
	if s.Group > 0 {
		out = groupDigits(out, s.Group)
	}
	return out
}

// groupDigits inserts underscore separators every n digits, counting
// from the low end and leaving a leading sign alone
func groupDigits(in string, n int) string {
	sign := ""
	if strings.HasPrefix(in, "-") {
		sign, in = "-", in[1:]
	}
	if len(in) <= n {
		return sign + in
	}
	var sb strings.Builder
	lead := len(in) % n
	if lead == 0 {
		lead = n
	}
	sb.WriteString(in[:lead])
	for i := lead; i < len(in); i += n {
		sb.WriteByte('_')
		sb.WriteString(in[i : i+n])
	}
	return sign + sb.String()
}

// Eval executes one line of input: a session command, an assignment, or
// an expression. It returns the text to display.
func (s *Session) Eval(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", nil
	}
	s.History.Add(input)

	fields := strings.Fields(input)
	switch fields[0] {
	case "help":
		return helpText, nil
	case "vars":
		return s.listVars(), nil
	case "set":
		return s.evalSet(fields[1:])
	}

	// assignment: name = expression
	if i := strings.Index(input, "="); i > 0 && isIdent(strings.TrimSpace(input[:i])) {
		name := strings.TrimSpace(input[:i])
		v, err := s.evalExpr(input[i+1:])
		if err != nil {
			return "", err
		}
		s.Vars[name] = v
		return fmt.Sprintf("%s = %s", name, s.FormatValue(v.Bits())), nil
	}

	v, err := s.evalExpr(input)
	if err != nil {
		return "", err
	}
	return s.Describe(v.Bits()), nil
}

// evalExpr lexes, parses and evaluates one expression
func (s *Session) evalExpr(expr string) (*bits.Ext, error) {
	tokens, err := NewExprLexer(expr).TokenizeAll()
	if err != nil {
		return nil, err
	}
	return NewExprParser(tokens, s).Parse()
}

// evalSet handles the session mutation commands
func (s *Session) evalSet(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: set width|radix|signed <value>")
	}
	switch args[0] {
	case "width":
		w, err := strconv.Atoi(args[1])
		if err != nil || w < 1 {
			return "", fmt.Errorf("invalid width %q", args[1])
		}
		s.Width = w
		// stored values carry the old width; drop them instead of
		// guessing an extension rule
		s.Vars = make(map[string]*bits.Ext)
		return fmt.Sprintf("width = %d (variables cleared)", w), nil
	case "radix":
		r, err := strconv.Atoi(args[1])
		if err != nil || r < 2 || r > 36 {
			return "", fmt.Errorf("invalid radix %q", args[1])
		}
		s.Radix = r
		return fmt.Sprintf("radix = %d", r), nil
	case "signed":
		switch args[1] {
		case "on", "true":
			s.Signed = true
		case "off", "false":
			s.Signed = false
		default:
			return "", fmt.Errorf("invalid signed flag %q", args[1])
		}
		return fmt.Sprintf("signed = %v", s.Signed), nil
	}
	return "", fmt.Errorf("unknown setting %q", args[0])
}

// Describe renders a result in the session radix plus the standard
// radices, the way the value panel shows it
func (s *Session) Describe(b *bits.Bits) string {
	hex, _ := b.Format(16, s.Signed, s.Upper)
	dec, _ := b.Format(10, s.Signed, false)
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  (hex %s, dec %s", s.FormatValue(b), hex, dec)
	if b.Bw() <= 128 {
		bin, _ := b.Format(2, s.Signed, false)
		fmt.Fprintf(&sb, ", bin %s", bin)
	}
	fmt.Fprintf(&sb, ", width %d)", b.Bw())
	return sb.String()
}

// listVars renders the variable table
func (s *Session) listVars() string {
	if len(s.Vars) == 0 {
		return "no variables defined"
	}
	var sb strings.Builder
	for name, v := range s.Vars {
		fmt.Fprintf(&sb, "%s = %s\n", name, s.FormatValue(v.Bits()))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// isIdent reports whether s is a plain variable name
func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

const helpText = `commands:
  <expr>             evaluate an expression (operators | ^ & << >> + - * / %, unary - ~)
  name = <expr>      store a value
  vars               list stored values
  set width <n>      change the working bit width
  set radix <n>      change the display radix (2-36)
  set signed on|off  toggle signed interpretation
  help               this text`
