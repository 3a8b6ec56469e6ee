package template

import (
	"strings"

	"github.com/arthur-debert/photosort/pkg/errors"
)

// Delimiter opens and closes a variable reference.
const Delimiter = ':'

// TokenKind tells literal text apart from variable references.
type TokenKind int

const (
	TokenLiteral TokenKind = iota
	TokenVariable
)

// Token is one piece of a parsed template.
type Token struct {
	Kind  TokenKind
	Value string
}

// Template is an immutable, parsed path template.
type Template struct {
	source string
	tokens []Token
}

// Parse tokenizes text. Errors carry an "index" detail holding the rune
// index at which parsing failed.
func Parse(text string) (*Template, error) {
	var tokens []Token
	runes := []rune(text)
	inVariable := false
	start := 0

	for i, r := range runes {
		if r != Delimiter {
			continue
		}

		if !inVariable {
			if start != i {
				tokens = append(tokens, Token{Kind: TokenLiteral, Value: string(runes[start:i])})
			}
			inVariable = true
			start = i + 1
			continue
		}

		if start == i {
			return nil, errors.Newf(errors.ErrUnnamedVariable, "unnamed variable (at index %d)", i).
				WithDetail("index", i)
		}
		tokens = append(tokens, Token{Kind: TokenVariable, Value: string(runes[start:i])})
		inVariable = false
		start = i + 1
	}

	if inVariable {
		index := len(runes) - 1
		return nil, errors.Newf(errors.ErrUnclosedVariable, "unclosed variable (at index %d)", index).
			WithDetail("index", index)
	}
	if start < len(runes) {
		tokens = append(tokens, Token{Kind: TokenLiteral, Value: string(runes[start:])})
	}

	return &Template{source: text, tokens: tokens}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string) *Template {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// Render builds the destination path by resolving every variable through
// ctx. A nil ctx behaves as an empty context.
func (t *Template) Render(ctx *Context) (string, error) {
	var b strings.Builder

	for _, tk := range t.tokens {
		if tk.Kind == TokenLiteral {
			b.WriteString(tk.Value)
			continue
		}

		name := tk.Value
		if _, ok := ctx.Get(name); !ok {
			return "", errors.Newf(errors.ErrUndefinedVariable, "undefined variable %q", name).
				WithDetail("variable", name)
		}

		value, err := ctx.Resolve(name)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrVariableRender, "failed to render %q variable", name).
				WithDetail("variable", name)
		}
		b.WriteString(value)
	}

	return b.String(), nil
}

// Tokens returns a copy of the parsed tokens.
func (t *Template) Tokens() []Token {
	out := make([]Token, len(t.tokens))
	copy(out, t.tokens)
	return out
}

// Variables returns the referenced variable names in template order.
func (t *Template) Variables() []string {
	var names []string
	for _, tk := range t.tokens {
		if tk.Kind == TokenVariable {
			names = append(names, tk.Value)
		}
	}
	return names
}

// IsEmpty reports whether the template renders to the empty string.
func (t *Template) IsEmpty() bool {
	return t == nil || len(t.tokens) == 0
}

// String returns the template source text.
func (t *Template) String() string {
	if t == nil {
		return ""
	}
	return t.source
}

func (t Template) MarshalText() ([]byte, error) {
	return []byte(t.source), nil
}

func (t *Template) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}
