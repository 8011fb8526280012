package input

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const endOfOptions = "--"

// TokenKind classifies a [Token].
type TokenKind int

const (
	TokenValue TokenKind = iota
	TokenLongOption
	TokenShortOption
	TokenEndOfOptions
)

func (k TokenKind) String() string {
	switch k {
	case TokenValue:
		return "value"
	case TokenLongOption:
		return "long option"
	case TokenShortOption:
		return "short option"
	case TokenEndOfOptions:
		return "end of options"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// Token is one classified element of an invocation.
// A cluster of shortcuts like "-abc" produces one Token per shortcut, all sharing the same Raw text and Index.
type Token struct {
	Kind     TokenKind
	Name     string // Long option name or shortcut, without dashes.
	Value    string // Positional value, or the inline option value if HasValue is true.
	HasValue bool
	Raw      string
	Index    int
}

// Tokenize classifies raw invocation arguments.
// The [Definition] is only consulted to find out whether a shortcut in a cluster accepts a value, in which case the rest of the cluster is its value.
// Unknown shortcuts are treated as flags, and are reported later by the binder.
func Tokenize(def *Definition, args []string) []Token {
	tokens := make([]Token, 0, len(args))
	optionsDone := false
	for i, arg := range args {
		switch {
		case optionsDone:
			tokens = append(tokens, Token{Kind: TokenValue, Value: arg, Raw: arg, Index: i})
		case arg == endOfOptions:
			optionsDone = true
			tokens = append(tokens, Token{Kind: TokenEndOfOptions, Raw: arg, Index: i})
		case strings.HasPrefix(arg, endOfOptions):
			name, value, found := strings.Cut(arg[len(endOfOptions):], "=")
			tokens = append(tokens, Token{Kind: TokenLongOption, Name: name, Value: value, HasValue: found, Raw: arg, Index: i})
		case len(arg) > 1 && arg[0] == '-':
			tokens = appendCluster(tokens, def, arg, i)
		default:
			tokens = append(tokens, Token{Kind: TokenValue, Value: arg, Raw: arg, Index: i})
		}
	}
	return tokens
}

func appendCluster(tokens []Token, def *Definition, arg string, index int) []Token {
	cluster := arg[1:]
	for len(cluster) > 0 {
		r, size := utf8.DecodeRuneInString(cluster)
		shortcut := string(r)
		rest := cluster[size:]
		tok := Token{Kind: TokenShortOption, Name: shortcut, Raw: arg, Index: index}
		if opt, ok := def.optionByShortcut(shortcut); ok && opt.AcceptsValue() && len(rest) > 0 {
			tok.Value = rest
			tok.HasValue = true
			tokens = append(tokens, tok)
			return tokens
		}
		tokens = append(tokens, tok)
		cluster = rest
	}
	return tokens
}

// Looks like an option to the binder when deciding if it can be consumed as an option value.
func (t Token) isOptionLike() bool {
	return t.Kind != TokenValue
}
