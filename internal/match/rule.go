// Package match holds the window matching rules and the client matcher.
package match

import (
	"fmt"
	"regexp"
)

// Kind selects which window attribute a Rule inspects.
type Kind int

const (
	ByClassPattern Kind = iota
	ByTitlePattern
	ByOpaqueHandle
)

func (k Kind) String() string {
	switch k {
	case ByClassPattern:
		return "class"
	case ByTitlePattern:
		return "title"
	case ByOpaqueHandle:
		return "address"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TitleMode is how a title rule compares against a client's title.
type TitleMode int

const (
	// TitleEquals compares the title with the token for string equality.
	TitleEquals TitleMode = iota
	// TitleRegexp searches the title with Pattern.
	TitleRegexp
)

// Rule identifies one window. Token is the user-chosen identifier and doubles as
// the ledger key; Pattern is the regular expression handed to the compositor;
// Handle is set once an opaque-handle rule has been resolved to a live window.
type Rule struct {
	Kind      Kind
	Token     string
	Pattern   string
	TitleMode TitleMode
	Handle    string
}

// ExactPattern anchors token so it matches only the literal string.
func ExactPattern(token string) string {
	return "^" + regexp.QuoteMeta(token) + "$"
}

// Class matches clients whose class is exactly token.
func Class(token string) Rule {
	return Rule{Kind: ByClassPattern, Token: token, Pattern: ExactPattern(token)}
}

// TitleEqual matches clients whose title is exactly token.
func TitleEqual(token string) Rule {
	return Rule{Kind: ByTitlePattern, Token: token, Pattern: ExactPattern(token), TitleMode: TitleEquals}
}

// TitleMatching matches clients whose title contains a match for pattern.
func TitleMatching(token, pattern string) Rule {
	return Rule{Kind: ByTitlePattern, Token: token, Pattern: pattern, TitleMode: TitleRegexp}
}

// OpaqueHandle matches the window recorded for token in the ledger, or failing
// that, the window created with initial title token.
func OpaqueHandle(token string) Rule {
	return Rule{Kind: ByOpaqueHandle, Token: token}
}

// Key is the stable ledger key of the rule.
func (r Rule) Key() string {
	return r.Token
}

// Bind pins an opaque-handle rule to the given window address. Other kinds are
// returned unchanged.
func (r Rule) Bind(address string) Rule {
	if r.Kind == ByOpaqueHandle {
		r.Handle = address
	}
	return r
}

// Selector renders the rule as a compositor window selector.
func (r Rule) Selector() string {
	switch r.Kind {
	case ByTitlePattern:
		return "title:" + r.Pattern
	case ByOpaqueHandle:
		return "address:" + r.Handle
	default:
		return "class:" + r.Pattern
	}
}

func (r Rule) String() string {
	if r.Kind == ByOpaqueHandle && r.Handle == "" {
		return "initialtitle:" + r.Token
	}
	return r.Selector()
}
