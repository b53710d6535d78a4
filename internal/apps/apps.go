// Package apps knows how each supported application can be launched and later
// recognised among the compositor's windows.
package apps

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/kballard/go-shellquote"

	"hyprdrop/internal/match"
)

// Kind groups applications by the window attribute that identifies them.
type Kind int

const (
	ClassBased Kind = iota
	TitleBased
	OpaqueHandleBased
)

func (k Kind) String() string {
	switch k {
	case ClassBased:
		return "class"
	case TitleBased:
		return "title"
	case OpaqueHandleBased:
		return "opaque-handle"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Profile describes one application.
type Profile struct {
	Name string
	Kind Kind

	// TitleMode and TitleFormat only apply to TitleBased profiles. TitleFormat
	// is a fmt layout receiving the quoted token, used with match.TitleRegexp.
	TitleMode   match.TitleMode
	TitleFormat string

	// Launch builds the words that tag the window with token.
	Launch func(command, token string) []string
	// ArgsSeparator precedes the user's extra arguments, if any.
	ArgsSeparator string
}

func withClass(command, token string) []string {
	return []string{command, "--class=" + token}
}

var profiles = map[string]Profile{
	"alacritty": {Kind: ClassBased, Launch: withClass, ArgsSeparator: "-e"},
	"kitty":     {Kind: ClassBased, Launch: withClass, ArgsSeparator: "-e"},
	"wezterm": {
		Kind: ClassBased,
		Launch: func(command, token string) []string {
			return []string{command, "start", "--class=" + token}
		},
		ArgsSeparator: "--",
	},
	"foot": {
		Kind:      TitleBased,
		TitleMode: match.TitleEquals,
		Launch: func(command, token string) []string {
			return []string{command, "--title=" + token, "--override", "locked-title=yes"}
		},
		ArgsSeparator: "-e",
	},
	"konsole": {
		Kind:        TitleBased,
		TitleMode:   match.TitleRegexp,
		TitleFormat: "%s — Konsole",
		Launch: func(command, token string) []string {
			return []string{command, "-p", "tabtitle=" + token}
		},
		ArgsSeparator: "-e",
	},
	// gnome-terminal ignores class and name and retitles its window after
	// start; only the initial title and the address are dependable.
	"gnome-terminal": {
		Kind: OpaqueHandleBased,
		Launch: func(command, token string) []string {
			return []string{command, "--title=" + token}
		},
		ArgsSeparator: "--",
	},
}

// defaultProfile covers every command missing from the table.
var defaultProfile = Profile{Kind: ClassBased, Launch: withClass}

// Lookup returns the profile for command, matched on its base name.
func Lookup(command string) Profile {
	name := filepath.Base(command)
	p, ok := profiles[name]
	if !ok {
		p = defaultProfile
	}
	p.Name = name
	return p
}

// Known lists the names with a dedicated profile, sorted.
func Known() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rule derives the matching rule for token.
func (p Profile) Rule(token string) match.Rule {
	switch p.Kind {
	case TitleBased:
		if p.TitleMode == match.TitleRegexp {
			format := p.TitleFormat
			if format == "" {
				format = "%s"
			}
			return match.TitleMatching(token, fmt.Sprintf(format, regexp.QuoteMeta(token)))
		}
		return match.TitleEqual(token)
	case OpaqueHandleBased:
		return match.OpaqueHandle(token)
	default:
		return match.Class(token)
	}
}

// CommandLine builds the launch command for command tagged with token. args are
// appended verbatim so the user keeps control over shell expansion.
func (p Profile) CommandLine(command, token string, args []string) string {
	line := shellquote.Join(p.Launch(command, token)...)
	if len(args) == 0 {
		return line
	}
	if p.ArgsSeparator != "" {
		line += " " + p.ArgsSeparator
	}
	return line + " " + strings.Join(args, " ")
}

// SplitArgs splits the comma-separated extra arguments, dropping empty items.
func SplitArgs(raw string) []string {
	var args []string
	for _, arg := range strings.Split(raw, ",") {
		if arg = strings.TrimSpace(arg); arg != "" {
			args = append(args, arg)
		}
	}
	return args
}
