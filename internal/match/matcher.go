package match

import (
	"regexp"

	"hyprdrop/internal/wm"
)

// HandleLookup resolves a ledger key to a handle that is present in clients.
type HandleLookup interface {
	Lookup(key string, clients []wm.Client) (string, bool)
}

// Find returns the first client satisfying rule. ledger may be nil; it is only
// consulted for opaque-handle rules.
func Find(rule Rule, clients []wm.Client, ledger HandleLookup) (wm.Client, bool) {
	if len(clients) == 0 {
		return wm.Client{}, false
	}

	switch rule.Kind {
	case ByClassPattern:
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return wm.Client{}, false
		}
		return first(clients, func(c wm.Client) bool { return re.MatchString(c.Class) })

	case ByTitlePattern:
		if rule.TitleMode == TitleEquals {
			return first(clients, func(c wm.Client) bool { return c.Title == rule.Token })
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return wm.Client{}, false
		}
		return first(clients, func(c wm.Client) bool { return re.MatchString(c.Title) })

	case ByOpaqueHandle:
		if rule.Handle != "" {
			return wm.FindByAddress(clients, rule.Handle)
		}
		if ledger != nil {
			if handle, ok := ledger.Lookup(rule.Key(), clients); ok {
				return wm.FindByAddress(clients, handle)
			}
		}
		return FindByInitialTitle(clients, rule.Token)
	}
	return wm.Client{}, false
}

// FindByInitialTitle returns the first client created with the given title.
func FindByInitialTitle(clients []wm.Client, title string) (wm.Client, bool) {
	return first(clients, func(c wm.Client) bool { return c.InitialTitle == title })
}

func first(clients []wm.Client, pred func(wm.Client) bool) (wm.Client, bool) {
	for _, c := range clients {
		if pred(c) {
			return c, true
		}
	}
	return wm.Client{}, false
}
