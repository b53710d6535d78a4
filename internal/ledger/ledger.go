// Package ledger remembers the compositor address of windows that cannot be
// recognised by any attribute of their own.
package ledger

import (
	"fmt"
	"strings"

	"hyprdrop/internal/wm"
	"hyprdrop/pkg/core"
)

// Entry maps a rule key to the last address observed for it.
type Entry struct {
	Key    string
	Handle string
}

// Ledger is the in-memory view of a Store. It is not safe for concurrent use,
// and separate processes sharing a file are not coordinated: the last writer wins.
type Ledger struct {
	store   Store
	log     core.Logger
	entries []Entry
}

// Open loads the ledger from store.
func Open(store Store, log core.Logger) (*Ledger, error) {
	entries, err := store.Load()
	if err != nil {
		return nil, err
	}
	log.Debug("Ledger loaded", "entries", len(entries))
	return &Ledger{store: store, log: log, entries: entries}, nil
}

// Lookup returns the handle recorded for key, provided that window is still alive.
func (l *Ledger) Lookup(key string, clients []wm.Client) (string, bool) {
	for _, e := range l.entries {
		if e.Key != key {
			continue
		}
		if _, ok := wm.FindByAddress(clients, e.Handle); !ok {
			l.log.Debug("Ledger entry is stale", "key", key, "handle", e.Handle)
			return "", false
		}
		return e.Handle, true
	}
	return "", false
}

// Record sets the handle for key and persists the ledger.
func (l *Ledger) Record(key, handle string) error {
	if key == "" || handle == "" {
		return fmt.Errorf("record ledger entry: empty key or handle")
	}
	if strings.ContainsAny(key, "\r\n") || strings.ContainsAny(handle, "\r\n"+Delimiter) {
		return fmt.Errorf("record ledger entry %q: key or handle would break the line format", key)
	}
	l.entries = upsert(l.entries, Entry{Key: key, Handle: handle})
	if err := l.store.Save(l.entries); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}
	l.log.Debug("Ledger entry recorded", "key", key, "handle", handle)
	return nil
}

// Entries returns a copy of the current entries.
func (l *Ledger) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

func upsert(entries []Entry, e Entry) []Entry {
	for i := range entries {
		if entries[i].Key == e.Key {
			entries[i].Handle = e.Handle
			return entries
		}
	}
	return append(entries, e)
}
