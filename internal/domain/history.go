package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is an immutable record of one successful transaction.
type Entry struct {
	ID     string
	Kind   TransactionKind
	Amount decimal.Decimal
	At     time.Time
}

func NewEntry(kind TransactionKind, amount decimal.Decimal) Entry {
	return Entry{
		ID:     uuid.NewString(),
		Kind:   kind,
		Amount: amount,
		At:     time.Now(),
	}
}

// History is the append-only log of an account's successful transactions.
// Entries are kept in insertion order and are never mutated or removed.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

func NewHistoryFromEntries(entries []Entry) *History {
	h := &History{entries: make([]Entry, len(entries))}
	copy(h.entries, entries)
	return h
}

func (h *History) Append(entry Entry) {
	h.entries = append(h.entries, entry)
}

// Entries returns a copy so callers can iterate repeatedly without being able
// to modify the log.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) CountByKind(kind TransactionKind) int {
	count := 0
	for _, entry := range h.entries {
		if entry.Kind == kind {
			count++
		}
	}
	return count
}
