package ledger

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNoteLength is counted in characters, like the request validation.
const MaxNoteLength = 500

// Entry is one append-only line of account history.
// Delta is signed: credits are positive, debits negative.
type Entry struct {
	id           uuid.UUID
	key          AccountKey
	kind         EntryKind
	delta        int64
	balanceAfter int64
	referenceID  *uuid.UUID
	note         string
	createdAt    time.Time
}

func NewCreditEntry(key AccountKey, kind EntryKind, p Points, balanceAfter int64, referenceID *uuid.UUID, note string, now time.Time) (*Entry, error) {
	return newEntry(key, kind, p.Value(), balanceAfter, referenceID, note, now)
}

func NewDebitEntry(key AccountKey, kind EntryKind, p Points, balanceAfter int64, referenceID *uuid.UUID, note string, now time.Time) (*Entry, error) {
	return newEntry(key, kind, -p.Value(), balanceAfter, referenceID, note, now)
}

func newEntry(key AccountKey, kind EntryKind, delta, balanceAfter int64, referenceID *uuid.UUID, note string, now time.Time) (*Entry, error) {
	if !kind.IsValid() {
		return nil, ErrUnknownEntryKind
	}
	note = strings.TrimSpace(note)
	if utf8.RuneCountInString(note) > MaxNoteLength {
		note = string([]rune(note)[:MaxNoteLength])
	}
	return &Entry{
		id:           uuid.New(),
		key:          key,
		kind:         kind,
		delta:        delta,
		balanceAfter: balanceAfter,
		referenceID:  referenceID,
		note:         note,
		createdAt:    now,
	}, nil
}

func (e *Entry) ID() uuid.UUID           { return e.id }
func (e *Entry) Key() AccountKey         { return e.key }
func (e *Entry) Kind() EntryKind         { return e.kind }
func (e *Entry) Delta() int64            { return e.delta }
func (e *Entry) BalanceAfter() int64     { return e.balanceAfter }
func (e *Entry) ReferenceID() *uuid.UUID { return e.referenceID }
func (e *Entry) Note() string            { return e.note }
func (e *Entry) CreatedAt() time.Time    { return e.createdAt }
