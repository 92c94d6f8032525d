// Package reveal tracks which answer the user has revealed for each question
// and persists that mapping across sessions.
//
// Every mutation builds the next full mapping, writes it to a single storage
// slot, and only then commits it in memory: the persisted copy is always a
// complete snapshot, and a failed write leaves the in-memory state unchanged.
// Absent or corrupt persisted state silently degrades to a fresh empty state;
// only storage failures surface as errors.
package reveal

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/quizdeck/quizdeck/internal/store"
)

// slotKey is the fixed slot the mapping is persisted under.
const slotKey = "reveal-state"

// Store owns the reveal mapping for one deck.
type Store struct {
	// Events receives best-effort study history; nil disables logging.
	// Logging failures are warned about, never propagated: losing a history
	// row must not break a reveal.
	Events store.EventRepo

	// SessionID tags logged events with the browsing session they belong to.
	SessionID string

	slots   store.SlotRepo
	total   int
	choices map[int]int // question id -> revealed option index
}

// Progress summarizes reveal state over the whole deck.
type Progress struct {
	Revealed int
	Total    int
	Percent  int
}

// Load restores reveal state from the slot. An absent slot or one holding
// unparseable data yields empty state; a storage failure is returned.
func Load(ctx context.Context, slots store.SlotRepo, total int) (*Store, error) {
	s := &Store{
		slots:   slots,
		total:   total,
		choices: make(map[int]int),
	}

	raw, ok, err := slots.Get(ctx, slotKey)
	if err != nil {
		return nil, fmt.Errorf("load reveal state: %w", err)
	}
	if !ok {
		return s, nil
	}
	// Corrupt state is treated as no state. A JSON null decodes without
	// error but leaves the map nil, so it counts as corrupt too.
	if err := json.Unmarshal([]byte(raw), &s.choices); err != nil || s.choices == nil {
		s.choices = make(map[int]int)
	}
	return s, nil
}

// Reveal records the option chosen for a question. Revealing an already
// revealed question overwrites the previous choice. On a storage failure the
// question stays unrevealed.
func (s *Store) Reveal(ctx context.Context, questionID, optionIndex int) error {
	next := s.cloneChoices()
	next[questionID] = optionIndex
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.choices = next
	s.logEvent(ctx, store.EventRevealed, questionID, optionIndex)
	return nil
}

// Unreveal returns a question to the unanswered state. Unrevealing a
// question that was never revealed is a no-op. On a storage failure the
// question stays revealed.
func (s *Store) Unreveal(ctx context.Context, questionID int) error {
	if _, ok := s.choices[questionID]; !ok {
		return nil
	}
	next := s.cloneChoices()
	delete(next, questionID)
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.choices = next
	s.logEvent(ctx, store.EventUnrevealed, questionID, 0)
	return nil
}

// ResetAll clears every reveal and the persisted copy. The slot is deleted
// before memory is cleared, so a storage failure keeps the current reveals.
func (s *Store) ResetAll(ctx context.Context) error {
	if err := s.slots.Delete(ctx, slotKey); err != nil {
		return fmt.Errorf("reset reveal state: %w", err)
	}
	s.choices = make(map[int]int)
	s.logEvent(ctx, store.EventReset, 0, 0)
	return nil
}

// Revealed returns the revealed option index for a question and whether the
// question has been revealed at all.
func (s *Store) Revealed(questionID int) (int, bool) {
	idx, ok := s.choices[questionID]
	return idx, ok
}

// Count returns how many questions have been revealed.
func (s *Store) Count() int {
	return len(s.choices)
}

// Progress reports revealed count, deck size, and a rounded percentage. An
// empty deck reports zero percent.
func (s *Store) Progress() Progress {
	p := Progress{Revealed: len(s.choices), Total: s.total}
	if s.total > 0 {
		p.Percent = int(math.Round(float64(p.Revealed) / float64(p.Total) * 100))
	}
	return p
}

// cloneChoices returns a copy of the current mapping for the next snapshot.
func (s *Store) cloneChoices() map[int]int {
	next := make(map[int]int, len(s.choices)+1)
	for id, idx := range s.choices {
		next[id] = idx
	}
	return next
}

// persist writes a full mapping snapshot to the slot. JSON object keys are
// strings, so the integer question ids round-trip as their decimal form,
// matching the shape Load reads back.
func (s *Store) persist(ctx context.Context, choices map[int]int) error {
	raw, err := json.Marshal(choices)
	if err != nil {
		return fmt.Errorf("encode reveal state: %w", err)
	}
	if err := s.slots.Put(ctx, slotKey, string(raw)); err != nil {
		return fmt.Errorf("save reveal state: %w", err)
	}
	return nil
}

func (s *Store) logEvent(ctx context.Context, kind string, questionID, optionIndex int) {
	if s.Events == nil {
		return
	}
	err := s.Events.AppendReveal(ctx, store.RevealEventData{
		Kind:        kind,
		QuestionID:  questionID,
		OptionIndex: optionIndex,
		SessionID:   s.SessionID,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: record study event: %v\n", err)
	}
}
