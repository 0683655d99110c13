package media

import (
	"errors"
	"fmt"
	"regexp"
)

// Type identifies which collection an item belongs to.
type Type string

const (
	TypeBook  Type = "book"
	TypeMovie Type = "movie"
	TypeShow  Type = "show"
	TypeGame  Type = "game"
)

// Status is the canonical consumption state shared by every media type.
// Each type presents its own label vocabulary for the same four states.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
	StatusDropped    Status = "dropped"
)

const (
	MaxScore      = 11
	MaxNoteLength = 1000
)

var (
	ErrUnknownStatus = errors.New("unknown status label")
	ErrInvalidScore  = fmt.Errorf("score must be between 0 and %d", MaxScore)
	ErrNoteTooLong   = fmt.Errorf("note must be at most %d characters", MaxNoteLength)
	ErrInvalidYear   = errors.New("release date must be a 4-digit year")
)

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Vocabulary maps the canonical statuses to the labels one media type uses.
type Vocabulary struct {
	Planned    string
	InProgress string
	Completed  string
	Dropped    string
}

var (
	BookVocabulary  = Vocabulary{Planned: "Want to Read", InProgress: "Reading", Completed: "Read", Dropped: "Dropped"}
	MovieVocabulary = Vocabulary{Planned: "Want to Watch", InProgress: "Watching", Completed: "Watched", Dropped: "Dropped"}
	ShowVocabulary  = Vocabulary{Planned: "Want to Watch", InProgress: "Watching", Completed: "Watched", Dropped: "Dropped"}
	GameVocabulary  = Vocabulary{Planned: "Want to Play", InProgress: "Playing", Completed: "Completed", Dropped: "Dropped"}
)

// VocabularyFor returns the label set for a media type.
func VocabularyFor(t Type) Vocabulary {
	switch t {
	case TypeBook:
		return BookVocabulary
	case TypeMovie:
		return MovieVocabulary
	case TypeShow:
		return ShowVocabulary
	case TypeGame:
		return GameVocabulary
	}
	return Vocabulary{}
}

// Label returns the media type's label for a canonical status.
func (v Vocabulary) Label(s Status) string {
	switch s {
	case StatusPlanned:
		return v.Planned
	case StatusInProgress:
		return v.InProgress
	case StatusCompleted:
		return v.Completed
	case StatusDropped:
		return v.Dropped
	}
	return ""
}

// Canonical resolves a label back to its canonical status.
func (v Vocabulary) Canonical(label string) (Status, error) {
	switch label {
	case v.Planned:
		return StatusPlanned, nil
	case v.InProgress:
		return StatusInProgress, nil
	case v.Completed:
		return StatusCompleted, nil
	case v.Dropped:
		return StatusDropped, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, label)
}

// Valid reports whether label belongs to this vocabulary.
func (v Vocabulary) Valid(label string) bool {
	_, err := v.Canonical(label)
	return err == nil
}

// Labels lists the vocabulary in canonical order.
func (v Vocabulary) Labels() []string {
	return []string{v.Planned, v.InProgress, v.Completed, v.Dropped}
}

// ValidateScore checks the 0..11 score range.
func ValidateScore(score int32) error {
	if score < 0 || score > MaxScore {
		return ErrInvalidScore
	}
	return nil
}

// ValidateNote checks the note length limit.
func ValidateNote(note string) error {
	if len(note) > MaxNoteLength {
		return ErrNoteTooLong
	}
	return nil
}

// ValidateReleaseYear checks that a release date is a 4-digit year. Empty is allowed.
func ValidateReleaseYear(year string) error {
	if year == "" {
		return nil
	}
	if !yearPattern.MatchString(year) {
		return ErrInvalidYear
	}
	return nil
}
