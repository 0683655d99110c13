package manager

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/calbec/medialog/pkg/media"
)

var (
	ErrNoSelection   = errors.New("no item selected")
	ErrUnknownAction = errors.New("unknown action")
	ErrDuplicate     = errors.New("item already in collection")
	ErrNoResults     = errors.New("no search results")
)

// Item is the in-memory view of one collection entry, shared across media
// types. Fields that don't apply to a type stay at their zero value.
type Item struct {
	ID          int64
	Type        media.Type
	Title       string
	StatusLabel string
	Score       *int32
	Note        *string

	DateReleased  string
	DateCompleted *time.Time

	// external identity
	Key    string
	TmdbID int32
	IgdbID int32
	ImdbID string

	// shows
	Seasons        []media.Season
	CurSeasonIndex int32
	CurEpisode     int32

	// series chains (books, movies)
	Author  string
	Series  string
	Prequel string
	Sequel  string

	// games
	Studio   string
	DLCs     []string
	DLCIndex int32

	// artwork
	PosterPath   string
	BackdropPath string
	CoverURL     string
	CoverIDs     []int32
	CoverIndex   int32

	// bumped on every optimistic write, lets callers spot stale copies
	Version int64
}

// ExternalKey is the identity used for duplicate detection.
func (i Item) ExternalKey() string {
	switch {
	case i.Key != "":
		return i.Key
	case i.TmdbID != 0:
		return strconv.Itoa(int(i.TmdbID))
	case i.IgdbID != 0:
		return strconv.Itoa(int(i.IgdbID))
	}
	return ""
}

// ItemPatch is a partial update produced by the action reducer. Nil fields
// are untouched; ClearDateCompleted writes an explicit null.
type ItemPatch struct {
	StatusLabel        *string
	Score              *int32
	Note               *string
	DateCompleted      *time.Time
	ClearDateCompleted bool
	CurSeasonIndex     *int32
	CurEpisode         *int32
	DLCIndex           *int32
	CoverIndex         *int32
	Series             *string
	Prequel            *string
	Sequel             *string
}

// Empty reports whether the patch carries no change at all.
func (p ItemPatch) Empty() bool {
	return p.StatusLabel == nil && p.Score == nil && p.Note == nil &&
		p.DateCompleted == nil && !p.ClearDateCompleted &&
		p.CurSeasonIndex == nil && p.CurEpisode == nil &&
		p.DLCIndex == nil && p.CoverIndex == nil &&
		p.Series == nil && p.Prequel == nil && p.Sequel == nil
}

func (p ItemPatch) apply(item *Item) {
	if p.StatusLabel != nil {
		item.StatusLabel = *p.StatusLabel
	}
	if p.Score != nil {
		item.Score = p.Score
	}
	if p.Note != nil {
		item.Note = p.Note
	}
	if p.DateCompleted != nil {
		item.DateCompleted = p.DateCompleted
	}
	if p.ClearDateCompleted {
		item.DateCompleted = nil
	}
	if p.CurSeasonIndex != nil {
		item.CurSeasonIndex = *p.CurSeasonIndex
	}
	if p.CurEpisode != nil {
		item.CurEpisode = *p.CurEpisode
	}
	if p.DLCIndex != nil {
		item.DLCIndex = *p.DLCIndex
	}
	if p.CoverIndex != nil {
		item.CoverIndex = *p.CoverIndex
	}
	if p.Series != nil {
		item.Series = *p.Series
	}
	if p.Prequel != nil {
		item.Prequel = *p.Prequel
	}
	if p.Sequel != nil {
		item.Sequel = *p.Sequel
	}
}

// Candidate is one mapped primary-search result, media-type agnostic.
type Candidate struct {
	Title  string
	Year   string
	Key    string
	TmdbID int32
	IgdbID int32

	Author string
	Studio string

	PosterPath string
	CoverURL   string
	CoverID    int32
}

// ExternalKey mirrors Item.ExternalKey for duplicate checks and cache keys.
func (c Candidate) ExternalKey() string {
	switch {
	case c.Key != "":
		return c.Key
	case c.TmdbID != 0:
		return strconv.Itoa(int(c.TmdbID))
	case c.IgdbID != 0:
		return strconv.Itoa(int(c.IgdbID))
	}
	return ""
}

// SeriesOption is one candidate series placement for a book or movie. The
// chain navigator steps through these with wraparound.
type SeriesOption struct {
	Series     string
	Prequel    string
	Sequel     string
	CleanTitle string
}

// Enrichment is the result of the secondary lookup after a primary match.
type Enrichment struct {
	Seasons []media.Season

	Series        string
	Prequel       string
	Sequel        string
	SeriesOptions []SeriesOption

	DLCs []string

	CoverIDs     []int32
	PosterPath   string
	BackdropPath string
	ImdbID       string
}

// cleanTitle strips a trailing parenthetical series annotation, e.g.
// "The Two Towers (The Lord of the Rings, #2)" -> "The Two Towers".
func cleanTitle(title string) string {
	open := strings.LastIndex(title, " (")
	if open > 0 && strings.HasSuffix(title, ")") {
		return title[:open]
	}
	return title
}

// releaseYear extracts the year out of a yyyy-mm-dd date string.
func releaseYear(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return ""
}
