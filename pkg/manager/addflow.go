package manager

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/calbec/medialog/pkg/cache"
	"github.com/calbec/medialog/pkg/machine"
)

type FlowState string

const (
	FlowIdle      FlowState = "idle"
	FlowSearching FlowState = "searching"
	FlowReviewing FlowState = "reviewing"
	FlowPicking   FlowState = "pickingFromMultiple"
	FlowManual    FlowState = "manualEntry"
)

var flowTransitions = []machine.Allowable[FlowState]{
	machine.From(FlowIdle).To(FlowSearching, FlowManual),
	machine.From(FlowSearching).To(FlowIdle, FlowReviewing),
	machine.From(FlowReviewing).To(FlowPicking, FlowManual, FlowIdle),
	machine.From(FlowPicking).To(FlowReviewing, FlowManual, FlowIdle),
	machine.From(FlowManual).To(FlowIdle),
}

const enrichmentCacheSize = 64

// user-facing inline messages
const (
	MessageDuplicate = "Looks like you already have this one"
	MessageNoMatch   = "Couldn't find a match, you can add it manually"
)

// AddFlow sequences the search-review-commit path for one media type. The
// enrichment cache is owned here, bounded, and keyed by external identity so
// re-picking the same candidate doesn't repeat the secondary lookup. A
// generation counter guards against a search resolving after the user has
// already cancelled.
type AddFlow struct {
	profile    Profile
	collection *Collection
	session    *Session
	cache      *cache.LRU[string, *Enrichment]
	log        *zap.SugaredLogger

	state      FlowState
	generation atomic.Int64
	candidates []Candidate
	message    string
	prefill    *ChainRedirect
}

func NewAddFlow(profile Profile, collection *Collection, session *Session, log *zap.SugaredLogger) *AddFlow {
	return &AddFlow{
		profile:    profile,
		collection: collection,
		session:    session,
		cache:      cache.NewLRU[string, *Enrichment](enrichmentCacheSize),
		log:        log,
		state:      FlowIdle,
	}
}

func (f *AddFlow) State() FlowState {
	return f.state
}

// Message is the current inline message ("already have", "couldn't find"), or
// empty.
func (f *AddFlow) Message() string {
	return f.message
}

// Candidates returns the alternates from the last primary search.
func (f *AddFlow) Candidates() []Candidate {
	return f.candidates
}

// SetPrefill seeds the flow with a chain-navigation redirect.
func (f *AddFlow) SetPrefill(redirect *ChainRedirect) {
	f.prefill = redirect
}

// Prefill returns the pending chain redirect, if any.
func (f *AddFlow) Prefill() *ChainRedirect {
	return f.prefill
}

func (f *AddFlow) transition(to FlowState) error {
	if err := machine.New(f.state, flowTransitions...).ToState(to); err != nil {
		return fmt.Errorf("add flow cannot move from %s to %s: %w", f.state, to, err)
	}
	f.state = to
	return nil
}

// Begin starts an add from a submitted title (plus an optional year for
// movies and shows). The review modal opens immediately in its loading state;
// the primary search then resolves into a duplicate, a no-match, or a draft
// ready for review.
func (f *AddFlow) Begin(ctx context.Context, query, year string) error {
	if err := f.transition(FlowSearching); err != nil {
		return err
	}

	generation := f.generation.Add(1)
	f.message = ""
	f.candidates = nil

	draft := Item{Type: f.profile.Type, Title: query, DateReleased: year}
	if f.prefill != nil {
		if f.prefill.PrefillTitle != "" {
			draft.Title = f.prefill.PrefillTitle
		}
		draft.DLCIndex = f.prefill.DLCIndex
		f.prefill = nil
	}
	f.session.AddDraft(draft)

	candidates, err := f.profile.Search(ctx, draft.Title, year)
	if generation != f.generation.Load() {
		// the user cancelled while the search was in flight
		return nil
	}
	if err != nil {
		// search failures surface like a miss, never as a thrown error
		f.log.Warnw("primary search failed", "type", f.profile.Type, "query", draft.Title, "error", err)
		candidates = nil
	}

	if len(candidates) == 0 {
		f.message = MessageNoMatch
		return f.transition(FlowIdle)
	}

	if _, ok := f.collection.FindByExternalKey(candidates[0].ExternalKey()); ok {
		f.message = MessageDuplicate
		f.session.Close()
		return f.transition(FlowIdle)
	}
	if _, ok := f.collection.FindByTitle(candidates[0].Title); ok {
		f.message = MessageDuplicate
		f.session.Close()
		return f.transition(FlowIdle)
	}

	f.candidates = candidates
	if err := f.review(ctx, candidates[0], generation); err != nil {
		return err
	}
	if generation != f.generation.Load() {
		return nil
	}
	return f.transition(FlowReviewing)
}

// ShowMoreOptions surfaces the alternate candidates while preserving the
// draft.
func (f *AddFlow) ShowMoreOptions() error {
	return f.transition(FlowPicking)
}

// PickCandidate selects one of the alternates, re-runs enrichment for it and
// returns to review.
func (f *AddFlow) PickCandidate(ctx context.Context, index int) error {
	if f.state != FlowPicking {
		return fmt.Errorf("add flow cannot pick a candidate from %s", f.state)
	}
	if index < 0 || index >= len(f.candidates) {
		return fmt.Errorf("candidate index %d out of range", index)
	}

	generation := f.generation.Load()
	if err := f.review(ctx, f.candidates[index], generation); err != nil {
		return err
	}
	if generation != f.generation.Load() {
		return nil
	}
	return f.transition(FlowReviewing)
}

// ManualEntry abandons automatic enrichment. Fields the user typed directly
// (title, studio, year, status, score, note) survive; everything fetched from
// the external catalog is cleared.
func (f *AddFlow) ManualEntry() error {
	if err := f.transition(FlowManual); err != nil {
		return err
	}

	draft := f.session.Selected()
	if draft == nil {
		f.session.AddDraft(Item{Type: f.profile.Type})
		return nil
	}

	draft.Key = ""
	draft.TmdbID = 0
	draft.IgdbID = 0
	draft.ImdbID = ""
	draft.Seasons = nil
	draft.CurSeasonIndex = 0
	draft.CurEpisode = 1
	draft.Series = ""
	draft.Prequel = ""
	draft.Sequel = ""
	draft.DLCs = nil
	draft.CoverIDs = nil
	draft.CoverIndex = 0
	draft.PosterPath = ""
	draft.BackdropPath = ""
	draft.CoverURL = ""
	f.session.SetSeriesOptions(nil)
	return nil
}

// Commit hands the draft to the collection. Status defaults to the media
// type's want-to-consume label when unset.
func (f *AddFlow) Commit(ctx context.Context) (Item, error) {
	if f.state != FlowReviewing && f.state != FlowManual {
		return Item{}, fmt.Errorf("add flow cannot commit from %s", f.state)
	}

	draft := f.session.Selected()
	if draft == nil {
		return Item{}, ErrNoSelection
	}
	if draft.StatusLabel == "" {
		draft.StatusLabel = f.profile.Vocabulary.Planned
	}
	if _, err := f.profile.Vocabulary.Canonical(draft.StatusLabel); err != nil {
		return Item{}, err
	}

	if nav := f.session.Navigator(); nav != nil {
		draft.CurSeasonIndex, draft.CurEpisode = nav.Position()
	}

	added, err := f.collection.Add(ctx, *draft)
	if err != nil {
		return Item{}, err
	}

	f.reset()
	return added, nil
}

// Cancel discards the draft from any state. Nothing is persisted, and any
// in-flight search is superseded.
func (f *AddFlow) Cancel() {
	f.generation.Add(1)
	f.reset()
}

func (f *AddFlow) reset() {
	f.state = FlowIdle
	f.candidates = nil
	f.message = ""
	f.prefill = nil
	f.session.Close()
}

// review populates the draft from a candidate and runs the secondary
// enrichment, consulting the bounded cache first.
func (f *AddFlow) review(ctx context.Context, candidate Candidate, generation int64) error {
	draft := f.session.Selected()
	if draft == nil {
		return ErrNoSelection
	}

	draft.Title = candidate.Title
	draft.DateReleased = candidate.Year
	draft.Key = candidate.Key
	draft.TmdbID = candidate.TmdbID
	draft.IgdbID = candidate.IgdbID
	draft.Author = candidate.Author
	draft.Studio = candidate.Studio
	draft.PosterPath = candidate.PosterPath
	draft.CoverURL = candidate.CoverURL
	if candidate.CoverID != 0 {
		draft.CoverIDs = []int32{candidate.CoverID}
	}

	enrichment, err := f.enrich(ctx, candidate)
	if generation != f.generation.Load() {
		return nil
	}
	if err != nil {
		// enrichment failures leave the draft un-enriched, review continues
		f.log.Warnw("enrichment failed", "type", f.profile.Type, "key", candidate.ExternalKey(), "error", err)
		return nil
	}
	if enrichment == nil {
		return nil
	}

	f.applyEnrichment(draft, enrichment)
	return nil
}

func (f *AddFlow) enrich(ctx context.Context, candidate Candidate) (*Enrichment, error) {
	key := candidate.ExternalKey()
	if key == "" {
		return nil, nil
	}

	if cached, ok := f.cache.Get(key); ok {
		return cached, nil
	}

	enrichment, err := f.profile.Enrich(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if enrichment != nil {
		f.cache.Set(key, enrichment)
	}
	return enrichment, nil
}

func (f *AddFlow) applyEnrichment(draft *Item, enrichment *Enrichment) {
	if len(enrichment.Seasons) > 0 {
		draft.Seasons = enrichment.Seasons
		draft.CurSeasonIndex = 0
		draft.CurEpisode = 1
		f.session.nav = NewNavigator(draft.Seasons, 0, 1)
	}

	if enrichment.Series != "" {
		draft.Series = enrichment.Series
		draft.Prequel = enrichment.Prequel
		draft.Sequel = enrichment.Sequel
	}
	if len(enrichment.SeriesOptions) > 0 {
		f.session.SetSeriesOptions(enrichment.SeriesOptions)
	}

	if len(enrichment.DLCs) > 0 {
		draft.DLCs = enrichment.DLCs
	}

	if len(enrichment.CoverIDs) > 0 {
		draft.CoverIDs = enrichment.CoverIDs
	}
	if enrichment.PosterPath != "" {
		draft.PosterPath = enrichment.PosterPath
	}
	if enrichment.BackdropPath != "" {
		draft.BackdropPath = enrichment.BackdropPath
	}
	if enrichment.ImdbID != "" {
		draft.ImdbID = enrichment.ImdbID
	}
}
