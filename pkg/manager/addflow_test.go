package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbec/medialog/pkg/machine"
	"github.com/calbec/medialog/pkg/media"
)

func TestAddFlowDuplicateLeavesCollectionUnchanged(t *testing.T) {
	candidates := []Candidate{{Title: "Dune", Key: "OL893415W", Author: "Frank Herbert"}}
	e := NewEngine(stubProfile(media.TypeBook, candidates, nil), newTestStore(t), testLogger())

	_, err := e.Collection().Add(context.Background(), Item{
		Type:        media.TypeBook,
		Title:       "Dune",
		Key:         "OL893415W",
		StatusLabel: media.BookVocabulary.Completed,
	})
	require.NoError(t, err)

	require.NoError(t, e.Flow().Begin(context.Background(), "dune", ""))

	assert.Equal(t, FlowIdle, e.Flow().State())
	assert.Equal(t, MessageDuplicate, e.Flow().Message())
	assert.False(t, e.Session().Open(), "the review modal closes on a duplicate")
	assert.Len(t, e.Collection().Items(), 1, "a duplicate never produces a second add")
}

func TestAddFlowNoMatchOffersManualEntry(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeBook, nil, nil), newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "an unfindable title", ""))

	assert.Equal(t, FlowIdle, e.Flow().State())
	assert.Equal(t, MessageNoMatch, e.Flow().Message())
	assert.True(t, e.Session().Open(), "the modal stays up so manual entry is reachable")
	assert.Empty(t, e.Collection().Items())

	require.NoError(t, e.Flow().ManualEntry())
	assert.Equal(t, FlowManual, e.Flow().State())
}

func TestAddFlowHappyPath(t *testing.T) {
	candidates := []Candidate{{Title: "Andor", Year: "2022", TmdbID: 83867}}
	enrichment := &Enrichment{Seasons: []media.Season{{EpisodeCount: 12}, {EpisodeCount: 12}}}
	e := NewEngine(stubProfile(media.TypeShow, candidates, enrichment), newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "andor", "2022"))

	require.Equal(t, FlowReviewing, e.Flow().State())
	draft := e.Session().Selected()
	require.NotNil(t, draft)
	assert.Equal(t, "Andor", draft.Title)
	assert.Equal(t, int32(83867), draft.TmdbID)
	assert.Len(t, draft.Seasons, 2)
	require.NotNil(t, e.Session().Navigator(), "season enrichment arms the navigator")

	added, err := e.Flow().Commit(context.Background())
	require.NoError(t, err)

	assert.NotZero(t, added.ID)
	assert.Equal(t, media.ShowVocabulary.Planned, added.StatusLabel, "status defaults to want-to-watch")
	assert.Equal(t, FlowIdle, e.Flow().State())
	assert.False(t, e.Session().Open())

	stored, ok := e.Collection().Get(added.ID)
	require.True(t, ok)
	assert.Len(t, stored.Seasons, 2)
}

func TestAddFlowCancelSupersedesInFlightSearch(t *testing.T) {
	var e *Engine
	profile := Profile{
		Type:       media.TypeShow,
		Vocabulary: media.ShowVocabulary,
		Search: func(context.Context, string, string) ([]Candidate, error) {
			// the user closes the modal while the search is still out
			e.Flow().Cancel()
			return []Candidate{{Title: "Andor", TmdbID: 83867}}, nil
		},
		Enrich: func(context.Context, Candidate) (*Enrichment, error) {
			return nil, nil
		},
	}
	e = NewEngine(profile, newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "andor", ""))

	assert.Equal(t, FlowIdle, e.Flow().State(), "the superseded result must not re-open the flow")
	assert.False(t, e.Session().Open())
	assert.Empty(t, e.Flow().Candidates())
	assert.Empty(t, e.Collection().Items())
}

func TestAddFlowRejectsSecondSearchWhileReviewing(t *testing.T) {
	candidates := []Candidate{{Title: "Andor", TmdbID: 83867}}
	e := NewEngine(stubProfile(media.TypeShow, candidates, nil), newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "andor", ""))
	require.Equal(t, FlowReviewing, e.Flow().State())

	err := e.Flow().Begin(context.Background(), "something else", "")
	assert.ErrorIs(t, err, machine.ErrInvalidTransition)
}

func TestAddFlowEnrichmentCacheAvoidsRepeatLookups(t *testing.T) {
	lookups := 0
	profile := Profile{
		Type:       media.TypeShow,
		Vocabulary: media.ShowVocabulary,
		Search: func(context.Context, string, string) ([]Candidate, error) {
			return []Candidate{{Title: "Andor", TmdbID: 83867}, {Title: "Andor (1983)", TmdbID: 443}}, nil
		},
		Enrich: func(context.Context, Candidate) (*Enrichment, error) {
			lookups++
			return &Enrichment{Seasons: []media.Season{{EpisodeCount: 12}}}, nil
		},
	}
	e := NewEngine(profile, newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "andor", ""))
	require.Equal(t, 1, lookups)

	require.NoError(t, e.Flow().ShowMoreOptions())
	require.NoError(t, e.Flow().PickCandidate(context.Background(), 1))
	assert.Equal(t, 2, lookups, "a different candidate needs its own enrichment")

	require.NoError(t, e.Flow().ShowMoreOptions())
	require.NoError(t, e.Flow().PickCandidate(context.Background(), 0))
	assert.Equal(t, 2, lookups, "re-picking the first candidate hits the cache")
}

func TestAddFlowManualEntryPreservesUserFields(t *testing.T) {
	candidates := []Candidate{{Title: "The Hobbit", Key: "OL262758W", Author: "J.R.R. Tolkien"}}
	enrichment := &Enrichment{
		Series:   "J.R.R. Tolkien",
		Prequel:  "The Silmarillion",
		Sequel:   "The Fellowship of the Ring",
		CoverIDs: []int32{21, 22},
	}
	e := NewEngine(stubProfile(media.TypeBook, candidates, enrichment), newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "the hobbit", ""))
	require.Equal(t, FlowReviewing, e.Flow().State())

	require.NoError(t, e.HandleAction(context.Background(), ChangeScore{Score: 8}))
	require.NoError(t, e.HandleAction(context.Background(), ChangeStatus{Label: media.BookVocabulary.InProgress}))

	require.NoError(t, e.Flow().ManualEntry())

	draft := e.Session().Selected()
	require.NotNil(t, draft)
	assert.Equal(t, "The Hobbit", draft.Title, "the typed title survives")
	require.NotNil(t, draft.Score)
	assert.Equal(t, int32(8), *draft.Score)
	assert.Equal(t, media.BookVocabulary.InProgress, draft.StatusLabel)

	assert.Empty(t, draft.Key, "the external match is abandoned")
	assert.Empty(t, draft.Series)
	assert.Empty(t, draft.Prequel)
	assert.Empty(t, draft.Sequel)
	assert.Empty(t, draft.CoverIDs)
}

func TestAddFlowPrefillSeedsDraft(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeGame, nil, nil), newTestStore(t), testLogger())

	e.Flow().SetPrefill(&ChainRedirect{PrefillTitle: "Blood and Wine", DLCIndex: 2, OriginTitle: "The Witcher 3"})
	require.NoError(t, e.Flow().Begin(context.Background(), "", ""))

	draft := e.Session().Selected()
	require.NotNil(t, draft)
	assert.Equal(t, "Blood and Wine", draft.Title)
	assert.Equal(t, int32(2), draft.DLCIndex)
	assert.Nil(t, e.Flow().Prefill(), "the prefill is consumed by Begin")
}

func TestAddFlowCommitFromManual(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeGame, nil, nil), newTestStore(t), testLogger())

	require.NoError(t, e.Flow().Begin(context.Background(), "Outer Wilds", ""))
	require.NoError(t, e.Flow().ManualEntry())

	added, err := e.Flow().Commit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Outer Wilds", added.Title)
	assert.Equal(t, media.GameVocabulary.Planned, added.StatusLabel)
	assert.Len(t, e.Collection().Items(), 1)
}

func TestAddFlowCommitRequiresReviewOrManual(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeGame, nil, nil), newTestStore(t), testLogger())

	_, err := e.Flow().Commit(context.Background())
	assert.Error(t, err)
}
