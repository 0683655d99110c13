package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbec/medialog/pkg/media"
)

func TestChainHitByTitleIsCaseInsensitive(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeMovie, nil, nil), newTestStore(t), testLogger())
	added, err := e.Collection().Add(context.Background(), Item{
		Type:        media.TypeMovie,
		Title:       "The Matrix",
		TmdbID:      603,
		StatusLabel: media.MovieVocabulary.Completed,
	})
	require.NoError(t, err)

	redirect, err := e.ResolveChain(ChainRef{Title: "the MATRIX"})
	require.NoError(t, err)

	assert.Nil(t, redirect)
	require.True(t, e.Session().Open())
	assert.Equal(t, ModeViewing, e.Session().Mode())
	assert.Equal(t, added.ID, e.Session().Selected().ID)
}

func TestChainHitByIgdbID(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeGame, nil, nil), newTestStore(t), testLogger())
	added, err := e.Collection().Add(context.Background(), Item{
		Type:        media.TypeGame,
		Title:       "The Witcher 3",
		IgdbID:      1942,
		StatusLabel: media.GameVocabulary.InProgress,
	})
	require.NoError(t, err)

	redirect, err := e.ResolveChain(ChainRef{IgdbID: 1942, Title: "ignored when the id matches"})
	require.NoError(t, err)

	assert.Nil(t, redirect)
	assert.Equal(t, added.ID, e.Session().Selected().ID)
}

func TestChainMissRedirectsToAddFlow(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeGame, nil, nil), newTestStore(t), testLogger())
	added, err := e.Collection().Add(context.Background(), Item{
		Type:        media.TypeGame,
		Title:       "The Witcher 3",
		IgdbID:      1942,
		StatusLabel: media.GameVocabulary.InProgress,
		DLCs:        []string{"Hearts of Stone", "Blood and Wine"},
	})
	require.NoError(t, err)
	require.NoError(t, e.View(added.ID))

	redirect, err := e.ResolveChain(ChainRef{Title: "Blood and Wine", IgdbID: 99999, DLCIndex: 2})
	require.NoError(t, err)

	require.NotNil(t, redirect)
	assert.Equal(t, "Blood and Wine", redirect.PrefillTitle)
	assert.Equal(t, int32(2), redirect.DLCIndex)
	assert.Equal(t, "The Witcher 3", redirect.OriginTitle)
	assert.Same(t, redirect, e.Flow().Prefill(), "the add flow is pre-seeded")

	items := e.Collection().Items()
	assert.Len(t, items, 1, "chain navigation never mutates persisted data")
}

func TestChainNavigationViaReducer(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeMovie, nil, nil), newTestStore(t), testLogger())
	added, err := e.Collection().Add(context.Background(), Item{
		Type:        media.TypeMovie,
		Title:       "Alien",
		TmdbID:      348,
		StatusLabel: media.MovieVocabulary.Completed,
		Sequel:      "Aliens",
	})
	require.NoError(t, err)
	require.NoError(t, e.View(added.ID))

	require.NoError(t, e.HandleAction(context.Background(), NavigateChain{Ref: ChainRef{Title: "Aliens"}}))

	require.NotNil(t, e.Flow().Prefill())
	assert.Equal(t, "Aliens", e.Flow().Prefill().PrefillTitle)
	assert.Equal(t, "Alien", e.Flow().Prefill().OriginTitle)
}

func TestSeriesOptionSteppingWrapsAround(t *testing.T) {
	e := NewEngine(stubProfile(media.TypeMovie, nil, nil), newTestStore(t), testLogger())
	e.Session().AddDraft(Item{Type: media.TypeMovie, Title: "The Two Towers (The Lord of the Rings, #2)"})

	options := []SeriesOption{
		{Series: "The Lord of the Rings", Prequel: "The Fellowship of the Ring", Sequel: "The Return of the King", CleanTitle: "The Two Towers"},
		{CleanTitle: "The Two Towers"},
	}
	e.Session().SetSeriesOptions(options)

	draft := e.Session().Selected()
	assert.Equal(t, "The Lord of the Rings", draft.Series, "the first option applies on install")
	assert.Equal(t, "The Two Towers", draft.Title, "the working title is cleaned")

	require.NoError(t, e.HandleAction(context.Background(), StepSeriesOption{Direction: DirectionNext}))
	assert.Empty(t, draft.Series, "the standalone option clears the series fields")
	assert.Empty(t, draft.Prequel)

	require.NoError(t, e.HandleAction(context.Background(), StepSeriesOption{Direction: DirectionNext}))
	assert.Equal(t, "The Lord of the Rings", draft.Series, "stepping past the end wraps to the first option")

	require.NoError(t, e.HandleAction(context.Background(), StepSeriesOption{Direction: DirectionPrev}))
	assert.Empty(t, draft.Series, "stepping before the start wraps to the last option")
}

func TestSeriesOptionSteppingNeedsAtLeastTwo(t *testing.T) {
	session := NewSession()
	session.AddDraft(Item{Type: media.TypeBook, Title: "Dune"})
	session.SetSeriesOptions([]SeriesOption{{Series: "Dune Saga", CleanTitle: "Dune"}})

	assert.False(t, session.StepSeriesOption(DirectionNext))
	assert.Equal(t, "Dune Saga", session.Selected().Series)
}
