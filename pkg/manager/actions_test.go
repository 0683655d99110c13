package manager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/storage"
	"github.com/calbec/medialog/pkg/storage/sqlite"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func newTestStore(t *testing.T) *sqlite.SQLite {
	t.Helper()

	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// stubProfile returns a profile whose search and enrichment are canned.
func stubProfile(typ media.Type, candidates []Candidate, enrichment *Enrichment) Profile {
	return Profile{
		Type:       typ,
		Vocabulary: media.VocabularyFor(typ),
		Search: func(context.Context, string, string) ([]Candidate, error) {
			return candidates, nil
		},
		Enrich: func(context.Context, Candidate) (*Enrichment, error) {
			return enrichment, nil
		},
	}
}

func newShowEngine(t *testing.T, store storage.Storage) *Engine {
	t.Helper()
	if store == nil {
		store = newTestStore(t)
	}
	return NewEngine(stubProfile(media.TypeShow, nil, nil), store, testLogger())
}

func addShow(t *testing.T, e *Engine) Item {
	t.Helper()

	item, err := e.Collection().Add(context.Background(), Item{
		Type:           media.TypeShow,
		Title:          "Severance",
		TmdbID:         95396,
		StatusLabel:    media.ShowVocabulary.InProgress,
		Seasons:        twoSeasons(),
		CurSeasonIndex: 0,
		CurEpisode:     3,
	})
	require.NoError(t, err)
	return item
}

func TestChangeStatusCompletedStampsDateAndPinsPosition(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	err := e.HandleAction(context.Background(), ChangeStatus{Label: media.ShowVocabulary.Completed})
	require.NoError(t, err)

	selected := e.Session().Selected()
	require.NotNil(t, selected)
	assert.Equal(t, media.ShowVocabulary.Completed, selected.StatusLabel)
	require.NotNil(t, selected.DateCompleted)
	assert.Equal(t, int32(1), selected.CurSeasonIndex)
	assert.Equal(t, int32(8), selected.CurEpisode)

	stored, ok := e.Collection().Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, int32(1), stored.CurSeasonIndex)
	assert.Equal(t, int32(8), stored.CurEpisode)
	assert.NotNil(t, stored.DateCompleted)
}

func TestChangeStatusAwayFromCompletedClearsDate(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	require.NoError(t, e.HandleAction(context.Background(), ChangeStatus{Label: media.ShowVocabulary.Completed}))
	require.NoError(t, e.HandleAction(context.Background(), ChangeStatus{Label: media.ShowVocabulary.Dropped}))

	selected := e.Session().Selected()
	assert.Equal(t, media.ShowVocabulary.Dropped, selected.StatusLabel)
	assert.Nil(t, selected.DateCompleted)

	stored, _ := e.Collection().Get(item.ID)
	assert.Nil(t, stored.DateCompleted)
}

func TestChangeStatusUnknownLabelRejected(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	err := e.HandleAction(context.Background(), ChangeStatus{Label: "Binging"})
	assert.ErrorIs(t, err, media.ErrUnknownStatus)
}

func TestChangeScoreCommitsImmediately(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	require.NoError(t, e.HandleAction(context.Background(), ChangeScore{Score: 9}))

	stored, _ := e.Collection().Get(item.ID)
	require.NotNil(t, stored.Score)
	assert.Equal(t, int32(9), *stored.Score)
}

func TestChangeScoreOutOfRange(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	err := e.HandleAction(context.Background(), ChangeScore{Score: 12})
	assert.ErrorIs(t, err, media.ErrInvalidScore)

	stored, _ := e.Collection().Get(item.ID)
	assert.Nil(t, stored.Score)
}

func TestNoteBuffersUntilSave(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	require.NoError(t, e.HandleAction(context.Background(), ChangeNote{Text: "innie or outie"}))

	stored, _ := e.Collection().Get(item.ID)
	assert.Nil(t, stored.Note, "typing must not hit the collaborator")
	assert.Equal(t, "innie or outie", e.Session().LocalNote())

	require.NoError(t, e.HandleAction(context.Background(), SaveNote{}))

	stored, _ = e.Collection().Get(item.ID)
	require.NotNil(t, stored.Note)
	assert.Equal(t, "innie or outie", *stored.Note)
}

func TestSaveNoteUnchangedIsNoop(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	before, _ := e.Collection().Get(item.ID)
	require.NoError(t, e.HandleAction(context.Background(), SaveNote{}))
	after, _ := e.Collection().Get(item.ID)
	assert.Equal(t, before.Version, after.Version, "no write when the buffered note matches")
}

func TestDeleteClosesModalFirst(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	require.NoError(t, e.HandleAction(context.Background(), DeleteItem{}))

	assert.False(t, e.Session().Open())
	_, ok := e.Collection().Get(item.ID)
	assert.False(t, ok)
}

func TestCloseModalWhileAddingIsNoop(t *testing.T) {
	e := newShowEngine(t, nil)
	e.Session().AddDraft(Item{Type: media.TypeShow, Title: "draft"})

	require.NoError(t, e.HandleAction(context.Background(), CloseModal{}))

	assert.True(t, e.Session().Open(), "an in-progress add cannot be dismissed by closeModal")
	assert.Equal(t, ModeAdding, e.Session().Mode())
}

func TestCloseModalDiscardsViewingSession(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))
	require.NoError(t, e.HandleAction(context.Background(), ChangeNote{Text: "half-typed"}))

	require.NoError(t, e.HandleAction(context.Background(), CloseModal{}))
	assert.False(t, e.Session().Open())

	require.NoError(t, e.View(item.ID))
	assert.Equal(t, "", e.Session().LocalNote(), "the buffered note did not survive the close")
}

func TestEpisodeNavigationPersistsPosition(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	require.NoError(t, e.HandleAction(context.Background(), ChangeEpisode{Direction: DirectionNext}))

	stored, _ := e.Collection().Get(item.ID)
	assert.Equal(t, int32(4), stored.CurEpisode)
}

func TestSubmitInputPersistsPosition(t *testing.T) {
	e := newShowEngine(t, nil)
	item := addShow(t, e)
	require.NoError(t, e.View(item.ID))

	require.NoError(t, e.HandleAction(context.Background(), ClickInput{Field: FieldEpisode}))
	require.NoError(t, e.HandleAction(context.Background(), ChangeInput{Field: FieldEpisode, Raw: "8"}))
	require.NoError(t, e.HandleAction(context.Background(), SubmitInput{Field: FieldEpisode}))

	stored, _ := e.Collection().Get(item.ID)
	assert.Equal(t, int32(8), stored.CurEpisode)
}

func TestActionsWithoutSelection(t *testing.T) {
	e := newShowEngine(t, nil)

	assert.ErrorIs(t, e.HandleAction(context.Background(), ChangeScore{Score: 5}), ErrNoSelection)
	assert.ErrorIs(t, e.HandleAction(context.Background(), DeleteItem{}), ErrNoSelection)
	assert.ErrorIs(t, e.HandleAction(context.Background(), ChangeEpisode{Direction: DirectionNext}), ErrNoSelection)
}

func TestDraftEditsStayLocal(t *testing.T) {
	e := newShowEngine(t, nil)
	e.Session().AddDraft(Item{Type: media.TypeShow, Title: "draft", Seasons: twoSeasons(), CurEpisode: 1})

	require.NoError(t, e.HandleAction(context.Background(), ChangeScore{Score: 7}))
	require.NoError(t, e.HandleAction(context.Background(), ChangeStatus{Label: media.ShowVocabulary.InProgress}))

	draft := e.Session().Selected()
	require.NotNil(t, draft.Score)
	assert.Equal(t, int32(7), *draft.Score)
	assert.Equal(t, media.ShowVocabulary.InProgress, draft.StatusLabel)
	assert.Empty(t, e.Collection().Items(), "drafts never touch the collection")
}
