package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/storage"
	"github.com/calbec/medialog/pkg/storage/sqlite/schema/gen/model"
)

func testShow(tmdbID int32, title string) storage.Show {
	return storage.Show{
		Show: model.Show{
			TmdbID:     tmdbID,
			Title:      title,
			CurEpisode: 1,
			Status:     media.ShowVocabulary.Planned,
		},
		Seasons: []model.ShowSeason{
			{Number: 1, EpisodeCount: 10},
			{Number: 2, EpisodeCount: 8},
		},
	}
}

func TestShowLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateShow(ctx, testShow(1399, "Game of Thrones"))
	require.NoError(t, err)

	got, err := store.GetShow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", got.Title)
	require.Len(t, got.Seasons, 2)
	assert.Equal(t, int32(10), got.Seasons[0].EpisodeCount)
	assert.Equal(t, int32(8), got.Seasons[1].EpisodeCount)
	assert.Equal(t, []media.Season{{EpisodeCount: 10}, {EpisodeCount: 8}}, got.SeasonList())

	byTmdb, err := store.GetShowByTmdbID(ctx, 1399)
	require.NoError(t, err)
	assert.Equal(t, got.ID, byTmdb.ID)

	var patch storage.Patch
	patch.Set("cur_season_index", int32(1))
	patch.Set("cur_episode", int32(5))
	patch.Set("status", media.ShowVocabulary.InProgress)
	require.NoError(t, store.UpdateShow(ctx, id, patch))

	got, err = store.GetShow(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.CurSeasonIndex)
	assert.Equal(t, int32(5), got.CurEpisode)
	assert.Equal(t, media.ShowVocabulary.InProgress, got.Status)

	require.NoError(t, store.DeleteShow(ctx, id))
	_, err = store.GetShow(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestShowDateCompletedPatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateShow(ctx, testShow(100, "Severance"))
	require.NoError(t, err)

	completed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var patch storage.Patch
	patch.Set("status", media.ShowVocabulary.Completed)
	patch.Set("date_completed", completed)
	require.NoError(t, store.UpdateShow(ctx, id, patch))

	got, err := store.GetShow(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.DateCompleted)
	assert.True(t, got.DateCompleted.Equal(completed))

	// moving away from completed clears the stamp
	var clear storage.Patch
	clear.Set("status", media.ShowVocabulary.InProgress)
	clear.Set("date_completed", nil)
	require.NoError(t, store.UpdateShow(ctx, id, clear))

	got, err = store.GetShow(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.DateCompleted)
}

func TestSetShowSeasonsReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.CreateShow(ctx, testShow(200, "Dark"))
	require.NoError(t, err)

	err = store.SetShowSeasons(ctx, id, []model.ShowSeason{
		{Number: 1, EpisodeCount: 10},
		{Number: 2, EpisodeCount: 8},
		{Number: 3, EpisodeCount: 8},
	})
	require.NoError(t, err)

	got, err := store.GetShow(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Seasons, 3)
	assert.Equal(t, int32(3), got.Seasons[2].Number)
}

func TestListShowsKeepsSeasonOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateShow(ctx, testShow(1, "First"))
	require.NoError(t, err)
	_, err = store.CreateShow(ctx, testShow(2, "Second"))
	require.NoError(t, err)

	shows, err := store.ListShows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 2)
	assert.Equal(t, "First", shows[0].Title)
	require.Len(t, shows[0].Seasons, 2)
	assert.Equal(t, int32(1), shows[0].Seasons[0].Number)
}
