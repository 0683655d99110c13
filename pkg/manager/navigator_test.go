package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calbec/medialog/pkg/media"
)

func twoSeasons() []media.Season {
	return []media.Season{{EpisodeCount: 10}, {EpisodeCount: 8}}
}

func TestNavigatorWalkAcrossSeasons(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 1)

	assert.False(t, nav.ChangeEpisode(DirectionPrev), "prev at the very start is a no-op")
	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(0), seasonIndex)
	assert.Equal(t, int32(1), episode)

	for i := 0; i < 10; i++ {
		nav.ChangeEpisode(DirectionNext)
	}
	seasonIndex, episode = nav.Position()
	assert.Equal(t, int32(1), seasonIndex, "crossing the boundary moves into season 2")
	assert.Equal(t, int32(1), episode)

	assert.False(t, nav.ChangeSeason(DirectionNext), "already at the last season")

	for i := 0; i < 7; i++ {
		assert.True(t, nav.ChangeEpisode(DirectionNext))
	}
	seasonIndex, episode = nav.Position()
	assert.Equal(t, int32(1), seasonIndex)
	assert.Equal(t, int32(8), episode)

	assert.False(t, nav.ChangeEpisode(DirectionNext), "past the final episode is a no-op")
}

func TestNavigatorEpisodeBackwardAcrossBoundary(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 1, 1)

	require.True(t, nav.ChangeEpisode(DirectionPrev))
	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(0), seasonIndex)
	assert.Equal(t, int32(10), episode, "backward crossing lands on the previous season's last episode")
}

func TestNavigatorSeasonChangeResetsEpisode(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 7)

	require.True(t, nav.ChangeSeason(DirectionNext))
	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(1), seasonIndex)
	assert.Equal(t, int32(1), episode)

	assert.True(t, nav.ChangeSeason(DirectionPrev), "moving back is allowed")
}

func TestNavigatorPositionStaysInBounds(t *testing.T) {
	seasons := []media.Season{{EpisodeCount: 3}, {EpisodeCount: 1}, {EpisodeCount: 5}}
	nav := NewNavigator(seasons, 0, 1)

	steps := []Direction{
		DirectionNext, DirectionNext, DirectionNext, DirectionNext, DirectionPrev,
		DirectionNext, DirectionNext, DirectionNext, DirectionNext, DirectionNext,
		DirectionNext, DirectionNext, DirectionPrev, DirectionPrev, DirectionNext,
	}
	for _, step := range steps {
		nav.ChangeEpisode(step)
		seasonIndex, episode := nav.Position()
		require.GreaterOrEqual(t, seasonIndex, int32(0))
		require.Less(t, seasonIndex, int32(len(seasons)))
		require.GreaterOrEqual(t, episode, int32(1))
		require.LessOrEqual(t, episode, seasons[seasonIndex].EpisodeCount)
	}
}

func TestNavigatorClickSeedsAndSecondClickCancels(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 1, 4)

	nav.ClickInput(FieldEpisode)
	require.True(t, nav.Editing(FieldEpisode))
	assert.Equal(t, "4", nav.InputValue(FieldEpisode), "edit mode seeds from the committed value")

	nav.ClickInput(FieldEpisode)
	assert.False(t, nav.Editing(FieldEpisode))
	_, episode := nav.Position()
	assert.Equal(t, int32(4), episode, "cancel leaves the committed value alone")
}

func TestNavigatorSeasonInputIsOneBased(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 1, 1)

	nav.ClickInput(FieldSeason)
	assert.Equal(t, "2", nav.InputValue(FieldSeason))
}

func TestNavigatorChangeInputParsing(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 1)
	nav.ClickInput(FieldEpisode)

	nav.ChangeInput(FieldEpisode, "")
	assert.Equal(t, "", nav.InputValue(FieldEpisode))

	nav.ChangeInput(FieldEpisode, "abc")
	assert.Equal(t, "", nav.InputValue(FieldEpisode), "invalid parse is treated as empty")

	nav.ChangeInput(FieldEpisode, "0")
	assert.Equal(t, "1", nav.InputValue(FieldEpisode), "parsed values are floored at 1")

	nav.ChangeInput(FieldEpisode, "7")
	assert.Equal(t, "7", nav.InputValue(FieldEpisode))
}

func TestNavigatorSubmitClampsHigh(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 1)

	nav.ClickInput(FieldEpisode)
	nav.ChangeInput(FieldEpisode, "99")
	require.True(t, nav.SubmitInput(FieldEpisode))

	assert.False(t, nav.Editing(FieldEpisode))
	_, episode := nav.Position()
	assert.Equal(t, int32(10), episode, "clamped to the season's episode count")
}

func TestNavigatorSubmitEmptyReverts(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 6)

	nav.ClickInput(FieldEpisode)
	nav.ChangeInput(FieldEpisode, "")
	assert.False(t, nav.SubmitInput(FieldEpisode))

	assert.False(t, nav.Editing(FieldEpisode))
	_, episode := nav.Position()
	assert.Equal(t, int32(6), episode)
}

func TestNavigatorSubmitSameValueRoundTrip(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 6)

	nav.ClickInput(FieldEpisode)
	nav.ChangeInput(FieldEpisode, "6")
	assert.False(t, nav.SubmitInput(FieldEpisode), "same value commits nothing")
	assert.False(t, nav.Editing(FieldEpisode), "but edit mode still exits")
	_, episode := nav.Position()
	assert.Equal(t, int32(6), episode)
}

func TestNavigatorSubmitSeasonResetsEpisode(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 9)

	nav.ClickInput(FieldSeason)
	nav.ChangeInput(FieldSeason, "2")
	require.True(t, nav.SubmitInput(FieldSeason))

	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(1), seasonIndex)
	assert.Equal(t, int32(1), episode)
}

func TestNavigatorEscapeReverts(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 3)

	nav.ClickInput(FieldEpisode)
	nav.ChangeInput(FieldEpisode, "9")
	nav.CancelInput(FieldEpisode)

	assert.False(t, nav.Editing(FieldEpisode))
	_, episode := nav.Position()
	assert.Equal(t, int32(3), episode)
}

func TestNavigatorCompletePinsLastEpisode(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 0, 2)

	nav.Complete()
	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(1), seasonIndex)
	assert.Equal(t, int32(8), episode)
}

func TestNavigatorEmptySeasons(t *testing.T) {
	nav := NewNavigator(nil, 3, 9)

	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(0), seasonIndex)
	assert.Equal(t, int32(1), episode)
	assert.False(t, nav.ChangeEpisode(DirectionNext))
	assert.False(t, nav.ChangeSeason(DirectionNext))
}

func TestNavigatorClampsInitialPosition(t *testing.T) {
	nav := NewNavigator(twoSeasons(), 5, 99)

	seasonIndex, episode := nav.Position()
	assert.Equal(t, int32(1), seasonIndex)
	assert.Equal(t, int32(8), episode)
}
