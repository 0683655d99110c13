package manager

import (
	"strconv"
	"strings"

	"github.com/calbec/medialog/pkg/media"
)

// Direction steps a navigator backward or forward.
type Direction string

const (
	DirectionPrev Direction = "prev"
	DirectionNext Direction = "next"
)

// Field names one of the navigator's editable inputs.
type Field string

const (
	FieldSeason  Field = "season"
	FieldEpisode Field = "episode"
)

// Navigator tracks a position inside an ordered season list and a parallel
// raw-text editing mode for the season and episode inputs. Seasons are
// 0-indexed, episodes 1-indexed within the current season.
type Navigator struct {
	seasons     []media.Season
	seasonIndex int32
	episode     int32

	editing map[Field]bool
	inputs  map[Field]string
}

// NewNavigator builds a navigator at the given committed position, clamping
// it into bounds against the season list.
func NewNavigator(seasons []media.Season, seasonIndex, episode int32) *Navigator {
	n := &Navigator{
		seasons: seasons,
		editing: make(map[Field]bool),
		inputs:  make(map[Field]string),
	}
	n.seasonIndex, n.episode = n.clampPosition(seasonIndex, episode)
	return n
}

// Position returns the committed (seasonIndex, episode) pair.
func (n *Navigator) Position() (int32, int32) {
	return n.seasonIndex, n.episode
}

// Editing reports whether a field is in raw-input editing mode.
func (n *Navigator) Editing(field Field) bool {
	return n.editing[field]
}

// InputValue returns the transient raw text for a field.
func (n *Navigator) InputValue(field Field) string {
	return n.inputs[field]
}

func (n *Navigator) clampPosition(seasonIndex, episode int32) (int32, int32) {
	if len(n.seasons) == 0 {
		return 0, 1
	}
	if seasonIndex < 0 {
		seasonIndex = 0
	}
	if seasonIndex >= int32(len(n.seasons)) {
		seasonIndex = int32(len(n.seasons)) - 1
	}
	if episode < 1 {
		episode = 1
	}
	if max := n.seasons[seasonIndex].EpisodeCount; episode > max && max > 0 {
		episode = max
	}
	return seasonIndex, episode
}

// ChangeSeason moves the season by one in the given direction. Episode resets
// to 1. A step past either end is a no-op; the return value reports whether
// the position changed.
func (n *Navigator) ChangeSeason(direction Direction) bool {
	if len(n.seasons) == 0 {
		return false
	}

	switch direction {
	case DirectionPrev:
		if n.seasonIndex == 0 {
			return false
		}
		n.seasonIndex--
	case DirectionNext:
		if n.seasonIndex >= int32(len(n.seasons))-1 {
			return false
		}
		n.seasonIndex++
	default:
		return false
	}

	n.episode = 1
	return true
}

// ChangeEpisode moves the episode by one, crossing season boundaries: forward
// into episode 1 of the next season, backward into the last episode of the
// previous one. Stepping before (0,1) or past the final episode is a no-op.
func (n *Navigator) ChangeEpisode(direction Direction) bool {
	if len(n.seasons) == 0 {
		return false
	}

	switch direction {
	case DirectionPrev:
		if n.episode > 1 {
			n.episode--
			return true
		}
		if n.seasonIndex == 0 {
			return false
		}
		n.seasonIndex--
		n.episode = n.seasons[n.seasonIndex].EpisodeCount
		if n.episode < 1 {
			n.episode = 1
		}
		return true
	case DirectionNext:
		if n.episode < n.seasons[n.seasonIndex].EpisodeCount {
			n.episode++
			return true
		}
		if n.seasonIndex >= int32(len(n.seasons))-1 {
			return false
		}
		n.seasonIndex++
		n.episode = 1
		return true
	}
	return false
}

// ClickInput toggles editing mode for a field. Entering edit mode seeds the
// raw input from the committed value; a second click cancels without
// committing.
func (n *Navigator) ClickInput(field Field) {
	if n.editing[field] {
		n.cancelInput(field)
		return
	}

	n.editing[field] = true
	switch field {
	case FieldSeason:
		// the input shows 1-based season numbers
		n.inputs[field] = strconv.Itoa(int(n.seasonIndex) + 1)
	case FieldEpisode:
		n.inputs[field] = strconv.Itoa(int(n.episode))
	}
}

// ChangeInput replaces the raw text for a field. Empty stays empty; anything
// that doesn't parse as an integer is treated as empty; parsed values are
// floored at 1.
func (n *Navigator) ChangeInput(field Field, raw string) {
	if !n.editing[field] {
		return
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		n.inputs[field] = ""
		return
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		n.inputs[field] = ""
		return
	}
	if value < 1 {
		value = 1
	}
	n.inputs[field] = strconv.Itoa(value)
}

// SubmitInput commits the raw input: empty reverts to the committed value,
// otherwise the parsed value is clamped into [1, upperBound] and committed.
// Editing mode always exits. The return value reports whether the committed
// position changed.
func (n *Navigator) SubmitInput(field Field) bool {
	if !n.editing[field] {
		return false
	}

	raw := n.inputs[field]
	n.cancelInput(field)

	if raw == "" {
		return false
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return false
	}

	switch field {
	case FieldSeason:
		if upper := int32(len(n.seasons)); upper > 0 && int32(value) > upper {
			value = int(upper)
		}
		target := int32(value) - 1
		if target == n.seasonIndex {
			return false
		}
		n.seasonIndex = target
		n.episode = 1
		return true
	case FieldEpisode:
		if len(n.seasons) == 0 {
			return false
		}
		if upper := n.seasons[n.seasonIndex].EpisodeCount; upper > 0 && int32(value) > upper {
			value = int(upper)
		}
		target := int32(value)
		if target == n.episode {
			return false
		}
		n.episode = target
		return true
	}
	return false
}

// CancelInput exits editing mode reverting any typed value (Escape, or a
// second click on the input).
func (n *Navigator) CancelInput(field Field) {
	n.cancelInput(field)
}

func (n *Navigator) cancelInput(field Field) {
	delete(n.editing, field)
	delete(n.inputs, field)
}

// Complete pins the position to the last episode of the last season.
func (n *Navigator) Complete() {
	n.seasonIndex, n.episode = media.LastPosition(n.seasons)
}
