package media

// Season is one entry of a show's ordered season list.
type Season struct {
	EpisodeCount int32 `json:"episodeCount"`
}

// CalcProgress derives a percent-complete for a position inside a season list.
//
// The (0,1) starting position is special-cased: when the status label equals
// the media type's not-started sentinel the function returns 100, matching the
// listing behavior this calculation has always had; any other label at the
// starting position yields the minimal baseline of 1.
func CalcProgress(seasons []Season, curSeasonIndex, curEpisode int32, status, notStarted string) float64 {
	if len(seasons) == 0 {
		return 0
	}

	if curSeasonIndex == 0 && curEpisode == 1 {
		if status == notStarted {
			return 100
		}
		return 1
	}

	if curSeasonIndex >= int32(len(seasons)) {
		curSeasonIndex = int32(len(seasons)) - 1
	}

	var completed, total int32
	for i, season := range seasons {
		if int32(i) < curSeasonIndex {
			completed += season.EpisodeCount
		}
		total += season.EpisodeCount
	}
	completed += curEpisode

	if total == 0 {
		return 0
	}

	return 100 * float64(completed) / float64(total)
}

// LastPosition returns the final (seasonIndex, episode) pair for a season
// list, which is where a completed show is pinned.
func LastPosition(seasons []Season) (int32, int32) {
	if len(seasons) == 0 {
		return 0, 1
	}
	last := int32(len(seasons)) - 1
	episodes := seasons[last].EpisodeCount
	if episodes < 1 {
		episodes = 1
	}
	return last, episodes
}
