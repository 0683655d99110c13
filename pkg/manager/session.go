package manager

// Mode says what the detail modal is currently doing.
type Mode string

const (
	ModeClosed  Mode = "closed"
	ModeViewing Mode = "viewing"
	ModeAdding  Mode = "adding"
)

// Session is the transient state behind an open detail modal: the selected
// item copy, the buffered note edit, the season/episode navigator, and the
// series-option stepper. Everything here is discarded on close.
type Session struct {
	mode Mode

	item      *Item
	localNote string
	nav       *Navigator

	seriesOptions []SeriesOption
	optionIndex   int
}

func NewSession() *Session {
	return &Session{mode: ModeClosed}
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Open() bool {
	return s.mode != ModeClosed
}

// Selected returns the session's working copy of the item.
func (s *Session) Selected() *Item {
	return s.item
}

// LocalNote is the buffered, not-yet-saved note text.
func (s *Session) LocalNote() string {
	return s.localNote
}

// Navigator returns the season/episode navigator, nil unless a show is open.
func (s *Session) Navigator() *Navigator {
	return s.nav
}

// View opens the modal on an existing collection item.
func (s *Session) View(item Item) {
	s.open(ModeViewing, item)
}

// AddDraft opens the modal on an add-flow draft.
func (s *Session) AddDraft(item Item) {
	s.open(ModeAdding, item)
}

func (s *Session) open(mode Mode, item Item) {
	s.mode = mode
	s.item = &item
	s.localNote = ""
	if item.Note != nil {
		s.localNote = *item.Note
	}
	s.nav = nil
	if len(item.Seasons) > 0 {
		s.nav = NewNavigator(item.Seasons, item.CurSeasonIndex, item.CurEpisode)
	}
	s.seriesOptions = nil
	s.optionIndex = 0
}

// Close discards all transient state.
func (s *Session) Close() {
	s.mode = ModeClosed
	s.item = nil
	s.localNote = ""
	s.nav = nil
	s.seriesOptions = nil
	s.optionIndex = 0
}

// SetSeriesOptions installs the disambiguation candidates, applying the first.
func (s *Session) SetSeriesOptions(options []SeriesOption) {
	s.seriesOptions = options
	s.optionIndex = 0
	s.applyOption()
}

// SeriesOptions returns the installed candidates.
func (s *Session) SeriesOptions() []SeriesOption {
	return s.seriesOptions
}

// StepSeriesOption moves through the candidate list with wraparound and
// re-derives the series fields and the cleaned working title.
func (s *Session) StepSeriesOption(direction Direction) bool {
	if len(s.seriesOptions) < 2 || s.item == nil {
		return false
	}

	switch direction {
	case DirectionPrev:
		s.optionIndex--
		if s.optionIndex < 0 {
			s.optionIndex = len(s.seriesOptions) - 1
		}
	case DirectionNext:
		s.optionIndex++
		if s.optionIndex >= len(s.seriesOptions) {
			s.optionIndex = 0
		}
	default:
		return false
	}

	s.applyOption()
	return true
}

func (s *Session) applyOption() {
	if s.item == nil || len(s.seriesOptions) == 0 {
		return
	}
	option := s.seriesOptions[s.optionIndex]
	s.item.Series = option.Series
	s.item.Prequel = option.Prequel
	s.item.Sequel = option.Sequel
	if option.CleanTitle != "" {
		s.item.Title = option.CleanTitle
	}
}
