package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/calbec/medialog/pkg/media"
)

// Action is one UI intent aimed at the open detail modal. The reducer in
// HandleAction dispatches on the concrete variant; the unexported marker
// keeps the set of variants closed.
type Action interface {
	isAction()
}

type CloseModal struct{}

type DeleteItem struct{}

type ChangeStatus struct {
	Label string
}

type ChangeScore struct {
	Score int32
}

type ChangeNote struct {
	Text string
}

type SaveNote struct{}

type ChangeSeason struct {
	Direction Direction
}

type ChangeEpisode struct {
	Direction Direction
}

type ClickInput struct {
	Field Field
}

type ChangeInput struct {
	Field Field
	Raw   string
}

type SubmitInput struct {
	Field Field
}

type CancelInput struct {
	Field Field
}

type NavigateChain struct {
	Ref ChainRef
}

type StepSeriesOption struct {
	Direction Direction
}

func (CloseModal) isAction()       {}
func (DeleteItem) isAction()       {}
func (ChangeStatus) isAction()     {}
func (ChangeScore) isAction()      {}
func (ChangeNote) isAction()       {}
func (SaveNote) isAction()         {}
func (ChangeSeason) isAction()     {}
func (ChangeEpisode) isAction()    {}
func (ClickInput) isAction()       {}
func (ChangeInput) isAction()      {}
func (SubmitInput) isAction()      {}
func (CancelInput) isAction()      {}
func (NavigateChain) isAction()    {}
func (StepSeriesOption) isAction() {}

// HandleAction is the single reducer entry point for the detail modal.
func (e *Engine) HandleAction(ctx context.Context, action Action) error {
	switch a := action.(type) {
	case CloseModal:
		// an in-progress add can only be abandoned through Cancel
		if e.session.Mode() == ModeAdding {
			return nil
		}
		e.session.Close()
		return nil

	case DeleteItem:
		item := e.session.Selected()
		if item == nil {
			return ErrNoSelection
		}
		id := item.ID
		e.session.Close()
		if id == 0 {
			return nil
		}
		return e.collection.Delete(ctx, id)

	case ChangeStatus:
		return e.changeStatus(ctx, a.Label)

	case ChangeScore:
		if e.session.Selected() == nil {
			return ErrNoSelection
		}
		if err := media.ValidateScore(a.Score); err != nil {
			return err
		}
		score := a.Score
		return e.emit(ctx, ItemPatch{Score: &score})

	case ChangeNote:
		if e.session.Selected() == nil {
			return ErrNoSelection
		}
		e.session.localNote = a.Text
		return nil

	case SaveNote:
		return e.saveNote(ctx)

	case ChangeSeason:
		nav := e.session.Navigator()
		if nav == nil {
			return ErrNoSelection
		}
		if !nav.ChangeSeason(a.Direction) {
			return nil
		}
		return e.emitPosition(ctx, nav)

	case ChangeEpisode:
		nav := e.session.Navigator()
		if nav == nil {
			return ErrNoSelection
		}
		if !nav.ChangeEpisode(a.Direction) {
			return nil
		}
		return e.emitPosition(ctx, nav)

	case ClickInput:
		nav := e.session.Navigator()
		if nav == nil {
			return ErrNoSelection
		}
		nav.ClickInput(a.Field)
		return nil

	case ChangeInput:
		nav := e.session.Navigator()
		if nav == nil {
			return ErrNoSelection
		}
		nav.ChangeInput(a.Field, a.Raw)
		return nil

	case SubmitInput:
		nav := e.session.Navigator()
		if nav == nil {
			return ErrNoSelection
		}
		if !nav.SubmitInput(a.Field) {
			return nil
		}
		return e.emitPosition(ctx, nav)

	case CancelInput:
		nav := e.session.Navigator()
		if nav == nil {
			return ErrNoSelection
		}
		nav.CancelInput(a.Field)
		return nil

	case NavigateChain:
		_, err := e.ResolveChain(a.Ref)
		return err

	case StepSeriesOption:
		e.session.StepSeriesOption(a.Direction)
		return nil
	}

	return fmt.Errorf("%w: %T", ErrUnknownAction, action)
}

func (e *Engine) changeStatus(ctx context.Context, label string) error {
	item := e.session.Selected()
	if item == nil {
		return ErrNoSelection
	}

	next, err := e.profile.Vocabulary.Canonical(label)
	if err != nil {
		return err
	}
	previous, _ := e.profile.Vocabulary.Canonical(item.StatusLabel)

	patch := ItemPatch{StatusLabel: &label}
	switch {
	case next == media.StatusCompleted:
		now := time.Now().UTC()
		patch.DateCompleted = &now
		if nav := e.session.Navigator(); nav != nil {
			nav.Complete()
			seasonIndex, episode := nav.Position()
			patch.CurSeasonIndex = &seasonIndex
			patch.CurEpisode = &episode
		}
	case previous == media.StatusCompleted && item.DateCompleted != nil:
		patch.ClearDateCompleted = true
	}

	return e.emit(ctx, patch)
}

func (e *Engine) saveNote(ctx context.Context) error {
	item := e.session.Selected()
	if item == nil {
		return ErrNoSelection
	}

	committed := deref(item.Note)
	buffered := e.session.localNote
	if buffered == committed {
		return nil
	}
	if err := media.ValidateNote(buffered); err != nil {
		return err
	}

	return e.emit(ctx, ItemPatch{Note: &buffered})
}

func (e *Engine) emitPosition(ctx context.Context, nav *Navigator) error {
	seasonIndex, episode := nav.Position()
	return e.emit(ctx, ItemPatch{CurSeasonIndex: &seasonIndex, CurEpisode: &episode})
}

// emit routes a patch either into the add-flow draft (local only) or through
// the collection's optimistic update path.
func (e *Engine) emit(ctx context.Context, patch ItemPatch) error {
	item := e.session.Selected()
	if item == nil {
		return ErrNoSelection
	}

	if e.session.Mode() == ModeAdding || item.ID == 0 {
		patch.apply(item)
		return nil
	}

	updated, err := e.collection.Update(ctx, item.ID, patch)
	if err != nil {
		// the collection rolled back; bring the session copy along
		if current, ok := e.collection.Get(item.ID); ok {
			e.resync(current)
		}
		return err
	}

	e.resync(updated)
	return nil
}

// resync refreshes the session's working copy from the collection while
// keeping the buffered note untouched.
func (e *Engine) resync(current Item) {
	item := e.session.Selected()
	if item == nil {
		return
	}
	note := e.session.localNote
	*item = current
	e.session.localNote = note
	if nav := e.session.Navigator(); nav != nil {
		nav.seasonIndex, nav.episode = nav.clampPosition(current.CurSeasonIndex, current.CurEpisode)
	}
}
