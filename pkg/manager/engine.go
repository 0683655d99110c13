package manager

import (
	"go.uber.org/zap"

	"github.com/calbec/medialog/pkg/storage"
)

// Engine binds one media type's collection, detail session and add flow
// behind the shared reducer. One engine exists per media type; they share no
// state with each other.
type Engine struct {
	profile    Profile
	collection *Collection
	session    *Session
	flow       *AddFlow
	log        *zap.SugaredLogger
}

func NewEngine(profile Profile, store storage.Storage, log *zap.SugaredLogger) *Engine {
	collection := NewCollection(profile.Type, store, log)
	session := NewSession()
	return &Engine{
		profile:    profile,
		collection: collection,
		session:    session,
		flow:       NewAddFlow(profile, collection, session, log),
		log:        log,
	}
}

func (e *Engine) Profile() Profile {
	return e.profile
}

func (e *Engine) Collection() *Collection {
	return e.collection
}

func (e *Engine) Session() *Session {
	return e.session
}

func (e *Engine) Flow() *AddFlow {
	return e.flow
}

// View opens the detail modal on a collection item.
func (e *Engine) View(id int64) error {
	item, ok := e.collection.Get(id)
	if !ok {
		return storage.ErrNotFound
	}
	e.session.View(item)
	return nil
}
