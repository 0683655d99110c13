package manager

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/calbec/medialog/pkg/media"
	"github.com/calbec/medialog/pkg/storage"
)

var titleFolder = cases.Fold()

// Collection is the in-memory view of one media type's persisted list.
// Writes apply locally first so the caller sees the change immediately; if
// the storage write then fails the local copy rolls back to the persisted
// version.
type Collection struct {
	typ   media.Type
	store storage.Storage
	log   *zap.SugaredLogger

	mu         sync.RWMutex
	items      []Item
	processing atomic.Int64
}

func NewCollection(typ media.Type, store storage.Storage, log *zap.SugaredLogger) *Collection {
	return &Collection{
		typ:   typ,
		store: store,
		log:   log,
	}
}

// Load replaces the in-memory view with the persisted list.
func (c *Collection) Load(ctx context.Context) error {
	items, err := c.list(ctx)
	if err != nil {
		return fmt.Errorf("failed to load %s collection: %w", c.typ, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	return nil
}

func (c *Collection) list(ctx context.Context) ([]Item, error) {
	switch c.typ {
	case media.TypeBook:
		books, err := c.store.ListBooks(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, len(books))
		for i, book := range books {
			items[i] = itemFromBook(*book)
		}
		return items, nil
	case media.TypeMovie:
		movies, err := c.store.ListMovies(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, len(movies))
		for i, movie := range movies {
			items[i] = itemFromMovie(*movie)
		}
		return items, nil
	case media.TypeShow:
		shows, err := c.store.ListShows(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, len(shows))
		for i, show := range shows {
			items[i] = itemFromShow(*show)
		}
		return items, nil
	case media.TypeGame:
		games, err := c.store.ListGames(ctx)
		if err != nil {
			return nil, err
		}
		items := make([]Item, len(games))
		for i, game := range games {
			items[i] = itemFromGame(*game)
		}
		return items, nil
	}
	return nil, fmt.Errorf("unknown media type %q", c.typ)
}

// Items returns a snapshot copy of the collection.
func (c *Collection) Items() []Item {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot := make([]Item, len(c.items))
	copy(snapshot, c.items)
	return snapshot
}

// Get returns a copy of one item by id.
func (c *Collection) Get(id int64) (Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// FindByTitle matches a title case-insensitively using unicode case folding.
func (c *Collection) FindByTitle(title string) (Item, bool) {
	folded := titleFolder.String(title)
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if titleFolder.String(item.Title) == folded {
			return item, true
		}
	}
	return Item{}, false
}

// FindByExternalKey matches the duplicate-detection identity.
func (c *Collection) FindByExternalKey(key string) (Item, bool) {
	if key == "" {
		return Item{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ExternalKey() == key {
			return item, true
		}
	}
	return Item{}, false
}

// IsProcessing reports whether a storage write is in flight.
func (c *Collection) IsProcessing() bool {
	return c.processing.Load() > 0
}

// Add persists a new item and appends it to the view with its assigned id.
func (c *Collection) Add(ctx context.Context, item Item) (Item, error) {
	c.processing.Add(1)
	defer c.processing.Add(-1)

	id, err := c.create(ctx, item)
	if err != nil {
		return Item{}, fmt.Errorf("failed to add %s: %w", c.typ, err)
	}
	item.ID = id

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	return item, nil
}

func (c *Collection) create(ctx context.Context, item Item) (int64, error) {
	switch c.typ {
	case media.TypeBook:
		return c.store.CreateBook(ctx, bookFromItem(item))
	case media.TypeMovie:
		return c.store.CreateMovie(ctx, movieFromItem(item))
	case media.TypeShow:
		return c.store.CreateShow(ctx, showFromItem(item))
	case media.TypeGame:
		return c.store.CreateGame(ctx, gameFromItem(item))
	}
	return 0, fmt.Errorf("unknown media type %q", c.typ)
}

// Update applies the patch to the local copy immediately, then persists it.
// A failed persist restores the previous local copy.
func (c *Collection) Update(ctx context.Context, id int64, patch ItemPatch) (Item, error) {
	if patch.Empty() {
		item, ok := c.Get(id)
		if !ok {
			return Item{}, storage.ErrNotFound
		}
		return item, nil
	}

	c.mu.Lock()
	index := -1
	for i := range c.items {
		if c.items[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		c.mu.Unlock()
		return Item{}, storage.ErrNotFound
	}

	previous := c.items[index]
	patch.apply(&c.items[index])
	c.items[index].Version = previous.Version + 1
	updated := c.items[index]
	c.mu.Unlock()

	c.processing.Add(1)
	defer c.processing.Add(-1)

	if err := c.persistUpdate(ctx, id, patch.storagePatch()); err != nil {
		c.log.Errorw("update failed, rolling back local copy", "type", c.typ, "id", id, "error", err)
		c.mu.Lock()
		for i := range c.items {
			if c.items[i].ID == id {
				c.items[i] = previous
				break
			}
		}
		c.mu.Unlock()
		return Item{}, fmt.Errorf("failed to update %s: %w", c.typ, err)
	}

	return updated, nil
}

func (c *Collection) persistUpdate(ctx context.Context, id int64, patch storage.Patch) error {
	switch c.typ {
	case media.TypeBook:
		return c.store.UpdateBook(ctx, id, patch)
	case media.TypeMovie:
		return c.store.UpdateMovie(ctx, id, patch)
	case media.TypeShow:
		return c.store.UpdateShow(ctx, id, patch)
	case media.TypeGame:
		return c.store.UpdateGame(ctx, id, patch)
	}
	return fmt.Errorf("unknown media type %q", c.typ)
}

// Delete removes the item from the view immediately and then from storage,
// restoring it if the storage delete fails.
func (c *Collection) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	index := -1
	for i := range c.items {
		if c.items[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		c.mu.Unlock()
		return storage.ErrNotFound
	}
	removed := c.items[index]
	c.items = append(c.items[:index], c.items[index+1:]...)
	c.mu.Unlock()

	c.processing.Add(1)
	defer c.processing.Add(-1)

	if err := c.persistDelete(ctx, id); err != nil {
		c.log.Errorw("delete failed, restoring local copy", "type", c.typ, "id", id, "error", err)
		c.mu.Lock()
		c.items = append(c.items, removed)
		c.mu.Unlock()
		return fmt.Errorf("failed to delete %s: %w", c.typ, err)
	}

	return nil
}

func (c *Collection) persistDelete(ctx context.Context, id int64) error {
	switch c.typ {
	case media.TypeBook:
		return c.store.DeleteBook(ctx, id)
	case media.TypeMovie:
		return c.store.DeleteMovie(ctx, id)
	case media.TypeShow:
		return c.store.DeleteShow(ctx, id)
	case media.TypeGame:
		return c.store.DeleteGame(ctx, id)
	}
	return fmt.Errorf("unknown media type %q", c.typ)
}
