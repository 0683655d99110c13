package manager

import "strconv"

// ChainRef points at a linked item: a prequel/sequel title for books and
// movies, or a numeric igdb id for a game's DLC chain entry.
type ChainRef struct {
	Title    string
	IgdbID   int32
	DLCIndex int32
}

// ChainRedirect is produced when the reference isn't in the collection yet:
// the add flow opens pre-seeded with the missing title. For games it also
// carries the chain position and the origin title, which the add flow needs
// to re-derive the chain's main-title label.
type ChainRedirect struct {
	PrefillTitle string
	DLCIndex     int32
	OriginTitle  string
}

// ResolveChain looks the reference up in the in-memory collection. On a hit
// the session switches to the matched item, no network involved. On a miss
// the add flow is pre-seeded and the redirect returned. Persisted data is
// never touched either way.
func (e *Engine) ResolveChain(ref ChainRef) (*ChainRedirect, error) {
	var (
		found Item
		ok    bool
	)
	if ref.IgdbID != 0 {
		found, ok = e.collection.FindByExternalKey(strconv.Itoa(int(ref.IgdbID)))
	} else {
		found, ok = e.collection.FindByTitle(ref.Title)
	}

	if ok {
		e.session.View(found)
		return nil, nil
	}

	redirect := &ChainRedirect{
		PrefillTitle: ref.Title,
		DLCIndex:     ref.DLCIndex,
	}
	if origin := e.session.Selected(); origin != nil {
		redirect.OriginTitle = origin.Title
	}

	e.flow.SetPrefill(redirect)
	return redirect, nil
}
