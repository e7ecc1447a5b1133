// mediahub/client/likes.go
package client

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"mediahub/models"
)

// Ledger is the viewer-local record of liked content ids. It survives
// restarts through a JSON file and is never reconciled against other
// viewers; the server only ever sees the count increments.
type Ledger struct {
	path string

	mu    sync.Mutex
	liked map[string]bool
}

// OpenLedger loads the ledger file, starting fresh when it is missing or
// unreadable as JSON.
func OpenLedger(path string) (*Ledger, error) {
	l := &Ledger{path: path, liked: make(map[string]bool)}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &l.liked); err != nil {
		l.liked = make(map[string]bool)
	}
	return l, nil
}

// Liked reports whether this viewer already liked the content id.
func (l *Ledger) Liked(contentID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.liked[contentID]
}

// Mark records a like and persists the ledger.
func (l *Ledger) Mark(contentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.liked[contentID] = true
	raw, err := json.Marshal(l.liked)
	if err != nil {
		return err
	}
	return os.WriteFile(l.path, raw, 0600)
}

// Like increments the like count of a file or featured item exactly once per
// viewer. The second like of the same content returns ErrAlreadyLiked with
// no mutation. On success it returns the new count.
func (ws *Workspace) Like(ctx context.Context, contentID string) (int, error) {
	if ws.ledger.Liked(contentID) {
		return 0, ErrAlreadyLiked
	}

	if _, ok := ws.lookupFile(contentID); ok {
		return ws.likeFile(ctx, contentID)
	}
	if _, ok := ws.lookupFeatured(contentID); ok {
		return ws.likeFeatured(ctx, contentID)
	}
	return 0, &NotFoundError{Kind: "content", ID: contentID}
}

func (ws *Workspace) likeFile(ctx context.Context, id string) (int, error) {
	var newCount int
	err := ws.run(ctx, mutation{
		op: OpLikeContent,
		apply: func() {
			if i := ws.fileIndex(id); i >= 0 {
				ws.files[i].Likes++
				newCount = ws.files[i].Likes
			}
		},
		revert: func() {
			if i := ws.fileIndex(id); i >= 0 {
				ws.files[i].Likes--
			}
		},
		call: func(ctx context.Context) error {
			updated, ok, err := ws.gw.UpdateFile(ctx, id, models.FileUpdate{Likes: &newCount})
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFile(id, updated)
				newCount = updated.Likes
			}
			return nil
		},
		reload: ws.reloadFiles,
	})
	if err != nil {
		return 0, err
	}
	if err := ws.ledger.Mark(id); err != nil {
		ws.logger.Warn("Failed to persist like ledger", "content_id", id, "error", err)
	}
	return newCount, nil
}

func (ws *Workspace) likeFeatured(ctx context.Context, id string) (int, error) {
	var newCount int
	err := ws.run(ctx, mutation{
		op: OpLikeContent,
		apply: func() {
			if i := ws.featuredIndex(id); i >= 0 {
				ws.featured[i].Likes++
				newCount = ws.featured[i].Likes
			}
		},
		revert: func() {
			if i := ws.featuredIndex(id); i >= 0 {
				ws.featured[i].Likes--
			}
		},
		call: func(ctx context.Context) error {
			updated, ok, err := ws.gw.UpdateFeatured(ctx, id, models.FeaturedUpdate{Likes: &newCount})
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFeatured(id, updated)
				newCount = updated.Likes
			}
			return nil
		},
		reload: ws.reloadFeatured,
	})
	if err != nil {
		return 0, err
	}
	if err := ws.ledger.Mark(id); err != nil {
		ws.logger.Warn("Failed to persist like ledger", "content_id", id, "error", err)
	}
	return newCount, nil
}
