package views

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = time.Hour

// CachedStore is a read-through Redis cache in front of a Store. Cache
// failures degrade to the database; they are logged, never surfaced.
type CachedStore struct {
	store *Store
	rdb   *redis.Client
}

func NewCachedStore(store *Store, rdb *redis.Client) *CachedStore {
	return &CachedStore{store: store, rdb: rdb}
}

func cacheKey(userID string, c Category, parentID string) string {
	return fmt.Sprintf("viewsettings:%s:%s", userID, SettingsKey(c, parentID))
}

func (cs *CachedStore) Load(ctx context.Context, userID string, c Category, parentID string) (Settings, error) {
	key := cacheKey(userID, c, parentID)

	if raw, err := cs.rdb.Get(ctx, key).Bytes(); err == nil {
		var settings Settings
		if err := json.Unmarshal(raw, &settings); err == nil {
			return settings, nil
		}
		// Stale or corrupt entry; fall through to the database.
		cs.rdb.Del(ctx, key)
	}

	settings, err := cs.store.Load(userID, c, parentID)
	if err != nil {
		return Settings{}, err
	}
	if raw, err := json.Marshal(settings); err == nil {
		if err := cs.rdb.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
			log.Printf("[views] cache set failed: %v", err)
		}
	}
	return settings, nil
}

func (cs *CachedStore) Save(ctx context.Context, userID string, c Category, parentID string, settings Settings) error {
	if err := cs.store.Save(userID, c, parentID, settings); err != nil {
		return err
	}
	if err := cs.rdb.Del(ctx, cacheKey(userID, c, parentID)).Err(); err != nil {
		log.Printf("[views] cache invalidate failed: %v", err)
	}
	return nil
}

func (cs *CachedStore) Delete(ctx context.Context, userID string, c Category, parentID string) error {
	if err := cs.store.Delete(userID, c, parentID); err != nil {
		return err
	}
	if err := cs.rdb.Del(ctx, cacheKey(userID, c, parentID)).Err(); err != nil {
		log.Printf("[views] cache invalidate failed: %v", err)
	}
	return nil
}
