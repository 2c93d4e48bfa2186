package cache

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/allegro/bigcache/v3"

	metav1 "pingerd/pkg/meta/v1"
)

var ErrNotFound = errors.New("snapshot not found")

// SnapshotArchive keeps terminal campaign snapshots readable after the live
// progress entry is evicted. Entries expire with the archive TTL.
type SnapshotArchive interface {
	Put(snapshot *metav1.CampaignSnapshot) error
	Get(campaignID string) (*metav1.CampaignSnapshot, error)
	Del(campaignID string) error
}

type snapshotArchive struct {
	cache *bigcache.BigCache
}

func NewSnapshotArchive(ttl time.Duration) (SnapshotArchive, error) {
	c, err := bigcache.NewBigCache(bigcache.DefaultConfig(ttl))
	if err != nil {
		return nil, err
	}

	return &snapshotArchive{cache: c}, nil
}

func (a *snapshotArchive) Put(snapshot *metav1.CampaignSnapshot) error {
	b, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return a.cache.Set(snapshot.CampaignID, b)
}

func (a *snapshotArchive) Get(campaignID string) (*metav1.CampaignSnapshot, error) {
	b, err := a.cache.Get(campaignID)
	if err != nil {
		if errors.Is(err, bigcache.ErrEntryNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var snapshot metav1.CampaignSnapshot

	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (a *snapshotArchive) Del(campaignID string) error {
	return a.cache.Delete(campaignID)
}
