/*
Package redisstore caches flattened model deltas in Redis, keyed by an
opaque feature key, so that independent workers building trees for the
same boosting iteration across processes or machines can skip
recomputing a delta someone else already published. It is grounded on
pbanos/botanic/tree/redisstore, which does the analogous job for whole
tree nodes (Create/Get/Store/Delete against a NodeEncodeDecoder over
gopkg.in/redis.v5), reduced here to the two operations a delta cache
needs: Put and Get, with JSON rather than a pluggable codec since a
Delta is just two arrays.
*/
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/redis.v5"

	"github.com/pbanos/ebmgrow/model"
)

/*
Store caches flattened deltas in Redis under keys namespaced by
prefix, mirroring redisStore.keyFor's "prefix:id" scheme.
*/
type Store struct {
	rc     *redis.Client
	prefix string
}

// New returns a Store backed by the given Redis client, namespacing
// every key it reads or writes under prefix.
func New(rc *redis.Client, prefix string) *Store {
	return &Store{rc: rc, prefix: prefix}
}

// deltaJSON is the wire representation of a model.Delta: the two
// arrays Put/Get round-trip through Redis.
type deltaJSON struct {
	Divisions []int     `json:"divisions"`
	Values    []float64 `json:"values"`
}

// Put stores the delta for featureKey, overwriting any delta already
// cached under that key.
func (s *Store) Put(ctx context.Context, featureKey string, delta *model.SliceDelta) error {
	data, err := json.Marshal(deltaJSON{Divisions: delta.Divisions(), Values: delta.Values()})
	if err != nil {
		return fmt.Errorf("encoding delta for %q: %v", featureKey, err)
	}
	if _, err := s.rc.Set(s.keyFor(featureKey), data, 0).Result(); err != nil {
		return fmt.Errorf("storing delta for %q in redis: %v", featureKey, err)
	}
	return nil
}

// Get retrieves the delta cached for featureKey. The second return
// value is false if no delta is cached for that key; it is not an
// error, matching redisStore.Get's "empty data means not found"
// convention.
func (s *Store) Get(ctx context.Context, featureKey string) (*model.SliceDelta, bool, error) {
	data, err := s.rc.Get(s.keyFor(featureKey)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("retrieving delta for %q: %v", featureKey, err)
	}
	var dj deltaJSON
	if err := json.Unmarshal([]byte(data), &dj); err != nil {
		return nil, false, fmt.Errorf("decoding delta for %q: %v", featureKey, err)
	}
	delta := model.New()
	if err := delta.SetNumDivisions(len(dj.Divisions)); err != nil {
		return nil, false, err
	}
	copy(delta.DivisionPointer(), dj.Divisions)
	if err := delta.EnsureValueCapacity(len(dj.Values)); err != nil {
		return nil, false, err
	}
	copy(delta.ValuePointer(), dj.Values)
	return delta, true, nil
}

func (s *Store) keyFor(featureKey string) string {
	return fmt.Sprintf("%s:%s", s.prefix, featureKey)
}
