// Package store persists pipeline definitions and state snapshots in a Bolt
// database. Snapshots are advisory read-models; live classifiers are never
// rebuilt from them.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/boltdb/bolt"

	"github.com/strk/classifier/pipeline"
)

var (
	// ErrStoreOpen is returned when opening a store that is already open.
	ErrStoreOpen = errors.New("store already open")

	// ErrStoreNotOpen is returned when operating on a closed store.
	ErrStoreNotOpen = errors.New("store not open")

	// ErrPipelineNotFound is returned when a named pipeline has no stored
	// definition.
	ErrPipelineNotFound = errors.New("pipeline not found")

	// ErrSnapshotNotFound is returned when a named pipeline has no stored
	// snapshot.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

var (
	pipelinesBucket = []byte("pipelines")
	snapshotsBucket = []byte("snapshots")
)

// Store represents the persistent registry of pipelines.
type Store struct {
	sync.Mutex

	db   *bolt.DB
	path string
}

// New creates a store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the store on disk.
func (s *Store) Path() string {
	return s.path
}

// Open opens the store and initializes its schema.
func (s *Store) Open() error {
	s.Lock()
	defer s.Unlock()

	if s.db != nil {
		return ErrStoreOpen
	}

	db, err := bolt.Open(s.path, 0666, nil)
	if err != nil {
		return fmt.Errorf("store open: %s", err)
	}
	s.db = db

	err = s.db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(pipelinesBucket); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(snapshotsBucket); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		s.db.Close()
		s.db = nil
		return fmt.Errorf("store init: %s", err)
	}

	return nil
}

// Close closes the store.
func (s *Store) Close() {
	s.Lock()
	defer s.Unlock()
	if s.db != nil {
		s.db.Close()
		s.db = nil
	}
}

func (s *Store) update(fn func(tx *bolt.Tx) error) error {
	s.Lock()
	db := s.db
	s.Unlock()
	if db == nil {
		return ErrStoreNotOpen
	}
	return db.Update(fn)
}

func (s *Store) view(fn func(tx *bolt.Tx) error) error {
	s.Lock()
	db := s.db
	s.Unlock()
	if db == nil {
		return ErrStoreNotOpen
	}
	return db.View(fn)
}

// SavePipeline writes the definition for a named pipeline.
func (s *Store) SavePipeline(name string, definition pipeline.Definition) error {
	value, err := marshal(definition)
	if err != nil {
		return err
	}
	return s.update(func(tx *bolt.Tx) error {
		return tx.Bucket(pipelinesBucket).Put([]byte(name), value)
	})
}

// Pipelines reads all stored definitions keyed by pipeline name.
func (s *Store) Pipelines() (map[string]pipeline.Definition, error) {
	definitions := make(map[string]pipeline.Definition)
	err := s.view(func(tx *bolt.Tx) error {
		return tx.Bucket(pipelinesBucket).ForEach(func(k, v []byte) error {
			var definition pipeline.Definition
			if err := unmarshal(v, &definition); err != nil {
				return fmt.Errorf("pipeline %s: %s", k, err)
			}
			definitions[string(k)] = definition
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return definitions, nil
}

// DeletePipeline removes a pipeline's definition and snapshot.
func (s *Store) DeletePipeline(name string) error {
	return s.update(func(tx *bolt.Tx) error {
		if tx.Bucket(pipelinesBucket).Get([]byte(name)) == nil {
			return ErrPipelineNotFound
		}
		if err := tx.Bucket(pipelinesBucket).Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket(snapshotsBucket).Delete([]byte(name))
	})
}

// SaveSnapshot writes the latest realized state tree for a named pipeline.
func (s *Store) SaveSnapshot(name string, state map[string]interface{}) error {
	value, err := marshal(state)
	if err != nil {
		return err
	}
	return s.update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotsBucket).Put([]byte(name), value)
	})
}

// Snapshot reads the stored state tree for a named pipeline.
func (s *Store) Snapshot(name string) (map[string]interface{}, error) {
	var state map[string]interface{}
	err := s.view(func(tx *bolt.Tx) error {
		value := tx.Bucket(snapshotsBucket).Get([]byte(name))
		if value == nil {
			return ErrSnapshotNotFound
		}
		return unmarshal(value, &state)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}
