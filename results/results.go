// Package results persists monophyly test results in a bolt
// database, so runs of the same analysis can be kept and compared
// later (e.g. replotted with misc/monoplot).
package results

import (
	"encoding/json"
	"fmt"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"github.com/J-Moravec/BayesMonophyly/bayes"
)

// log is the global logging variable.
var log = logging.MustGetLogger("results")

// RUNS is the bucket name for all stored runs.
var RUNS = []byte("runs")

// Store reads and writes named run results.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) a result database.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0644, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores a result under the given run name, overwriting any
// previous result with that name.
func (s *Store) Save(name string, res *bayes.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		log.Error("Error serializing result:", err)
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(RUNS)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), data)
	})
	if err != nil {
		log.Error("Error saving result:", err)
	}
	return err
}

// Load returns the result stored under the given run name.
func (s *Store) Load(name string) (*bayes.Result, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RUNS)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(name))
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("no result stored under %q", name)
	}
	res := &bayes.Result{}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Names returns the names of all stored runs.
func (s *Store) Names() (names []string, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(RUNS)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
