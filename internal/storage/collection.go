package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/manav03panchal/lifedash/internal/model"
)

// ErrDuplicateID is returned when an entity id is already taken in its collection.
var ErrDuplicateID = errors.New("duplicate id")

// Collection is an ordered set of entities of one kind, keyed by id.
// Entities are returned as fresh copies; mutating one has no effect on the
// stored value until it is written back through Update.
type Collection[T model.Entity] struct {
	db      *DB
	prefix  string
	newFunc func() T
	seq     *badger.Sequence
	now     func() time.Time
}

// NewCollection creates a collection whose keys live under prefix.
func NewCollection[T model.Entity](db *DB, prefix string, newFunc func() T) (*Collection[T], error) {
	seq, err := db.db.GetSequence([]byte("seq:"+prefix), 64)
	if err != nil {
		return nil, err
	}
	return &Collection[T]{
		db:      db,
		prefix:  prefix,
		newFunc: newFunc,
		seq:     seq,
		now:     time.Now,
	}, nil
}

// SetClock replaces the clock used for timestamps. Intended for tests.
func (c *Collection[T]) SetClock(now func() time.Time) {
	c.now = now
}

// Close releases the collection's key sequence.
func (c *Collection[T]) Close() error {
	return c.seq.Release()
}

func (c *Collection[T]) itemPrefix() string {
	return c.prefix + ":item:"
}

func (c *Collection[T]) idKey(id string) string {
	return c.prefix + ":id:" + id
}

func (c *Collection[T]) itemKey(n uint64) string {
	// Zero padding keeps lexical key order equal to insertion order.
	return fmt.Sprintf("%s%020d", c.itemPrefix(), n)
}

// Append adds v at the end of the collection, assigning an id when v has none
// and stamping both timestamps.
func (c *Collection[T]) Append(v T) (T, error) {
	if v.GetID() == "" {
		v.SetID(model.NewID())
	}
	now := c.now()
	v.Stamp(now, now)

	err := c.db.db.Update(func(txn *badger.Txn) error {
		return c.insert(txn, v)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// insert writes v under a fresh sequence key and indexes its id.
func (c *Collection[T]) insert(txn *badger.Txn, v T) error {
	idKey := c.idKey(v.GetID())
	if _, err := txn.Get([]byte(idKey)); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, v.GetID())
	} else if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}

	n, err := c.seq.Next()
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	itemKey := c.itemKey(n)
	if err := txn.Set([]byte(idKey), []byte(itemKey)); err != nil {
		return err
	}
	return txn.Set([]byte(itemKey), data)
}

// Get returns the entity with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	var result T
	err := c.db.db.View(func(txn *badger.Txn) error {
		_, v, err := c.load(txn, id)
		result = v
		return err
	})
	return result, err
}

// load resolves id to its item key and decodes the stored entity.
func (c *Collection[T]) load(txn *badger.Txn, id string) (string, T, error) {
	var zero T
	itemKey, err := getBytes(txn, c.idKey(id))
	if err != nil {
		return "", zero, err
	}
	data, err := getBytes(txn, string(itemKey))
	if err != nil {
		return "", zero, err
	}
	v := c.newFunc()
	if err := json.Unmarshal(data, v); err != nil {
		return "", zero, err
	}
	return string(itemKey), v, nil
}

// Update applies mutate to the entity with the given id and stamps its update
// time. The id and creation time survive any change mutate makes to them.
func (c *Collection[T]) Update(id string, mutate func(T)) (T, error) {
	var result T
	err := c.db.db.Update(func(txn *badger.Txn) error {
		itemKey, v, err := c.load(txn, id)
		if err != nil {
			return err
		}

		created := v.Created()
		mutate(v)
		v.SetID(id)
		v.Stamp(created, c.now())

		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		result = v
		return txn.Set([]byte(itemKey), data)
	})
	return result, err
}

// Remove deletes the entity with the given id.
func (c *Collection[T]) Remove(id string) error {
	return c.db.db.Update(func(txn *badger.Txn) error {
		itemKey, err := getBytes(txn, c.idKey(id))
		if err != nil {
			return err
		}
		if err := txn.Delete(itemKey); err != nil {
			return err
		}
		return txn.Delete([]byte(c.idKey(id)))
	})
}

// List returns every entity in insertion order.
func (c *Collection[T]) List() ([]T, error) {
	var results []T
	err := c.db.db.View(func(txn *badger.Txn) error {
		var err error
		results, err = getAllByPrefix(txn, c.itemPrefix(), c.newFunc)
		return err
	})
	return results, err
}

// Replace swaps the whole collection for items, keeping their order.
// Items without an id get one; new items without a creation time are stamped
// now. Items that already exist keep their stored creation time, and their
// update time moves to now only when their fields changed.
func (c *Collection[T]) Replace(items []T) error {
	return c.db.db.Update(func(txn *badger.Txn) error {
		stored := make(map[string][]byte, len(items))
		for _, v := range items {
			if v.GetID() == "" {
				continue
			}
			itemKey, err := getBytes(txn, c.idKey(v.GetID()))
			if IsErrKeyNotFound(err) {
				continue
			} else if err != nil {
				return err
			}
			data, err := getBytes(txn, string(itemKey))
			if err != nil {
				return err
			}
			stored[v.GetID()] = data
		}

		for _, key := range listKeys(txn, c.prefix+":") {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}

		now := c.now()
		for _, v := range items {
			if v.GetID() == "" {
				v.SetID(model.NewID())
			}
			if data, ok := stored[v.GetID()]; ok {
				restamped, err := c.restamp(v, data, now)
				if err != nil {
					return err
				}
				// Each id is restamped once; a repeat is a duplicate.
				delete(stored, v.GetID())
				v = restamped
			} else if v.Created().IsZero() {
				v.Stamp(now, now)
			}
			if err := c.insert(txn, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// restamp reconciles v with its stored encoding. The stored creation time
// wins; an unchanged entity keeps its stored update time.
func (c *Collection[T]) restamp(v T, data []byte, now time.Time) (T, error) {
	old := c.newFunc()
	if err := json.Unmarshal(data, old); err != nil {
		return v, err
	}
	created := old.Created()

	old.Stamp(created, time.Time{})
	v.Stamp(created, time.Time{})
	before, err := json.Marshal(old)
	if err != nil {
		return v, err
	}
	after, err := json.Marshal(v)
	if err != nil {
		return v, err
	}

	if bytes.Equal(before, after) {
		unchanged := c.newFunc()
		if err := json.Unmarshal(data, unchanged); err != nil {
			return v, err
		}
		return unchanged, nil
	}
	v.Stamp(created, now)
	return v, nil
}
