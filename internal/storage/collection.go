package storage

import (
	"context"
	"encoding/json"
	"log"
)

// Record is implemented by every entity kept in an array collection.
type Record interface {
	RecordID() string
	Touch(now string)
}

// recordPtr ties a pointer-to-entity to the Record interface so the generic
// helpers can address records in place.
type recordPtr[T any] interface {
	*T
	Record
}

// List returns the collection stored under key, empty when the key is
// absent. A failed or unreadable read is logged and degrades to an empty
// collection; it never surfaces to the caller.
func List[T any](ctx context.Context, db *DB, key string) []T {
	data, err := db.Get(ctx, key)
	if err != nil {
		log.Printf("error reading %s: %v", key, err)
		return []T{}
	}
	if data == nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("error decoding %s: %v", key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func setList[T any](ctx context.Context, db *DB, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return db.Set(ctx, key, data)
}

// Replace overwrites the whole collection under key (bulk replace).
func Replace[T any](ctx context.Context, db *DB, key string, items []T) error {
	unlock := db.LockKey(key)
	defer unlock()
	return setList(ctx, db, key, items)
}

// FindByID scans the collection for a record with the given id, nil when not
// found.
func FindByID[T any, PT recordPtr[T]](ctx context.Context, db *DB, key, id string) *T {
	items := List[T](ctx, db, key)
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			item := items[i]
			return &item
		}
	}
	return nil
}

// Add appends item to the collection. The caller supplies a fresh id via
// GenerateID; no uniqueness check happens here.
func Add[T any](ctx context.Context, db *DB, key string, item T) error {
	unlock := db.LockKey(key)
	defer unlock()

	items := List[T](ctx, db, key)
	items = append(items, item)
	return setList(ctx, db, key, items)
}

// UpdateByID applies patch to the record with the given id, stamps its
// updatedAt and rewrites the collection. Returns (nil, nil) when the id is
// not found.
func UpdateByID[T any, PT recordPtr[T]](ctx context.Context, db *DB, key, id string, patch func(PT)) (*T, error) {
	unlock := db.LockKey(key)
	defer unlock()

	items := List[T](ctx, db, key)
	for i := range items {
		p := PT(&items[i])
		if p.RecordID() == id {
			patch(p)
			p.Touch(Now())
			if err := setList(ctx, db, key, items); err != nil {
				return nil, err
			}
			updated := items[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// RemoveByID deletes the record with the given id, reporting whether
// anything was removed.
func RemoveByID[T any, PT recordPtr[T]](ctx context.Context, db *DB, key, id string) (bool, error) {
	unlock := db.LockKey(key)
	defer unlock()

	items := List[T](ctx, db, key)
	for i := range items {
		if PT(&items[i]).RecordID() == id {
			items = append(items[:i], items[i+1:]...)
			if err := setList(ctx, db, key, items); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// ---- blob dictionaries (scorecard images, contact photos) ----

func getBlobMap(ctx context.Context, db *DB, key string) map[string]string {
	data, err := db.Get(ctx, key)
	if err != nil {
		log.Printf("error reading %s: %v", key, err)
		return map[string]string{}
	}
	if data == nil {
		return map[string]string{}
	}

	var blobs map[string]string
	if err := json.Unmarshal(data, &blobs); err != nil {
		log.Printf("error decoding %s: %v", key, err)
		return map[string]string{}
	}
	return blobs
}

func saveBlob(ctx context.Context, db *DB, key, id, data string) error {
	unlock := db.LockKey(key)
	defer unlock()

	blobs := getBlobMap(ctx, db, key)
	blobs[id] = data
	encoded, err := json.Marshal(blobs)
	if err != nil {
		return err
	}
	return db.Set(ctx, key, encoded)
}

func getBlob(ctx context.Context, db *DB, key, id string) string {
	return getBlobMap(ctx, db, key)[id]
}

func deleteBlob(ctx context.Context, db *DB, key, id string) error {
	unlock := db.LockKey(key)
	defer unlock()

	blobs := getBlobMap(ctx, db, key)
	delete(blobs, id)
	encoded, err := json.Marshal(blobs)
	if err != nil {
		return err
	}
	return db.Set(ctx, key, encoded)
}
