// Package storage persists transfer scratch data in BadgerDB: staged upload
// bytes, downloaded parts, and assembled blobs.
package storage

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"media-lab/domain"
	"media-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/gabriel-vasile/mimetype"
)

const (
	stagePrefix = "stage:"
	partPrefix  = "part:"
	blobPrefix  = "blob:"
	mimePrefix  = "mime:"
)

// PartRepository is the durable scratch store behind every transfer. Keys
// are prefixed per role so the whole footprint of one file can be purged by
// prefix scan.
type PartRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewPartRepository(db *badger.DB, log *slog.Logger) *PartRepository {
	return &PartRepository{db: db, log: log}
}

// Stage stores the full byte content of a file awaiting upload.
func (r *PartRepository) Stage(key domain.FileKey, data []byte) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(stageKey(key), data)
	})
}

// ReadRange returns size bytes of the staged content starting at offset.
// A missing stage entry or an out-of-bounds range yields ErrMissingBytes.
func (r *PartRepository) ReadRange(key domain.FileKey, offset int64, size int) ([]byte, error) {
	var out []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(stageKey(key))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrMissingBytes
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			end := offset + int64(size)
			if offset < 0 || end > int64(len(val)) {
				return errors.ErrMissingBytes
			}
			out = append(out, val[offset:end]...)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AppendPart stores one downloaded part under its index.
func (r *PartRepository) AppendPart(key domain.FileKey, part int, data []byte) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(partKey(key, part), data)
	})
}

// AssembleBlob concatenates parts 0..partsCount-1 into the final blob and
// drops the part entries. When no MIME type is declared the content is
// sniffed. Returns the terminal blob key.
func (r *PartRepository) AssembleBlob(key domain.FileKey, partsCount int, mimeType string) (string, error) {
	var blob []byte
	err := r.db.View(func(txn *badger.Txn) error {
		for part := 0; part < partsCount; part++ {
			item, err := txn.Get(partKey(key, part))
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s part %d", errors.ErrPartNotFound, key, part)
			}
			if err != nil {
				return err
			}
			if err := item.Value(func(val []byte) error {
				blob = append(blob, val...)
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if mimeType == "" {
		mimeType = mimetype.Detect(blob).String()
	}

	blobKey := blobPrefix + string(key)
	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(blobKey), blob); err != nil {
			return err
		}
		if err := txn.Set(mimeKey(key), []byte(mimeType)); err != nil {
			return err
		}
		for part := 0; part < partsCount; part++ {
			if err := txn.Delete(partKey(key, part)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	r.log.Debug("Blob assembled", "key", key, "parts", partsCount, "mime", mimeType, "size", len(blob))
	return blobKey, nil
}

// ReadBlob returns the assembled bytes and their MIME type.
func (r *PartRepository) ReadBlob(blobKey string) ([]byte, string, error) {
	var blob []byte
	var mime string
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobKey))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrBlobNotFound
		}
		if err != nil {
			return err
		}
		blob, err = item.ValueCopy(nil)
		if err != nil {
			return err
		}

		key := []byte(mimePrefix + blobKey[len(blobPrefix):])
		mimeItem, err := txn.Get(key)
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err := mimeItem.ValueCopy(nil)
		if err != nil {
			return err
		}
		mime = string(raw)
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	return blob, mime, nil
}

// Purge removes every entry of the file: staged bytes, parts, blob, MIME.
// Only the part entries need a prefix scan; their ":" separator keeps a key
// like 3_40 from matching the parts of 3_400.
func (r *PartRepository) Purge(key domain.FileKey) error {
	partsPrefix := []byte(partPrefix + string(key) + ":")

	doomed := [][]byte{
		stageKey(key),
		[]byte(blobPrefix + string(key)),
		mimeKey(key),
	}
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(partsPrefix); it.ValidForPrefix(partsPrefix); it.Next() {
			doomed = append(doomed, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		for _, key := range doomed {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func stageKey(key domain.FileKey) []byte {
	return []byte(stagePrefix + string(key))
}

func partKey(key domain.FileKey, part int) []byte {
	return []byte(fmt.Sprintf("%s%s:%06d", partPrefix, key, part))
}

func mimeKey(key domain.FileKey) []byte {
	return []byte(mimePrefix + string(key))
}
