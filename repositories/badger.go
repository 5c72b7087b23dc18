package repositories

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// readValue copies the value stored under key within the transaction.
func readValue(txn *badger.Txn, key []byte) ([]byte, error) {
	item, err := txn.Get(key)
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func isKeyNotFound(err error) bool {
	return errors.Is(err, badger.ErrKeyNotFound)
}

// scanValues collects every value under the given key prefix.
func scanValues(txn *badger.Txn, prefix []byte) ([][]byte, error) {
	var values [][]byte
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		value, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
