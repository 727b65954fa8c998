// Package repo provides typed views over the raw record store. Every query
// is a full collection scan; record counts are bounded by personal use, so
// O(n) per operation is fine and keeps the storage contract to whole
// collection read-modify-write.
package repo

import (
	"encoding/json"
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/storage"
)

func decode[T any](ns storage.Namespace, records []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(records))
	for _, raw := range records {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("%w: %s record: %v", storage.ErrCorrupt, ns, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func encode[T any](ns storage.Namespace, items []T) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encoding %s record: %w", ns, err)
		}
		records = append(records, raw)
	}
	return records, nil
}
