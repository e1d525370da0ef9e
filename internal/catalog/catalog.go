// Package catalog holds the read-only item id lookup table used for
// gear scoring. A Catalog is built once and never mutated.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RaidBot_Go/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog maps item ids to their static attributes.
// The zero value and a nil *Catalog are both valid empty catalogs.
type Catalog struct {
	items map[int]Item
}

// New builds a catalog from records. Later duplicates replace earlier ones.
func New(items []Item) *Catalog {
	c := &Catalog{items: make(map[int]Item, len(items))}
	for _, it := range items {
		c.items[it.ID] = it
	}
	return c
}

// Empty returns a catalog with no items.
func Empty() *Catalog {
	return &Catalog{}
}

// Lookup returns the item for id.
func (c *Catalog) Lookup(id int) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	it, ok := c.items[id]
	return it, ok
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// ReadFile parses an item export and drops records that fail validation.
// It returns the number of dropped records alongside the valid ones.
func ReadFile(path string) ([]Item, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgReadFileFailed, err)
	}

	var raw []Item
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf(ErrMsgParseFileFailed, err)
	}

	items := make([]Item, 0, len(raw))
	skipped := 0
	for _, it := range raw {
		if err := validate.Struct(it); err != nil {
			skipped++
			continue
		}
		items = append(items, it)
	}
	return items, skipped, nil
}

// Load reads the item export at path. A missing or malformed file is logged
// and yields an empty catalog so startup can continue.
func Load(ctx context.Context, path string) *Catalog {
	log := logger.FromContext(ctx)

	items, skipped, err := ReadFile(path)
	if err != nil {
		log.Error(LogMsgCatalogLoadFailed, "path", path, "error", err)
		return Empty()
	}
	if skipped > 0 {
		log.Warn(LogMsgRecordSkipped, "path", path, "count", skipped)
	}

	c := New(items)
	log.Info(LogMsgCatalogLoaded, "path", path, "items", c.Len())
	return c
}
