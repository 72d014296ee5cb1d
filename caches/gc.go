package caches

import (
	"os"

	"github.com/samber/lo"
)

// GC removes every entry not reachable from roots through DepIDs
func (c *Cache) GC(roots []PackageID) (removed []PackageID, err error) {
	reachable := make(map[PackageID]bool)
	queue := lo.Uniq(roots)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if reachable[id] {
			continue
		}
		reachable[id] = true
		entry, ok, err := c.Get(id)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		queue = append(queue, entry.DepIDs...)
	}

	ids, err := c.IDs()
	if err != nil {
		return nil, err
	}
	for _, id := range lo.Reject(ids, func(id PackageID, _ int) bool {
		return reachable[id]
	}) {
		if err := os.Remove(c.path(id)); err != nil && !os.IsNotExist(err) {
			return removed, err
		}
		removed = append(removed, id)
	}

	if len(removed) > 0 {
		c.logger.Debug("cache gc", "removed", len(removed), "kept", len(ids)-len(removed))
	}
	return removed, nil
}
