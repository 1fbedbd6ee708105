// Package catalog_cache keeps the storefront product list in process memory
// so repeated catalogue reads skip the database. Invalidated on any product
// create/update/delete.
package catalog_cache

import (
	"sync"
	"time"

	"github.com/SOf1AN3/myks-sports-bolt/models"
)

const TTL = 5 * time.Minute

type listEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache *listEntry
)

func GetProducts() ([]models.Product, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	if listCache != nil && time.Since(listCache.fetchedAt) < TTL {
		return listCache.products, true
	}
	return nil, false
}

func SetProducts(products []models.Product) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache = &listEntry{products: products, fetchedAt: time.Now()}
}

// Invalidate drops the cached list (call on any product mutation).
func Invalidate() {
	listMu.Lock()
	listCache = nil
	listMu.Unlock()
}
