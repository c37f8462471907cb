/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"sort"
	"sync"

	"github.com/suparena/enummeta/errors"
)

// StoreInfo describes a registered metadata store.
type StoreInfo struct {
	// VariantType is the variant type the store covers.
	VariantType reflect.Type
	// MetaType is the metadata type attached to each variant.
	MetaType reflect.Type
	// Variants is the number of table entries.
	Variants int
}

var (
	storeRegistry = make(map[string]StoreInfo)
	mu            sync.RWMutex
)

// Register records a metadata store under its name. Store names identify
// process-wide caches, so registering the same name twice is an error.
func Register(name string, info StoreInfo) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := storeRegistry[name]; exists {
		return errors.NewStoreExistsError(name)
	}
	storeRegistry[name] = info
	return nil
}

// Lookup retrieves the descriptor for a named store, if any.
func Lookup(name string) (StoreInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	info, ok := storeRegistry[name]
	return info, ok
}

// Names returns the registered store names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(storeRegistry))
	for name := range storeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered stores.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(storeRegistry)
}

// Reset clears every registration. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	storeRegistry = make(map[string]StoreInfo)
}
