// Package loop runs ordered systems at a fixed tick rate over a shared store
// of typed resources.
package loop

import (
	"reflect"
	"sort"
	"unsafe"
)

type resourceEntry struct {
	dataPtr unsafe.Pointer
	value   reflect.Value
}

// Resources holds at most one value per type. Values are heap allocated once
// and never move, so pointers handed out by Singleton stay valid for the
// lifetime of the store.
type Resources struct {
	entries map[reflect.Type]*resourceEntry
}

// NewResources creates an empty resource store.
func NewResources() *Resources {
	return &Resources{
		entries: make(map[reflect.Type]*resourceEntry),
	}
}

// Add stores value under its dynamic type, replacing the contents of any
// existing resource of that type in place.
func (r *Resources) Add(value any) {
	if value == nil {
		panic("loop: cannot add a nil resource")
	}
	r.addTyped(reflect.TypeOf(value), reflect.ValueOf(value))
}

func (r *Resources) addTyped(valueType reflect.Type, value reflect.Value) {
	if entry, ok := r.entries[valueType]; ok {
		entry.value.Elem().Set(value)
		return
	}

	ptr := reflect.New(valueType)
	ptr.Elem().Set(value)
	r.entries[valueType] = &resourceEntry{
		dataPtr: ptr.UnsafePointer(),
		value:   ptr,
	}
}

// Remove deletes the resource of the given type. Singletons that already
// resolved it keep their pointer; new lookups fail.
func (r *Resources) Remove(resourceType reflect.Type) {
	delete(r.entries, resourceType)
}

// Read sets *target to the stored resource of type T, the same pattern as
// json.Unmarshal. It returns false when no such resource exists.
func Read[T any](r *Resources, target **T) bool {
	entry := r.getEntry(reflect.TypeFor[T]())
	if entry == nil {
		return false
	}
	*target = (*T)(entry.dataPtr)
	return true
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.entries)
}

// Types returns the names of all stored resource types, sorted.
func (r *Resources) Types() []string {
	names := make([]string, 0, len(r.entries))
	for t := range r.entries {
		names = append(names, t.String())
	}
	sort.Strings(names)
	return names
}

func (r *Resources) getEntry(resourceType reflect.Type) *resourceEntry {
	if r == nil {
		return nil
	}
	return r.entries[resourceType]
}
