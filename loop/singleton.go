package loop

import (
	"reflect"
	"unsafe"
)

// Singleton provides cached access to the resource of type T. Systems declare
// Singleton fields and the Scheduler wires them up on Register.
type Singleton[T any] struct {
	resources    *Resources
	resourcePtr  unsafe.Pointer
	resourceType reflect.Type
}

// NewSingleton returns an accessor for the resource of type T. When the
// resource does not exist yet it is created from initializer, or the zero
// value. The resource is guaranteed to exist after the call.
func NewSingleton[T any](resources *Resources, initializer ...T) *Singleton[T] {
	resourceType := reflect.TypeFor[T]()

	entry := resources.getEntry(resourceType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		resources.addTyped(resourceType, reflect.ValueOf(&value).Elem())
		entry = resources.getEntry(resourceType)
	}

	return &Singleton[T]{
		resources:    resources,
		resourcePtr:  entry.dataPtr,
		resourceType: resourceType,
	}
}

// Init binds the Singleton to a resource store. The Scheduler calls it for
// every Singleton field of a registered system.
func (s *Singleton[T]) Init(resources *Resources) {
	s.resources = resources
	s.resourceType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the resource, or nil if it was never added.
func (s *Singleton[T]) Get() *T {
	if s.resourcePtr == nil {
		s.updateCache()
	}
	if s.resourcePtr == nil {
		return nil
	}
	return (*T)(s.resourcePtr)
}

// Exists reports whether the resource has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.resources == nil {
		return
	}
	if entry := s.resources.getEntry(s.resourceType); entry != nil {
		s.resourcePtr = entry.dataPtr
	} else {
		s.resourcePtr = nil
	}
}
