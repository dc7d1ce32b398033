package green

import "unsafe"

// uintptrOf returns a stable numeric identity for a pointer, used only to
// build interning-cache keys in Cache.Node; it never outlives the cache
// and is never compared across garbage collection safety boundaries other
// than as an opaque map key.
func uintptrOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
