package value

import (
	"strconv"
	"strings"
)

// Get returns the value of the first member named key.
func (o Object) Get(key string) (Value, bool) {
	for _, member := range o {
		if member.Key == key {
			return member.Value, true
		}
	}
	return nil, false
}

// Index returns the i-th element, 0-indexed.
func (a Array) Index(i int) (Value, bool) {
	if i < 0 || i >= len(a) {
		return nil, false
	}
	return a[i], true
}

// Get looks up key when v is an Object. Any other variant yields no result.
func Get(v Value, key string) (Value, bool) {
	obj, ok := v.(Object)
	if !ok {
		return nil, false
	}
	return obj.Get(key)
}

// Index looks up position i when v is an Array. Any other variant yields no result.
func Index(v Value, i int) (Value, bool) {
	arr, ok := v.(Array)
	if !ok {
		return nil, false
	}
	return arr.Index(i)
}

// Query resolves a dot separated path such as "items.0.name".
// Segments that parse as a non-negative integer, optionally with a single
// leading '+', select an array element; every other segment selects an
// object member. The first segment that cannot be resolved ends the walk
// with no result.
func Query(v Value, path string) (Value, bool) {
	current := v
	for _, segment := range strings.Split(path, ".") {
		var ok bool
		if i, err := strconv.ParseUint(strings.TrimPrefix(segment, "+"), 10, strconv.IntSize-1); err == nil {
			current, ok = Index(current, int(i))
		} else {
			current, ok = Get(current, segment)
		}
		if !ok {
			return nil, false
		}
	}
	return current, true
}
