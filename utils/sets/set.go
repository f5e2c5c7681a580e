package sets

import (
	"encoding/json"
	"maps"
)

type Set[K comparable] map[K]struct{}

func New[K comparable]() Set[K] {
	return make(Set[K])
}

func Make[K comparable](capacity int) Set[K] {
	return make(Set[K], capacity)
}

func FromSlice[K comparable](keys []K) Set[K] {
	s := make(Set[K], len(keys))
	for _, k := range keys {
		s.Append(k)
	}

	return s
}

func (s Set[K]) Has(key K) bool {
	_, ok := s[key]
	return ok
}

func (s Set[K]) Append(key K) {
	s[key] = struct{}{}
}

func (s Set[K]) Delete(key K) {
	delete(s, key)
}

// Returns all elements in this set as a slice.
func (s Set[K]) Keys() []K {
	count := len(s)
	if count == 0 {
		return make([]K, 0)
	}

	keys := make([]K, 0, count)
	for k := range s {
		keys = append(keys, k)
	}

	return keys
}

// Reports whether every given key is present in s.
func (s Set[K]) ContainsAll(keys []K) bool {
	for _, k := range keys {
		if !s.Has(k) {
			return false
		}
	}

	return true
}

// Reports whether at least one of the given keys is present in s.
func (s Set[K]) ContainsAny(keys []K) bool {
	for _, k := range keys {
		if s.Has(k) {
			return true
		}
	}

	return false
}

// Returns a copy sharing no storage with s.
func (s Set[K]) Clone() Set[K] {
	return maps.Clone(s)
}

// Returns a new set containing all elements from s and the given sets.
func (s Set[K]) Union(sets ...Set[K]) Set[K] {
	merged := maps.Clone(s)
	for _, set := range sets {
		for k := range set {
			merged.Append(k)
		}
	}

	return merged
}

// Returns all elements in s that are not in other.
func (s Set[K]) Difference(other Set[K]) Set[K] {
	set := make(Set[K])
	for k := range s {
		if _, ok := other[k]; !ok {
			set.Append(k)
		}
	}

	return set
}

// Serializes this set's keys to a JSON array.
func (s Set[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Keys())
}

// Deserializes a JSON array, rebuilding this set.
func (s *Set[K]) UnmarshalJSON(data []byte) error {
	var keys []K
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	if *s != nil {
		for k := range *s {
			delete(*s, k)
		}
	} else {
		*s = make(Set[K], len(keys))
	}

	for _, k := range keys {
		(*s).Append(k)
	}

	return nil
}
