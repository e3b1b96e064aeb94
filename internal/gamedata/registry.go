package gamedata

import "sort"

type BlockRegistry interface {
	ByID(id int) (Block, bool)
	ByName(name string) (Block, bool)
	All() []Block
}

type ItemRegistry interface {
	ByID(id int) (Item, bool)
	ByName(name string) (Item, bool)
	All() []Item
}

// NewBlockRegistry indexes blocks by id and name. Later entries win on collisions.
func NewBlockRegistry(blocks []Block) BlockRegistry {
	return newIndex(blocks, func(b Block) (int, string) { return b.ID, b.Name })
}

// NewItemRegistry indexes items by id and name. Later entries win on collisions.
func NewItemRegistry(items []Item) ItemRegistry {
	return newIndex(items, func(i Item) (int, string) { return i.ID, i.Name })
}

type index[T any] struct {
	byID   map[int]T
	byName map[string]T
	all    []T
}

func newIndex[T any](values []T, key func(T) (int, string)) *index[T] {
	idx := &index[T]{
		byID:   make(map[int]T, len(values)),
		byName: make(map[string]T, len(values)),
	}
	for _, v := range values {
		id, name := key(v)
		idx.byID[id] = v
		idx.byName[name] = v
	}
	ids := make([]int, 0, len(idx.byID))
	for id := range idx.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	idx.all = make([]T, 0, len(ids))
	for _, id := range ids {
		idx.all = append(idx.all, idx.byID[id])
	}
	return idx
}

func (idx *index[T]) ByID(id int) (T, bool) {
	v, ok := idx.byID[id]
	return v, ok
}

func (idx *index[T]) ByName(name string) (T, bool) {
	v, ok := idx.byName[name]
	return v, ok
}

func (idx *index[T]) All() []T {
	out := make([]T, len(idx.all))
	copy(out, idx.all)
	return out
}
