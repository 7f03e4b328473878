package models

import "strings"

// Key normalizes a name for case-insensitive lookups.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Item is something the player can pick up, carry and use.
type Item struct {
	name        string
	description string
	usable      bool
}

func NewItem(name, description string, usable bool) *Item {
	return &Item{name: name, description: description, usable: usable}
}

func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Usable() bool        { return i.usable }

// Is reports whether the item answers to name, ignoring case.
func (i *Item) Is(name string) bool {
	return Key(i.name) == Key(name)
}

func (i *Item) String() string {
	return i.name + ": " + i.description
}

// Items is an ordered collection of items. Order is insertion order and
// duplicate names are allowed.
type Items []*Item

// Index returns the position of the first item named name, or -1.
func (s Items) Index(name string) int {
	for i, it := range s {
		if it.Is(name) {
			return i
		}
	}
	return -1
}

func (s Items) Find(name string) *Item {
	if i := s.Index(name); i >= 0 {
		return s[i]
	}
	return nil
}

func (s Items) Has(name string) bool {
	return s.Index(name) >= 0
}

// Remove takes the first item named name out of the collection.
func (s *Items) Remove(name string) *Item {
	i := s.Index(name)
	if i < 0 {
		return nil
	}
	it := (*s)[i]
	*s = append((*s)[:i:i], (*s)[i+1:]...)
	return it
}

func (s *Items) Add(it *Item) {
	*s = append(*s, it)
}

func (s Items) Names() []string {
	names := make([]string, 0, len(s))
	for _, it := range s {
		names = append(names, it.name)
	}
	return names
}
