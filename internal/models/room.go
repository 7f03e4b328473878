package models

import (
	"sort"
	"strings"
)

// Room is a location on the island. Exits are directed: setting one does
// not create the way back.
type Room struct {
	name        string
	description string
	exits       map[string]*Room
	items       Items
	animals     []*Animal
}

func NewRoom(name, description string) *Room {
	return &Room{
		name:        name,
		description: description,
		exits:       make(map[string]*Room),
	}
}

func (r *Room) Name() string        { return r.name }
func (r *Room) Description() string { return r.description }

// Is reports whether the room is called name.
func (r *Room) Is(name string) bool {
	return r.name == name
}

func (r *Room) SetExit(direction string, neighbor *Room) {
	r.exits[Key(direction)] = neighbor
}

// Exit returns the room in direction, or nil.
func (r *Room) Exit(direction string) *Room {
	return r.exits[Key(direction)]
}

// Directions lists the exits in sorted order.
func (r *Room) Directions() []string {
	dirs := make([]string, 0, len(r.exits))
	for d := range r.exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

func (r *Room) AddItem(it *Item) {
	r.items.Add(it)
}

func (r *Room) RemoveItem(name string) *Item {
	return r.items.Remove(name)
}

func (r *Room) Item(name string) *Item {
	return r.items.Find(name)
}

func (r *Room) HasItem(name string) bool {
	return r.items.Has(name)
}

func (r *Room) ItemNames() []string {
	return r.items.Names()
}

func (r *Room) AddAnimal(a *Animal) {
	r.animals = append(r.animals, a)
}

// Animal returns the animal named name, dead or alive, or nil.
func (r *Room) Animal(name string) *Animal {
	for _, a := range r.animals {
		if a.Is(name) {
			return a
		}
	}
	return nil
}

// LiveAnimal returns the animal named name only if it is still alive.
func (r *Room) LiveAnimal(name string) *Animal {
	if a := r.Animal(name); a != nil && a.Alive() {
		return a
	}
	return nil
}

// LiveAnimalNames lists the animals that are still alive.
func (r *Room) LiveAnimalNames() []string {
	var names []string
	for _, a := range r.animals {
		if a.Alive() {
			names = append(names, a.name)
		}
	}
	return names
}

// FullDescription renders the room as shown on arrival and on inspect.
func (r *Room) FullDescription() string {
	var sb strings.Builder
	sb.WriteString("\n=== " + r.name + " ===\n")
	sb.WriteString(r.description + "\n")

	if dirs := r.Directions(); len(dirs) > 0 {
		sb.WriteString("\nExits: " + strings.Join(dirs, " ") + "\n")
	}
	if names := r.ItemNames(); len(names) > 0 {
		sb.WriteString("\nItems here: " + strings.Join(names, " ") + "\n")
	}
	if names := r.LiveAnimalNames(); len(names) > 0 {
		sb.WriteString("\nAnimals here: " + strings.Join(names, " ") + "\n")
	}
	return sb.String()
}
