// Package world builds the fixed island map.
package world

import "github.com/tatianab/island/internal/models"

const (
	Sea      = "Sea"
	Beach    = "Beach"
	Jungle   = "Jungle"
	Cave     = "Cave"
	Mountain = "Mountain"
)

// Island is the set of rooms for one session.
type Island struct {
	Rooms map[string]*models.Room
	Start *models.Room
}

// Room returns the room called name, or nil.
func (i *Island) Room(name string) *models.Room {
	return i.Rooms[name]
}

// Build creates the five rooms, wires their exits and seeds items and
// animals. Every exit is set explicitly, so a one-way passage only needs
// its back-link left out.
func Build() *Island {
	sea := models.NewRoom(Sea,
		"You are floating in the sea after the storm. Sharks swim nearby!")
	beach := models.NewRoom(Beach,
		"A calm beach with white sand. You can see fruits on the palm trees.")
	jungle := models.NewRoom(Jungle,
		"A dense and dark jungle. You hear animal sounds everywhere.")
	cave := models.NewRoom(Cave,
		"A dark and scary cave. You feel something dangerous is here...")
	mountain := models.NewRoom(Mountain,
		"The top of the mountain. From here you can see the entire island!")

	sea.SetExit("north", beach)

	beach.SetExit("south", sea)
	beach.SetExit("north", jungle)
	beach.SetExit("east", mountain)

	jungle.SetExit("south", beach)
	jungle.SetExit("west", cave)

	cave.SetExit("east", jungle)

	mountain.SetExit("west", beach)

	beach.AddItem(models.NewItem("fruit", "A juicy fruit", true))
	beach.AddItem(models.NewItem("bottle", "An empty bottle", true))
	jungle.AddItem(models.NewItem("woodstick", "A strong piece of wood", true))
	jungle.AddItem(models.NewItem("knife", "A sharp knife", true))
	cave.AddItem(models.NewItem("gold", "The island's treasure!", true))

	sea.AddAnimal(models.NewAnimal("shark", "A dangerous shark", 8))
	cave.AddAnimal(models.NewAnimal("bear", "A huge fierce bear!", 10))
	jungle.AddAnimal(models.NewAnimal("fish", "A fish you can catch", 0))

	return &Island{
		Rooms: map[string]*models.Room{
			Sea:      sea,
			Beach:    beach,
			Jungle:   jungle,
			Cave:     cave,
			Mountain: mountain,
		},
		Start: sea,
	}
}
