package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/island/internal/models"
	"github.com/tatianab/island/internal/world"
)

const (
	knife = "knife"
	gold  = "gold"
	fish  = "fish"
	shark = "shark"
	bear  = "bear"
)

type commandHandler func(g *Game, t *turn, arg string) error

type commandEntry struct {
	verb string
	// missing is the prompt shown when a required argument is absent; an
	// empty prompt means the verb takes no argument.
	missing string
	// decays marks verbs that cost water and food once they run.
	decays  bool
	handler commandHandler
}

var commands = []commandEntry{
	{verb: "go", missing: "Go where? (north, south, east, west)", decays: true, handler: cmdGo},
	{verb: "take", missing: "Take what?", decays: true, handler: cmdTake},
	{verb: "catch", missing: "Catch what?", decays: true, handler: cmdCatch},
	{verb: "drop", missing: "Drop what?", decays: true, handler: cmdDrop},
	{verb: "inventory", handler: cmdInventory},
	{verb: "status", handler: cmdStatus},
	{verb: "inspect", handler: cmdInspect},
	{verb: "eat", missing: "Eat what?", handler: cmdEat},
	{verb: "drink", handler: cmdDrink},
	{verb: "use", missing: "Use what?", decays: true, handler: cmdUse},
	{verb: "help", handler: cmdHelp},
	{verb: "quit", handler: cmdQuit},
}

func lookupCommand(verb string) (commandEntry, bool) {
	for _, c := range commands {
		if c.verb == verb {
			return c, true
		}
	}
	return commandEntry{}, false
}

// hazard inspects a move into next before it happens. It returns true when
// it has handled the move, with or without an error.
type hazard func(g *Game, t *turn, next *models.Room) (bool, error)

var hazards = []hazard{sharkAttack, bearGuard}

func sharkAttack(g *Game, t *turn, next *models.Room) (bool, error) {
	if !next.Is(world.Sea) || next.LiveAnimal(shark) == nil {
		return false, nil
	}
	t.decay = false
	g.player.ForceDeath()
	t.say("A shark attacks you! You died!")
	return true, nil
}

func bearGuard(g *Game, t *turn, next *models.Room) (bool, error) {
	if !next.Is(world.Cave) || next.LiveAnimal(bear) == nil || g.player.HasItem(knife) {
		return false, nil
	}
	return true, fail(ErrPreconditionUnmet, fmt.Sprintf(
		"A fierce bear attacks you! You need a knife!\nYou flee back to the %s!",
		strings.ToLower(g.current.Name())))
}

func cmdGo(g *Game, t *turn, direction string) error {
	next := g.current.Exit(direction)
	if next == nil {
		// Unlike a hazard, a wall costs nothing.
		t.decay = false
		return fail(ErrTargetNotFound, "You can't go that way!")
	}

	for _, h := range hazards {
		if handled, err := h(g, t, next); handled {
			return err
		}
	}

	g.current = next
	t.say(next.FullDescription())
	return nil
}

func cmdTake(g *Game, t *turn, name string) error {
	item := g.current.Item(name)
	if item == nil {
		return fail(ErrTargetNotFound, "That item is not here.")
	}
	if item.Is(gold) && g.current.LiveAnimal(bear) != nil {
		return fail(ErrPreconditionUnmet, "The bear is guarding the gold! You need to defeat it first!")
	}

	g.player.AddItem(g.current.RemoveItem(name))
	if item.Is(gold) {
		g.hasGold = true
		t.say("YOU GOT THE GOLD! Now return to the beach to win!")
	}
	t.say("You took: " + item.Name())
	return nil
}

func cmdDrop(g *Game, t *turn, name string) error {
	item := g.player.RemoveItem(name)
	if item == nil {
		return fail(ErrTargetNotFound, "You don't have that item.")
	}

	g.current.AddItem(item)
	if item.Is(gold) {
		g.hasGold = g.player.HasItem(gold)
	}
	t.say("You dropped: " + item.Name())
	return nil
}

func cmdCatch(g *Game, t *turn, name string) error {
	if models.Key(name) != fish {
		return fail(ErrPreconditionUnmet, "You can't catch that!")
	}
	animal := g.current.LiveAnimal(fish)
	if animal == nil {
		return fail(ErrTargetNotFound, "There's no fish here to catch.")
	}

	animal.Kill()
	g.player.AddItem(models.NewItem(fish, "A fresh fish", true))
	t.say("You caught the fish! You can eat it now.")
	return nil
}

var edible = map[string]int{
	"fruit": models.FruitFood,
	fish:    models.FishFood,
}

func cmdEat(g *Game, t *turn, name string) error {
	key := models.Key(name)
	amount, ok := edible[key]
	if !ok {
		return fail(ErrPreconditionUnmet, "You can't eat that!")
	}
	if g.player.RemoveItem(key) == nil {
		return fail(ErrTargetNotFound, "You don't have any "+key+" to eat.")
	}

	g.player.Eat(amount)
	t.say(fmt.Sprintf("You ate the %s. Food +%d%%", key, amount))
	return nil
}

func cmdDrink(g *Game, t *turn, _ string) error {
	if !g.player.HasItem(models.BottleName) {
		return fail(ErrTargetNotFound, "You need a bottle first!")
	}
	if !g.player.BottleFilled() {
		return fail(ErrPreconditionUnmet, "The bottle is empty! Use 'use bottle' at the sea to fill it.")
	}

	g.player.Drink(models.DrinkAmount)
	g.player.EmptyBottle()
	t.say(fmt.Sprintf("You drank water. Water +%d%%", models.DrinkAmount))
	return nil
}

func cmdUse(g *Game, t *turn, name string) error {
	switch models.Key(name) {
	case knife:
		if !g.player.HasItem(knife) {
			return fail(ErrTargetNotFound, "You don't have the knife.")
		}
		animal := g.current.LiveAnimal(bear)
		if animal == nil {
			return fail(ErrPreconditionUnmet, "There's nothing to use the knife on here.")
		}
		animal.Kill()
		t.say("You defeated the bear with the knife!")
		t.say("Now you can take the gold!")
		return nil

	case models.BottleName:
		if !g.current.Is(world.Sea) && !g.current.Is(world.Beach) {
			return fail(ErrPreconditionUnmet, "You need to be near the sea to fill the bottle.")
		}
		if !g.player.HasItem(models.BottleName) {
			return fail(ErrTargetNotFound, "You don't have the bottle!")
		}
		g.player.FillBottle()
		t.say("You filled the bottle with sea water!")
		return nil
	}

	item := g.player.Item(name)
	if item == nil {
		return fail(ErrTargetNotFound, "You don't have that item.")
	}
	if !item.Usable() {
		return fail(ErrPreconditionUnmet, "The "+item.Name()+" can't be used.")
	}
	return fail(ErrPreconditionUnmet, "You can't use that item now.")
}

func cmdInventory(g *Game, t *turn, _ string) error {
	t.say(g.player.ShowInventory())
	return nil
}

func cmdStatus(g *Game, t *turn, _ string) error {
	t.say(g.player.ShowStatus())
	return nil
}

func cmdInspect(g *Game, t *turn, _ string) error {
	t.say(g.current.FullDescription())
	return nil
}

const helpText = `
=== AVAILABLE COMMANDS ===
go [direction]   - Move (north, south, east, west)
take [item]      - Take an item
catch [animal]   - Catch an animal (fish)
drop [item]      - Drop an item
inventory        - View your inventory
status           - View your water and food levels
inspect          - Examine the current room
eat [item]       - Eat (fruit, fish)
drink            - Drink water from bottle
use [item]       - Use a special item
help             - Show this help
quit             - Exit the game`

func cmdHelp(_ *Game, t *turn, _ string) error {
	t.say(helpText)
	return nil
}

func cmdQuit(g *Game, t *turn, _ string) error {
	g.finished = true
	g.status = StatusQuit
	t.say("Thanks for playing!")
	return nil
}
