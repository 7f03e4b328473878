package models

import (
	"fmt"
	"strings"
)

const (
	StartLevel  = 50
	MaxLevel    = 100
	LowLevel    = 30
	WaterDecay  = 5
	FoodDecay   = 3
	DrinkAmount = 80
	FruitFood   = 30
	FishFood    = 40
	BottleName  = "bottle"
)

// Player holds the inventory and the two survival counters. Levels are
// capped at MaxLevel when raised but are stored raw when they decay, so
// they can go negative.
type Player struct {
	inventory    Items
	water        int
	food         int
	alive        bool
	bottleFilled bool
}

func NewPlayer() *Player {
	return &Player{
		water: StartLevel,
		food:  StartLevel,
		alive: true,
	}
}

func (p *Player) Water() int          { return p.water }
func (p *Player) Food() int           { return p.food }
func (p *Player) Alive() bool         { return p.alive }
func (p *Player) BottleFilled() bool  { return p.bottleFilled }
func (p *Player) Inventory() []string { return p.inventory.Names() }

func (p *Player) AddItem(it *Item) {
	p.inventory.Add(it)
}

// RemoveItem takes the first item named name out of the inventory. Giving
// up the bottle spills whatever was in it.
func (p *Player) RemoveItem(name string) *Item {
	it := p.inventory.Remove(name)
	if it != nil && it.Is(BottleName) && !p.inventory.Has(BottleName) {
		p.bottleFilled = false
	}
	return it
}

func (p *Player) HasItem(name string) bool {
	return p.inventory.Has(name)
}

func (p *Player) Item(name string) *Item {
	return p.inventory.Find(name)
}

func (p *Player) Drink(amount int) {
	p.water = min(p.water+amount, MaxLevel)
}

func (p *Player) Eat(amount int) {
	p.food = min(p.food+amount, MaxLevel)
}

// Decay applies the per-action cost and kills the player once either level
// reaches zero.
func (p *Player) Decay() {
	p.water -= WaterDecay
	p.food -= FoodDecay
	if p.water <= 0 || p.food <= 0 {
		p.alive = false
	}
}

// ForceDeath kills the player outright, zeroing both levels.
func (p *Player) ForceDeath() {
	p.water = 0
	p.food = 0
	p.alive = false
}

func (p *Player) FillBottle()  { p.bottleFilled = true }
func (p *Player) EmptyBottle() { p.bottleFilled = false }

func (p *Player) ShowInventory() string {
	if len(p.inventory) == 0 {
		return "Your inventory is empty."
	}
	var sb strings.Builder
	sb.WriteString("\n=== Inventory ===\n")
	for _, name := range p.inventory.Names() {
		sb.WriteString("- " + name + "\n")
	}
	return sb.String()
}

func (p *Player) ShowStatus() string {
	var sb strings.Builder
	sb.WriteString("\n=== Status ===\n")
	fmt.Fprintf(&sb, "Water: %d%%\n", p.water)
	fmt.Fprintf(&sb, "Food: %d%%\n", p.food)
	if p.water < LowLevel {
		sb.WriteString("You are thirsty!\n")
	}
	if p.food < LowLevel {
		sb.WriteString("You are hungry!\n")
	}
	return sb.String()
}
