package models

// Animal is a creature living in a room. Its danger level is flavour only.
type Animal struct {
	name        string
	description string
	danger      int
	alive       bool
}

func NewAnimal(name, description string, danger int) *Animal {
	return &Animal{name: name, description: description, danger: danger, alive: true}
}

func (a *Animal) Name() string        { return a.name }
func (a *Animal) Description() string { return a.description }
func (a *Animal) Danger() int         { return a.danger }
func (a *Animal) Alive() bool         { return a.alive }

func (a *Animal) Is(name string) bool {
	return Key(a.name) == Key(name)
}

// Kill marks the animal dead. Dead animals stay in their room but are inert.
func (a *Animal) Kill() {
	a.alive = false
}

func (a *Animal) String() string {
	status := "alive"
	if !a.alive {
		status = "dead"
	}
	return a.name + " (" + status + "): " + a.description
}
