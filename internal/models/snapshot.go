package models

import "gopkg.in/yaml.v3"

// Snapshot is a read-only view of a session for outer surfaces.
type Snapshot struct {
	SessionID    string   `yaml:"session_id" json:"session_id" jsonschema:"Game session ID"`
	Room         string   `yaml:"room" json:"room" jsonschema:"Current room name"`
	Exits        []string `yaml:"exits" json:"exits" jsonschema:"Directions that lead out of the room"`
	ItemsHere    []string `yaml:"items_here,omitempty" json:"items_here,omitempty" jsonschema:"Items lying in the room"`
	AnimalsHere  []string `yaml:"animals_here,omitempty" json:"animals_here,omitempty" jsonschema:"Live animals in the room"`
	Inventory    []string `yaml:"inventory" json:"inventory" jsonschema:"Items carried, in pickup order"`
	Water        int      `yaml:"water" json:"water" jsonschema:"Water level"`
	Food         int      `yaml:"food" json:"food" jsonschema:"Food level"`
	BottleFilled bool     `yaml:"bottle_filled" json:"bottle_filled" jsonschema:"Whether the held bottle has water"`
	Alive        bool     `yaml:"alive" json:"alive" jsonschema:"Whether the player is alive"`
	Turns        int      `yaml:"turns" json:"turns" jsonschema:"Commands processed so far"`
	Status       string   `yaml:"status" json:"status" jsonschema:"PLAYING, WON, LOST or QUIT"`
}

func (s Snapshot) YAML() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
