package engine

import "strings"

// Command is one parsed input line. Only the first argument is consulted.
type Command struct {
	Verb string
	Arg  string
}

// Parse lower-cases line and splits it on whitespace.
func Parse(line string) Command {
	words := strings.Fields(strings.ToLower(line))
	var cmd Command
	if len(words) > 0 {
		cmd.Verb = words[0]
	}
	if len(words) > 1 {
		cmd.Arg = words[1]
	}
	return cmd
}
