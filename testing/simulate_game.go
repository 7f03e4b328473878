package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/island/internal/config"
	"github.com/tatianab/island/internal/engine"
)

// historyWindow is how many recent turns the player model sees.
const historyWindow = 6

type playerReply struct {
	Command string `yaml:"command"`
	Reason  string `yaml:"reason"`
}

type turnRecord struct {
	Command string
	Output  string
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer client.Close()
	playerModel := client.GenerativeModel(cfg.Gemini.Model)

	game := engine.NewGame()
	fmt.Println(game.Welcome())

	var history []turnRecord
	for turn := 1; turn <= cfg.Simulate.MaxTurns; turn++ {
		fmt.Printf("--- Turn %d ---\n", turn)

		reply := getPlayerAction(ctx, playerModel, game, history)
		fmt.Printf("Player Action: %s\n", reply.Command)
		if reply.Reason != "" {
			fmt.Printf("Reason: %s\n", reply.Reason)
		}

		res := game.Execute(reply.Command)
		fmt.Print(res.Output)
		snap := game.Snapshot()
		fmt.Printf("Stats: Water=%d, Food=%d, Room=%s, Inventory=%v\n\n", snap.Water, snap.Food, snap.Room, snap.Inventory)

		history = append(history, turnRecord{Command: reply.Command, Output: res.Output})
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}

		switch res.Status {
		case engine.StatusWon:
			fmt.Println("Game Ended: Player Won!")
			return
		case engine.StatusLost:
			fmt.Println("Game Ended: Player Lost!")
			return
		case engine.StatusQuit:
			fmt.Println("Game Ended: Player Quit!")
			return
		}
	}
	fmt.Printf("Game Ended: turn limit of %d reached.\n", cfg.Simulate.MaxTurns)
}

func getPlayerAction(ctx context.Context, model *genai.GenerativeModel, game *engine.Game, history []turnRecord) playerReply {
	state, err := game.Snapshot().YAML()
	if err != nil {
		return playerReply{Command: "inspect"}
	}

	historyText := ""
	for _, entry := range history {
		historyText += fmt.Sprintf("Command: %s\nOutcome: %s\n", entry.Command, strings.TrimSpace(entry.Output))
	}

	prompt := fmt.Sprintf(`You are playing "Lost on the Island", a text survival game.
Goal: take the gold from the cave and bring it back to the beach. Every go, take, catch, drop and use
costs 5 water and 3 food; you die when either reaches 0. Eat fruit or fish, fill the bottle at the sea
or beach with "use bottle", then "drink".

Verbs: go <direction>, take <item>, catch <animal>, drop <item>, eat <item>, drink, use <item>,
inventory, status, inspect, help.

Current state:
%s
Recent turns:
%s
Reply with YAML only, in this form:
command: <your next command>
reason: <one short sentence>`, state, historyText)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return playerReply{Command: "inspect"}
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return playerReply{Command: "status"}
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return playerReply{Command: "status"}
	}
	return parseReply(string(text))
}

func parseReply(text string) playerReply {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```yaml")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")

	var reply playerReply
	if err := yaml.Unmarshal([]byte(clean), &reply); err != nil || strings.TrimSpace(reply.Command) == "" {
		// Models sometimes answer with the bare command.
		return playerReply{Command: strings.TrimSpace(strings.SplitN(clean, "\n", 2)[0])}
	}
	reply.Command = strings.TrimSpace(reply.Command)
	return reply
}
