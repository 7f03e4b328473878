package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatianab/island/internal/models"
	"github.com/tatianab/island/internal/world"
)

// play runs each line in order and returns the last result.
func play(t *testing.T, g *Game, lines ...string) Result {
	t.Helper()
	var res Result
	for _, line := range lines {
		res = g.Execute(line)
	}
	return res
}

func assertLevels(t *testing.T, g *Game, water, food int) {
	t.Helper()
	assert.Equal(t, water, g.Player().Water(), "water")
	assert.Equal(t, food, g.Player().Food(), "food")
}

func TestScenarioLeaveSeaNorth(t *testing.T) {
	g := NewGame()

	res := play(t, g, "go north")

	require.NoError(t, res.Err)
	assert.True(t, res.Decayed)
	assert.Equal(t, world.Beach, g.CurrentRoom().Name())
	assertLevels(t, g, 45, 47)
	assert.Contains(t, res.Output, "=== Beach ===")
	assert.Contains(t, res.Output, "Exits: east north south")
	assert.Contains(t, res.Output, "Items here: fruit bottle")
	assert.Equal(t, StatusPlaying, res.Status)
}

func TestScenarioBearBlocksCaveButStillDecays(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "go north")
	assertLevels(t, g, 40, 44)

	res := play(t, g, "go west")

	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.True(t, res.Decayed)
	assert.Equal(t, world.Jungle, g.CurrentRoom().Name())
	assertLevels(t, g, 35, 41)
	assert.Contains(t, res.Output, "A fierce bear attacks you! You need a knife!")
	assert.Contains(t, res.Output, "You flee back to the jungle!")
}

func TestScenarioKillBearTakeGoldAndWin(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "go north", "take knife", "go west")
	require.Equal(t, world.Cave, g.CurrentRoom().Name())

	res := play(t, g, "use knife")
	require.NoError(t, res.Err)
	assert.False(t, g.CurrentRoom().Animal("bear").Alive())
	assert.NotContains(t, play(t, g, "inspect").Output, "Animals here")

	res = play(t, g, "take gold")
	require.NoError(t, res.Err)
	assert.True(t, g.HasGold())
	assert.Contains(t, res.Output, "YOU GOT THE GOLD!")

	res = play(t, g, "go east")
	assert.Equal(t, StatusPlaying, res.Status)

	res = play(t, g, "go south")
	assert.Equal(t, StatusWon, res.Status)
	assert.True(t, g.Finished())
	assert.Contains(t, res.Output, "YOU WON THE GAME!")
	assertLevels(t, g, 10, 26)
}

func TestScenarioSharkKillsOnEntry(t *testing.T) {
	g := NewGame()
	play(t, g, "go north")

	res := play(t, g, "go south")

	require.NoError(t, res.Err)
	assert.False(t, res.Decayed)
	assert.Equal(t, world.Beach, g.CurrentRoom().Name())
	assert.False(t, g.Player().Alive())
	assertLevels(t, g, 0, 0)
	assert.Equal(t, StatusLost, res.Status)
	assert.Contains(t, res.Output, "A shark attacks you! You died!")
	assert.Contains(t, res.Output, "You died of thirst...")
	assert.NotContains(t, res.Output, "hunger")
}

func TestScenarioThirstAfterTenMoves(t *testing.T) {
	g := NewGame()
	moves := []string{"go north"}
	for len(moves) < 10 {
		if len(moves)%2 == 1 {
			moves = append(moves, "go east")
		} else {
			moves = append(moves, "go west")
		}
	}

	res := play(t, g, moves[:9]...)
	require.Equal(t, StatusPlaying, res.Status)
	assertLevels(t, g, 5, 23)

	res = play(t, g, moves[9])
	assert.Equal(t, StatusLost, res.Status)
	assertLevels(t, g, 0, 20)
	assert.Contains(t, res.Output, "You died of thirst...")
}

func TestMissingExitSkipsDecay(t *testing.T) {
	g := NewGame()

	res := play(t, g, "go west")

	require.ErrorIs(t, res.Err, ErrTargetNotFound)
	assert.False(t, res.Decayed)
	assert.Equal(t, world.Sea, g.CurrentRoom().Name())
	assertLevels(t, g, 50, 50)
	assert.Contains(t, res.Output, "You can't go that way!")
}

func TestParsingFailures(t *testing.T) {
	tests := []struct {
		line   string
		kind   error
		output string
	}{
		{"go", ErrMissingArgument, "Go where? (north, south, east, west)"},
		{"take", ErrMissingArgument, "Take what?"},
		{"catch", ErrMissingArgument, "Catch what?"},
		{"drop", ErrMissingArgument, "Drop what?"},
		{"eat", ErrMissingArgument, "Eat what?"},
		{"use", ErrMissingArgument, "Use what?"},
		{"dance", ErrUnknownCommand, "Command not recognized. Type 'help' for help."},
		{"", ErrUnknownCommand, "Command not recognized."},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			g := NewGame()
			res := g.Execute(tt.line)
			require.ErrorIs(t, res.Err, tt.kind)
			assert.Contains(t, res.Output, tt.output)
			assert.False(t, res.Decayed)
			assertLevels(t, g, 50, 50)
		})
	}
}

func TestParseIsCaseAndSpaceInsensitive(t *testing.T) {
	assert.Equal(t, Command{Verb: "go", Arg: "north"}, Parse("  GO \t North  extra words"))
	assert.Equal(t, Command{Verb: "inventory"}, Parse("Inventory"))
	assert.Equal(t, Command{}, Parse("   "))

	g := NewGame()
	play(t, g, "GO NORTH", "Take FRUIT")
	assert.Equal(t, []string{"fruit"}, g.Player().Inventory())
}

func TestReadOnlyCommandsNeverMutate(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "take bottle")
	before := g.Snapshot()

	for range 3 {
		for _, line := range []string{"inventory", "status", "inspect", "help"} {
			res := g.Execute(line)
			require.NoError(t, res.Err)
			assert.False(t, res.Decayed)
		}
	}

	after := g.Snapshot()
	before.Turns, after.Turns = 0, 0
	assert.Equal(t, before, after)
}

func TestTakeDropRoundTrip(t *testing.T) {
	g := NewGame()
	play(t, g, "go north")

	play(t, g, "take fruit")
	assert.False(t, g.CurrentRoom().HasItem("fruit"))
	assert.True(t, g.Player().HasItem("fruit"))

	res := play(t, g, "drop fruit")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "You dropped: fruit")
	assert.True(t, g.CurrentRoom().HasItem("fruit"))
	assert.Empty(t, g.Player().Inventory())
	assertLevels(t, g, 35, 41)
}

func TestTakeAndDropMissingItemsStillDecay(t *testing.T) {
	g := NewGame()

	res := play(t, g, "take fruit")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)
	assert.True(t, res.Decayed)

	res = play(t, g, "drop fruit")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)
	assert.Contains(t, res.Output, "You don't have that item.")
	assertLevels(t, g, 40, 44)
}

func TestBearGuardsGold(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "go north", "take knife", "go west")

	res := play(t, g, "take gold")

	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.True(t, res.Decayed)
	assert.Contains(t, res.Output, "The bear is guarding the gold!")
	assert.Equal(t, []string{"gold"}, g.CurrentRoom().ItemNames())
	assert.False(t, g.Player().HasItem("gold"))
	assert.False(t, g.HasGold())
}

func TestDroppingGoldClearsHasGold(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "go north", "take knife", "go west", "use knife", "take gold")
	require.True(t, g.HasGold())

	play(t, g, "drop gold")
	assert.False(t, g.HasGold())
	assert.True(t, g.CurrentRoom().HasItem("gold"))

	play(t, g, "go east", "go south")
	assert.Equal(t, StatusPlaying, g.Status())
}

func TestCatchAndEatFish(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "go north")

	res := play(t, g, "catch shark")
	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)

	res = play(t, g, "catch fish")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Output, "You caught the fish!")
	assert.Nil(t, g.CurrentRoom().LiveAnimal("fish"))
	assert.NotNil(t, g.CurrentRoom().Animal("fish"))
	assert.Equal(t, "A fresh fish", g.Player().Item("fish").Description())
	assertLevels(t, g, 30, 38)

	res = play(t, g, "catch fish")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)

	res = play(t, g, "eat fish")
	require.NoError(t, res.Err)
	assert.False(t, res.Decayed)
	assert.Contains(t, res.Output, "You ate the fish. Food +40%")
	assert.False(t, g.Player().HasItem("fish"))
	assertLevels(t, g, 25, 75)
}

func TestEat(t *testing.T) {
	g := NewGame()
	play(t, g, "go north")

	res := play(t, g, "eat fruit")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)

	play(t, g, "take fruit")
	res = play(t, g, "eat bottle")
	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.Contains(t, res.Output, "You can't eat that!")

	res = play(t, g, "eat fruit")
	require.NoError(t, res.Err)
	assert.False(t, res.Decayed)
	assertLevels(t, g, 40, 74)
	assert.Empty(t, g.Player().Inventory())
}

func TestFillAndDrinkBottle(t *testing.T) {
	g := NewGame()

	res := play(t, g, "drink")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)
	assert.Contains(t, res.Output, "You need a bottle first!")

	play(t, g, "go north", "take bottle")
	res = play(t, g, "drink")
	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.False(t, res.Decayed)

	res = play(t, g, "use bottle")
	require.NoError(t, res.Err)
	assert.True(t, g.Player().BottleFilled())
	assertLevels(t, g, 35, 41)

	res = play(t, g, "drink")
	require.NoError(t, res.Err)
	assert.False(t, res.Decayed)
	assert.False(t, g.Player().BottleFilled())
	assertLevels(t, g, 100, 41)

	res = play(t, g, "drink")
	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
}

func TestUseBottleAwayFromSea(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "take bottle", "go east")

	res := play(t, g, "use bottle")

	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.Contains(t, res.Output, "You need to be near the sea to fill the bottle.")
	assert.False(t, g.Player().BottleFilled())
}

func TestDroppedBottleSpills(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "take bottle", "use bottle", "drop bottle", "take bottle")

	res := play(t, g, "drink")

	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
}

func TestUseOtherItems(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "go north")

	res := play(t, g, "use knife")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)

	play(t, g, "take knife", "take woodstick")
	res = play(t, g, "use knife")
	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.Contains(t, res.Output, "There's nothing to use the knife on here.")

	res = play(t, g, "use woodstick")
	require.ErrorIs(t, res.Err, ErrPreconditionUnmet)
	assert.Contains(t, res.Output, "You can't use that item now.")

	res = play(t, g, "use gold")
	require.ErrorIs(t, res.Err, ErrTargetNotFound)
	assert.True(t, res.Decayed)
}

func TestWinAndLossOnSameTurnEndsInLoss(t *testing.T) {
	g := NewGame()
	g.hasGold = true
	for range 9 {
		g.player.Decay()
	}
	require.True(t, g.Player().Alive())

	res := play(t, g, "go north")

	assert.Contains(t, res.Output, "YOU WON THE GAME!")
	assert.Contains(t, res.Output, "GAME OVER")
	assert.Equal(t, StatusLost, res.Status)
}

func TestHungerWhenOnlyFoodRunsOut(t *testing.T) {
	g := NewGame()
	for range 16 {
		g.player.Drink(models.WaterDecay)
		g.player.Decay()
	}
	require.True(t, g.Player().Alive())
	require.Equal(t, 2, g.Player().Food())

	res := play(t, g, "go north")

	assert.Equal(t, StatusLost, res.Status)
	assert.Contains(t, res.Output, "You died of hunger...")
}

func TestQuitAndGameOver(t *testing.T) {
	g := NewGame()

	res := play(t, g, "quit")
	require.NoError(t, res.Err)
	assert.Equal(t, StatusQuit, res.Status)
	assert.Contains(t, res.Output, "Thanks for playing!")

	res = play(t, g, "go north")
	require.ErrorIs(t, res.Err, ErrGameOver)
	assert.Equal(t, world.Sea, g.CurrentRoom().Name())
	assertLevels(t, g, 50, 50)
}

func countItems(g *Game) int {
	n := len(g.Player().Inventory())
	for _, r := range g.Island().Rooms {
		n += len(r.ItemNames())
	}
	return n
}

func TestItemsAreConserved(t *testing.T) {
	g := NewGame()
	require.Equal(t, 5, countItems(g))

	steps := []struct {
		line string
		want int
	}{
		{"go north", 5},
		{"take fruit", 5},
		{"take bottle", 5},
		{"go north", 5},
		{"catch fish", 6},
		{"take knife", 6},
		{"drop fruit", 6},
		{"eat fish", 5},
		{"take fruit", 5},
		{"eat fruit", 4},
	}
	for _, s := range steps {
		play(t, g, s.line)
		assert.Equal(t, s.want, countItems(g), "after %q", s.line)
	}
}

func TestAliveMatchesLevels(t *testing.T) {
	g := NewGame()
	lines := []string{"go north", "take fruit", "go east", "go west", "eat fruit", "go north", "take knife"}
	for i := 0; !g.Status().Terminal(); i++ {
		play(t, g, lines[i%len(lines)])
		p := g.Player()
		assert.Equal(t, p.Water() > 0 && p.Food() > 0, p.Alive(), "turn %d", i)
	}
}

func TestSnapshot(t *testing.T) {
	g := NewGame()
	play(t, g, "go north", "take bottle", "use bottle")

	snap := g.Snapshot()

	assert.Equal(t, g.ID(), snap.SessionID)
	assert.Equal(t, "Beach", snap.Room)
	assert.Equal(t, []string{"east", "north", "south"}, snap.Exits)
	assert.Equal(t, []string{"fruit"}, snap.ItemsHere)
	assert.Equal(t, []string{"bottle"}, snap.Inventory)
	assert.True(t, snap.BottleFilled)
	assert.Equal(t, 3, snap.Turns)
	assert.Equal(t, "PLAYING", snap.Status)
}
