package engine

const (
	victoryBanner = `
╔════════════════════════════════════════╗
║         YOU WON THE GAME!              ║
╚════════════════════════════════════════╝
You found the gold and escaped the island!`

	defeatBanner = `
╔════════════════════════════════════════╗
║          GAME OVER                     ║
╚════════════════════════════════════════╝`

	welcomeBanner = `
╔════════════════════════════════════════╗
║   WELCOME TO LOST ON THE ISLAND!       ║
╚════════════════════════════════════════╝

You woke up in the sea after a storm.
Survive on the island and find the treasure!
Be careful, dont forget to eat and drink.
Good Luck!!!

Type 'help' to see the commands.`

	// Farewell closes every session, whatever its outcome.
	Farewell = "\nThank you for playing Lost on the Island!"
)

// Welcome is the session intro followed by the starting room.
func (g *Game) Welcome() string {
	return welcomeBanner + "\n" + g.current.FullDescription()
}
