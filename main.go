package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/RestaurantRandomizer/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Restaurant Randomizer"), kong.Description("Restaurant Randomizer picks somewhere to eat from a curated list."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
