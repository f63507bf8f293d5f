package main

import "github.com/wichananm65/kriuke-snack/cmd/kriuke/commands"

func main() {
	commands.Execute()
}
