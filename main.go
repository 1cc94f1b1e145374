package main

import "github.com/theirongolddev/debtclock/cmd"

func main() {
	cmd.Execute()
}
