package main

import (
	"os"

	"github.com/pterodactyl/pa/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
