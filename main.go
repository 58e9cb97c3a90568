package main

import (
	"github.com/axellelanca/minicrud/cmd"
	_ "github.com/axellelanca/minicrud/cmd/cli"
	_ "github.com/axellelanca/minicrud/cmd/server"
)

func main() {
	cmd.Execute()
}
