package main

import (
	"os"

	"github.com/atikulmunna/logreport/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
