package main

import (
	"log"

	"github.com/Ernest1338/randlib/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
