package main

import (
	"github.com/m04kA/SMC-SalonService/internal/cli"
)

func main() {
	cli.Execute()
}
