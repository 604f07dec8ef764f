package main

import (
	"github.com/consensys/go-rambo/pkg/cmd"
)

func main() {
	cmd.Execute()
}
