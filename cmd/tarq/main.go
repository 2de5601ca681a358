package main

import (
	"github.com/c9s/tarq/pkg/cmd"
)

func main() {
	cmd.Execute()
}
