package main

import (
	"github.com/c9s/tago/pkg/cmd"
)

func main() {
	cmd.Execute()
}
