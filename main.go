package main

import (
	"github.com/tranvictor/accountaddr/cmd"
)

func main() {
	cmd.Execute()
}
