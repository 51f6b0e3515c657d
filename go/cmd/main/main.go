package main

import (
	"github.com/bfbbtools/gamehook/go/cmd"

	_ "github.com/bfbbtools/gamehook/go/cmd/status"

	_ "github.com/bfbbtools/gamehook/go/cmd/repl"
	_ "github.com/bfbbtools/gamehook/go/cmd/set"
	_ "github.com/bfbbtools/gamehook/go/cmd/watch"
)

func main() { cmd.Main() }
