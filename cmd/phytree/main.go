// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Phytree is a tool to view, reroot, rename,
// and draw phylogenetic trees.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/phytree/cmd/phytree/add"
	"github.com/js-arias/phytree/cmd/phytree/dist"
	"github.com/js-arias/phytree/cmd/phytree/draw"
	"github.com/js-arias/phytree/cmd/phytree/export"
	"github.com/js-arias/phytree/cmd/phytree/newickcmd"
	"github.com/js-arias/phytree/cmd/phytree/rename"
	"github.com/js-arias/phytree/cmd/phytree/root"
	"github.com/js-arias/phytree/cmd/phytree/tips"
)

var app = &command.Command{
	Usage: "phytree <command> [<argument>...]",
	Short: "a tool to view and draw phylogenetic trees",
}

func init() {
	app.Add(add.Command)
	app.Add(dist.Command)
	app.Add(draw.Command)
	app.Add(export.Command)
	app.Add(newickcmd.Command)
	app.Add(rename.Command)
	app.Add(root.Command)
	app.Add(tips.Command)
}

func main() {
	app.Main()
}
