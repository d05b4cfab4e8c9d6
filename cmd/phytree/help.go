// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(drawConfigGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Phytree keeps the reference of the tree file, the store used to save the
state of the tree (renamed terminals and rooting), and the drawing
configuration, in a single project file. This guide explains the structure of
the file, but most of the time, the best way to edit or view this file is by
using the command 'phytree add'.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# phytree project files
	dataset	path
	tree	acer.nex
	store	acer-state.db
	draw	acer.toml

The valid file types are:

- Phylogenetic tree. Defined by the dataset keyword "tree". This file
  contains the tree in Newick or NEXUS format, or a collection of
  time-calibrated trees in a tab-delimited file (see 'phytree help trees').
- State store. Defined by the dataset keyword "store". It is the location
  in which the renamed terminals and the rooting of the tree are kept. It
  can be a tab-delimited file, a SQLite database (a file with extension .db
  or .sqlite), or a Redis server (using an URL as
  "redis://localhost:6379/0"). If no store is defined, changes in the state
  of the tree will be lost.
- Drawing configuration. Defined by the dataset keyword "draw". A TOML file
  with the options used to draw the tree (see 'phytree help draw-config').
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "trees",
	Short: "about tree files",
	Long: `
Phytree reads trees in three formats.

The first one is a Newick (parenthetical) tree, for example:

	((Acer_rubrum:1,Acer_saccharum:1):1,Acer_negundo:2);

Names with spaces or delimiters can be quoted with single quotes. Comments
between brackets are ignored, as well as BEAST-style annotations, such as
"[&R]". If a file contains more than one tree, only the first tree is read.

The second one is a NEXUS file with a trees block. The first tree statement
is used, and if the block has a translate command, the labels of the tree are
replaced by the names in the table:

	#NEXUS
	begin trees;
		translate
			1 Acer_rubrum,
			2 Acer_saccharum,
			3 Acer_negundo;
		tree one = [&R] ((1:1,2:1):1,3:2);
	end;

The third one is a tab-delimited file of time-calibrated trees. Files with
the extension .tab or .tsv are read in this format, and only the first tree
of the file is used. Branch lengths are read in million years. The file has
the following columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

Here is an example file:

	# time calibrated phylogenetic tree
	tree	node	parent	age	taxon
	acer	0	-1	2000000
	acer	1	0	1000000
	acer	2	1	0	Acer rubrum
	acer	3	1	0	Acer saccharum
	acer	4	0	0	Acer negundo

Files in this format can be produced with the command 'phytree export'.
	`,
}

var drawConfigGuide = &command.Command{
	Usage: "draw-config",
	Short: "about drawing configuration files",
	Long: `
The options used to draw a tree can be kept in a TOML file. Options not
defined in the file take its default value. Any flag of the command
'phytree draw' overrides the values of the file.

Here is an example file, with the default values:

	[layout]
	width = 600.0
	spacing = 20.0
	compact = false
	align-labels = false

	[style]
	line-width = 1.5
	font-size = 12.0
	margin = 20.0
	gradient = false
	no-scale = false

In the layout section, width is the horizontal size, in pixels, of the
deepest node; spacing is the vertical space between terminals; if compact is
true, the spacing is reduced; and if align-labels is true, all terminal names
are aligned at the deepest node.

In the style section, line-width is the width of the branches; font-size is
the size of the terminal names; margin is the empty space around the tree; if
gradient is true, branches are colored by their length; and if no-scale is
true, the scale bar is not drawn.

A file with the default values can be created with the command
'phytree draw --config <file>'.
	`,
}
