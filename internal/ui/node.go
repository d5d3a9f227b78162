package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element. Type is "panel", "label", or "button"; Class and
// ID are matched against stylesheet selectors. Bounds are resolved from style
// each time the cache is rebuilt.
type Node struct {
	Type   string
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// IsButton reports whether this node is the clickable control.
func (n *Node) IsButton() bool {
	return n.Type == "button"
}
