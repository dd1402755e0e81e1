// SPDX-License-Identifier: GPL-3.0-or-later
package foldertree

import "github.com/CrawX/go-imap-transfer/domain"

// ConflictInfo mirrors one folder of a compared source tree.
type ConflictInfo struct {
	Name      string
	Path      string
	Type      domain.FolderType
	IsSpecial bool

	// Conflict is set when a folder with the same name exists at the same
	// position in the destination tree.
	Conflict bool
	// Conflicts counts the direct children that are in conflict.
	Conflicts int

	Children []*ConflictInfo
}

func conflictInfoFromNode(n *Node) *ConflictInfo {
	return &ConflictInfo{
		Name:      n.Name(),
		Path:      n.Path(),
		Type:      n.Type(),
		IsSpecial: n.IsSpecial(),
	}
}

type compareItem struct {
	src    *Node
	dest   *Node
	parent *ConflictInfo
}

// Compare determines which folders of src would collide with folders of dest.
// A source folder only matches a destination folder of the same name below
// the destination folder matched by its parent. Ignored folders and their
// subtrees are left out of the result.
func Compare(src, dest *Node) *ConflictInfo {
	root := conflictInfoFromNode(src)

	stack := []compareItem{{src, dest, root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.src.ShouldIgnore() {
			continue
		}

		clone := item.parent
		if !item.src.IsRoot {
			clone = conflictInfoFromNode(item.src)
			if item.dest != nil {
				clone.Conflict = true
				item.parent.Conflicts++
			}
			item.parent.Children = append(item.parent.Children, clone)
		}

		// reversed so the report keeps the listing order
		for i := len(item.src.Children) - 1; i >= 0; i-- {
			child := item.src.Children[i]
			stack = append(stack, compareItem{child, item.dest.Find(child), clone})
		}
	}

	return root
}

type FlatConflictInfo struct {
	Depth int
	*ConflictInfo
}

// Flatten lists the report below c in pre-order, children in their listing
// order, with their depth relative to c.
func (c *ConflictInfo) Flatten() []FlatConflictInfo {
	result := []FlatConflictInfo{}

	stack := []FlatConflictInfo{}
	for i := len(c.Children) - 1; i >= 0; i-- {
		stack = append(stack, FlatConflictInfo{0, c.Children[i]})
	}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = append(result, item)

		for i := len(item.Children) - 1; i >= 0; i-- {
			stack = append(stack, FlatConflictInfo{item.Depth + 1, item.Children[i]})
		}
	}

	return result
}

// TotalConflicts counts every conflicting folder in the report.
func (c *ConflictInfo) TotalConflicts() int {
	total := c.Conflicts
	for _, f := range c.Flatten() {
		total += f.Conflicts
	}
	return total
}
