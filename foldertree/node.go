// SPDX-License-Identifier: GPL-3.0-or-later
package foldertree

import (
	"fmt"

	"github.com/CrawX/go-imap-transfer/domain"
	"github.com/CrawX/go-imap-transfer/log"

	"github.com/sirupsen/logrus"
)

const rootName = "<root>"

var specialFolderTypes = map[domain.FolderType]bool{
	domain.FolderInbox:     true,
	domain.FolderDrafts:    true,
	domain.FolderSent:      true,
	domain.FolderTrash:     true,
	domain.FolderTemplates: true,
	domain.FolderArchives:  true,
	domain.FolderJunk:      true,
	domain.FolderOutbox:    true,
}

var ignoredFolderTypes = map[domain.FolderType]bool{
	domain.FolderTrash: true,
	domain.FolderJunk:  true,
}

// Node wraps a platform folder and keeps the shape of the folder tree. The
// root node of a tree stands for the account itself and carries a synthetic
// folder holding the account's top-level folders.
type Node struct {
	Folder   *domain.Folder
	Account  *domain.Account
	IsRoot   bool
	Children []*Node
}

type AccountLister interface {
	ListAccountFolders(accountKey string) (*domain.Account, error)
}

func NewNode(folder *domain.Folder, account *domain.Account) *Node {
	return &Node{
		Folder:  folder,
		Account: account,
	}
}

// FromAccount fetches a fresh folder listing for accountKey and builds the
// folder tree for it.
func FromAccount(lister AccountLister, accountKey string) (*Node, error) {
	account, err := lister.ListAccountFolders(accountKey)
	if err != nil {
		return nil, fmt.Errorf("could not list folders of account %s: %w", accountKey, err)
	}

	root := Build(account)
	log.Logger(log.LOG_FOLDERTREE).WithFields(logrus.Fields{"account": accountKey, "folders": root.Size()}).Debug("Built folder tree")
	return root, nil
}

// Build materializes the folder tree of an already listed account. The walk
// uses an explicit stack so the depth of the hierarchy does not matter.
func Build(account *domain.Account) *Node {
	root := &Node{
		Folder: &domain.Folder{
			AccountKey: account.Key,
			SubFolders: account.Folders,
		},
		Account: account,
		IsRoot:  true,
	}
	materialize(root)

	return root
}

func materialize(top *Node) {
	stack := []*Node{top}
	for len(stack) > 0 {
		parent := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, folder := range parent.Folder.SubFolders {
			child := NewNode(folder, parent.Account)
			parent.Append(child)
			stack = append(stack, child)
		}
	}
}

func (n *Node) Name() string {
	if n.Folder == nil || len(n.Folder.Name) == 0 {
		return rootName
	}
	return n.Folder.Name
}

func (n *Node) Path() string {
	if n.IsRoot || n.Folder == nil {
		return ""
	}
	return n.Folder.Path
}

// Type is the folder's special use, or user for regular folders.
func (n *Node) Type() domain.FolderType {
	if n.Folder == nil || len(n.Folder.Type) == 0 {
		return domain.FolderUser
	}
	return n.Folder.Type
}

func (n *Node) IsSpecial() bool {
	return specialFolderTypes[n.Type()]
}

// ShouldIgnore reports folders that are never compared or transferred,
// including everything below them.
func (n *Node) ShouldIgnore() bool {
	return ignoredFolderTypes[n.Type()]
}

func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// IsSame matches folders of two independently listed trees. Folders carry no
// identity across accounts, so the name is all there is.
func (n *Node) IsSame(other *Node) bool {
	return folderName(n) == folderName(other)
}

func folderName(n *Node) string {
	if n.Folder == nil {
		return ""
	}
	return n.Folder.Name
}

// Find returns the direct child matching target, or nil.
func (n *Node) Find(target *Node) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.IsSame(target) {
			return c
		}
	}
	return nil
}

// Adopt wraps a folder that was just created below n and materializes its
// subtree.
func (n *Node) Adopt(folder *domain.Folder) *Node {
	child := NewNode(folder, n.Account)
	materialize(child)
	n.Append(child)
	return child
}

// Size counts the nodes below n, ignored subtrees excluded.
func (n *Node) Size() int {
	count := 0
	stack := append([]*Node{}, n.Children...)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.ShouldIgnore() {
			continue
		}
		count++
		stack = append(stack, node.Children...)
	}
	return count
}
