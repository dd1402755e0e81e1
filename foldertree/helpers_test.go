// SPDX-License-Identifier: GPL-3.0-or-later
package foldertree

import (
	"strings"

	"github.com/CrawX/go-imap-transfer/domain"
)

// account builds an account from slash separated paths. A path may carry a
// folder type after a colon, e.g. "Trash:trash".
func account(key string, paths ...string) *domain.Account {
	acc := &domain.Account{Key: key}
	byPath := map[string]*domain.Folder{}

	for _, p := range paths {
		folderType := domain.FolderType("")
		if i := strings.Index(p, ":"); i >= 0 {
			folderType = domain.FolderType(p[i+1:])
			p = p[:i]
		}

		segments := strings.Split(p, "/")
		folder := &domain.Folder{
			AccountKey: key,
			Path:       p,
			Name:       segments[len(segments)-1],
			Delimiter:  "/",
			Type:       folderType,
			Selectable: true,
		}
		byPath[p] = folder

		if len(segments) == 1 {
			acc.Folders = append(acc.Folders, folder)
		} else {
			parent := byPath[strings.Join(segments[:len(segments)-1], "/")]
			parent.SubFolders = append(parent.SubFolders, folder)
		}
	}

	return acc
}

func childNames(n *Node) []string {
	names := []string{}
	for _, c := range n.Children {
		names = append(names, c.Name())
	}
	return names
}
