// SPDX-License-Identifier: GPL-3.0-or-later
package transfer

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/CrawX/go-imap-transfer/domain"
	"github.com/CrawX/go-imap-transfer/foldertree"
	"github.com/sirupsen/logrus"
)

func nullLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func newTestTransferer(platform domain.MailPlatform, cfg *configuration) *Transferer {
	return &Transferer{
		platform:      platform,
		configuration: cfg,
		l:             nullLogger(),
	}
}

// tree builds a folder tree from slash separated paths, a folder type may
// follow the path after a colon.
func tree(key string, paths ...string) *foldertree.Node {
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

	return foldertree.Build(acc)
}

func node(root *foldertree.Node, path string) *foldertree.Node {
	n := root
	for _, name := range strings.Split(path, "/") {
		var next *foldertree.Node
		for _, c := range n.Children {
			if c.Name() == name {
				next = c
			}
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

func ids(folder *domain.Folder, uids ...int) []domain.MessageId {
	result := []domain.MessageId{}
	for _, uid := range uids {
		result = append(result, domain.MessageId{AccountKey: folder.AccountKey, FolderPath: folder.Path, Uid: uint32(uid)})
	}
	return result
}

// fakePlatform keeps message counts per folder and records every mutation.
type fakePlatform struct {
	messages map[string]int
	pageSize int

	folderCopies  []string
	messageCopies map[string]int
}

func newFakePlatform(pageSize int) *fakePlatform {
	return &fakePlatform{
		messages:      map[string]int{},
		pageSize:      pageSize,
		messageCopies: map[string]int{},
	}
}

func folderKey(f *domain.Folder) string {
	return f.AccountKey + ":" + f.Path
}

func (fp *fakePlatform) ListAccountFolders(accountKey string) (*domain.Account, error) {
	return nil, errors.New("not implemented")
}

func (fp *fakePlatform) GetFolderInfo(folder *domain.Folder) (*domain.FolderInfo, error) {
	return &domain.FolderInfo{TotalMessageCount: fp.messages[folderKey(folder)]}, nil
}

func (fp *fakePlatform) CopyFolder(source *domain.Folder, account *domain.Account, parent *domain.Folder) (*domain.Folder, error) {
	fp.folderCopies = append(fp.folderCopies, source.Path)

	path := source.Name
	if parent != nil {
		path = parent.Path + "/" + source.Name
	}
	return fp.clone(source, account.Key, path), nil
}

func (fp *fakePlatform) clone(source *domain.Folder, accountKey, path string) *domain.Folder {
	copied := &domain.Folder{
		AccountKey: accountKey,
		Path:       path,
		Name:       source.Name,
		Delimiter:  "/",
		Selectable: true,
	}
	fp.messages[folderKey(copied)] = fp.messages[folderKey(source)]
	for _, sub := range source.SubFolders {
		copied.SubFolders = append(copied.SubFolders, fp.clone(sub, accountKey, path+"/"+sub.Name))
	}
	return copied
}

func (fp *fakePlatform) page(key string, offset int) *domain.MessagePage {
	total := fp.messages[key]
	end := offset + fp.pageSize
	if end > total {
		end = total
	}

	page := &domain.MessagePage{Messages: []domain.MessageId{}}
	for uid := offset + 1; uid <= end; uid++ {
		page.Messages = append(page.Messages, domain.MessageId{Uid: uint32(uid)})
	}
	if end < total {
		page.Cursor = fmt.Sprintf("%s|%d", key, end)
	}
	return page
}

func (fp *fakePlatform) ListMessages(folder *domain.Folder) (*domain.MessagePage, error) {
	return fp.page(folderKey(folder), 0), nil
}

func (fp *fakePlatform) ContinueListMessages(cursor string) (*domain.MessagePage, error) {
	i := strings.LastIndex(cursor, "|")
	if i < 0 {
		return nil, domain.ErrUnknownCursor
	}
	offset, err := strconv.Atoi(cursor[i+1:])
	if err != nil {
		return nil, domain.ErrUnknownCursor
	}
	return fp.page(cursor[:i], offset), nil
}

func (fp *fakePlatform) CopyMessages(messages []domain.MessageId, destination *domain.Folder) error {
	fp.messageCopies[destination.Path]++
	fp.messages[folderKey(destination)] += len(messages)
	return nil
}
