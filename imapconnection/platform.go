// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=platform_mocks_test.go -package=imapconnection -source platform.go
import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/CrawX/go-imap-transfer/domain"
	"github.com/CrawX/go-imap-transfer/log"
	"github.com/CrawX/go-imap-transfer/mail"

	"github.com/emersion/go-imap"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const DefaultPageSize = 100

type connector interface {
	Mailboxes() ([]*imap.MailboxInfo, error)
	Delimiter() (string, error)
	Select(folder string, readOnly bool) (uint32, error)
	ListUids() ([]uint32, error)
	MessageCount(folder string) (int, error)
	Create(folder string) error
	FetchMails(uids []uint32) ([]*RawMail, error)
	Put(m *RawMail, folder string) error
	Close() error
}

type account struct {
	name string
	conn connector
}

type pendingList struct {
	folder  *domain.Folder
	batches [][]uint32
}

// Platform provides folder and message operations across several IMAP
// accounts. Messages are copied between accounts by fetching them from the
// source server and appending them on the destination server. Commands are
// issued one at a time.
type Platform struct {
	accounts map[string]*account
	pageSize int

	cursors map[string]*pendingList

	l *logrus.Logger
}

func NewPlatform(pageSize int) *Platform {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Platform{
		accounts: map[string]*account{},
		pageSize: pageSize,
		cursors:  map[string]*pendingList{},
		l:        log.Logger(log.LOG_IMAP),
	}
}

func (p *Platform) AddAccount(key string, conn *ImapConnection) {
	p.addAccount(key, conn.String(), conn)
}

func (p *Platform) addAccount(key, name string, conn connector) {
	p.accounts[key] = &account{name: name, conn: conn}
}

func (p *Platform) Close() error {
	var firstErr error
	for key, acc := range p.accounts {
		err := acc.conn.Close()
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("could not close connection of account %s: %w", key, err)
		}
	}
	return firstErr
}

func (p *Platform) connection(accountKey string) (connector, error) {
	acc, ok := p.accounts[accountKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountKey)
	}
	return acc.conn, nil
}

func (p *Platform) ListAccountFolders(accountKey string) (*domain.Account, error) {
	acc, ok := p.accounts[accountKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, accountKey)
	}

	mailboxes, err := acc.conn.Mailboxes()
	if err != nil {
		return nil, err
	}

	folders := buildFolders(accountKey, mailboxes)
	p.l.WithFields(logrus.Fields{"account": accountKey, "mailboxes": len(mailboxes)}).Debug("Listed account folders")

	return &domain.Account{
		Key:     accountKey,
		Name:    acc.name,
		Folders: folders,
	}, nil
}

func (p *Platform) GetFolderInfo(folder *domain.Folder) (*domain.FolderInfo, error) {
	conn, err := p.connection(folder.AccountKey)
	if err != nil {
		return nil, err
	}

	if !folder.Selectable {
		return &domain.FolderInfo{}, nil
	}

	count, err := conn.MessageCount(folder.Path)
	if err != nil {
		return nil, fmt.Errorf("could not count messages in %s: %w", folder.Path, err)
	}

	return &domain.FolderInfo{TotalMessageCount: count}, nil
}

func (p *Platform) ListMessages(folder *domain.Folder) (*domain.MessagePage, error) {
	conn, err := p.connection(folder.AccountKey)
	if err != nil {
		return nil, err
	}

	if !folder.Selectable {
		return &domain.MessagePage{Messages: []domain.MessageId{}}, nil
	}

	uids, err := p.folderUids(conn, folder.Path)
	if err != nil {
		return nil, err
	}

	return p.page(folder, partitionUids(uids, p.pageSize)), nil
}

func (p *Platform) ContinueListMessages(cursor string) (*domain.MessagePage, error) {
	pending, ok := p.cursors[cursor]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCursor, cursor)
	}
	delete(p.cursors, cursor)

	return p.page(pending.folder, pending.batches), nil
}

func (p *Platform) page(folder *domain.Folder, batches [][]uint32) *domain.MessagePage {
	page := &domain.MessagePage{Messages: []domain.MessageId{}}
	for _, uid := range batches[0] {
		page.Messages = append(page.Messages, domain.MessageId{
			AccountKey: folder.AccountKey,
			FolderPath: folder.Path,
			Uid:        uid,
		})
	}

	if len(batches) > 1 {
		page.Cursor = uuid.New().String()
		p.cursors[page.Cursor] = &pendingList{
			folder:  folder,
			batches: batches[1:],
		}
	}

	p.l.WithFields(logrus.Fields{"folder": folder.Path, "messages": len(page.Messages), "remainingpages": len(batches) - 1}).Debug("Listed message page")
	return page
}

func (p *Platform) CopyMessages(messages []domain.MessageId, destination *domain.Folder) error {
	if len(messages) == 0 {
		return nil
	}

	destConn, err := p.connection(destination.AccountKey)
	if err != nil {
		return err
	}

	for _, g := range groupBySource(messages) {
		srcConn, err := p.connection(g.accountKey)
		if err != nil {
			return err
		}

		_, err = srcConn.Select(g.folderPath, true)
		if err != nil {
			p.dropCursors(g.accountKey, g.folderPath)
			return fmt.Errorf("could not select %s: %w", g.folderPath, err)
		}

		err = p.copyUids(srcConn, destConn, g.uids, destination.Path)
		if err != nil {
			p.dropCursors(g.accountKey, g.folderPath)
			return fmt.Errorf("could not copy messages from %s to %s: %w", g.folderPath, destination.Path, err)
		}
	}

	return nil
}

// dropCursors forgets the remaining pages of a listing whose copy failed, the
// caller abandons it.
func (p *Platform) dropCursors(accountKey, folderPath string) {
	for id, pending := range p.cursors {
		if pending.folder.AccountKey == accountKey && pending.folder.Path == folderPath {
			delete(p.cursors, id)
			p.l.WithFields(logrus.Fields{"folder": folderPath, "cursor": id}).Debug("Dropped message list cursor")
		}
	}
}

type copyItem struct {
	src    *domain.Folder
	parent *domain.Folder
}

// CopyFolder recreates source with its whole subtree below parent and copies
// all messages along.
func (p *Platform) CopyFolder(source *domain.Folder, acc *domain.Account, parent *domain.Folder) (*domain.Folder, error) {
	srcConn, err := p.connection(source.AccountKey)
	if err != nil {
		return nil, err
	}
	destConn, err := p.connection(acc.Key)
	if err != nil {
		return nil, err
	}

	delimiter, err := destConn.Delimiter()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	var top *domain.Folder
	folders, messages := 0, 0

	stack := []copyItem{{source, parent}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		path := item.src.Name
		if item.parent != nil {
			path = item.parent.Path + delimiter + item.src.Name
		}

		err = destConn.Create(path)
		if err != nil {
			return top, fmt.Errorf("could not create %s: %w", path, err)
		}

		created := &domain.Folder{
			AccountKey: acc.Key,
			Path:       path,
			Name:       item.src.Name,
			Delimiter:  delimiter,
			Selectable: true,
			SubFolders: []*domain.Folder{},
		}
		if top == nil {
			top = created
		} else {
			item.parent.SubFolders = append(item.parent.SubFolders, created)
		}

		if item.src.Selectable {
			count, err := p.copyFolderMessages(srcConn, destConn, item.src, path)
			if err != nil {
				return top, err
			}
			messages += count
		}
		folders++

		for i := len(item.src.SubFolders) - 1; i >= 0; i-- {
			sub := item.src.SubFolders[i]
			if skipOnCopy(sub) {
				p.l.WithFields(logrus.Fields{"folder": sub.Path, "type": sub.Type}).Debug("Not copying trash or junk folder")
				continue
			}
			stack = append(stack, copyItem{sub, created})
		}
	}

	p.l.WithFields(logrus.Fields{"folder": source.Path, "destination": top.Path, "folders": folders, "messages": messages, "duration": time.Since(start)}).Debug("Copied folder tree")
	return top, nil
}

// skipOnCopy reports whether a subfolder is left behind when its parent is
// copied. Trash and junk are never transferred, together with everything
// below them.
func skipOnCopy(f *domain.Folder) bool {
	return f.Type == domain.FolderTrash || f.Type == domain.FolderJunk
}

func (p *Platform) copyFolderMessages(srcConn, destConn connector, src *domain.Folder, destPath string) (int, error) {
	uids, err := p.folderUids(srcConn, src.Path)
	if err != nil {
		return 0, err
	}
	if len(uids) == 0 {
		return 0, nil
	}

	for _, batch := range partitionUids(uids, p.pageSize) {
		err = p.copyUids(srcConn, destConn, batch, destPath)
		if err != nil {
			return 0, fmt.Errorf("could not copy messages from %s to %s: %w", src.Path, destPath, err)
		}
	}

	return len(uids), nil
}

// copyUids expects the source folder to be selected.
func (p *Platform) copyUids(srcConn, destConn connector, uids []uint32, destPath string) error {
	start := time.Now()
	mails, err := srcConn.FetchMails(uids)
	if err != nil {
		return err
	}

	for _, m := range mails {
		err = destConn.Put(m, destPath)
		if err != nil {
			return fmt.Errorf(`could not append "%s" (uid %d, mailid %s): %w`, mail.ShortSubject(m.Subject), m.Uid, m.MailIdHash, err)
		}
	}

	p.l.WithFields(logrus.Fields{"destination": destPath, "batchsize": len(mails), "duration": time.Since(start)}).Debug("Copied mail batch")
	return nil
}

func (p *Platform) folderUids(conn connector, path string) ([]uint32, error) {
	_, err := conn.Select(path, true)
	if err != nil {
		return nil, fmt.Errorf("could not select %s: %w", path, err)
	}

	uids, err := conn.ListUids()
	if err != nil {
		return nil, fmt.Errorf("could not list uids in %s: %w", path, err)
	}

	sort.Slice(uids, func(i, j int) bool { return uids[i] < uids[j] })
	return uids, nil
}

type sourceGroup struct {
	accountKey string
	folderPath string
	uids       []uint32
}

func groupBySource(messages []domain.MessageId) []*sourceGroup {
	groups := []*sourceGroup{}
	byKey := map[string]*sourceGroup{}
	for _, m := range messages {
		key := m.AccountKey + "\x00" + m.FolderPath
		g, ok := byKey[key]
		if !ok {
			g = &sourceGroup{accountKey: m.AccountKey, folderPath: m.FolderPath}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.uids = append(g.uids, m.Uid)
	}
	return groups
}

// buildFolders turns a flat LIST response into a folder hierarchy. Parents the
// server did not list are added as non-selectable folders.
func buildFolders(accountKey string, mailboxes []*imap.MailboxInfo) []*domain.Folder {
	sorted := append([]*imap.MailboxInfo{}, mailboxes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	roots := []*domain.Folder{}
	byPath := map[string]*domain.Folder{}

	for _, mbox := range sorted {
		segments := []string{mbox.Name}
		if len(mbox.Delimiter) > 0 {
			segments = strings.Split(mbox.Name, mbox.Delimiter)
		}

		var parent *domain.Folder
		for i := range segments {
			path := strings.Join(segments[:i+1], mbox.Delimiter)
			folder, ok := byPath[path]
			if !ok {
				folder = &domain.Folder{
					AccountKey: accountKey,
					Path:       path,
					Name:       segments[i],
					Delimiter:  mbox.Delimiter,
					SubFolders: []*domain.Folder{},
				}
				byPath[path] = folder
				if parent == nil {
					roots = append(roots, folder)
				} else {
					parent.SubFolders = append(parent.SubFolders, folder)
				}
			}
			parent = folder
		}

		parent.Type = folderType(mbox)
		parent.Selectable = selectable(mbox)
	}

	return roots
}

func folderType(mbox *imap.MailboxInfo) domain.FolderType {
	if strings.EqualFold(mbox.Name, imap.InboxName) {
		return domain.FolderInbox
	}

	for _, attr := range mbox.Attributes {
		switch attr {
		case imap.DraftsAttr:
			return domain.FolderDrafts
		case imap.SentAttr:
			return domain.FolderSent
		case imap.TrashAttr:
			return domain.FolderTrash
		case imap.JunkAttr:
			return domain.FolderJunk
		case imap.ArchiveAttr:
			return domain.FolderArchives
		}
	}

	return ""
}

func selectable(mbox *imap.MailboxInfo) bool {
	for _, attr := range mbox.Attributes {
		if attr == imap.NoSelectAttr {
			return false
		}
	}
	return true
}

// taken from https://github.com/golang/go/wiki/SliceTricks
func partitionUids(uids []uint32, partitionSize int) [][]uint32 {
	batches := make([][]uint32, 0, (len(uids)+partitionSize-1)/partitionSize)

	for partitionSize < len(uids) {
		uids, batches = uids[partitionSize:], append(batches, uids[0:partitionSize:partitionSize])
	}
	batches = append(batches, uids)

	return batches
}
