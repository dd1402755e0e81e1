// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

//go:generate mockgen -destination=mocks/imap.go -package=mocks . MailPlatform

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrUnknownCursor   = errors.New("unknown message list cursor")
)

type FolderType string

const (
	FolderInbox     = FolderType("inbox")
	FolderDrafts    = FolderType("drafts")
	FolderSent      = FolderType("sent")
	FolderTrash     = FolderType("trash")
	FolderTemplates = FolderType("templates")
	FolderArchives  = FolderType("archives")
	FolderJunk      = FolderType("junk")
	FolderOutbox    = FolderType("outbox")
	FolderUser      = FolderType("user")
)

// Account is one mail account together with its top-level folders.
type Account struct {
	Key     string
	Name    string
	Folders []*Folder
}

// Folder is a handle to a folder living on the mail platform. Type is empty
// when the platform reports no special use for the folder.
type Folder struct {
	AccountKey string
	Path       string
	Name       string
	Delimiter  string
	Type       FolderType
	Selectable bool
	SubFolders []*Folder
}

type FolderInfo struct {
	TotalMessageCount int
}

type MessageId struct {
	AccountKey string
	FolderPath string
	Uid        uint32
}

// MessagePage is one batch of a paginated message listing. Cursor is empty on
// the final page.
type MessagePage struct {
	Messages []MessageId
	Cursor   string
}

type MailPlatform interface {
	ListAccountFolders(accountKey string) (*Account, error)
	GetFolderInfo(folder *Folder) (*FolderInfo, error)
	// CopyFolder copies source with all of its messages and subfolders below
	// parent. A nil parent means the root of account.
	CopyFolder(source *Folder, account *Account, parent *Folder) (*Folder, error)
	ListMessages(folder *Folder) (*MessagePage, error)
	ContinueListMessages(cursor string) (*MessagePage, error)
	CopyMessages(messages []MessageId, destination *Folder) error
}
