// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Persistence

type TransferAction string

const (
	ActionCopy  = TransferAction("copy")
	ActionMerge = TransferAction("merge")
)

type TransferRun struct {
	Id           string
	Source       string
	Destination  string
	DryRun       bool
	StartedAt    time.Time
	FinishedAt   *time.Time
	FolderCount  int
	MessageCount int
	Error        string
}

type FolderAction struct {
	RunId           string
	SourcePath      string
	DestinationPath string
	Action          TransferAction
	MessageCount    int
}

type Persistence interface {
	Close() error
	StartRun(source, destination string, dryRun bool) (string, error)
	SaveFolderAction(action FolderAction) error
	FinishRun(id string, folderCount, messageCount int, runErr error) error
	Runs(limit int) ([]*TransferRun, error)
	FolderActions(runId string) ([]*FolderAction, error)
}
