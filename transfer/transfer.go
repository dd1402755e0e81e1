// SPDX-License-Identifier: GPL-3.0-or-later
package transfer

import (
	"fmt"
	"time"

	"github.com/CrawX/go-imap-transfer/domain"
	"github.com/CrawX/go-imap-transfer/foldertree"
	"github.com/CrawX/go-imap-transfer/log"

	"github.com/sirupsen/logrus"
)

type Result struct {
	FolderCount  int
	MessageCount int
}

// Transferer copies the folders of one account into another. Folders missing
// in the destination are copied as a whole, folders that already exist get
// the source's messages merged into them.
type Transferer struct {
	platform domain.MailPlatform

	configuration *configuration

	l *logrus.Logger
}

func NewTransferer(platform domain.MailPlatform, configFunc ...ConfigFunc) (*Transferer, error) {
	config := &configuration{}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Transferer{
		platform:      platform,
		configuration: config,
		l:             log.Logger(log.LOG_TRANSFER),
	}, nil
}

type transferItem struct {
	src    *foldertree.Node
	dest   *foldertree.Node
	parent *foldertree.Node
}

// Transfer moves everything below src into dest. dest is updated in place
// with the folders created along the way and must not be used by anything
// else during the call. Any failing platform call aborts the transfer; the
// result then holds what was transferred up to that point.
func (t *Transferer) Transfer(src, dest *foldertree.Node) (*Result, error) {
	start := time.Now()
	runId, err := t.startRun(src, dest)
	if err != nil {
		return nil, err
	}

	result, err := t.walk(runId, src, dest)
	if err != nil {
		t.l.WithFields(logrus.Fields{"folders": result.FolderCount, "messages": result.MessageCount, "error": err}).Error("Transfer aborted")
		if finishErr := t.finishRun(runId, result, err); finishErr != nil {
			t.l.WithField("error", finishErr).Error("Could not journal aborted transfer")
		}
		return result, err
	}

	err = t.finishRun(runId, result, nil)
	if err != nil {
		return result, err
	}

	t.l.WithFields(logrus.Fields{
		"folders":  result.FolderCount,
		"messages": result.MessageCount,
		"duration": time.Since(start),
		"dryrun":   t.configuration.DryRun,
	}).Info("Transfer finished")
	return result, nil
}

func (t *Transferer) walk(runId string, src, dest *foldertree.Node) (*Result, error) {
	result := &Result{}

	stack := []transferItem{{src, dest, dest}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.src.ShouldIgnore() {
			t.l.WithFields(logrus.Fields{"folder": item.src.Path(), "type": item.src.Type()}).Debug("Skipping ignored folder")
			continue
		}

		target := item.dest
		if !item.src.IsRoot {
			if target == nil {
				count, copied, err := t.copyFolder(runId, item.src, item.parent)
				if copied {
					// the copy already brought along all subfolders, they are
					// counted but not visited
					result.FolderCount += 1 + item.src.Size()
					result.MessageCount += count
				}
				if err != nil {
					return result, err
				}
				continue
			}

			result.FolderCount++
			count, err := t.mergeFolder(runId, item.src, target)
			result.MessageCount += count
			if err != nil {
				return result, err
			}
		}

		for i := len(item.src.Children) - 1; i >= 0; i-- {
			child := item.src.Children[i]
			stack = append(stack, transferItem{child, target.Find(child), target})
		}
	}

	return result, nil
}

// copyFolder reports whether the folder took effect in the destination, also
// when a later step failed.
func (t *Transferer) copyFolder(runId string, src, parent *foldertree.Node) (int, bool, error) {
	baseLogger := t.l.WithFields(logrus.Fields{"folder": src.Path(), "parent": parent.Path()})

	if t.configuration.DryRun {
		info, err := t.platform.GetFolderInfo(src.Folder)
		if err != nil {
			return 0, false, fmt.Errorf("could not get info for folder %s: %w", src.Path(), err)
		}

		baseLogger.WithField("messages", info.TotalMessageCount).Warn("Not copying folder due to dry-run")
		return info.TotalMessageCount, true, t.saveFolderAction(runId, src.Path(), destinationPath(src, parent), domain.ActionCopy, info.TotalMessageCount)
	}

	start := time.Now()
	var parentFolder *domain.Folder
	if !parent.IsRoot {
		parentFolder = parent.Folder
	}

	created, err := t.platform.CopyFolder(src.Folder, parent.Account, parentFolder)
	if err != nil {
		return 0, false, fmt.Errorf("could not copy folder %s: %w", src.Path(), err)
	}
	node := parent.Adopt(created)

	info, err := t.platform.GetFolderInfo(node.Folder)
	if err != nil {
		err = fmt.Errorf("could not get info for copied folder %s: %w", node.Path(), err)
		if journalErr := t.saveFolderAction(runId, src.Path(), node.Path(), domain.ActionCopy, 0); journalErr != nil {
			baseLogger.WithField("error", journalErr).Error("Could not journal copied folder")
		}
		return 0, true, err
	}

	baseLogger.WithFields(logrus.Fields{"destination": node.Path(), "messages": info.TotalMessageCount, "duration": time.Since(start)}).Info("Copied folder")
	return info.TotalMessageCount, true, t.saveFolderAction(runId, src.Path(), node.Path(), domain.ActionCopy, info.TotalMessageCount)
}

func (t *Transferer) mergeFolder(runId string, src, dest *foldertree.Node) (int, error) {
	baseLogger := t.l.WithFields(logrus.Fields{"folder": src.Path(), "destination": dest.Path()})

	if t.configuration.DryRun {
		info, err := t.platform.GetFolderInfo(src.Folder)
		if err != nil {
			return 0, fmt.Errorf("could not get info for folder %s: %w", src.Path(), err)
		}

		baseLogger.WithField("messages", info.TotalMessageCount).Warn("Not merging folder due to dry-run")
		return info.TotalMessageCount, t.saveFolderAction(runId, src.Path(), dest.Path(), domain.ActionMerge, info.TotalMessageCount)
	}

	start := time.Now()
	count, err := t.merge(src.Folder, dest.Folder)
	if err != nil {
		return count, fmt.Errorf("could not merge folder %s into %s: %w", src.Path(), dest.Path(), err)
	}

	baseLogger.WithFields(logrus.Fields{"messages": count, "duration": time.Since(start)}).Info("Merged folder")
	return count, t.saveFolderAction(runId, src.Path(), dest.Path(), domain.ActionMerge, count)
}

// merge copies every message of src into dest, page by page. Messages already
// present in dest are neither checked nor touched.
func (t *Transferer) merge(src, dest *domain.Folder) (int, error) {
	pager := NewMessagePager(t.platform, src)

	count, pages := 0, 0
	for {
		page, ok, err := pager.Next()
		if err != nil {
			return count, err
		}
		if !ok {
			break
		}

		err = t.platform.CopyMessages(page.Messages, dest)
		if err != nil {
			return count, fmt.Errorf("could not copy messages: %w", err)
		}

		pages++
		count += len(page.Messages)
		t.l.WithFields(logrus.Fields{"folder": src.Path, "page": pages, "pagesize": len(page.Messages), "more": len(page.Cursor) > 0}).Debug("Copied message page")
	}

	return count, nil
}

func destinationPath(src, parent *foldertree.Node) string {
	if parent.IsRoot {
		return src.Name()
	}
	return parent.Path() + parent.Folder.Delimiter + src.Name()
}

func (t *Transferer) startRun(src, dest *foldertree.Node) (string, error) {
	if t.configuration.Journal == nil {
		return "", nil
	}

	runId, err := t.configuration.Journal.StartRun(src.Account.Key, dest.Account.Key, t.configuration.DryRun)
	if err != nil {
		return "", fmt.Errorf("could not journal transfer start: %w", err)
	}

	t.l.WithFields(logrus.Fields{"run": runId, "source": src.Account.Key, "destination": dest.Account.Key}).Debug("Started transfer run")
	return runId, nil
}

func (t *Transferer) saveFolderAction(runId, srcPath, destPath string, action domain.TransferAction, count int) error {
	if t.configuration.Journal == nil {
		return nil
	}

	err := t.configuration.Journal.SaveFolderAction(domain.FolderAction{
		RunId:           runId,
		SourcePath:      srcPath,
		DestinationPath: destPath,
		Action:          action,
		MessageCount:    count,
	})
	if err != nil {
		return fmt.Errorf("could not journal %s of %s: %w", action, srcPath, err)
	}

	return nil
}

func (t *Transferer) finishRun(runId string, result *Result, runErr error) error {
	if t.configuration.Journal == nil {
		return nil
	}

	err := t.configuration.Journal.FinishRun(runId, result.FolderCount, result.MessageCount, runErr)
	if err != nil {
		return fmt.Errorf("could not journal transfer end: %w", err)
	}

	return nil
}
