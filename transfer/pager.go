// SPDX-License-Identifier: GPL-3.0-or-later
package transfer

import (
	"fmt"

	"github.com/CrawX/go-imap-transfer/domain"
)

// MessagePager walks the paginated message listing of a single folder.
type MessagePager struct {
	platform domain.MailPlatform
	folder   *domain.Folder

	started bool
	cursor  string
}

func NewMessagePager(platform domain.MailPlatform, folder *domain.Folder) *MessagePager {
	return &MessagePager{
		platform: platform,
		folder:   folder,
	}
}

// Next fetches the next page. ok turns false once the page without a cursor
// has been handed out.
func (mp *MessagePager) Next() (page *domain.MessagePage, ok bool, err error) {
	if !mp.started {
		mp.started = true
		page, err = mp.platform.ListMessages(mp.folder)
		if err != nil {
			return nil, false, fmt.Errorf("could not list messages: %w", err)
		}
	} else {
		if len(mp.cursor) == 0 {
			return nil, false, nil
		}

		page, err = mp.platform.ContinueListMessages(mp.cursor)
		if err != nil {
			return nil, false, fmt.Errorf("could not continue listing messages: %w", err)
		}
	}

	mp.cursor = page.Cursor
	return page, true, nil
}
