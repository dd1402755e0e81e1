// SPDX-License-Identifier: GPL-3.0-or-later
package transfer

import (
	"fmt"

	"github.com/CrawX/go-imap-transfer/domain"
)

type ConfigFunc func(c *configuration) error

// DryRun walks both trees and counts what would be transferred without
// copying anything.
func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

// Journal records every run and every copied or merged folder.
func Journal(journal domain.Persistence) ConfigFunc {
	return func(c *configuration) error {
		if journal == nil {
			return fmt.Errorf("Journal cannot be nil")
		}

		c.Journal = journal
		return nil
	}
}

type configuration struct {
	DryRun bool

	Journal domain.Persistence
}
