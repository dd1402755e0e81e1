// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=appender_mocks_test.go -package=imapconnection -source appender.go
import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
)

type appender interface {
	append(folder string, flags []string, date time.Time, body []byte) (uint32, error)
}

type uidPlusClient interface {
	Append(mbox string, flags []string, date time.Time, msg imap.Literal) (validity, uid uint32, err error)
}

type uidPlusAppender struct {
	uidPlusClient uidPlusClient
}

func (u *uidPlusAppender) append(folder string, flags []string, date time.Time, body []byte) (uint32, error) {
	_, uid, err := u.uidPlusClient.Append(folder, flags, date, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("could not append: %w", err)
	}

	return uid, nil
}

type plainAppendClient interface {
	Append(mbox string, flags []string, date time.Time, msg imap.Literal) error
}

type compatibilityAppender struct {
	imapConn plainAppendClient
}

func (c *compatibilityAppender) append(folder string, flags []string, date time.Time, body []byte) (uint32, error) {
	err := c.imapConn.Append(folder, flags, date, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("could not append: %w", err)
	}

	// Without UIDPLUS the server does not tell the uid of the new message
	return 0, nil
}
