// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=imap_mocks_test.go -package=imapconnection -source imap.go
import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/CrawX/go-imap-transfer/log"
	"github.com/CrawX/go-imap-transfer/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-compress"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

type imapClient interface {
	List(ref, name string, ch chan *imap.MailboxInfo) error
	Status(name string, items []imap.StatusItem) (*imap.MailboxStatus, error)
	Create(name string) error
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
	UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	Logout() error
}

type RawMail struct {
	Uid        uint32
	Flags      []string
	Date       time.Time
	Subject    string
	MailIdHash string
	Body       []byte
}

type ImapConnection struct {
	connection   imapClient
	mailAppender appender

	server, user string

	delimiter      string
	selectedFolder string

	l *logrus.Logger
}

// NewImapConnection logs in to server. With useCompression the connection is
// switched to COMPRESS=DEFLATE when the server supports it.
func NewImapConnection(server string, user string, password string, useCompression bool) (*ImapConnection, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("could not login to imap: %w", err)
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	conn := &ImapConnection{
		connection: imapClient,
		server:     server,
		user:       user,
		l:          log.Logger(log.LOG_IMAP),
	}

	baseLogger := conn.l.WithFields(logrus.Fields{"server": server, "user": user})
	baseLogger.Debug("Logged in to server")

	if useCompression {
		_, err = enableCompression(compress.NewClient(imapClient), baseLogger)
		if err != nil {
			imapClient.Logout()
			return nil, err
		}
	}

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, appended mails report their uid")
		conn.mailAppender = &uidPlusAppender{
			uidPlusClient: uidPlusClient,
		}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, falling back to plain append")
		conn.mailAppender = &compatibilityAppender{
			imapConn: imapClient,
		}
	}

	return conn, nil
}

func (ic *ImapConnection) String() string {
	return fmt.Sprintf("%s@%s", ic.user, ic.server)
}

func (ic *ImapConnection) Mailboxes() ([]*imap.MailboxInfo, error) {
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.List("", "*", mailboxes)
	}()

	result := []*imap.MailboxInfo{}
	for m := range mailboxes {
		result = append(result, m)
		if len(ic.delimiter) == 0 {
			ic.delimiter = m.Delimiter
		}
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not list mailboxes: %w", err)
	}

	return result, nil
}

// Delimiter returns the hierarchy delimiter of the server.
func (ic *ImapConnection) Delimiter() (string, error) {
	if len(ic.delimiter) > 0 {
		return ic.delimiter, nil
	}

	// LIST with an empty mailbox name only reports the delimiter
	mailboxes := make(chan *imap.MailboxInfo, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.List("", "", mailboxes)
	}()

	for m := range mailboxes {
		ic.delimiter = m.Delimiter
	}

	err := <-done
	if err != nil {
		return "", fmt.Errorf("could not query hierarchy delimiter: %w", err)
	}

	return ic.delimiter, nil
}

func (ic *ImapConnection) Select(folder string, readOnly bool) (uint32, error) {
	m, err := ic.connection.Select(folder, readOnly)
	if err != nil {
		return 0, fmt.Errorf("could not select folder: %w", err)
	}

	ic.selectedFolder = folder
	return m.UidValidity, nil
}

func (ic *ImapConnection) ListUids() ([]uint32, error) {
	// Get all UIDs in folder (empty search criteria)
	criteria := imap.NewSearchCriteria()
	ids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not list folder: %w", err)
	}

	return ids, nil
}

func (ic *ImapConnection) MessageCount(folder string) (int, error) {
	status, err := ic.connection.Status(folder, []imap.StatusItem{imap.StatusMessages})
	if err != nil {
		return 0, fmt.Errorf("could not get status of folder: %w", err)
	}

	return int(status.Messages), nil
}

func (ic *ImapConnection) Create(folder string) error {
	err := ic.connection.Create(folder)
	if err != nil {
		return fmt.Errorf("could not create folder: %w", err)
	}

	return nil
}

func (ic *ImapConnection) FetchMails(uids []uint32) ([]*RawMail, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	messages := make(chan *imap.Message, 10)
	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}

	fetchItems := []imap.FetchItem{
		imap.FetchUid,
		imap.FetchFlags,
		imap.FetchInternalDate,
		fullBodySection.FetchItem(),
	}
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	mails := []*RawMail{}
	var readErr error
	for msg := range messages {
		if readErr != nil {
			// keep draining so UidFetch can return
			continue
		}

		r := msg.GetBody(fullBodySection)
		if r == nil {
			readErr = fmt.Errorf("server returned no body for uid %d", msg.Uid)
			continue
		}
		rawBody, err := ioutil.ReadAll(r)
		if err != nil {
			readErr = fmt.Errorf("could not read mail body: %w", err)
			continue
		}

		subject, mailIdHash, err := mail.MailHeaderInfos(rawBody)
		if err != nil {
			ic.l.WithFields(logrus.Fields{"folder": ic.selectedFolder, "uid": msg.Uid, "error": err}).Debug("Could not parse mail header infos")
		}

		mails = append(
			mails,
			&RawMail{
				Uid:        msg.Uid,
				Flags:      appendableFlags(msg.Flags),
				Date:       msg.InternalDate,
				Subject:    subject,
				MailIdHash: mailIdHash,
				Body:       rawBody,
			},
		)
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mails: %w", err)
	}
	if readErr != nil {
		return nil, readErr
	}

	return mails, nil
}

// appendableFlags drops flags a client cannot set with APPEND.
func appendableFlags(flags []string) []string {
	result := []string{}
	for _, f := range flags {
		if f == imap.RecentFlag {
			continue
		}
		result = append(result, f)
	}
	return result
}

func (ic *ImapConnection) Put(m *RawMail, folder string) error {
	uid, err := ic.mailAppender.append(folder, m.Flags, m.Date, m.Body)
	if err != nil {
		return err
	}

	ic.l.WithFields(logrus.Fields{"folder": folder, "subject": mail.ShortSubject(m.Subject), "mailid": m.MailIdHash, "uid": uid}).Trace("Appended mail")
	return nil
}

func (ic *ImapConnection) Close() error {
	return ic.connection.Logout()
}
