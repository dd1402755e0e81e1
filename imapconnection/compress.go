// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=compress_mocks_test.go -package=imapconnection -source compress.go
import (
	"fmt"

	"github.com/emersion/go-imap-compress"
	"github.com/sirupsen/logrus"
)

type compressClient interface {
	SupportCompress(mech string) (bool, error)
	Compress(mech string) error
}

// enableCompression switches the connection to COMPRESS=DEFLATE if the server
// offers it. It reports whether the connection is compressed afterwards.
func enableCompression(c compressClient, l *logrus.Entry) (bool, error) {
	supported, err := c.SupportCompress(compress.Deflate)
	if err != nil {
		return false, fmt.Errorf("could not check for COMPRESS support: %w", err)
	}
	if !supported {
		l.Info("COMPRESS=DEFLATE not supported on server, continuing uncompressed")
		return false, nil
	}

	err = c.Compress(compress.Deflate)
	if err != nil {
		return false, fmt.Errorf("could not enable compression: %w", err)
	}

	l.Debug("COMPRESS=DEFLATE enabled")
	return true, nil
}
