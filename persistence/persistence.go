// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"embed"
	"fmt"
	"time"

	"github.com/CrawX/go-imap-transfer/domain"
	"github.com/CrawX/go-imap-transfer/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Persistence is the transfer journal. It records every run together with
// the folders that were copied or merged.
type Persistence struct {
	db  *sqlx.DB
	now func() time.Time
	l   *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	migrationSource := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA foreign_keys=on`)
	if err != nil {
		return nil, fmt.Errorf("could not enable foreign keys: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrationSource, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
		l:   l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

func (p *Persistence) StartRun(source, destination string, dryRun bool) (string, error) {
	id := uuid.New().String()
	_, err := p.db.Exec(
		"INSERT INTO runs (id, source, destination, dryrun, started_at) VALUES (?, ?, ?, ?, ?)",
		id, source, destination, dryRun, p.now(),
	)
	if err != nil {
		return "", fmt.Errorf("could not save run: %w", err)
	}

	p.l.WithFields(logrus.Fields{"Id": id, "Source": source, "Destination": destination, "DryRun": dryRun}).Debug("Started run")
	return id, nil
}

func (p *Persistence) SaveFolderAction(action domain.FolderAction) error {
	_, err := p.db.Exec(
		"INSERT INTO folder_actions (run_id, source_path, destination_path, action, message_count, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		action.RunId, action.SourcePath, action.DestinationPath, string(action.Action), action.MessageCount, p.now(),
	)
	if err != nil {
		return fmt.Errorf("could not save folder action: %w", err)
	}

	return nil
}

func (p *Persistence) FinishRun(id string, folderCount, messageCount int, runErr error) error {
	errText := ""
	if runErr != nil {
		errText = runErr.Error()
	}

	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	result, err := tx.Exec(
		"UPDATE runs SET finished_at = ?, folder_count = ?, message_count = ?, error = ? WHERE id = ? AND finished_at IS NULL",
		p.now(), folderCount, messageCount, errText, id,
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not update run: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not get num of affected rows: %w", err))
	}

	if affected != 1 {
		return txEnd(tx, fmt.Errorf("unexpected number of affected rows, expected 1 got %d", affected))
	}

	err = txEnd(tx, nil)
	if err != nil {
		return err
	}

	p.l.WithFields(logrus.Fields{"Id": id, "Folders": folderCount, "Messages": messageCount, "Error": errText}).Debug("Finished run")
	return nil
}

type dbRun struct {
	Id           string
	Source       string
	Destination  string
	DryRun       bool       `db:"dryrun"`
	StartedAt    time.Time  `db:"started_at"`
	FinishedAt   *time.Time `db:"finished_at"`
	FolderCount  int        `db:"folder_count"`
	MessageCount int        `db:"message_count"`
	Error        string
}

// Runs returns the latest runs, newest first. A limit <= 0 returns all runs.
func (p *Persistence) Runs(limit int) ([]*domain.TransferRun, error) {
	if limit <= 0 {
		limit = -1
	}

	dbRuns := []dbRun{}
	err := p.db.Select(
		&dbRuns,
		`SELECT id, source, destination, dryrun, started_at, finished_at, folder_count, message_count, error
		FROM runs ORDER BY started_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	runs := []*domain.TransferRun{}
	for _, r := range dbRuns {
		runs = append(
			runs,
			&domain.TransferRun{
				Id:           r.Id,
				Source:       r.Source,
				Destination:  r.Destination,
				DryRun:       r.DryRun,
				StartedAt:    r.StartedAt,
				FinishedAt:   r.FinishedAt,
				FolderCount:  r.FolderCount,
				MessageCount: r.MessageCount,
				Error:        r.Error,
			},
		)
	}

	p.l.WithField("Count", len(runs)).Debug("Found runs")
	return runs, nil
}

// FolderActions returns the actions of a run in the order they were taken.
func (p *Persistence) FolderActions(runId string) ([]*domain.FolderAction, error) {
	dbActions := []struct {
		RunId           string `db:"run_id"`
		SourcePath      string `db:"source_path"`
		DestinationPath string `db:"destination_path"`
		Action          string
		MessageCount    int `db:"message_count"`
	}{}

	err := p.db.Select(
		&dbActions,
		`SELECT run_id, source_path, destination_path, action, message_count FROM folder_actions WHERE run_id = ? ORDER BY id`,
		runId,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	actions := []*domain.FolderAction{}
	for _, a := range dbActions {
		actions = append(
			actions,
			&domain.FolderAction{
				RunId:           a.RunId,
				SourcePath:      a.SourcePath,
				DestinationPath: a.DestinationPath,
				Action:          domain.TransferAction(a.Action),
				MessageCount:    a.MessageCount,
			},
		)
	}

	return actions, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
