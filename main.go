// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/CrawX/go-imap-transfer/config"
	"github.com/CrawX/go-imap-transfer/foldertree"
	"github.com/CrawX/go-imap-transfer/imapconnection"
	"github.com/CrawX/go-imap-transfer/log"
	"github.com/CrawX/go-imap-transfer/persistence"
	"github.com/CrawX/go-imap-transfer/transfer"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	log.InitLogging("info")
	logger := log.Logger(log.LOG_MAIN)

	err := newApp().Run(os.Args)
	if err != nil {
		logger.WithField("error", err).Fatal("Failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "go-imap-transfer",
		Usage: "transfer the folders and mails of one imap account into another",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.toml",
				Usage:   "read configuration from `FILE`",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "key of the account to transfer from, overrides Source",
			},
			&cli.StringFlag{
				Name:  "destination",
				Usage: "key of the account to transfer to, overrides Destination",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "do not change the destination account, overrides DryRun",
			},
			&cli.StringFlag{
				Name:  "loglevel",
				Usage: "one of trace, debug, info, warn, error, overrides Loglevel",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "compare",
				Usage:  "show which source folders already exist in the destination",
				Action: compare,
			},
			{
				Name:   "transfer",
				Usage:  "copy missing folders and merge existing ones",
				Action: runTransfer,
			},
			{
				Name:  "history",
				Usage: "list journaled transfers",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "run",
						Usage: "show the folder actions of run `ID`",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "number of runs to list, 0 for all",
					},
				},
				Action: history,
			},
		},
	}
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	conf, err := config.ReadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("source") {
		conf.Source = c.String("source")
	}
	if c.IsSet("destination") {
		conf.Destination = c.String("destination")
	}
	if c.IsSet("dry-run") {
		conf.DryRun = c.Bool("dry-run")
	}

	if c.IsSet("loglevel") {
		log.SetLogLevel(c.String("loglevel"))
	} else if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	return conf, nil
}

func connect(conf *config.Config) (*imapconnection.Platform, error) {
	logger := log.Logger(log.LOG_MAIN)
	platform := imapconnection.NewPlatform(conf.PageSize)

	for _, key := range []string{conf.Source, conf.Destination} {
		acc, ok := conf.Account(key)
		if !ok {
			platform.Close()
			return nil, fmt.Errorf("account %s is not configured", key)
		}
		conn, err := imapconnection.NewImapConnection(acc.ImapHost, acc.User, acc.Password, acc.Compress)
		if err != nil {
			platform.Close()
			return nil, fmt.Errorf("could not connect account %s: %w", key, err)
		}
		platform.AddAccount(key, conn)
		logger.WithFields(logrus.Fields{"account": key, "connection": conn.String()}).Info("Connected")
	}

	return platform, nil
}

func trees(platform *imapconnection.Platform, conf *config.Config) (*foldertree.Node, *foldertree.Node, error) {
	src, err := foldertree.FromAccount(platform, conf.Source)
	if err != nil {
		return nil, nil, err
	}

	dest, err := foldertree.FromAccount(platform, conf.Destination)
	if err != nil {
		return nil, nil, err
	}

	return src, dest, nil
}

func compare(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	err = conf.Validate()
	if err != nil {
		return err
	}

	platform, err := connect(conf)
	if err != nil {
		return err
	}
	defer platform.Close()

	src, dest, err := trees(platform, conf)
	if err != nil {
		return err
	}

	renderConflicts(c.App.Writer, foldertree.Compare(src, dest))
	return nil
}

func runTransfer(c *cli.Context) error {
	logger := log.Logger(log.LOG_MAIN)

	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	err = conf.Validate()
	if err != nil {
		return err
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer p.Close()

	platform, err := connect(conf)
	if err != nil {
		return err
	}
	defer platform.Close()

	configs := []transfer.ConfigFunc{transfer.Journal(p)}
	if conf.DryRun {
		configs = append(configs, transfer.DryRun())
		logger.Warn("Skipping folder creation & mail copies due to dry-run")
	}

	t, err := transfer.NewTransferer(platform, configs...)
	if err != nil {
		return err
	}

	src, dest, err := trees(platform, conf)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{"source": conf.Source, "destination": conf.Destination, "dryrun": conf.DryRun}).Info("Transferring")
	start := time.Now()
	result, err := t.Transfer(src, dest)
	if result != nil {
		renderResult(c.App.Writer, result, conf.DryRun, time.Since(start))
	}
	return err
}

func history(c *cli.Context) error {
	conf, err := loadConfig(c)
	if err != nil {
		return err
	}
	err = conf.ValidateDatabase()
	if err != nil {
		return err
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer p.Close()

	if c.IsSet("run") {
		actions, err := p.FolderActions(c.String("run"))
		if err != nil {
			return err
		}
		renderFolderActions(c.App.Writer, actions)
		return nil
	}

	runs, err := p.Runs(c.Int("limit"))
	if err != nil {
		return err
	}
	renderRuns(c.App.Writer, runs, time.Now())
	return nil
}
