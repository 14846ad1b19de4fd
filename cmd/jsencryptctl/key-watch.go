package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var keyWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a key file and report every reload",
	Long: `Watch a key file and report every reload.

Whenever the file is rewritten the key is re-parsed and its fingerprint
logged. Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPath, err := cmd.Flags().GetString("key")
		if err != nil {
			return err
		}

		e, err := newFacade(keyPath)
		if err != nil {
			return err
		}
		key, err := e.Key()
		if err != nil {
			return err
		}
		slog.Info("watching key file", "path", keyPath, "fingerprint", key.Fingerprint())

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(keyPath); err != nil {
			return err
		}

		done := make(chan os.Signal, 1)
		signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				material, err := os.ReadFile(keyPath)
				if err != nil {
					slog.Error("unable to read key file", "path", keyPath, "error", err)
					continue
				}
				if err := e.SetKey(string(material)); err != nil {
					slog.Error("unable to parse key file", "path", keyPath, "error", err)
					continue
				}
				key, err := e.Key()
				if err != nil {
					continue
				}
				slog.Info("key reloaded", "path", keyPath, "fingerprint", key.Fingerprint())
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Error("watch error", "error", err)
			case sig := <-done:
				fmt.Fprintf(os.Stderr, "Received %v, exiting\n", sig)
				return nil
			}
		}
	},
}

func init() {
	keyWatchCmd.Flags().String("key", "", "path to the key file")
	keyWatchCmd.MarkFlagRequired("key")
	keyCmd.AddCommand(keyWatchCmd)
}
