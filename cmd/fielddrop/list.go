// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/toeirei/fielddrop/internal/classify"
	"github.com/toeirei/fielddrop/internal/i18n"
	"github.com/toeirei/fielddrop/internal/logging"
	"github.com/toeirei/fielddrop/internal/profile"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [file.json]",
		Short: "Print which fields are draggable and which are excluded",
		Long: `Loads a profile and prints the draggable fields followed by the excluded
ones. Without a file the built-in sample is used (unless --sample=false).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return a.runList(cmd, path)
		},
	}
}

// runList prints the classification of path, or of the sample profile.
func (a *app) runList(cmd *cobra.Command, path string) error {
	closeLog, err := a.setupLogging(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	var fields []profile.Field
	switch {
	case path != "":
		fields, err = profile.Load(path)
		if err != nil {
			logging.Errorf("load %s: %v", path, err)
			return err
		}
	case a.cfg.Sample:
		fields = profile.Sample()
	default:
		return errNoProfile
	}

	result := a.classifier.Classify(fields)
	logging.Debugf("classified %d fields: %d safe, %d excluded", result.Len(), len(result.Safe), len(result.Excluded))
	return printResult(cmd.OutOrStdout(), result)
}

func printResult(w io.Writer, r classify.Result) error {
	if _, err := fmt.Fprintln(w, i18n.T("list.fields")); err != nil {
		return err
	}
	for _, f := range r.Safe {
		if _, err := fmt.Fprintf(w, "  %s\n", f.Display()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, i18n.T("list.excluded")); err != nil {
		return err
	}
	for _, f := range r.Excluded {
		if _, err := fmt.Fprintf(w, "  %s\n", i18n.T("excluded.item", f.Key)); err != nil {
			return err
		}
	}
	return nil
}
