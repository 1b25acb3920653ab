package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/rcmdnk/s3-file/pkg/configutils"
	"github.com/rcmdnk/s3-file/pkg/logging"
	"github.com/rcmdnk/s3-file/pkg/s3file"
)

const appTimeout = 15 * time.Second

func newResolveCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "resolve [path]",
		Short: "Resolve a path and print its local location",
		Long: "Resolve normalizes the given path and, for s3:// references, downloads " +
			"the object into a temporary file. Without --keep the temporary file is " +
			"removed when the process exits; with --keep it survives and removing it " +
			"becomes the caller's responsibility.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithFile(cmd, args, func(file *s3file.File) error {
				if keep {
					file.Detach()
				}
				fmt.Println(file.Path())
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&keep, "keep", false, "keep the temporary file after exit")

	return cmd
}

func newCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat [path]",
		Short: "Stream the resolved file's contents to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithFile(cmd, args, func(file *s3file.File) error {
				f, err := os.Open(file.Path())
				if err != nil {
					return err
				}
				defer f.Close()

				_, err = io.Copy(os.Stdout, f)
				return err
			})
		},
	}
}

// runWithFile wires viper, logging and the file module into an fx app, runs
// fn against the resolved file, and stops the app so the temporary file is
// released on every exit path.
func runWithFile(cmd *cobra.Command, args []string, fn func(*s3file.File) error) error {
	if len(args) > 0 {
		if err := cmd.Flags().Set("path", args[0]); err != nil {
			return err
		}
	}

	var file *s3file.File
	app := fx.New(
		configutils.ProvideViper("S3FILE", cmd.Flags(), configFile),
		logging.Module,
		logging.UseLoggingInterface,
		s3file.Module,
		fx.Populate(&file),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), appTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), appTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(file)
}
