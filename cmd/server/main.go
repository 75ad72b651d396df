// Package main implements the entry point for the chat relay server, which
// answers the chat widget's prompts locally or through a hosted language
// model.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the server.
func newRootCmd(out io.Writer) *cobra.Command {
	serve := newServeCmd()

	root := &cobra.Command{
		Use:           "chatrelay",
		Short:         "Chat relay between the web widget and a hosted language model",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.SetOut(out)

	root.AddCommand(
		serve,
		newAugmentCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func newAugmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "augment <prompt>",
		Short: "Show how a prompt is classified and augmented without calling the provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeAugmentReport(cmd.OutOrStdout(), args[0])
		},
	}
}
