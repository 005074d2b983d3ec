package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type client struct {
	host string
}

func newRootCmd() *cobra.Command {
	c := &client{}
	rootCmd := &cobra.Command{
		Use:   "scoreboardctl",
		Short: "A CLI to interact with the scoreboard server",
		Long: `A command-line interface for making requests to the player API
of the scoreboard server.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&c.host, "host", "http://localhost:3000", "The host address of the server")
	c.addCommands(rootCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}
