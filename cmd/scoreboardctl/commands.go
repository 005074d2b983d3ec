package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *client) addCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(
		c.healthCmd(),
		c.playersCmd(),
		c.playerCmd(),
		c.addCmd(),
		c.pointsCmd(),
		c.deleteCmd(),
		c.clearCmd(),
		c.matchCmd(),
	)
}

func (c *client) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the health of the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.performRequest(cmd.OutOrStdout(), http.MethodGet, "/health", nil)
		},
	}
}

func (c *client) playersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List players ranked by points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.performRequest(cmd.OutOrStdout(), http.MethodGet, "/api/players", nil)
		},
	}
}

func (c *client) playerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Show one player with its rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.performRequest(cmd.OutOrStdout(), http.MethodGet, "/api/player/"+url.PathEscape(args[0]), nil)
		},
	}
}

func (c *client) addCmd() *cobra.Command {
	var points int
	var avatar string
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Create a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"username": args[0],
				"points":   points,
			}
			if avatar != "" {
				body["avatar"] = avatar
			}
			b, err := json.Marshal(body)
			if err != nil {
				return err
			}
			return c.performRequest(cmd.OutOrStdout(), http.MethodPost, "/api/player", b)
		},
	}
	cmd.Flags().IntVar(&points, "points", 0, "Initial points")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL")
	return cmd
}

func (c *client) pointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "points <id> <delta>",
		Short:   "Add a signed number of points to a player",
		Example: "scoreboardctl points <id> 5\nscoreboardctl points -- <id> -3",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("delta must be a number: %w", err)
			}
			q := url.Values{"points": {args[1]}}
			return c.performRequest(cmd.OutOrStdout(), http.MethodPatch, "/api/player/"+url.PathEscape(args[0])+"?"+q.Encode(), nil)
		},
	}
}

func (c *client) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.performRequest(cmd.OutOrStdout(), http.MethodDelete, "/api/player/"+url.PathEscape(args[0]), nil)
		},
	}
}

func (c *client) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.performRequest(cmd.OutOrStdout(), http.MethodDelete, "/api/players", nil)
		},
	}
}

func (c *client) matchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <id1> <id2>",
		Short: "Simulate a match between two players",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{"player1Id": {args[0]}, "player2Id": {args[1]}}
			return c.performRequest(cmd.OutOrStdout(), http.MethodPost, "/api/players/match?"+q.Encode(), nil)
		},
	}
}

func (c *client) performRequest(out io.Writer, method, endpoint string, body []byte) error {
	target := c.host + endpoint
	fmt.Fprintf(out, "Making %s request to %s\n", method, target)

	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Fprintf(out, "Status Code: %d\n", resp.StatusCode)
	fmt.Fprintln(out, "Response Body:")
	fmt.Fprintln(out, string(respBody))
	return nil
}
