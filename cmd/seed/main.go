package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

// Options holds the flags shared by both seed subcommands.
type Options struct {
	Host string
}

func postBatch(host string, path string, payloadFile string) (int, error) {
	data, err := os.ReadFile(payloadFile)
	if err != nil {
		return 0, err
	}
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("invalid seed file %v: %w", payloadFile, err)
	}

	resp, err := http.Post(host+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("server responded %v", resp.Status)
	}
	return len(records), nil
}

func newBooksCommand(opts *Options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Load a JSON array of books through /book/batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := postBatch(opts.Host, "/book/batch", file)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %v books\n", count)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "books.json", "path to the books seed file")
	return cmd
}

func newMembersCommand(opts *Options) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Load a JSON array of members through /member/batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := postBatch(opts.Host, "/member/batch", file)
			if err != nil {
				return err
			}
			fmt.Printf("Seeded %v members\n", count)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "members.json", "path to the members seed file")
	return cmd
}

func newRootCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Batch-load catalog records into a running library service",
	}
	cmd.PersistentFlags().StringVar(&opts.Host, "host", "http://localhost:8080", "base URL of the library service")
	cmd.AddCommand(newBooksCommand(opts))
	cmd.AddCommand(newMembersCommand(opts))
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
