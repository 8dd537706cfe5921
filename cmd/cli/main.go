package main

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/myrjola/pitwall/cmd/cli/play"
	"github.com/myrjola/pitwall/cmd/cli/suspects"
	"github.com/myrjola/pitwall/internal/errors"
	"github.com/spf13/cobra"
	"io/fs"
	"os"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(play.Group)
	rootCmd.AddCommand(play.Play)
	rootCmd.AddCommand(suspects.List)
}

var rootCmd = &cobra.Command{
	Use:  "pitwall-cli",
	Long: `Command line utilities for the Formula.AI Grand Prix investigation`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
