package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/2beens/gymtracker/pkg"

	"github.com/spf13/cobra"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Print the bcrypt hash of a password",
	Long: `Print the bcrypt hash stored for account passwords.
Without an argument, the password is read from the first line of stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password empty")
	}

	hash, err := pkg.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
