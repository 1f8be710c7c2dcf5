// ABOUTME: CLI command hashing the login password for the HTTP API.
// ABOUTME: Optionally saves the login and a fresh session secret to the config file.
package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/weekly/internal/auth"
	"github.com/harperreed/weekly/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	passwdUsername string
	passwdSave     bool
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Set the login for the HTTP API",
	Long: `Hash a password for the HTTP API login.

Without --save the bcrypt hash is printed for auth.password_hash in
~/.config/weekly/config.json. With --save the username and hash are
written there directly, and a session secret is generated if none is set.

The password is read from the terminal without echo, or from the first
line of stdin when piped.

EXAMPLES:

  weekly passwd --username lead --save
  echo 'hunter2' | weekly passwd`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := readPassword(cmd)
		if err != nil {
			return err
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !passwdSave {
			fmt.Fprintln(out, hash)
			return nil
		}

		if passwdUsername == "" {
			return errors.New("--username is required with --save")
		}
		cfg.Auth.Username = passwdUsername
		cfg.Auth.PasswordHash = hash
		if cfg.Auth.SessionSecret == "" {
			secret, err := newSessionSecret()
			if err != nil {
				return err
			}
			cfg.Auth.SessionSecret = secret
		}
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.New(color.FgGreen).Fprintf(out, "✓ Saved login for %s\n", passwdUsername)
		fmt.Fprintf(out, "  %s\n", color.New(color.Faint).Sprint(config.GetConfigPath()))
		return nil
	},
}

func readPassword(cmd *cobra.Command) (string, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

func newSessionSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func init() {
	passwdCmd.Flags().StringVarP(&passwdUsername, "username", "u", "", "login username (required with --save)")
	passwdCmd.Flags().BoolVar(&passwdSave, "save", false, "write the login to the config file")
	rootCmd.AddCommand(passwdCmd)
}
