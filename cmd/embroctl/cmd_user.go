package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yogi-fashion/embroidery-service/internal/apperror"
)

const passwordEnv = "EMBROCTL_PASSWORD"

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a user account",
	Long: `Create a user account. The password is read from the EMBROCTL_PASSWORD
environment variable, or prompted for (twice, without echo) on a terminal,
or read as the first line of standard input. It is stored only as a bcrypt
hash.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, confirm, err := readPassword(cmd, true)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.Services.Auth.RegisterConfirmed(cmd.Context(), args[0], pw, confirm)
		if err != nil {
			return fmt.Errorf("register %s: %s", args[0], apperror.Message(err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", args[0], id)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Check credentials and print a session token",
	Long: `Check credentials and print a session token. The password is taken
the same way as for register.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pw, _, err := readPassword(cmd, false)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := a.Services.Auth.Login(cmd.Context(), args[0], pw)
		if err != nil {
			return fmt.Errorf("login: %s", apperror.Message(err))
		}

		token, err := a.Services.Auth.IssueToken(id)
		if err != nil {
			return err
		}

		session := a.Session().WithUser(id)
		fmt.Fprintf(cmd.OutOrStdout(), "user_id: %s\ntheme:   %s\ntoken:   %s\n", session.UserID, session.Theme, token)
		return nil
	},
}

// readPassword never takes the password from the command line, where it
// would show up in the process list and shell history. With confirm set,
// a terminal user is asked twice; other sources count as confirmed.
func readPassword(cmd *cobra.Command, confirm bool) (string, string, error) {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw, pw, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := promptSecret(cmd, f, "Password: ")
		if err != nil {
			return "", "", err
		}
		if !confirm {
			return pw, pw, nil
		}
		again, err := promptSecret(cmd, f, "Confirm password: ")
		if err != nil {
			return "", "", err
		}
		return pw, again, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	return pw, pw, nil
}

func promptSecret(cmd *cobra.Command, f *os.File, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}
