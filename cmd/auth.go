// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manav03panchal/lifedash/internal/auth"
	"github.com/manav03panchal/lifedash/internal/config"
	"github.com/manav03panchal/lifedash/internal/errors"
	"github.com/manav03panchal/lifedash/internal/validate"
)

// PasswordEnv supplies the login password without a prompt.
const PasswordEnv = "LIFEDASH_PASSWORD"

var (
	flagEmail  string
	flagServer string
)

// loginCmd signs in against the auth endpoint and stores the session.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Long: `Sign in against the auth endpoint started by 'lifedash serve'.

The password is read from $LIFEDASH_PASSWORD, or prompted for without echo.
A successful sign-in stores the token and user for the dashboard.

Examples:
  lifedash login --email demo@example.com
  LIFEDASH_PASSWORD=admin123 lifedash login --email admin@example.com`,
	RunE: runLogin,
}

// logoutCmd clears the stored session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

// whoamiCmd shows the signed-in user.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	loginCmd.Flags().StringVarP(&flagEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVar(&flagServer, "server", "", "Auth server URL (default from config)")
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	in := bufio.NewReader(cmd.InOrStdin())

	email := strings.TrimSpace(flagEmail)
	if email == "" {
		var err error
		if email, err = prompt(in, cmd.ErrOrStderr(), "Email: "); err != nil {
			return err
		}
	}
	password, err := readPassword(in, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := validate.Credentials(email, password); err != nil {
		return err
	}

	client := ctx.AuthClient()
	if flagServer != "" {
		client = newClientFor(flagServer)
	}

	// The endpoint delays every answer; allow for it on top of the client timeout.
	reqCtx, cancel := context.WithTimeout(cmd.Context(), ctx.Config.Auth.ClientTimeout+ctx.Config.Auth.Delay)
	defer cancel()

	result, err := client.Login(reqCtx, email, password)
	if err != nil {
		return err
	}
	ctx.Debugf("login answered %d in %s", result.StatusCode, result.Duration)

	if err := ctx.SaveSession(result.Session); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSession(result.Session)
	}
	ctx.CLIFormatter().PrintLoggedIn(result.Session)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	store, err := ctx.Session()
	if err != nil {
		return err
	}
	wasLoggedIn, err := store.IsAuthenticated()
	if err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.PrintJSON(map[string]bool{"logged_out": wasLoggedIn})
	}
	ctx.CLIFormatter().PrintLoggedOut(wasLoggedIn)
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	store, err := ctx.Session()
	if err != nil {
		return err
	}
	sess, err := store.Load()
	if err != nil && !errors.Is(err, errors.ErrNotAuthenticated) {
		return err
	}

	if ctx.IsJSON() {
		if sess == nil {
			return err
		}
		return ctx.JSONFormatter().PrintSession(sess)
	}
	var signedIn time.Time
	if sess != nil {
		signedIn, err = auth.VerifySession(sess)
		if err != nil {
			ctx.CLIFormatter().Warning(err.Error() + ". " + errors.GetSuggestion(err) + ".")
		}
	}
	ctx.CLIFormatter().PrintWhoami(sess, signedIn)
	return nil
}

// prompt reads one trimmed line after writing label.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.CredentialsRequired()
	}
	return strings.TrimSpace(line), nil
}

// readPassword takes the password from the environment, a no-echo terminal
// prompt, or a plain line of piped input.
func readPassword(in *bufio.Reader, out io.Writer) (string, error) {
	if p := os.Getenv(PasswordEnv); p != "" {
		return p, nil
	}
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(out, "Password: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", errors.WithContext(err, "read password")
		}
		return string(b), nil
	}
	line, err := prompt(in, out, "Password: ")
	if err != nil {
		return "", err
	}
	return line, nil
}

// parseDelay parses a delay flag, clamping it to the auth minimum.
func parseDelay(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.NewUserErrorWithField("delay", s,
			"Invalid delay", "Use a Go duration like '1s' or '1500ms'")
	}
	return max(d, config.MinAuthDelay), nil
}

func newClientFor(serverURL string) *auth.Client {
	return auth.NewClient(serverURL, ctx.Config.Auth.ClientTimeout)
}
