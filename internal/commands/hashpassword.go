package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/klabast/wb-services/event-manager/internal/app"
)

// newHashPasswordCommand creates the hash-password subcommand
func newHashPasswordCommand(cfg *app.Config) *cobra.Command {
	var overwrite, insecureUnmask bool

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Create the principal's auth file with an Argon2id password hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			authFile, err := cfg.ResolveAuthFile()
			if err != nil {
				return err
			}
			return hashPassword(authFile, overwrite, insecureUnmask)
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing auth file without asking")
	cmd.Flags().BoolVar(&insecureUnmask, "insecure-unmask-password", false, "Show password as plain text (INSECURE!)")
	return cmd
}

// errInterrupted is returned when Ctrl+C is pressed at a masked prompt
var errInterrupted = errors.New("interrupted")

func hashPassword(authFile string, overwrite, insecureUnmask bool) error {
	in := bufio.NewReader(os.Stdin)

	principal, err := promptLine(in, "Enter principal name: ")
	if err != nil {
		return fmt.Errorf("error reading principal name: %w", err)
	}
	principal = strings.TrimSpace(principal)
	if principal == "" {
		return errors.New("principal name cannot be empty")
	}

	read := func(prompt string) (string, error) {
		return promptMasked(in, prompt)
	}
	if insecureUnmask {
		fmt.Fprintf(os.Stderr, "⚠️  WARNING: Password will be visible on screen!\n")
		read = func(prompt string) (string, error) {
			return promptLine(in, prompt)
		}
	}

	password, err := read("Enter password:   ")
	if err != nil {
		return fmt.Errorf("error reading password: %w", err)
	}
	passwordConfirm, err := read("Confirm password: ")
	if err != nil {
		return fmt.Errorf("error reading password confirmation: %w", err)
	}

	if password == "" {
		return errors.New("password cannot be empty")
	}
	if password != passwordConfirm {
		return errors.New("passwords do not match")
	}

	err = app.CreateAuthFile(authFile, principal, password, overwrite)
	if errors.Is(err, app.ErrAuthFileExists) {
		fmt.Printf("Auth file already exists: %s\n", authFile)
		response, _ := promptLine(in, "Overwrite? (y/N): ")
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			return errors.New("aborted")
		}
		err = app.CreateAuthFile(authFile, principal, password, true)
	}
	if err != nil {
		return err
	}

	fmt.Printf("✅ Auth file created: %s (mode: 0400 read-only)\n", authFile)
	fmt.Printf("   Principal: %s\n", principal)
	return nil
}

// promptLine prints prompt and reads one whole line without its line ending
func promptLine(in *bufio.Reader, prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptMasked reads a password from stdin in raw mode, echoing asterisks.
// When stdin is not a terminal it falls back to plain line input.
func promptMasked(in *bufio.Reader, prompt string) (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		return promptLine(in, prompt)
	}

	fmt.Print(prompt)
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("failed to set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	return readMasked(in, os.Stdout)
}

// readMasked collects printable ASCII from r until Enter, writing one
// asterisk per character to w. Backspace erases the last character.
func readMasked(r io.RuneReader, w io.Writer) (string, error) {
	var password []rune
	for {
		char, _, err := r.ReadRune()
		if err == io.EOF {
			fmt.Fprint(w, "\r\n")
			return string(password), nil
		}
		if err != nil {
			return "", err
		}

		switch {
		case char == '\n' || char == '\r':
			fmt.Fprint(w, "\r\n")
			return string(password), nil
		case char == 127 || char == 8:
			if len(password) > 0 {
				password = password[:len(password)-1]
				fmt.Fprint(w, "\b \b")
			}
		case char == 3: // Ctrl+C
			fmt.Fprint(w, "\r\n")
			return "", errInterrupted
		case char >= 32 && char <= 126:
			password = append(password, char)
			fmt.Fprint(w, "*")
		}
	}
}
