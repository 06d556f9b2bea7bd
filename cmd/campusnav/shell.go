// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shellPrompt = "campusnav> "

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one in-memory map",
		Long: `shell reads one command per line, e.g.

  route Library Gym
  add-path Library Gym 7
  add-location "Music Hall" Arts 20

Double quotes group words; "" passes an empty argument. Type "exit" or "quit" (or send EOF) to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.shell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// shell runs the read-eval loop. Command errors are printed and the loop
// continues; only read errors end it early.
func (a *app) shell(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, shellPrompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		args, err := splitLine(sc.Text())
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		switch args[0] {
		case "exit", "quit":
			return nil
		case "shell":
			fmt.Fprintln(out, "error: already in a shell")
			continue
		}

		root := newRootCmd(a)
		root.SetOut(out)
		root.SetErr(out)
		root.SetArgs(args)
		if err = root.Execute(); err != nil {
			a.log.Debug("shell command failed", zap.Strings("args", args), zap.Error(err))
			fmt.Fprintln(out, "error:", err)
		}
	}
}

var errOpenQuote = errors.New("unterminated quote")

// splitLine breaks a line into words separated by runs of spaces or tabs.
// Double quotes group words and may be empty, so `""` yields an empty word.
func splitLine(line string) ([]string, error) {
	var (
		args    []string
		word    strings.Builder
		inWord  bool
		inQuote bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			inWord = true
		case !inQuote && (r == ' ' || r == '\t'):
			if inWord {
				args = append(args, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("cannot parse %q: %w", line, errOpenQuote)
	}
	if inWord {
		args = append(args, word.String())
	}

	return args, nil
}
