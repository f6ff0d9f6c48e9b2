package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JackWReid/redline/internal/session"
	"github.com/JackWReid/redline/spell"
)

const (
	ansiRed   = "\x1b[31m"
	ansiDim   = "\x1b[2m"
	ansiReset = "\x1b[0m"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report misspelled words with suggestions",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, checker, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := session.Load(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	color := useColor(cmd)
	found := 0
	for i, key := range store.Keys() {
		block := store.Block(key)
		if block.IsCode() {
			continue
		}
		for _, ms := range checker.CheckLine(i, block.Text) {
			found++
			printMisspelling(cmd, args[0], block.Text, ms, checker, color)
		}
	}

	if found > 0 {
		return fmt.Errorf("%d misspelled word(s)", found)
	}
	return nil
}

func useColor(cmd *cobra.Command) bool {
	if noColor {
		return false
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printMisspelling(cmd *cobra.Command, path, line string, ms spell.Misspelling, checker spell.Checker, color bool) {
	out := cmd.OutOrStdout()

	word := ms.Span.Word
	hint := ""
	if suggestions := checker.Suggest(word); len(suggestions) > 0 {
		if len(suggestions) > 3 {
			suggestions = suggestions[:3]
		}
		hint = " -> " + strings.Join(suggestions, ", ")
	}
	fmt.Fprintf(out, "%s:%d:%d: %q%s\n", path, ms.Line+1, ms.Span.Left+1, word, hint)

	// Caret marker under the word, aligned by display width so wide runes
	// and tabs before the word do not skew the column.
	runes := []rune(line)
	pad := runewidth.StringWidth(string(runes[:ms.Span.Left]))
	marker := strings.Repeat(" ", pad+4) + strings.Repeat("^", runewidth.StringWidth(word))

	shown := line
	if color {
		shown = string(runes[:ms.Span.Left]) + ansiRed + word + ansiReset + string(runes[ms.Span.Right:])
		marker = ansiDim + marker + ansiReset
	}
	fmt.Fprintf(out, "    %s\n%s\n", shown, marker)
}
