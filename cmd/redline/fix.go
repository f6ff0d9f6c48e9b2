package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JackWReid/redline/correct"
	"github.com/JackWReid/redline/cursor"
	"github.com/JackWReid/redline/internal/session"
)

var writeInPlace bool

var fixCmd = &cobra.Command{
	Use:   "fix <file>",
	Short: "Apply the top suggestion for each misspelled word",
	Args:  cobra.ExactArgs(1),
	RunE:  runFix,
}

func init() {
	fixCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "write the corrected document back to the file")
}

func runFix(cmd *cobra.Command, args []string) error {
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

	engine := correct.New(store)
	fixed := 0
	for i, key := range store.Keys() {
		block := store.Block(key)
		if block.IsCode() {
			continue
		}

		// Fix right to left so earlier spans stay valid as text shifts.
		flagged := checker.CheckLine(i, block.Text)
		for j := len(flagged) - 1; j >= 0; j-- {
			word := flagged[j].Span.Word
			suggestions := checker.Suggest(word)
			if len(suggestions) == 0 {
				continue
			}

			store.SetSelection(cursor.Collapsed(cursor.Position{
				Key:    key,
				Offset: flagged[j].Span.Left,
				Block:  block,
			}))
			if engine.ReplaceCurrentWord(word, suggestions[0]) {
				fixed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s -> %s\n",
					args[0], i+1, flagged[j].Span.Left+1, word, suggestions[0])
			}
		}
	}

	if fixed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to fix")
		return nil
	}

	if writeInPlace {
		if err := store.Save(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fixed %d word(s) in %s\n", fixed, args[0])
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "fixed %d word(s) (run with --write to save)\n", fixed)
	for _, key := range store.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), store.Block(key).Text)
	}
	return nil
}
