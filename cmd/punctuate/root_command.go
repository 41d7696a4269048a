package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/BugHunterPhilosopher/phonemizer"
	"github.com/BugHunterPhilosopher/phonemizer/internal/config"
)

type rootOptions struct {
	marks      string
	marksSet   bool
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "punctuate",
		Short: "Strip, preserve and restore punctuation in text",
		Long: "punctuate hides punctuation from pipeline stages that cannot handle it.\n" +
			"preserve emits punctuation-free chunks plus a mark envelope, restore puts\n" +
			"the marks back, and remove discards them for good.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.marksSet = cmd.Flags().Changed("marks")
		},
	}
	cmd.PersistentFlags().StringVar(&opts.marks, "marks", "", "punctuation alphabet, one character per mark (default: built-in set)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a TOML configuration file")
	cmd.AddCommand(
		newRemoveCommand(opts),
		newPreserveCommand(opts),
		newRestoreCommand(),
		newConfigCommand(),
	)
	return cmd
}

// newPunctuation resolves the alphabet: the --marks flag wins over the
// config file, which wins over the built-in default.
func (o *rootOptions) newPunctuation() (*phonemizer.Punctuation, error) {
	if o.marksSet {
		return phonemizer.New(phonemizer.WithMarks(o.marks))
	}
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		return phonemizer.New(phonemizer.WithMarks(cfg.Marks))
	}
	return phonemizer.New()
}

// readInput returns the content of the file argument, or of stdin when no
// argument (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
