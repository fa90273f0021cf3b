package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/corpustools/dialogue-pipeline/annotate"
	"github.com/corpustools/dialogue-pipeline/clients"
	cfg "github.com/corpustools/dialogue-pipeline/config"
	"github.com/corpustools/dialogue-pipeline/corpus"
)

func main() {
	conf, err := cfg.Load()
	if err != nil {
		log.Fatal(err)
	}
	if lvl, err := log.ParseLevel(conf.Pipeline.LogLvl); err == nil {
		log.SetLevel(lvl)
	}

	root := &cobra.Command{
		Use:           "dialogue-pipeline",
		Short:         "Ingest, parse and align dialogue transcript corpora",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(ingestCmd(conf), parseCmd(conf), alignCmd(conf))

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func ingestCmd(conf *cfg.Root) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "ingest <transcript-dir>",
		Short: "Build a corpus from a directory of transcript files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			tc := corpus.NewTextCorpus(filepath.Base(dir), dir, conf.Corpus.Genre)
			if err := tc.Setup(); err != nil {
				return err
			}
			if conf.Corpus.Speakers != "" {
				if err := tc.LoadSpeakerMeta(conf.Corpus.Speakers); err != nil {
					return err
				}
			}
			if out == "" {
				out = filepath.Join(conf.Paths.Outputs, tc.ID+".corpus.json")
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			if err := corpus.WriteFile(tc.Corpus, out); err != nil {
				return err
			}
			log.WithField("path", out).Info("corpus written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output corpus file")
	return cmd
}

func parseCmd(conf *cfg.Root) *cobra.Command {
	var out string
	var leave bool
	cmd := &cobra.Command{
		Use:   "parse <corpus-file>",
		Short: "Run the syntactic parser over every sentence of a corpus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}
			var parser annotate.Parser
			if conf.Parser.URL != "" {
				parser = clients.NewParserClient(conf.Parser.URL, conf.Parser.Timeout())
			}
			a := annotate.New(annotate.Options{Parser: parser, LeaveExisting: leave})
			n := a.Parse(c)
			fmt.Printf("parsed %d sentences\n", n)
			if out == "" {
				out = args[0]
			}
			return corpus.WriteFile(c, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output corpus file (default: overwrite input)")
	cmd.Flags().BoolVar(&leave, "leave-existing", conf.Parser.LeaveExisting, "skip sentences that already carry a parse")
	return cmd
}

func alignCmd(conf *cfg.Root) *cobra.Command {
	var out string
	var leave bool
	cmd := &cobra.Command{
		Use:   "align <source-corpus> <target-corpus>",
		Short: "Copy parse annotations from source to target by sentence id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := corpus.ReadFile(args[0])
			if err != nil {
				return err
			}
			dst, err := corpus.ReadFile(args[1])
			if err != nil {
				return err
			}
			a := annotate.New(annotate.Options{LeaveExisting: leave})
			n := a.CopyParses(src, dst)
			fmt.Printf("copied %d parses\n", n)
			if out == "" {
				out = args[1]
			}
			return corpus.WriteFile(dst, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output corpus file (default: overwrite target)")
	cmd.Flags().BoolVar(&leave, "leave-existing", conf.Parser.LeaveExisting, "skip sentences that already carry a parse")
	return cmd
}
