// Command credo scores claims offline, without a database or server. The
// bot and IVR wrappers shell out to it.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/factline/credo/internal/buildconfig"
	"github.com/factline/credo/internal/domain"
	"github.com/factline/credo/internal/engine"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:     "credo",
		Short:   "Rule-based claim credibility scorer",
		Version: buildconfig.Version(),
	}
	root.SilenceUsage = true

	root.AddCommand(newScoreCommand())
	return root
}

func newScoreCommand() *cobra.Command {
	var (
		sourceURL      string
		ragContext     string
		webContext     string
		userTrue       int
		userFalse      int
		validatorTrue  int
		validatorFalse int
	)

	cmd := &cobra.Command{
		Use:   "score <claim text>",
		Short: "Score a claim and print the report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.ClaimInput{Text: args[0]}
			if sourceURL != "" {
				in.SourceURL = &sourceURL
			}
			if ragContext != "" {
				in.RAGContext = &ragContext
			}
			if webContext != "" {
				in.WebContext = &webContext
			}
			if userTrue+userFalse+validatorTrue+validatorFalse > 0 {
				in.Votes = &domain.VoteTally{
					UserVotes:      domain.VoteCount{True: userTrue, False: userFalse},
					ValidatorVotes: domain.VoteCount{True: validatorTrue, False: validatorFalse},
				}
			}

			report, err := engine.New().Score(in, time.Now().UTC())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&sourceURL, "source-url", "", "URL the claim was published at")
	cmd.Flags().StringVar(&ragContext, "rag-context", "", "verified-fact context to match the claim against")
	cmd.Flags().StringVar(&webContext, "web-context", "", "web search snippets for corroboration")
	cmd.Flags().IntVar(&userTrue, "user-true", 0, "user votes marking the claim true")
	cmd.Flags().IntVar(&userFalse, "user-false", 0, "user votes marking the claim false")
	cmd.Flags().IntVar(&validatorTrue, "validator-true", 0, "validator votes marking the claim true")
	cmd.Flags().IntVar(&validatorFalse, "validator-false", 0, "validator votes marking the claim false")

	return cmd
}
