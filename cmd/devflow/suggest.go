package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amonks/devflow/internal/config"
	"github.com/amonks/devflow/internal/markdown"
	"github.com/amonks/devflow/internal/ui"
	"github.com/amonks/devflow/suggest"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask the remote services for suggestions",
}

var suggestLearnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Request learning recommendations",
	Args:  cobra.NoArgs,
	RunE:  runSuggestLearn,
}

var suggestPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Request planning suggestions for the current tasks",
	Args:  cobra.NoArgs,
	RunE:  runSuggestPlan,
}

var (
	suggestQuestion string
	suggestURL      string
)

func init() {
	rootCmd.AddCommand(suggestCmd)
	suggestCmd.AddCommand(suggestLearnCmd, suggestPlanCmd)

	suggestCmd.PersistentFlags().StringVar(&suggestURL, "url", "", "Override the configured service endpoint")
	suggestLearnCmd.Flags().StringVar(&suggestQuestion, "question", "", "Question to ask (default: a random prompt)")
}

func runSuggestLearn(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{configure: func(cfg *config.Config) {
		if suggestURL != "" {
			cfg.Suggest.LearningURL = suggestURL
		}
	}})
	if err != nil {
		return err
	}
	defer s.close()

	panel := s.app.RequestLearning(cmd.Context(), suggestQuestion)
	if panel.Err != "" {
		return errors.New(panel.Err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", panel.Question)
	if len(panel.Items) == 0 {
		b.WriteString("No recommendations.\n")
		_, err := fmt.Fprint(s.out, b.String())
		return err
	}

	style := markdown.StyleFor(s.color, string(s.app.Snapshot().Theme))
	p := ui.NewPalette(s.color)
	for i, item := range panel.Items {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, p.Bold(item.Title))
		if meta := recommendationMeta(item); meta != "" {
			fmt.Fprintf(&b, "   %s\n", meta)
		}
		if len(item.RelatedSkills) > 0 {
			fmt.Fprintf(&b, "   Skills: %s\n", strings.Join(item.RelatedSkills, ", "))
		}
		if item.URL != "" {
			fmt.Fprintf(&b, "   %s\n", item.URL)
		}
		if reason := markdown.Render(style, s.width, 3, item.Reason); reason != "" {
			b.WriteString(reason + "\n")
		}
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}

func recommendationMeta(item suggest.Recommendation) string {
	var parts []string
	for _, v := range []string{item.Provider, item.Type, item.Difficulty, item.Duration} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if item.Rating > 0 {
		parts = append(parts, fmt.Sprintf("rated %.1f", item.Rating))
	}
	return strings.Join(parts, " · ")
}

func runSuggestPlan(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd, openOptions{configure: func(cfg *config.Config) {
		if suggestURL != "" {
			cfg.Suggest.PlannerURL = suggestURL
		}
	}})
	if err != nil {
		return err
	}
	defer s.close()

	panel := s.app.RequestPlan(cmd.Context())
	if panel.Err != "" {
		return errors.New(panel.Err)
	}
	if len(panel.Items) == 0 {
		_, err := fmt.Fprintln(s.out, "No suggestions.")
		return err
	}

	style := markdown.StyleFor(s.color, string(s.app.Snapshot().Theme))
	p := ui.NewPalette(s.color)
	var b strings.Builder
	for i, item := range panel.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		title := item.Title
		if title == "" {
			title = item.Key
		}
		fmt.Fprintf(&b, "[%s] %s\n", item.Key, p.Bold(title))
		var meta []string
		if item.Type != "" {
			meta = append(meta, "type: "+item.Type)
		}
		if item.Impact != "" {
			meta = append(meta, "impact: "+item.Impact)
		}
		if len(meta) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(meta, ", "))
		}
		for _, text := range []string{item.Description, item.Reasoning} {
			if rendered := markdown.Render(style, s.width, 2, text); rendered != "" {
				b.WriteString(rendered + "\n")
			}
		}
		if item.Action != "" {
			fmt.Fprintf(&b, "  Action: %s\n", item.Action)
		}
	}
	_, err = fmt.Fprint(s.out, b.String())
	return err
}
