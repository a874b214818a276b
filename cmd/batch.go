package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/campusbot/internal/progress"
	"github.com/ziadkadry99/campusbot/internal/responder"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer a file of utterances, one per line",
	Long: `Runs every non-blank line of the input file through the assistant and
writes one JSON object per line with the utterance, reply, category and
facility. Use "-" to read from stdin. A per-category summary is printed to
stderr when done.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("output", "o", "", "write results to this file instead of stdout")
	rootCmd.AddCommand(batchCmd)
}

// maxUtteranceLine bounds a single input line.
const maxUtteranceLine = 16 << 20

// batchResult is one JSON line of batch output.
type batchResult struct {
	Utterance string `json:"utterance"`
	Reply     string `json:"reply"`
	Category  string `json:"category"`
	Facility  string `json:"facility,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg)

	resp, err := buildResponder(cfg)
	if err != nil {
		return err
	}

	utterances, err := readUtterances(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	logger.Debug("batch input read", "file", args[0], "utterances", len(utterances))

	out := cmd.OutOrStdout()
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	counts, err := answerAll(resp, utterances, out, progress.NewReporter(cmd.ErrOrStderr(), "Answering utterances"))
	if err != nil {
		return err
	}

	printSummary(cmd.ErrOrStderr(), counts, len(utterances))
	if output != "" {
		logger.Info("batch results written", "path", output, "count", len(utterances))
	}
	return nil
}

// readUtterances returns the non-blank, trimmed lines of path, or of stdin
// when path is "-".
func readUtterances(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxUtteranceLine)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// answerAll writes one JSON line per utterance to w and returns how many
// replies fell into each category.
func answerAll(resp *responder.Responder, utterances []string, w io.Writer, reporter progress.Reporter) (map[responder.Category]int, error) {
	enc := json.NewEncoder(w)
	counts := make(map[responder.Category]int)

	reporter.Start(len(utterances))
	defer reporter.Finish()

	for i, u := range utterances {
		m := resp.Match(u)
		counts[m.Category]++
		if err := enc.Encode(batchResult{
			Utterance: u,
			Reply:     m.Reply,
			Category:  string(m.Category),
			Facility:  m.Facility,
		}); err != nil {
			return nil, fmt.Errorf("writing result %d: %w", i+1, err)
		}
		reporter.Update(i+1, u)
	}
	return counts, nil
}

func printSummary(w io.Writer, counts map[responder.Category]int, total int) {
	cats := make([]string, 0, len(counts))
	for c := range counts {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)

	fmt.Fprintf(w, "Answered %d utterances\n", total)
	for _, c := range cats {
		fmt.Fprintf(w, "  %-20s %d\n", c, counts[responder.Category(c)])
	}
}
