package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/dropbot/stats"
)

// ReadResults parses a self-play CSV log as written by PlayGames.
func ReadResults(r io.Reader) ([]GameResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(logHeader)
	var results []GameResult
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == logHeader[0] {
			continue
		}
		res, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", len(results)+2, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func parseRecord(record []string) (GameResult, error) {
	var res GameResult
	var errs []error
	atoi := func(s string) int {
		v, err := strconv.Atoi(s)
		errs = append(errs, err)
		return v
	}
	res.GameID = atoi(record[0])
	seed, err := strconv.ParseUint(record[1], 10, 64)
	errs = append(errs, err)
	res.Seed = seed
	res.Pieces = atoi(record[2])
	res.Lines = atoi(record[3])
	res.MaxCombo = atoi(record[4])
	res.MaxHeight = atoi(record[5])
	res.ToppedOut, err = strconv.ParseBool(record[6])
	errs = append(errs, err)
	return res, errors.Join(errs...)
}

// Summaries returns the lines-cleared and pieces-placed summaries of a set
// of results.
func Summaries(results []GameResult) (lines, pieces stats.Summary) {
	lines = stats.Summarize(lo.Map(results, func(g GameResult, _ int) float64 { return float64(g.Lines) }))
	pieces = stats.Summarize(lo.Map(results, func(g GameResult, _ int) float64 { return float64(g.Pieces) }))
	return lines, pieces
}

// AnalyzeResults builds the human-readable report printed after self-play.
func AnalyzeResults(results []GameResult) string {
	lines, pieces := Summaries(results)
	toppedOut := lo.CountBy(results, func(g GameResult) bool { return g.ToppedOut })
	maxCombo := lo.MaxBy(results, func(a, b GameResult) bool { return a.MaxCombo > b.MaxCombo })

	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", len(results))
	if len(results) > 0 {
		fmt.Fprintf(&sb, "Topped out: %d (%.3f%%)\n", toppedOut, 100.0*float64(toppedOut)/float64(len(results)))
	}
	fmt.Fprintf(&sb, "Lines cleared: %v\n", lines)
	fmt.Fprintf(&sb, "Pieces placed: %v\n", pieces)
	fmt.Fprintf(&sb, "Longest combo: %d (game %d)\n", maxCombo.MaxCombo, maxCombo.GameID)
	return sb.String()
}

// AnalyzeLogFile reads a self-play CSV log and reports on it.
func AnalyzeLogFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	results, err := ReadResults(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return AnalyzeResults(results), nil
}
