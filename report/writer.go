package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/uyouii/sample-statistics/model"
	"github.com/uyouii/sample-statistics/utils"
)

const jsonDecimals = 4

func WriteText(w io.Writer, r *model.Report) error {
	p90, _ := r.Percentile(90)
	p50, _ := r.Percentile(50)
	target := formatDouble(r.Frequency.Value)

	lines := []string{
		"MIN: " + formatDouble(r.Streaming.Min),
		fmt.Sprintf("AVG: %.3f", r.Streaming.Mean),
		"MAX: " + formatDouble(r.Streaming.Max),
		"90%: " + formatDouble(p90.Value),
		"MEDIAN: " + formatDouble(p50.Value),
		fmt.Sprintf("SKEWNESS: %.4f", r.Skewness),
		fmt.Sprintf("KURTOSIS: %.4f", r.Kurtosis),
		"MIN: " + formatDouble(r.Direct.Min),
		fmt.Sprintf("AVG: %.4f", r.Direct.Mean),
		"MAX: " + formatDouble(r.Direct.Max),
		fmt.Sprintf("NUM OF %ss: %d", strings.TrimSuffix(target, ".0"), r.Frequency.Count),
		fmt.Sprintf("CUMULATIVE FREQUENCY OF %s: %d", strings.TrimSuffix(target, ".0"), r.Frequency.CumulativeCount),
		fmt.Sprintf("PERCENTAGE OF %ss: %s", strings.TrimSuffix(target, ".0"), formatDouble(r.Frequency.Percentage)),
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func WriteJSON(w io.Writer, r *model.Report) error {
	rounded := *r
	rounded.Streaming = roundSummary(r.Streaming)
	rounded.Direct = roundSummary(r.Direct)
	rounded.Skewness = utils.FormatFloat(r.Skewness, jsonDecimals)
	rounded.Kurtosis = utils.FormatFloat(r.Kurtosis, jsonDecimals)
	rounded.Frequency.Percentage = utils.FormatFloat(r.Frequency.Percentage, jsonDecimals)
	rounded.Frequency.CumulativePercentage = utils.FormatFloat(r.Frequency.CumulativePercentage, jsonDecimals)

	rounded.Percentiles = make([]model.QuantileValue, len(r.Percentiles))
	for i, q := range r.Percentiles {
		rounded.Percentiles[i] = model.QuantileValue{
			Quantile: q.Quantile,
			Value:    utils.FormatFloat(q.Value, jsonDecimals),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&rounded)
}

func roundSummary(s model.Summary) model.Summary {
	s.Min = utils.FormatFloat(s.Min, jsonDecimals)
	s.Mean = utils.FormatFloat(s.Mean, jsonDecimals)
	s.Max = utils.FormatFloat(s.Max, jsonDecimals)
	return s
}

// formatDouble prints the shortest representation of f, keeping a ".0"
// on whole numbers.
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsNaN(f) || math.IsInf(f, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
