// Package report renders a finished solve for the terminal and encodes the
// projected search tree as JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/katalvlaran/bnbtree/bnb"
	"github.com/katalvlaran/bnbtree/catalog"
	"github.com/katalvlaran/bnbtree/internal/config"
	"github.com/katalvlaran/bnbtree/searchtree"
	"gopkg.in/yaml.v3"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

func num(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

// ItemsTable renders items (normally the ratio order) as a table with one
// column per item and rows Value, Weight and Ratio (3 decimals).
func ItemsTable(items []catalog.Item) string {
	headers := make([]string, 0, len(items)+1)
	values := make([]string, 0, len(items)+1)
	weights := make([]string, 0, len(items)+1)
	ratios := make([]string, 0, len(items)+1)

	headers = append(headers, "")
	values = append(values, "Value")
	weights = append(weights, "Weight")
	ratios = append(ratios, "Ratio")
	for _, it := range items {
		headers = append(headers, it.ID)
		values = append(values, num(it.Value))
		weights = append(weights, num(it.Weight))
		ratios = append(ratios, num(math.Round(it.Ratio()*1000)/1000))
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Row(values...).
		Row(weights...).
		Row(ratios...).
		Render()
}

// Updates formats the incumbent history: "0, 51, 55, 63".
func Updates(history []float64) string {
	parts := make([]string, len(history))
	for i, v := range history {
		parts[i] = num(v)
	}

	return strings.Join(parts, ", ")
}

// StatsLine summarises node counts: "7 nodes (depth 3): dominated=2 ...".
// Reasons are listed in their declaration order; absent ones are skipped.
func StatsLine(s bnb.Stats) string {
	reasons := make([]bnb.Reason, 0, len(s.ByReason))
	for r := range s.ByReason {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	var b strings.Builder
	fmt.Fprintf(&b, "%d nodes (depth %d):", s.Nodes, s.MaxDepth)
	for _, r := range reasons {
		fmt.Fprintf(&b, " %s=%d", r, s.ByReason[r])
	}

	return b.String()
}

// Text writes the human-readable report of res.
func Text(w io.Writer, res *bnb.Result) error {
	var (
		sel    = res.Selected()
		ids    = make([]string, len(sel))
		weight float64
	)
	for i, it := range sel {
		ids[i] = it.ID
		weight += it.Weight
	}

	lines := []string{
		headingStyle.Render("Ordered Items"),
		ItemsTable(res.Items),
		"",
		headingStyle.Render("Global Maxima Updates:") + " " + Updates(res.Updates),
		fmt.Sprintf("Strategy: %s, capacity: %s", res.Strategy, num(res.Capacity)),
		fmt.Sprintf("Selected: {%s} weight %s value %s", strings.Join(ids, ", "), num(weight), num(res.Incumbent)),
		"Search: " + StatsLine(res.Stats),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")

	return err
}

// Tree encodes the projected tree in the given format (json or yaml).
// indent applies to json only.
func Tree(w io.Writer, tree *searchtree.TreeNode, format string, indent int) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent("", strings.Repeat(" ", indent))
		}

		return enc.Encode(tree)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}
