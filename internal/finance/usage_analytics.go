package finance

import (
	"fmt"
	"sort"
	"strings"

	"predictionMart/internal/storage"

	"github.com/vicanso/go-charts/v2"
)

// UsageAnalytics handles usage metrics visualization
type UsageAnalytics struct{}

func NewUsageAnalytics() *UsageAnalytics {
	return &UsageAnalytics{}
}

// MakeUsageChart creates a pie chart of command usage per category
func (ua *UsageAnalytics) MakeUsageChart(stats map[string]*storage.UsageStats, days int) ([]byte, error) {
	if len(stats) == 0 {
		return nil, fmt.Errorf("no usage data available")
	}

	categories := sortedCategories(stats)
	values := make([]float64, 0, len(categories))
	totalUsage := 0
	for _, category := range categories {
		values = append(values, float64(stats[category].Count))
		totalUsage += stats[category].Count
	}

	pieLabels := make([]string, 0, len(categories))
	for i, category := range categories {
		percentage := (values[i] / float64(totalUsage)) * 100
		pieLabels = append(pieLabels, fmt.Sprintf("%s (%.1f%%)", category, percentage))
	}

	p, err := charts.PieRender(
		values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Command Usage Distribution (%d days)", days)),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: pieLabels,
			Top:  charts.PositionTop,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
		charts.WidthOptionFunc(800),
		charts.HeightOptionFunc(600),
	)
	if err != nil {
		return nil, err
	}
	return p.Bytes()
}

// FormatUsageStatsText creates a formatted text summary of usage statistics
func (ua *UsageAnalytics) FormatUsageStatsText(stats map[string]*storage.UsageStats, days int) string {
	if len(stats) == 0 {
		return "No usage data available for the specified period."
	}

	categories := sortedCategories(stats)
	totalCommands := 0
	for _, category := range categories {
		totalCommands += stats[category].Count
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Usage Analytics (%d days)\n\n", days)
	fmt.Fprintf(&b, "Total Commands: %d\n\n", totalCommands)

	for _, category := range categories {
		stat := stats[category]
		percentage := float64(stat.Count) / float64(totalCommands) * 100
		fmt.Fprintf(&b, "%s (%d commands, %.1f%%)\n", formatCategoryName(category), stat.Count, percentage)

		type cmdCount struct {
			cmd   string
			count int
		}
		commands := make([]cmdCount, 0, len(stat.Commands))
		for cmd, count := range stat.Commands {
			commands = append(commands, cmdCount{cmd, count})
		}
		sort.Slice(commands, func(i, j int) bool {
			if commands[i].count == commands[j].count {
				return commands[i].cmd < commands[j].cmd
			}
			return commands[i].count > commands[j].count
		})

		for i, cmd := range commands {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "  • %s: %d\n", cmd.cmd, cmd.count)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func sortedCategories(stats map[string]*storage.UsageStats) []string {
	out := make([]string, 0, len(stats))
	for category := range stats {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// formatCategoryName converts category names to user-friendly format
func formatCategoryName(category string) string {
	switch category {
	case storage.CategoryCalculator:
		return "🧮 Calculations"
	case storage.CategoryForm:
		return "📝 Form Edits"
	case storage.CategoryExplain:
		return "🤖 Explanations"
	case storage.CategoryInfo:
		return "ℹ️ Info"
	default:
		return category
	}
}
