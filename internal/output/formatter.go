package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Formatter renders a scenario report in one output format
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var registry = map[string]Formatter{}

var aliases = map[string]string{
	"table":           "console",
	"verbose":         "console",
	"console-verbose": "console",
	"summary":         "console-lite",
	"text":            "console-lite",
	"yml":             "yaml",
}

// Register adds a formatter under its name, replacing any existing one
func Register(f Formatter) {
	registry[f.Name()] = f
}

func init() {
	Register(ConsoleFormatter{})
	Register(ConsoleVerboseFormatter{})
	Register(CSVSummarizer{})
	Register(JSONFormatter{Pretty: true})
	Register(YAMLFormatter{})
	Register(HTMLFormatter{})
}

// NormalizeFormatName resolves aliases and case
func NormalizeFormatName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		return canonical
	}
	return name
}

// GetFormatterByName returns the formatter for name or an alias of it, nil if unknown
func GetFormatterByName(name string) Formatter {
	return registry[NormalizeFormatName(name)]
}

// AvailableFormatterNames lists registered formatter names, sorted
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for a := range aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}

// WriteFormatted renders report with f and writes it to a timestamped file in the working directory
func WriteFormatted(f Formatter, report *Report, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("fitsizer_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", err
	}
	return filename, nil
}

// FormatCurrency formats a decimal as an amount in RON
func FormatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " RON"
}

// FormatPercentage formats a fraction as a percentage
func FormatPercentage(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}
