package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/textbox/foundation/utils/stringx"
	"github.com/msto63/textbox/foundation/utils/textbox"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	trueStyle  = lipgloss.NewStyle().Foreground(colorSecondary)
	falseStyle = lipgloss.NewStyle().Foreground(colorError)
)

type inspectOptions struct {
	prefix   string
	suffix   string
	contains string
	equals   string
	pattern  string
}

type row struct {
	label string
	value string
}

func newInspectCmd(a *app) *cobra.Command {
	var opts inspectOptions

	inspectCmd := &cobra.Command{
		Use:   "inspect [TEXT...]",
		Short: "Show every query result for a text",
		Long: `Prints lengths, emptiness, numeric check, segment count and structured
data detection for TEXT, or standard input. Optional flags add prefix,
suffix, containment, equality and pattern checks.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			rows, err := inspectRows(textbox.New(text), opts, a.cfg.GetInt("inspect.width"), a.cfg.GetString("split.delimiter"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderRows(rows))
			return nil
		},
	}

	flags := inspectCmd.Flags()
	flags.StringVar(&opts.prefix, "prefix", "", "check that the text starts with this")
	flags.StringVar(&opts.suffix, "suffix", "", "check that the text ends with this")
	flags.StringVar(&opts.contains, "contains", "", "check that the text contains this")
	flags.StringVar(&opts.equals, "equals", "", "compare the text, exactly and numerically")
	flags.StringVar(&opts.pattern, "pattern", "", "check a regular expression, plain or /delimited/flags")
	return inspectCmd
}

func inspectRows(tb *textbox.TextBox, opts inspectOptions, width int, delimiter string) ([]row, error) {
	shown, err := stringx.TruncateWithValidation(tb.Value(), width, "…")
	if err != nil {
		return nil, err
	}

	rows := []row{
		{"value", strconv.Quote(shown)},
		{"length", strconv.Itoa(tb.Length())},
		{"rune length", strconv.Itoa(tb.RuneLength())},
		{"empty", strconv.FormatBool(tb.IsEmpty())},
		{"numeric", strconv.FormatBool(tb.IsNumeric())},
		{"segments", strconv.Itoa(len(tb.Split(delimiter)))},
		{"structured", structuredKind(tb)},
	}

	if opts.prefix != "" {
		rows = append(rows, row{"starts with " + strconv.Quote(opts.prefix), strconv.FormatBool(tb.IsStartWith(opts.prefix))})
	}
	if opts.suffix != "" {
		rows = append(rows, row{"ends with " + strconv.Quote(opts.suffix), strconv.FormatBool(tb.IsEndsWith(opts.suffix))})
	}
	if opts.contains != "" {
		rows = append(rows, row{"contains " + strconv.Quote(opts.contains), strconv.FormatBool(tb.Contains(opts.contains))})
	}
	if opts.equals != "" {
		rows = append(rows,
			row{"equal", strconv.FormatBool(tb.IsEqual(opts.equals))},
			row{"loosely equal", strconv.FormatBool(tb.IsLooseEqual(opts.equals))})
	}
	if opts.pattern != "" {
		matched, err := tb.IsMatchRegex(opts.pattern)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row{"matches", strconv.FormatBool(matched)})
	}
	return rows, nil
}

func structuredKind(tb *textbox.TextBox) string {
	m, err := tb.ToStructuredArray()
	if err != nil {
		return "no"
	}
	if m.IsList() {
		return fmt.Sprintf("json list (%d items)", m.Len())
	}
	return fmt.Sprintf("json object (%d keys)", m.Len())
}

func renderRows(rows []row) string {
	lines := []string{titleStyle.Render("TextBox")}
	for _, r := range rows {
		value := r.value
		switch value {
		case "true":
			value = trueStyle.Render(value)
		case "false":
			value = falseStyle.Render(value)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), value))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
