package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/mygit/tui/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 72
const minWidth = 40

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the specified width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies consistent styling to a command's help output.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	t := theme.DefaultTheme
	width := getTerminalWidth()

	fmt.Println(t.Title.Render(cmd.Name()))
	if cmd.Short != "" {
		fmt.Println(wrapText(cmd.Short, width))
	}
	if cmd.Long != "" {
		fmt.Println()
		fmt.Println(wrapText(strings.TrimSpace(cmd.Long), width))
	}

	fmt.Println()
	fmt.Println(t.Accent.Render("Usage:"))
	fmt.Printf("  %s\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Println()
		fmt.Println(t.Accent.Render("Commands:"))
		for _, sub := range cmd.Commands() {
			if sub.IsAvailableCommand() {
				fmt.Printf("  %s %s\n",
					lipgloss.NewStyle().Width(10).Render(sub.Name()),
					t.Muted.Render(sub.Short))
			}
		}
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailableInheritedFlags() {
		fmt.Println()
		fmt.Println(t.Accent.Render("Flags:"))
		printFlags := func(flags *pflag.FlagSet) {
			flags.VisitAll(func(f *pflag.Flag) {
				if f.Hidden {
					return
				}
				name := "--" + f.Name
				if f.Shorthand != "" {
					name = "-" + f.Shorthand + ", " + name
				}
				fmt.Printf("  %s %s\n",
					lipgloss.NewStyle().Width(16).Render(name),
					t.Muted.Render(f.Usage))
			})
		}
		printFlags(cmd.LocalFlags())
		printFlags(cmd.InheritedFlags())
	}

	if cmd.Example != "" {
		fmt.Println()
		fmt.Println(t.Accent.Render("Examples:"))
		fmt.Println(cmd.Example)
	}
}
