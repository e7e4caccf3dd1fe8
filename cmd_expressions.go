package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msd/superintendent/internal/face"
)

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleName   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Width(12)
	styleCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(20)
	styleAlert  = lipgloss.NewStyle().Foreground(lipgloss.Color("167"))
	styleNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

func newExpressionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "expressions",
		Short: "List the face expressions and their eye shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printExpressions(cmd.OutOrStdout())
			return nil
		},
	}
}

func printExpressions(w io.Writer) {
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		styleName.Inherit(styleHeader).Render("EXPRESSION"),
		styleCell.Inherit(styleHeader).Render("LEFT EYE"),
		styleCell.Inherit(styleHeader).Render("RIGHT EYE"),
		styleHeader.Render("FACE"),
	)
	lines := []string{header}
	for _, e := range face.All() {
		left, right := face.Eyes(e)
		fill := styleNormal.Render("normal")
		if e == face.Angry {
			fill = styleAlert.Render("alert")
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			styleName.Render(e.String()),
			styleCell.Render(describeEye(left)),
			styleCell.Render(describeEye(right)),
			fill,
		))
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

func describeEye(s face.EyeShape) string {
	if s.Kind == face.ShapeCircle {
		return "circle"
	}
	return fmt.Sprintf("wedge %g°, %+g°", s.StartDeg, s.SweepDeg)
}
