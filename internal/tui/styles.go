package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lehigh-university-libraries/swatchbook/internal/carousel"
)

// Styles groups the lipgloss styles used by the browser
type Styles struct {
	Set       lipgloss.Style
	ActiveSet lipgloss.Style
	MainTitle lipgloss.Style
	SubTitle  lipgloss.Style
	Preview   lipgloss.Style
	Fallback  lipgloss.Style
	Status    lipgloss.Style
	Help      lipgloss.Style
	Roles     map[carousel.Role]lipgloss.Style
}

func DefaultStyles() Styles {
	near := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("252"))
	outer := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("243"))

	return Styles{
		Set:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		ActiveSet: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
		MainTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		SubTitle:  lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250")),
		Preview:   lipgloss.NewStyle().Foreground(lipgloss.Color("110")),
		Fallback:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Roles: map[carousel.Role]lipgloss.Style{
			carousel.RoleCenter: lipgloss.NewStyle().Padding(0, 1).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")),
			carousel.RolePrev1:  near,
			carousel.RoleNext1:  near,
			carousel.RolePrev2:  outer,
			carousel.RoleNext2:  outer,
		},
	}
}
