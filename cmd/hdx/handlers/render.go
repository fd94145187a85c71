package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/openbda/hdx/internal/mgmt"
)

var (
	clusterColorGreen  = lipgloss.Color("#22c55e")
	clusterColorRed    = lipgloss.Color("#ef4444")
	clusterColorYellow = lipgloss.Color("#eab308")
	clusterColorDim    = lipgloss.Color("#6b7280")
	clusterColorWhite  = lipgloss.Color("#f9fafb")
)

var (
	clusterTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(clusterColorWhite)

	clusterDimStyle = lipgloss.NewStyle().
			Foreground(clusterColorDim)

	clusterGreenStyle = lipgloss.NewStyle().
				Foreground(clusterColorGreen)

	clusterRedStyle = lipgloss.NewStyle().
			Foreground(clusterColorRed)

	clusterYellowStyle = lipgloss.NewStyle().
				Foreground(clusterColorYellow)
)

// stateStyle picks a color for a cluster state.
func stateStyle(state mgmt.ClusterState) lipgloss.Style {
	switch state {
	case mgmt.StateOperational, mgmt.StateRunning:
		return clusterGreenStyle
	case mgmt.StateError:
		return clusterRedStyle
	default:
		return clusterYellowStyle
	}
}

// renderCluster produces a lipgloss-styled summary of a cluster.
func renderCluster(cluster *mgmt.Cluster) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(clusterTitleStyle.Render(fmt.Sprintf("  Cluster: %s", cluster.Name)))
	b.WriteString("\n")
	b.WriteString(clusterDimStyle.Render("  " + strings.Repeat("─", 30)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("    Location:  %s\n", cluster.Location))
	b.WriteString("    State:     ")
	b.WriteString(stateStyle(cluster.State).Render(string(cluster.State)))
	b.WriteString("\n")
	if cluster.Error != "" {
		b.WriteString("    Error:     ")
		b.WriteString(clusterRedStyle.Render(cluster.Error))
		b.WriteString("\n")
	}

	return b.String()
}

// renderClusterTable produces a table listing of clusters.
func renderClusterTable(clusters []mgmt.Cluster) string {
	var b strings.Builder

	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"NAME", "LOCATION", "STATE", "ERROR"})
	for _, cluster := range clusters {
		table.Append([]string{cluster.Name, cluster.Location, string(cluster.State), cluster.Error})
	}
	table.Render()

	if len(clusters) == 0 {
		b.WriteString("No clusters found.\n")
	}
	return b.String()
}
