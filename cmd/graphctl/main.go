// Command graphctl is a terminal inspector for a running Graph: it lists
// vertex types, edge types, their storage-capacity, and valid index
// counts, and serves the metrics registry over HTTP for Prometheus to
// scrape.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/graphmatrix/pkg/config"
	"github.com/dd0wney/graphmatrix/pkg/edgestore"
	"github.com/dd0wney/graphmatrix/pkg/graph"
	"github.com/dd0wney/graphmatrix/pkg/graphtx"
	"github.com/dd0wney/graphmatrix/pkg/indexing"
	"github.com/dd0wney/graphmatrix/pkg/logging"
	"github.com/dd0wney/graphmatrix/pkg/metrics"
	"github.com/dd0wney/graphmatrix/pkg/vertexstore"
)

// configPath is where graphctl looks for its EngineConfig; absence falls
// back to config.DefaultEngineConfig() rather than failing startup.
const configPath = "graphctl.yaml"

func loadEngineConfig() config.EngineConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.DefaultEngineConfig()
	}
	return cfg
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(2).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	g          *graph.Graph
	vertexType table.Model
	edgeType   table.Model
	width      int
}

func newModel(g *graph.Graph) model {
	columns := []table.Column{
		{Title: "Type", Width: 10},
		{Title: "Storage", Width: 12},
		{Title: "Stored Elements", Width: 16},
	}

	vt := table.New(table.WithColumns(columns), table.WithFocused(false), table.WithHeight(8))
	et := table.New(table.WithColumns(columns), table.WithFocused(false), table.WithHeight(8))

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	vt.SetStyles(s)
	et.SetStyles(s)

	m := model{g: g, vertexType: vt, edgeType: et}
	m.refresh()
	return m
}

func (m *model) refresh() {
	var vertexRows []table.Row
	for _, t := range m.g.Vertices().ValidVertexTypes() {
		vec := m.g.Vertices().VectorAt(t)
		if vec == nil {
			continue
		}
		vertexRows = append(vertexRows, table.Row{
			fmt.Sprintf("%d", t),
			vec.TypeID().String(),
			fmt.Sprintf("%d", vec.NumberOfStoredElements()),
		})
	}
	m.vertexType.SetRows(vertexRows)

	var edgeRows []table.Row
	for _, e := range m.g.Edges().ValidEdgeTypes() {
		mat := m.g.Edges().MatrixAt(e)
		if mat == nil {
			continue
		}
		edgeRows = append(edgeRows, table.Row{
			fmt.Sprintf("%d", e),
			mat.TypeID().String(),
			fmt.Sprintf("%d", mat.NumberOfStoredElements()),
		})
	}
	m.edgeType.SetRows(edgeRows)
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		m.refresh()
		return m, tickCmd()
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("graphctl"))
	s.WriteString("\n\n")

	s.WriteString(contentStyle.Render(fmt.Sprintf(
		"vertex element capacity: %d    indexed or reusable: %d    edge-side capacity mirrors vertex capacity",
		m.g.Vertices().ElementIndexer().Capacity(),
		m.g.Vertices().ElementIndexer().NumberOfIndexedOrReusableElements(),
	)))
	s.WriteString("\n\n")

	s.WriteString(contentStyle.Render("Vertex types\n" + m.vertexType.View()))
	s.WriteString("\n\n")
	s.WriteString(contentStyle.Render("Edge types\n" + m.edgeType.View()))
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("press q to quit"))
	return s.String()
}

func main() {
	addr := ":9090"

	cfg := loadEngineConfig()
	logging.SetDefaultLogger(logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel)))
	indexing.Logger = logging.DefaultLogger()

	g := graph.NewWithCapacity(cfg.InitialVertexCapacity, cfg.InitialEdgeCapacity)
	seedDemoGraph(g)

	var reg *metrics.Registry
	if cfg.MetricsEnabled {
		reg = metrics.DefaultRegistry()
		graphtx.Metrics = reg
		vertexstore.Metrics = reg
		edgestore.Metrics = reg
	}

	go func() {
		if reg == nil {
			return
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg.GetPrometheusRegistry(), promhttp.HandlerOpts{}))
		log.Printf("graphctl metrics listening on %s/metrics", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()

	p := tea.NewProgram(newModel(g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("graphctl: %v", err)
	}
}

func seedDemoGraph(g *graph.Graph) {
	tx := graphtx.Begin(g)
	defer tx.Close()

	tu8 := graphtx.NewVertexType[uint8](tx)
	v1, err := tx.NewVertexIndex()
	if err != nil {
		return
	}
	v2, err := tx.NewVertexIndex()
	if err != nil {
		return
	}
	_ = graphtx.SetVertexValue[uint8](tx, tu8, v1, 1)
	_ = graphtx.SetVertexValue[uint8](tx, tu8, v2, 2)

	ef32 := graphtx.NewEdgeType[float32](tx)
	_ = graphtx.SetEdgeValue[float32](tx, ef32, v1, v2, 1.5)

	_ = tx.Commit()
}
