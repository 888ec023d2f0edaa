// Package chart renders the static PNG figures from the finished state table.
package chart

import (
	"image/color"
	"path/filepath"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/naikNiranjan/UIDAI-data-hackathon/internal/model"
)

// archetypeColor maps each archetype to its display color. Exclusion variants
// share one orange.
func archetypeColor(a model.Archetype) color.RGBA {
	switch a {
	case model.ArchetypeDigitalLeader:
		return color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff} // green
	case model.ArchetypeSprinter:
		return color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff} // yellow
	case model.ArchetypeSleepwalker:
		return color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff} // red
	case model.ArchetypeModerate:
		return color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff} // blue
	default:
		return color.RGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff} // orange, exclusions
	}
}

// RenderAll writes the chart set into dir. Each figure is derived purely from
// the finished table; a failed render aborts the run like any other error.
func RenderAll(dir string, rows []model.StateMetrics) error {
	charts := []struct {
		file   string
		render func(string, []model.StateMetrics) error
	}{
		{"01_archetype_summary.png", archetypeSummary},
		{"02_health_scatter.png", healthScatter},
		{"03_idi_diverging.png", idiDiverging},
		{"04_yir_bar.png", yirBar},
		{"05_gci_bar.png", gciBar},
		{"06_composite_risk.png", compositeRiskBar},
	}

	for _, c := range charts {
		path := filepath.Join(dir, c.file)
		if err := c.render(path, rows); err != nil {
			return err
		}
	}

	zap.L().Info("chart: rendered figures",
		zap.String("dir", dir),
		zap.Int("count", len(charts)),
	)
	return nil
}

// archetypeSummary draws the state count per archetype.
func archetypeSummary(path string, rows []model.StateMetrics) error {
	counts := make(map[model.Archetype]int)
	for _, row := range rows {
		counts[row.Archetype]++
	}

	p := plot.New()
	p.Title.Text = "State Distribution by Archetype"
	p.Y.Label.Text = "Number of States"

	var labels []string
	offset := 0
	for _, a := range model.Archetypes {
		if counts[a] == 0 {
			continue
		}
		bar, err := plotter.NewBarChart(plotter.Values{float64(counts[a])}, vg.Points(30))
		if err != nil {
			return eris.Wrap(err, "chart: archetype bars")
		}
		bar.Color = archetypeColor(a)
		bar.LineStyle.Width = vg.Length(0)
		bar.Offset = vg.Points(float64(offset * 36))
		p.Add(bar)
		labels = append(labels, string(a))
		offset++
	}
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.6

	return save(p, path, 10, 6)
}

// healthScatter plots IDI against Health Score, colored by archetype.
func healthScatter(path string, rows []model.StateMetrics) error {
	p := plot.New()
	p.Title.Text = "State Ecosystem: IDI vs Health Score by Archetype"
	p.X.Label.Text = "Infrastructure Deficit Index (IDI) %"
	p.Y.Label.Text = "Health Score"

	byArchetype := make(map[model.Archetype]plotter.XYs)
	for _, row := range rows {
		byArchetype[row.Archetype] = append(byArchetype[row.Archetype],
			plotter.XY{X: row.IDI * 100, Y: row.HealthScore})
	}

	for _, a := range model.Archetypes {
		pts := byArchetype[a]
		if len(pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return eris.Wrap(err, "chart: health scatter")
		}
		scatter.GlyphStyle.Color = archetypeColor(a)
		scatter.GlyphStyle.Radius = vg.Points(4)
		p.Add(scatter)
		p.Legend.Add(string(a), scatter)
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return save(p, path, 12, 8)
}

// idiDiverging draws per-state IDI, deficit states red and surplus green.
func idiDiverging(path string, rows []model.StateMetrics) error {
	sorted := sortedBy(rows, func(m model.StateMetrics) float64 { return m.IDI })

	p := plot.New()
	p.Title.Text = "Infrastructure Deficit: Surplus vs Deficit"
	p.Y.Label.Text = "IDI %"

	for i, row := range sorted {
		bar, err := plotter.NewBarChart(plotter.Values{row.IDI * 100}, vg.Points(8))
		if err != nil {
			return eris.Wrap(err, "chart: idi bars")
		}
		if row.IDI > 0 {
			bar.Color = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
		} else {
			bar.Color = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Offset = vg.Points(float64(i * 10))
		p.Add(bar)
	}
	p.NominalX(stateLabels(sorted)...)
	p.X.Tick.Label.Rotation = 1.2

	return save(p, path, 14, 8)
}

// yirBar draws per-state YIR colored by archetype.
func yirBar(path string, rows []model.StateMetrics) error {
	sorted := sortedBy(rows, func(m model.StateMetrics) float64 { return m.YIR })

	p := plot.New()
	p.Title.Text = "Youth Inclusion Ratio by State"
	p.Y.Label.Text = "YIR (1.0 = national average)"

	for i, row := range sorted {
		bar, err := plotter.NewBarChart(plotter.Values{row.YIR}, vg.Points(8))
		if err != nil {
			return eris.Wrap(err, "chart: yir bars")
		}
		bar.Color = archetypeColor(row.Archetype)
		bar.LineStyle.Width = vg.Length(0)
		bar.Offset = vg.Points(float64(i * 10))
		p.Add(bar)
	}
	p.NominalX(stateLabels(sorted)...)
	p.X.Tick.Label.Rotation = 1.2

	national := plotter.NewFunction(func(x float64) float64 { return 1.0 })
	national.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	national.Color = color.Black
	p.Add(national)

	return save(p, path, 14, 8)
}

// gciBar draws per-state geographic concentration, high-concentration red.
func gciBar(path string, rows []model.StateMetrics) error {
	sorted := sortedBy(rows, func(m model.StateMetrics) float64 { return -m.GCI })

	p := plot.New()
	p.Title.Text = "Geographic Concentration (Lower = More Equitable)"
	p.Y.Label.Text = "GCI"

	for i, row := range sorted {
		bar, err := plotter.NewBarChart(plotter.Values{row.GCI}, vg.Points(8))
		if err != nil {
			return eris.Wrap(err, "chart: gci bars")
		}
		switch {
		case row.GCI > 0.5:
			bar.Color = color.RGBA{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff}
		case row.GCI > 0.3:
			bar.Color = color.RGBA{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff}
		default:
			bar.Color = color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Offset = vg.Points(float64(i * 10))
		p.Add(bar)
	}
	p.NominalX(stateLabels(sorted)...)
	p.X.Tick.Label.Rotation = 1.2

	return save(p, path, 14, 8)
}

// compositeRiskBar draws the composite problem risk per state.
func compositeRiskBar(path string, rows []model.StateMetrics) error {
	sorted := sortedBy(rows, func(m model.StateMetrics) float64 { return -m.CompositeRisk })

	p := plot.New()
	p.Title.Text = "Composite Problem Risk by State"
	p.Y.Label.Text = "Risk %"
	p.Y.Max = 100

	for i, row := range sorted {
		bar, err := plotter.NewBarChart(plotter.Values{row.CompositeRisk}, vg.Points(8))
		if err != nil {
			return eris.Wrap(err, "chart: risk bars")
		}
		bar.Color = archetypeColor(row.Archetype)
		bar.LineStyle.Width = vg.Length(0)
		bar.Offset = vg.Points(float64(i * 10))
		p.Add(bar)
	}
	p.NominalX(stateLabels(sorted)...)
	p.X.Tick.Label.Rotation = 1.2

	return save(p, path, 14, 8)
}

// sortedBy returns rows sorted ascending by the key.
func sortedBy(rows []model.StateMetrics, key func(model.StateMetrics) float64) []model.StateMetrics {
	sorted := make([]model.StateMetrics, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) < key(sorted[j]) })
	return sorted
}

func stateLabels(rows []model.StateMetrics) []string {
	labels := make([]string, len(rows))
	for i, row := range rows {
		labels[i] = row.State
	}
	return labels
}

func save(p *plot.Plot, path string, w, h float64) error {
	if err := p.Save(vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch, path); err != nil {
		return eris.Wrapf(err, "chart: save %s", path)
	}
	return nil
}
