package report

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	charts "github.com/vicanso/go-charts/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/dataset"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/renewable"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/schema"
	"github.com/sofa-ridgz/MANAGEMENT.GHG-emissions/pkg/trainer"
)

// SaveCharts renders the full chart set into dir: predicted-vs-actual
// scatter and per-category emission spread per target, plus category
// distribution and mean-emission bar charts. Chart trouble should never kill
// an analysis run, so callers are expected to log the returned error and
// move on.
func SaveCharts(dir string, ds *dataset.Dataset, results map[string]*trainer.Result, sc *schema.Schema) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}
	for i, target := range sc.TargetVariables {
		res, ok := results[target]
		if !ok {
			continue
		}
		name := filepath.Join(dir, fmt.Sprintf("predicted_vs_actual_%d.png", i+1))
		if err := predictedVsActual(res.Eval, name); err != nil {
			return err
		}
		name = filepath.Join(dir, fmt.Sprintf("emissions_spread_%d.png", i+1))
		if err := emissionSpread(ds, target, name); err != nil {
			return err
		}
	}
	if err := categoryBar(ds, filepath.Join(dir, "category_distribution.png")); err != nil {
		return err
	}
	return meanEmissionsBar(ds, sc, filepath.Join(dir, "mean_emissions_by_category.png"))
}

// predictedVsActual plots heldout predictions against truth with the y=x
// reference line.
func predictedVsActual(eval *trainer.Evaluation, filename string) error {
	p := plot.New()
	p.Title.Text = eval.Target
	p.X.Label.Text = "Actual"
	p.Y.Label.Text = "Predicted"

	pts := make(plotter.XYs, len(eval.Actual))
	lo, hi := 0.0, 0.0
	for i := range eval.Actual {
		pts[i].X = eval.Actual[i]
		pts[i].Y = eval.Predicted[i]
		if i == 0 || eval.Actual[i] < lo {
			lo = eval.Actual[i]
		}
		if eval.Actual[i] > hi {
			hi = eval.Actual[i]
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	s.Color = color.RGBA{R: 50, G: 50, B: 255, A: 255}
	p.Add(s)

	line, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)

	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}

// emissionSpread draws one box per category over the target's values.
func emissionSpread(ds *dataset.Dataset, target, filename string) error {
	p := plot.New()
	p.Title.Text = target + " by renewable category"
	p.Y.Label.Text = target

	labels := []string{}
	x := 0.0
	for _, cat := range renewable.All() {
		vals := plotter.Values{}
		for _, rec := range ds.Records {
			if rec.Category == string(cat) {
				vals = append(vals, rec.Cell(target).Or(0))
			}
		}
		if len(vals) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(vg.Points(30), x, vals)
		if err != nil {
			return err
		}
		p.Add(box)
		labels = append(labels, string(cat))
		x++
	}
	p.NominalX(labels...)

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// categoryBar renders the category distribution as a bar chart PNG.
func categoryBar(ds *dataset.Dataset, filename string) error {
	counts := make(map[string]float64)
	for _, rec := range ds.Records {
		if rec.Category != "" {
			counts[rec.Category]++
		}
	}
	labels := []string{}
	values := []float64{}
	for _, cat := range renewable.All() {
		if n, ok := counts[string(cat)]; ok {
			labels = append(labels, string(cat))
			values = append(values, n)
		}
	}
	if len(values) == 0 {
		return nil
	}

	painter, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc("Buildings per renewable category"),
		charts.XAxisDataOptionFunc(labels),
		charts.WidthOptionFunc(900),
		charts.HeightOptionFunc(450),
		charts.PaddingOptionFunc(charts.Box{Top: 20, Right: 20, Bottom: 20, Left: 20}),
	)
	if err != nil {
		return fmt.Errorf("rendering category chart: %w", err)
	}
	buf, err := painter.Bytes()
	if err != nil {
		return fmt.Errorf("encoding category chart: %w", err)
	}
	return os.WriteFile(filename, buf, 0o644)
}

// meanEmissionsBar renders mean emissions per category, one series per
// target.
func meanEmissionsBar(ds *dataset.Dataset, sc *schema.Schema, filename string) error {
	labels := []string{}
	present := []renewable.Category{}
	counts := MeanEmissionsByCategory(ds, sc.TargetVariables[0])
	for _, cat := range renewable.All() {
		if _, ok := counts[string(cat)]; ok {
			labels = append(labels, string(cat))
			present = append(present, cat)
		}
	}
	if len(labels) == 0 {
		return nil
	}

	values := make([][]float64, len(sc.TargetVariables))
	for i, target := range sc.TargetVariables {
		means := MeanEmissionsByCategory(ds, target)
		row := make([]float64, len(present))
		for j, cat := range present {
			row[j] = means[string(cat)]
		}
		values[i] = row
	}

	painter, err := charts.BarRender(
		values,
		charts.TitleTextOptionFunc("Mean GHG emissions by renewable category"),
		charts.XAxisDataOptionFunc(labels),
		charts.LegendLabelsOptionFunc(sc.TargetVariables, charts.PositionRight),
		charts.WidthOptionFunc(1200),
		charts.HeightOptionFunc(500),
		charts.PaddingOptionFunc(charts.Box{Top: 20, Right: 20, Bottom: 20, Left: 20}),
	)
	if err != nil {
		return fmt.Errorf("rendering emissions chart: %w", err)
	}
	buf, err := painter.Bytes()
	if err != nil {
		return fmt.Errorf("encoding emissions chart: %w", err)
	}
	return os.WriteFile(filename, buf, 0o644)
}
