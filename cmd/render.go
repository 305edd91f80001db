package main

import (
	"evdemand/internal/api/handler/v1handler"
	"evdemand/pkg/domain"
	"evdemand/pkg/storage/csvstore"
	"fmt"
	"io"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q, want %q or %q", format, formatTable, formatJSON)
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	return t
}

func writeEncoder(w io.Writer, e *jx.Encoder) error {
	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}

	return nil
}

func renderAnalyses(w io.Writer, items []*domain.DemandAnalysis, format string) error {
	if format == formatJSON {
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		v1handler.EncodeAnalyses(e, items)

		return writeEncoder(w, e)
	}

	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, "(0 analyses)")

		return nil
	}

	t := newTable(w)
	t.AppendHeader(table.Row{
		"Postal Code", "Population", "Stations", "Residents/Station", "Priority", "Coverage", "Density", "Needed",
	})
	for _, a := range items {
		t.AppendRow(table.Row{
			a.PostalCode().Value(),
			a.Population(),
			a.StationCount(),
			formatFloat(a.ResidentsPerStation()),
			a.DemandPriority(),
			a.CoverageAssessment(),
			a.PopulationData().DensityCategory(),
			a.AdditionalStationsNeeded(),
		})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d analyses)\n", len(items))

	return nil
}

// formatFloat prints one decimal.
func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }

// capacityRow is one line of the capacity report.
type capacityRow struct {
	Analysis        *domain.DemandAnalysis
	TotalCapacityKW float64
	Category        domain.CapacityCategory
}

func renderReport(w io.Writer, rows []capacityRow, p33, p66 float64, format string) error {
	if format == formatJSON {
		e := jx.GetEncoder()
		defer jx.PutEncoder(e)
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("thresholds")
			e.Obj(func(e *jx.Encoder) {
				e.FieldStart("p33_kw")
				e.Float64(p33)
				e.FieldStart("p66_kw")
				e.Float64(p66)
			})
			e.FieldStart("items")
			e.Arr(func(e *jx.Encoder) {
				for _, r := range rows {
					e.Obj(func(e *jx.Encoder) {
						e.FieldStart("postal_code")
						e.Str(r.Analysis.PostalCode().Value())
						e.FieldStart("demand_priority")
						e.Str(string(r.Analysis.DemandPriority()))
						e.FieldStart("total_capacity_kw")
						e.Float64(r.TotalCapacityKW)
						e.FieldStart("capacity_category")
						e.Str(string(r.Category))
					})
				}
			})
		})

		return writeEncoder(w, e)
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Postal Code", "Population", "Stations", "Priority", "Capacity kW", "Capacity"})
	for _, r := range rows {
		t.AppendRow(table.Row{
			r.Analysis.PostalCode().Value(),
			r.Analysis.Population(),
			r.Analysis.StationCount(),
			r.Analysis.DemandPriority(),
			formatFloat(r.TotalCapacityKW),
			r.Category,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "p33 / p66", formatFloat(p33) + " / " + formatFloat(p66), ""})
	t.Render()

	return nil
}

func renderLoadStats(w io.Writer, stats []csvstore.LoadStats) {
	t := newTable(w)
	t.AppendHeader(table.Row{"File", "Rows", "Loaded", "Skipped"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.File, s.Rows, s.Loaded, s.Skipped})
	}
	t.Render()
}
