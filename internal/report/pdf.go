package report

import (
	"fmt"
	"io"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfHeaderColor   = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor    = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor     = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfWitheredColor = props.Color{Red: 123, Green: 31, Blue: 31}
)

var stageNames = [4]string{"seed", "sprout", "growing", "blooming"}

// StageName returns a label for a plant stage.
func StageName(stage int, withered bool) string {
	if withered {
		return "withered"
	}
	if stage < 0 || stage > 3 {
		return stageNames[0]
	}
	return stageNames[stage]
}

// WritePDF renders data as a one-section PDF and writes it to w.
func WritePDF(data Data, w io.Writer) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	m.AddRow(14,
		text.NewCol(12, "Habit Plant", props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("Report for %s", data.Today), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, fmt.Sprintf("%d habits, combined streak %d, garden %s",
			data.Summary.Total, data.Summary.TotalStreak, StageName(data.Summary.Stage, false)), props.Text{
			Size:  10,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for _, row := range data.Rows {
		status := fmt.Sprintf("streak %d  ·  %d%%", row.Streak, row.Progress)
		statusColor := &pdfHeaderColor
		if row.Withered {
			status = "withered  ·  " + status
			statusColor = &pdfWitheredColor
		}

		m.AddRow(8,
			text.NewCol(7, row.Name, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(5, status, props.Text{
				Style: fontstyle.Bold,
				Size:  10,
				Align: align.Right,
				Color: statusColor,
			}),
		)
		if row.Note != "" {
			m.AddRow(5,
				text.NewCol(12, "  "+row.Note, props.Text{
					Size:  8,
					Color: &pdfMutedColor,
				}),
			)
		}
		m.AddRow(5,
			text.NewCol(6, "  plant: "+StageName(row.Stage, row.Withered), props.Text{Size: 8}),
			text.NewCol(6, "last done: "+row.LastDone, props.Text{
				Size:  8,
				Align: align.Right,
			}),
		)
		m.AddRow(5,
			text.NewCol(12, "  "+row.Recent, props.Text{
				Size:  8,
				Color: &pdfMutedColor,
			}),
		)
		m.AddRow(4)
	}

	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Generated", props.Text{
			Size:  8,
			Color: &pdfMutedColor,
		}),
		text.NewCol(3, data.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
			Size:  8,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	_, err = w.Write(doc.GetBytes())
	return err
}
