// Package report renders officer dossiers as PDF.
package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/udisondev/stavka/internal/data"
	"github.com/udisondev/stavka/internal/model"
)

// WriteRoster рендерит досье по странице на офицера и пишет PDF в w.
func WriteRoster(w io.Writer, officers []*model.Officer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)

	for _, o := range officers {
		writeDossierPage(pdf, o)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing roster PDF: %w", err)
	}
	return nil
}

func writeDossierPage(pdf *gofpdf.Fpdf, o *model.Officer) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s %s", o.RankTitle(), o.Name()), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Nationality: %s    Side: %s", o.Nationality(), o.Side()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Command rating: %s    Grade: %s", o.Rating(), o.Grade()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Reputation: %d", o.Reputation()), "", 1, "L", false, 0, "")

	if unitID, assigned := o.AssignedUnitID(); assigned {
		pdf.CellFormat(0, 6, "Assigned to: "+unitID, "", 1, "L", false, 0, "")
	} else {
		pdf.CellFormat(0, 6, "Unassigned (reserve pool)", "", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Unlocked skills", "", 1, "L", false, 0, "")

	unlocked := o.SkillTree().UnlockedSkills()
	if len(unlocked) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 6, "None", "", 1, "L", false, 0, "")
		return
	}

	// Навыки группируются по веткам в порядке определения.
	pdf.SetFont("Helvetica", "", 10)
	for _, branch := range data.Branches {
		var lines []string
		for _, id := range unlocked {
			if id.Branch() != branch {
				continue
			}
			def := data.GetSkill(id)
			lines = append(lines, fmt.Sprintf("  Tier %d: %s (%s)", def.Tier, def.Name, bonusSummary(def)))
		}
		if len(lines) == 0 {
			continue
		}

		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, branch.String(), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range lines {
			pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
		}
	}
}

// bonusSummary форматирует бонусы навыка: "+1 Attack, Forced March".
func bonusSummary(def *data.SkillDef) string {
	var s string
	for i, b := range def.Bonuses {
		if i > 0 {
			s += ", "
		}
		if b.Capability {
			s += b.Type.String()
		} else {
			s += fmt.Sprintf("+%d %s", b.Value, b.Type)
		}
	}
	return s
}
