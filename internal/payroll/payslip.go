package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/anzallkiyteb-cell/bey/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

// FormatMoney renders millimes as dinars with three decimals.
func FormatMoney(millimes int64) string {
	sign := ""
	if millimes < 0 {
		sign = "-"
		millimes = -millimes
	}
	return fmt.Sprintf("%s%d.%03d DT", sign, millimes/1000, millimes%1000)
}

func renderPayslip(p PayrollResponse, emp employee.Employee, printedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Fiche de paie"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	header := [][2]string{
		{"Employé", emp.DisplayName()},
		{"Département", emp.Department},
		{"Période", p.Month},
	}
	for _, row := range header {
		pdf.CellFormat(50, 7, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, tr("Rubrique"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 8, tr("Montant"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	lines := []struct {
		label  string
		amount int64
		sign   string
	}{
		{"Salaire de base", p.BaseSalary, ""},
		{"Primes", p.Primes, "+"},
		{"Extras", p.Extras, "+"},
		{"Doublages", p.Doublages, "+"},
		{"Infractions", p.Infractions, "-"},
		{"Avances validées", p.Advances, "-"},
	}
	for _, l := range lines {
		pdf.CellFormat(120, 7, tr(l.label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, l.sign+FormatMoney(l.amount), "1", 1, "R", false, 0, "")
	}

	net := effectiveNet(p)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 9, tr("Net à payer"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 9, FormatMoney(net), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Jours d'absence : %d (justifiés %d, non justifiés %d, mise à pied %d)",
		p.AbsentDays, p.Absences.Justified, p.Absences.Unjustified, p.Absences.Suspension)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Retards : %d (%s)", p.RetardCount, p.RetardDisplay)))
	pdf.Ln(6)

	status := "Non payé"
	if p.Paid && p.PaidAt != nil {
		status = "Payé le " + *p.PaidAt
	}
	pdf.Cell(0, 6, tr("Statut : "+status))
	pdf.Ln(6)
	if p.Incomplete {
		pdf.Cell(0, 6, tr("Salaire de base non renseigné"))
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 6, tr("Imprimé le "+printedAt.Format("2006-01-02 15:04")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
