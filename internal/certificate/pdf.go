// Package certificate issues donation certificates: numbering and PDF rendering.
package certificate

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Data is everything printed on a certificate.
type Data struct {
	Number       string
	DonorName    string
	BloodType    string
	IssuedDate   time.Time
	DonationDate *time.Time
	Units        int
}

const dateLayout = "2 January 2006"

// Render writes a single-page landscape A4 certificate to w.
func Render(w io.Writer, d Data) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Blood Donation Certificate "+d.Number, true)
	pdf.SetCreator("BloodLink", true)
	pdf.SetCreationDate(d.IssuedDate)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Core fonts are cp1252; text is UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()

	// frame
	pdf.SetDrawColor(178, 34, 34)
	pdf.SetLineWidth(2)
	pdf.Rect(10, 10, pageW-20, pageH-20, "D")
	pdf.SetLineWidth(0.5)
	pdf.Rect(14, 14, pageW-28, pageH-28, "D")

	contentW := pageW - 40

	pdf.SetY(32)
	pdf.SetTextColor(178, 34, 34)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.CellFormat(contentW, 14, "Certificate of Blood Donation", "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetTextColor(60, 60, 60)
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(contentW, 8, "This certificate is proudly presented to", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Times", "BI", 32)
	name := d.DonorName
	if name == "" {
		name = "Valued Donor"
	}
	pdf.CellFormat(contentW, 16, tr(name), "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(60, 60, 60)
	pdf.MultiCell(contentW, 8, tr(body(d)), "", "C", false)

	pdf.SetY(pageH - 48)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW/2, 6, tr("Certificate No: "+d.Number), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Issued: "+d.IssuedDate.Format(dateLayout), "", 1, "R", false, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render certificate %s: %w", d.Number, err)
	}
	return pdf.Output(w)
}

func body(d Data) string {
	units := d.Units
	if units <= 0 {
		units = 1
	}
	s := fmt.Sprintf("in grateful recognition of the voluntary donation of %d unit", units)
	if units != 1 {
		s += "s"
	}
	if d.BloodType != "" {
		s += " of " + d.BloodType + " blood"
	}
	if d.DonationDate != nil {
		s += " on " + d.DonationDate.Format(dateLayout)
	}
	return s + ". Every donation can help save up to three lives."
}
