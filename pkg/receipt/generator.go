package receipt

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/signintech/gopdf"
)

const fontName = "dejavu"

var fontPaths = []string{
	"./fonts/DejaVuSans.ttf",
	"fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Input is everything a payment receipt shows.
type Input struct {
	SerialNumber string
	Name         string
	Email        string
	Amount       int64
	Currency     string
	PaidAt       time.Time
}

// Generator renders registration payment receipts as single-page PDFs.
type Generator struct {
	fontPath string
}

func NewGenerator() (*Generator, error) {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err == nil {
			return &Generator{fontPath: path}, nil
		}
	}

	return nil, fmt.Errorf("no TTF font found in %v", fontPaths)
}

func (g *Generator) Generate(input Input) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{
		PageSize: *gopdf.PageSizeA4,
		Unit:     gopdf.Unit_PT,
	})

	if err := pdf.AddTTFFont(fontName, g.fontPath); err != nil {
		return nil, fmt.Errorf("load receipt font: %w", err)
	}

	pdf.AddPage()

	// Header band
	pdf.SetFillColor(59, 130, 246)
	pdf.RectFromUpperLeftWithStyle(0, 0, 595, 70, "F")
	pdf.SetTextColor(255, 255, 255)
	if err := pdf.SetFont(fontName, "", 22); err != nil {
		return nil, fmt.Errorf("set receipt font: %w", err)
	}
	pdf.SetXY(50, 25)
	_ = pdf.Cell(nil, "Registration Receipt")
	pdf.SetTextColor(0, 0, 0)

	rows := []struct {
		label string
		value string
	}{
		{"Serial number", input.SerialNumber},
		{"Name", input.Name},
		{"Email", input.Email},
		{"Amount paid", fmt.Sprintf("%d %s", input.Amount, input.Currency)},
		{"Date", input.PaidAt.Format("02 Jan 2006 15:04")},
	}

	y := 110.0
	for _, row := range rows {
		if err := pdf.SetFont(fontName, "", 11); err != nil {
			return nil, fmt.Errorf("set receipt font: %w", err)
		}
		pdf.SetTextColor(120, 120, 120)
		pdf.SetXY(50, y)
		_ = pdf.Cell(nil, row.label)

		if err := pdf.SetFont(fontName, "", 13); err != nil {
			return nil, fmt.Errorf("set receipt font: %w", err)
		}
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(200, y)
		_ = pdf.Cell(nil, row.value)

		y += 32
	}

	pdf.SetXY(50, 780)
	if err := pdf.SetFont(fontName, "", 9); err != nil {
		return nil, fmt.Errorf("set receipt font: %w", err)
	}
	pdf.SetTextColor(150, 150, 150)
	_ = pdf.Cell(nil, fmt.Sprintf("Generated %s. Keep the serial number as proof of registration.", time.Now().Format("02.01.2006")))

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("output receipt pdf: %w", err)
	}

	return buf.Bytes(), nil
}
