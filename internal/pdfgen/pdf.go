// Package pdfgen renders a brand's product recommendations into a one-off PDF
// for delivery as a WhatsApp document.
package pdfgen

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"robomua/aiysha-bot/internal/beauty"
)

// categoryFields are the category-specific record keys worth printing, in the
// order the original recommendation cards show them.
var categoryFields = []string{"Foundation", "Shade", "Concealer", "Shoe"}

// CreateRecommendations writes one line block per product and returns the path
// of the generated temp file. The caller removes the file after upload.
func CreateRecommendations(products []beauty.Product) (string, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	y := 60.0
	for _, product := range products {
		// Matched category fields prepend, mirroring the chat cards.
		var lines []string
		for _, key := range categoryFields {
			if v, ok := product.Raw[key]; ok {
				lines = append([]string{fmt.Sprintf("%s: %s", key, v)}, lines...)
			}
		}
		lines = append(lines,
			"Price: "+product.Price,
			"Buy: "+product.ProductURL,
			"Tutorial: "+product.VideoTutorial)

		for _, line := range lines {
			pdf.Text(50, y, line)
			y += 14
		}
		y += 14

		if y > 740 {
			pdf.AddPage()
			y = 60
		}
	}

	tmp, err := os.CreateTemp("", "recs-*.pdf")
	if err != nil {
		return "", err
	}
	defer tmp.Close()
	if err := pdf.Output(tmp); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("error writing recommendations PDF: %w", err)
	}
	return tmp.Name(), nil
}
