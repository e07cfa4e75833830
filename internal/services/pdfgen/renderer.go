// Package pdfgen renders a report as a single-page A4 PDF.
//
// Layout mirrors the browser page: centred title, five metadata lines, then
// the wrapped prediction body. If the bundled Odia font is available the
// whole document uses it and text passes through verbatim; otherwise the
// built-in Helvetica is used and each line is degraded to what its encoding
// can represent.
//
// The body is NOT paginated: an overlong prediction runs off the single page.
// Known limitation, kept deliberately.
package pdfgen

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/jonboulle/clockwork"

	"github.com/siddharth-labs/astro-report-api/internal/models"
)

const (
	odiaFontName = "NotoOdia"
	builtinFont  = "Helvetica"

	titleText = "Siddharth Astrology Report"

	titleSize = 18
	bodySize  = 12

	leftMargin  = 50.0
	titleY      = 50.0
	metaStartY  = 90.0
	metaLeading = 16.0
	bodyLeading = 14.4 // 1.2 × body size, reportlab-style default
	metaBodyGap = 10.0

	// wrapWidth is the maximum characters per body line before wrapping.
	wrapWidth = 90
)

// clock supplies the PDF creation timestamp. Tests freeze it so that
// rendering the same report twice yields byte-identical output.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Renderer produces PDF documents from reports.
type Renderer struct {
	fontBytes []byte // nil when the Odia font is unavailable
}

// NewRenderer probes the Odia font file once at startup. A missing or
// unreadable font is non-fatal: the renderer downgrades to Helvetica and
// lossy text.
func NewRenderer(fontPath string) *Renderer {
	r := &Renderer{}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("⚠️  Odia font not loaded (%v) — PDF falls back to Helvetica, non-Latin text will be dropped", err)
		return r
	}

	r.fontBytes = data
	log.Printf("✅ Loaded Odia font: %s", fontPath)
	return r
}

// HasUnicodeFont reports whether the Odia font was loaded at startup.
func (r *Renderer) HasUnicodeFont() bool {
	return r.fontBytes != nil
}

// Render produces the PDF bytes for a report. Identical input produces
// identical output (the creation date comes from the injected clock).
func (r *Renderer) Render(rep *models.Report) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetCreationDate(clock.Now())
	pdf.SetModificationDate(clock.Now())
	pdf.SetAutoPageBreak(false, 0) // single page, overflow runs off the sheet

	titleFont, bodyFont := builtinFont, builtinFont
	titleStyle := "B"
	if r.fontBytes != nil {
		pdf.AddUTF8FontFromBytes(odiaFontName, "", r.fontBytes)
		titleFont, bodyFont = odiaFontName, odiaFontName
		titleStyle = ""
	}

	pdf.AddPage()
	pageW, _ := pdf.GetPageSize()

	// Core fonts want cp1252-encoded text; the embedded UTF-8 font takes
	// strings as-is.
	tr := func(s string) string { return s }
	if r.fontBytes == nil {
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	draw := func(x, y float64, s string) {
		pdf.Text(x, y, tr(r.safeLine(s)))
	}

	// Title, centred.
	pdf.SetFont(titleFont, titleStyle, titleSize)
	title := tr(r.safeLine(titleText))
	pdf.Text((pageW-pdf.GetStringWidth(title))/2, titleY, title)

	// Metadata block at fixed leading.
	pdf.SetFont(bodyFont, "", bodySize)
	ageStr := "N/A"
	if rep.Age != nil {
		ageStr = fmt.Sprintf("%d", *rep.Age)
	}
	metaLines := []string{
		"ନାମ/Name: " + rep.Name,
		"ଜନ୍ମତାରିଖ/DOB: " + rep.DOB,
		"ସମୟ/Time: " + rep.TOB,
		"ବୟସ/Age: " + ageStr,
		"ସ୍ଥାନ/Location: " + rep.NormalizedLocation,
	}
	y := metaStartY
	for _, line := range metaLines {
		draw(leftMargin, y, line)
		y += metaLeading
	}
	y += metaBodyGap

	// Prediction body: split on the input's own line breaks first so
	// intentional blank lines survive as vertical spacing, then wrap each
	// non-blank line.
	for _, raw := range strings.Split(rep.Prediction, "\n") {
		if strings.TrimSpace(raw) == "" {
			y += bodyLeading
			continue
		}
		for _, wrapped := range wrapText(raw, wrapWidth) {
			draw(leftMargin, y, wrapped)
			y += bodyLeading
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderFile writes the PDF into dir, named from the report holder. Reports
// for the same name overwrite each other — on disk, too, last write wins.
func (r *Renderer) RenderFile(rep *models.Report, dir string) (string, error) {
	data, err := r.Render(rep)
	if err != nil {
		return "", err
	}

	name := sanitizeFilename(rep.Name)
	if name == "" {
		name = "report"
	}
	path := filepath.Join(dir, name+"_astrology.pdf")

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return path, nil
}

// safeLine prepares one output line for the active font. With the Odia font
// text passes through byte-for-byte. Without it, the directional arrow gets
// an ASCII approximation and anything Helvetica's encoding cannot represent
// is dropped silently.
func (r *Renderer) safeLine(text string) string {
	if r.fontBytes != nil {
		return text
	}

	text = strings.ReplaceAll(text, "→", "->")

	var b strings.Builder
	b.Grow(len(text))
	for _, ru := range text {
		if ru <= 0xFF { // latin-1 range
			b.WriteRune(ru)
		}
	}
	return b.String()
}

// wrapText greedily wraps a line at maxChars characters: words accumulate
// until the next one would push past the limit, then the line is emitted and
// a new one starts with that word. A line already within the limit comes back
// unchanged as a single element.
func wrapText(text string, maxChars int) []string {
	if runeLen(text) <= maxChars {
		return []string{text}
	}

	var lines []string
	var current []string
	count := 0
	for _, w := range strings.Fields(text) {
		wlen := runeLen(w) + 1
		if count+wlen > maxChars {
			lines = append(lines, strings.Join(current, " "))
			current = []string{w}
			count = wlen
		} else {
			current = append(current, w)
			count += wlen
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// runeLen counts characters, not bytes — Odia text is multi-byte throughout.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// sanitizeFilename strips characters that are unsafe in file names and
// Content-Disposition headers.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "-", "\\", "-", ":", "-", "*", "-",
		"?", "-", "\"", "-", "<", "-", ">", "-",
		"|", "-", "\n", " ", "\r", "",
	)
	name = replacer.Replace(name)

	for strings.Contains(name, "  ") {
		name = strings.ReplaceAll(name, "  ", " ")
	}
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}

	name = strings.TrimSpace(name)

	if len(name) > 100 {
		name = name[:100]
	}

	return name
}
