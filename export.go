package main

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// exportPagePNG renders one page at the given zoom with its segment
// overlays and annotations and writes it as a PNG. The drawing runs
// through the same projection as the live viewer: segments
// native→pixel, annotations relative→pixel against the full surface.
func exportPagePNG(filename string, doc *Document, page int, zoom float64, store *AnnotationStore) error {
	if doc == nil {
		return fmt.Errorf("no document loaded")
	}
	nativeW, nativeH := doc.PageSize(page)
	renderedW := nativeW * zoom
	renderedH := nativeH * zoom
	if renderedW <= 0 || renderedH <= 0 {
		return fmt.Errorf("page %d has no size", page)
	}

	dc := gg.NewContext(int(renderedW), int(renderedH))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	face, err := exportFace(11 * zoom)
	if err != nil {
		return fmt.Errorf("loading export font: %w", err)
	}
	dc.SetFontFace(face)

	container := Rect{W: renderedW, H: renderedH}

	// Page text first, then highlights over it, then overlay borders
	// and textboxes on top.
	dc.SetRGB(0.15, 0.15, 0.15)
	for _, seg := range doc.Segments {
		if seg.PageNumber != page {
			continue
		}
		pr, ok := segmentPixelRect(seg, renderedW, renderedH)
		if !ok {
			continue
		}
		dc.DrawStringWrapped(seg.Text, pr.X, pr.Y, 0, 0, pr.W, 1.2, gg.AlignLeft)
	}

	for _, a := range store.ForPage(page) {
		if a.Kind != KindHighlight {
			continue
		}
		pr := relToPixelRect(a.Rel, container)
		c := highlightRGB[a.Color%numHighlightColors]
		dc.SetRGBA(c[0], c[1], c[2], 0.45)
		dc.DrawRectangle(pr.X, pr.Y, pr.W, pr.H)
		dc.Fill()
	}

	dc.SetLineWidth(1.5)
	for _, seg := range doc.Segments {
		if seg.PageNumber != page {
			continue
		}
		pr, ok := segmentPixelRect(seg, renderedW, renderedH)
		if !ok {
			continue
		}
		r, g, b := segmentExportColor(seg)
		dc.SetRGB(r, g, b)
		dc.DrawRectangle(pr.X, pr.Y, pr.W, pr.H)
		dc.Stroke()
	}

	for _, a := range store.ForPage(page) {
		if a.Kind != KindTextbox {
			continue
		}
		pr := relToPixelRect(a.Rel, container)
		dc.SetRGBA(1, 1, 1, 0.85)
		dc.DrawRectangle(pr.X, pr.Y, pr.W, pr.H)
		dc.Fill()
		dc.SetRGB(0.20, 0.45, 0.85)
		dc.DrawRectangle(pr.X, pr.Y, pr.W, pr.H)
		dc.Stroke()
		if a.Text != "" {
			dc.SetRGB(0.1, 0.1, 0.1)
			dc.DrawStringWrapped(a.Text, pr.X+4, pr.Y+4, 0, 0, pr.W-8, 1.2, gg.AlignLeft)
		}
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

func exportFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	if size < 6 {
		size = 6
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
