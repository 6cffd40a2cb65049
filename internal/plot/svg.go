package plot

import (
	"fmt"
	"strings"
)

const (
	svgWidth  = 640
	svgHeight = 400
	svgMargin = 40
)

// toSVG renders the series as a polyline with optional grid, markers and
// dashed strokes. Assumes len(x) == len(y) > 0 (checked by Render).
func toSVG(x, y []float64, opts Options) string {
	minX, maxX := bounds(x)
	minY, maxY := bounds(y)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	plotW := float64(svgWidth - 2*svgMargin)
	plotH := float64(svgHeight - 2*svgMargin)
	px := func(v float64) float64 { return svgMargin + (v-minX)/rangeX*plotW }
	py := func(v float64) float64 { return svgHeight - svgMargin - (v-minY)/rangeY*plotH }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, svgWidth, svgHeight, svgWidth, svgHeight))

	if opts.Grid {
		sb.WriteString(`<g stroke="#dddddd" stroke-width="1">` + "\n")
		for i := 0; i <= 10; i++ {
			gx := svgMargin + plotW*float64(i)/10
			gy := svgMargin + plotH*float64(i)/10
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%d" x2="%.1f" y2="%d"/>`+"\n",
				gx, svgMargin, gx, svgHeight-svgMargin))
			sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.1f" x2="%d" y2="%.1f"/>`+"\n",
				svgMargin, gy, svgWidth-svgMargin, gy))
		}
		sb.WriteString("</g>\n")
	}

	dash := ""
	switch opts.LineStyle {
	case "--":
		dash = ` stroke-dasharray="8 4"`
	case ":":
		dash = ` stroke-dasharray="2 4"`
	}

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="#1f77b4" stroke-width="1.5"%s d="M`, dash))
	for i := range x {
		if i > 0 {
			sb.WriteString(" L")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(x[i]), py(y[i])))
	}
	sb.WriteString("\"/>\n")

	if opts.Marker != "" {
		sb.WriteString(`<g fill="#1f77b4">` + "\n")
		for i := range x {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5"/>`+"\n", px(x[i]), py(y[i])))
		}
		sb.WriteString("</g>\n")
	}

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="24" text-anchor="middle" font-family="sans-serif" font-size="16">%s</text>`+"\n",
			svgWidth/2, opts.Title))
	}
	if opts.XLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12">%s</text>`+"\n",
			svgWidth/2, svgHeight-8, opts.XLabel))
	}
	if opts.YLabel != "" {
		sb.WriteString(fmt.Sprintf(`<text x="14" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12" transform="rotate(-90 14 %d)">%s</text>`+"\n",
			svgHeight/2, svgHeight/2, opts.YLabel))
	}
	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%d" y="%d" font-family="sans-serif" font-size="12" fill="#1f77b4">%s</text>`+"\n",
			svgWidth-svgMargin-120, svgMargin+16, opts.Label))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func bounds(v []float64) (float64, float64) {
	min, max := v[0], v[0]
	for _, x := range v {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}
