package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	ID      string             `json:"id"`
	Source  string             `json:"source"`
	Samples int                `json:"samples"`
	Times   []float64          `json:"times"`
	Signal  []float64          `json:"signal"`
	ENorm   []float64          `json:"e_norm"`
	Metrics map[string]float64 `json:"metrics"`
}

// ExportJSON writes a stored run as a single JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, times, signal, norm []float64) error {
	data := ExportData{
		ID:      meta.ID,
		Source:  meta.Source,
		Samples: len(times),
		Times:   times,
		Signal:  signal,
		ENorm:   norm,
		Metrics: meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
