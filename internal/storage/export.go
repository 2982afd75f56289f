package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/j-vasquez/wrwind/internal/geom"
)

// ExportData is the JSON export shape for a run.
type ExportData struct {
	Meta      *RunMetadata `json:"meta"`
	Positions []geom.Vec3  `json:"positions"`
	Ages      []float64    `json:"ages"`
}

// ExportJSON writes a run's metadata and final cloud as indented JSON.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	positions, ages, err := s.LoadCloud(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{Meta: meta, Positions: positions, Ages: ages})
}

// ExportJSONStdout exports a run to standard output.
func (s *Store) ExportJSONStdout(runID string) error {
	return s.ExportJSON(os.Stdout, runID)
}
