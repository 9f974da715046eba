package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
)

// ExportData is the JSON form of a stored run.
type ExportData struct {
	RunMetadata
	Profile      *Profile    `json:"profile"`
	Breakthrough ExportSeries `json:"breakthrough"`
}

type ExportSeries struct {
	PoreVolumes    []float64 `json:"pore_volumes"`
	Concentrations []float64 `json:"concentrations"`
}

// Export gathers metadata, profile and breakthrough curve of a run.
func (s *Store) Export(runID string) (*ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	profile, err := s.LoadProfile(runID)
	if err != nil {
		return nil, err
	}
	pvs, cs, err := s.LoadBreakthrough(runID)
	if err != nil {
		return nil, err
	}
	return &ExportData{
		RunMetadata:  *meta,
		Profile:      profile,
		Breakthrough: ExportSeries{PoreVolumes: pvs, Concentrations: cs},
	}, nil
}

func ExportJSON(w io.Writer, data *ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes the profile table, or the breakthrough table when btc is set.
func ExportCSV(w io.Writer, data *ExportData, btc bool) error {
	cw := csv.NewWriter(w)
	var err error
	if btc {
		err = WriteColumns(cw, []string{"pore_volume", "concentration"},
			data.Breakthrough.PoreVolumes, data.Breakthrough.Concentrations)
	} else {
		p := data.Profile
		err = WriteColumns(cw, profileHeader, p.X, p.Central, p.Min, p.Max, p.LowerQuartile, p.UpperQuartile, p.Mean)
	}
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
