package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/glide/internal/sim"
)

type Data struct {
	Scenario      string             `json:"scenario"`
	Frames        int                `json:"frames"`
	Registrations int                `json:"registrations"`
	Samples       []SampleData       `json:"samples"`
	Metrics       map[string]float64 `json:"metrics"`
}

type SampleData struct {
	Time    float64 `json:"time"`
	Value   float64 `json:"value"`
	Target  float64 `json:"target"`
	Records int     `json:"records"`
	Status  string  `json:"status"`
}

func NewData(res *sim.Result) Data {
	d := Data{
		Scenario:      res.Scenario,
		Frames:        res.Frames,
		Registrations: res.Registrations,
		Samples:       make([]SampleData, len(res.Samples)),
		Metrics:       res.Metrics,
	}
	for i, s := range res.Samples {
		d.Samples[i] = SampleData{
			Time:    s.Time.Seconds(),
			Value:   s.Value,
			Target:  s.Target,
			Records: s.Records,
			Status:  s.Status.String(),
		}
	}
	return d
}

// WriteJSON encodes res as indented JSON.
func WriteJSON(w io.Writer, res *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewData(res))
}

// ExportJSON writes res to path, or to stdout when path is "" or "-".
func ExportJSON(path string, res *sim.Result) error {
	if path == "" || path == "-" {
		return WriteJSON(os.Stdout, res)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, res)
}
