package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/glide/internal/anim"
	"github.com/san-kum/glide/internal/sim"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Scenario      string             `json:"scenario"`
	Timestamp     time.Time          `json:"timestamp"`
	Initial       float64            `json:"initial"`
	Length        float64            `json:"length"`
	FrameInterval float64            `json:"frame_interval"`
	Steps         int                `json:"steps"`
	Samples       int                `json:"samples"`
	Frames        int                `json:"frames"`
	Registrations int                `json:"registrations"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Save writes a run directory holding metadata.json and samples.csv and
// returns the new run id.
func (s *Store) Save(sc sim.Scenario, result *sim.Result) (string, error) {
	name := sc.Name
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Scenario:      sc.Name,
		Timestamp:     time.Now(),
		Initial:       sc.Initial,
		Length:        sc.Length.Seconds(),
		FrameInterval: sc.FrameInterval.Seconds(),
		Steps:         len(sc.Steps),
		Samples:       len(result.Samples),
		Frames:        result.Frames,
		Registrations: result.Registrations,
		Metrics:       result.Metrics,
	}
	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(runDir, samplesFile), result.Samples); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSamples(path string, samples []sim.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "value", "target", "records", "status"}); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatFloat(smp.Time.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(smp.Value, 'g', -1, 64),
			strconv.FormatFloat(smp.Target, 'g', -1, 64),
			strconv.Itoa(smp.Records),
			smp.Status.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadResult rebuilds a sim.Result from a stored run.
func (s *Store) LoadResult(runID string) (*sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	samples, err := s.LoadSamples(runID)
	if err != nil {
		return nil, err
	}
	return &sim.Result{
		Scenario:      meta.Scenario,
		Samples:       samples,
		Frames:        meta.Frames,
		Registrations: meta.Registrations,
		Metrics:       meta.Metrics,
	}, nil
}

// LoadSamples reads samples.csv. Malformed rows are skipped.
func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		smp, ok := parseSample(rec)
		if !ok {
			continue
		}
		samples = append(samples, smp)
	}
	return samples, nil
}

func parseSample(rec []string) (sim.Sample, bool) {
	if len(rec) < 5 {
		return sim.Sample{}, false
	}
	t, err1 := strconv.ParseFloat(rec[0], 64)
	v, err2 := strconv.ParseFloat(rec[1], 64)
	target, err3 := strconv.ParseFloat(rec[2], 64)
	n, err4 := strconv.Atoi(rec[3])
	if err := errors.Join(err1, err2, err3, err4); err != nil {
		return sim.Sample{}, false
	}
	return sim.Sample{
		Time:    time.Duration(t * float64(time.Second)).Round(time.Microsecond),
		Value:   v,
		Target:  target,
		Records: n,
		Status:  parseStatus(rec[4]),
	}, true
}

func parseStatus(s string) anim.StatusKind {
	for _, k := range []anim.StatusKind{anim.StatusStatic, anim.StatusSnap, anim.StatusRunning} {
		if k.String() == s {
			return k
		}
	}
	return anim.StatusStatic
}
