package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/lapsim/internal/analysis"
	"github.com/san-kum/lapsim/internal/sim"
	"github.com/san-kum/lapsim/internal/vehicle"
)

// Store persists runs under a base directory, one subdirectory per run with
// metadata.json and telemetry.csv.
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
	ID        string           `json:"id"`
	Timestamp time.Time        `json:"timestamp"`
	Dt        float64          `json:"dt"`
	LapTime   float64          `json:"lap_time"`
	Vehicle   vehicle.Params   `json:"vehicle"`
	Summary   analysis.Summary `json:"summary"`
}

var telemetryHeader = []string{
	"Time(s)", "Distance(m)", "Speed(m/s)", "Speed(km/h)",
	"Acceleration(m/s2)", "Throttle(%)", "Brake(%)", "TireTemp(C)",
	"FrontLoad(N)", "RearLoad(N)",
}

func (s *Store) Save(name string, p vehicle.Params, dt float64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Dt:        dt,
		LapTime:   result.LapTime,
		Vehicle:   p,
		Summary:   analysis.Summarize(result.Telemetry.Points()),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "telemetry.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(telemetryHeader); err != nil {
		return "", err
	}

	for i := 0; i < result.Telemetry.Len(); i++ {
		st := result.Telemetry.At(i)
		row := []string{
			format(st.Time),
			format(st.Position),
			format(st.Velocity),
			format(st.Velocity * 3.6),
			format(st.Acceleration),
			format(st.Throttle * 100.0),
			format(st.Brake * 100.0),
			format(st.TireTemp),
			format(st.FrontLoad),
			format(st.RearLoad),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

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
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTelemetry reads the recorded states of a run back from its CSV file.
func (s *Store) LoadTelemetry(runID string) ([]sim.VehicleState, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "telemetry.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.VehicleState{}, nil
	}

	states := make([]sim.VehicleState, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(telemetryHeader) {
			continue
		}
		fields := make([]float64, len(record))
		ok := true
		for j, raw := range record {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				ok = false
				break
			}
			fields[j] = v
		}
		if !ok {
			continue
		}
		states = append(states, sim.VehicleState{
			Time:         fields[0],
			Position:     fields[1],
			Velocity:     fields[2],
			Acceleration: fields[4],
			Throttle:     fields[5] / 100.0,
			Brake:        fields[6] / 100.0,
			TireTemp:     fields[7],
			FrontLoad:    fields[8],
			RearLoad:     fields[9],
		})
	}
	return states, nil
}
