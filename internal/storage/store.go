package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/j-vasquez/wrwind/internal/config"
	"github.com/j-vasquez/wrwind/internal/geom"
	"github.com/j-vasquez/wrwind/internal/wind"
)

// Store persists simulation runs, one directory per run: metadata.json,
// orbit.csv (star trajectory per snapshot frame), and cloud.csv (the
// final particle positions and ages).
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
	Timestamp     time.Time          `json:"timestamp"`
	Seed          int64              `json:"seed"`
	Config        *config.Config     `json:"config"`
	PeriodYears   float64            `json:"period_years"`
	WindSpeed     float64            `json:"wind_speed"`
	Frames        int                `json:"frames"`
	TotalEmitted  int                `json:"total_emitted"`
	TotalCaptured int                `json:"total_captured"`
	FinalLive     int                `json:"final_live"`
	Metrics       map[string]float64 `json:"metrics"`
}

// Save writes a run record and returns its id. The config echo makes a
// stored run reproducible: the render command rebuilds the simulation
// from it with the recorded seed.
func (s *Store) Save(cfg *config.Config, period, windSpeed float64, result *wind.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		Seed:          cfg.Sim.Seed,
		Config:        cfg,
		PeriodYears:   period,
		WindSpeed:     windSpeed,
		Frames:        cfg.Frames(),
		TotalEmitted:  result.TotalEmitted,
		TotalCaptured: result.TotalCaptured,
		FinalLive:     result.FinalLive,
		Metrics:       result.Metrics,
	}

	if err := s.writeMetadata(runDir, &meta); err != nil {
		return "", err
	}
	if err := s.writeOrbit(runDir, result); err != nil {
		return "", err
	}
	if err := s.writeCloud(runDir, result); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) writeMetadata(runDir string, meta *RunMetadata) error {
	f, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func (s *Store) writeOrbit(runDir string, result *wind.Result) error {
	f, err := os.Create(filepath.Join(runDir, "orbit.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"frame", "time", "phase", "x1", "y1", "x2", "y2", "live", "captured"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range result.Frames {
		row := []string{
			strconv.Itoa(fr.Index),
			strconv.FormatFloat(fr.Time, 'f', 6, 64),
			strconv.FormatFloat(fr.Phase, 'f', 6, 64),
			strconv.FormatFloat(fr.Primary.X, 'f', 6, 64),
			strconv.FormatFloat(fr.Primary.Y, 'f', 6, 64),
			strconv.FormatFloat(fr.Companion.X, 'f', 6, 64),
			strconv.FormatFloat(fr.Companion.Y, 'f', 6, 64),
			strconv.Itoa(fr.Live),
			strconv.Itoa(fr.Captured),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) writeCloud(runDir string, result *wind.Result) error {
	f, err := os.Create(filepath.Join(runDir, "cloud.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"x", "y", "z", "age"}); err != nil {
		return err
	}

	if result.Cloud == nil {
		return nil
	}

	for i := 0; i < result.Cloud.Len(); i++ {
		p := result.Cloud.Pos[i]
		row := []string{
			strconv.FormatFloat(p.X, 'f', 6, 64),
			strconv.FormatFloat(p.Y, 'f', 6, 64),
			strconv.FormatFloat(p.Z, 'f', 6, 64),
			strconv.FormatFloat(result.Cloud.Age[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
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

// LoadCloud reads the final particle positions and ages of a run.
func (s *Store) LoadCloud(runID string) ([]geom.Vec3, []float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "cloud.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []geom.Vec3{}, []float64{}, nil
	}

	positions := make([]geom.Vec3, 0, len(records)-1)
	ages := make([]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		x, err1 := strconv.ParseFloat(record[0], 64)
		y, err2 := strconv.ParseFloat(record[1], 64)
		z, err3 := strconv.ParseFloat(record[2], 64)
		age, err4 := strconv.ParseFloat(record[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		positions = append(positions, geom.Vec3{X: x, Y: y, Z: z})
		ages = append(ages, age)
	}

	return positions, ages, nil
}

// TrajectoryPoint is one row of a stored orbit trajectory.
type TrajectoryPoint struct {
	Frame     int
	Time      float64
	Phase     float64
	Primary   geom.Vec3
	Companion geom.Vec3
	Live      int
	Captured  int
}

// LoadTrajectory reads the star trajectory of a run.
func (s *Store) LoadTrajectory(runID string) ([]TrajectoryPoint, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "orbit.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]TrajectoryPoint, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 9 {
			continue
		}

		frame, _ := strconv.Atoi(record[0])
		tm, _ := strconv.ParseFloat(record[1], 64)
		phase, _ := strconv.ParseFloat(record[2], 64)
		x1, _ := strconv.ParseFloat(record[3], 64)
		y1, _ := strconv.ParseFloat(record[4], 64)
		x2, _ := strconv.ParseFloat(record[5], 64)
		y2, _ := strconv.ParseFloat(record[6], 64)
		live, _ := strconv.Atoi(record[7])
		captured, _ := strconv.Atoi(record[8])

		points = append(points, TrajectoryPoint{
			Frame:     frame,
			Time:      tm,
			Phase:     phase,
			Primary:   geom.Vec3{X: x1, Y: y1},
			Companion: geom.Vec3{X: x2, Y: y2},
			Live:      live,
			Captured:  captured,
		})
	}

	return points, nil
}
