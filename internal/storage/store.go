package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/busemann/internal/flow"
	"github.com/san-kum/busemann/internal/inlet"
)

const (
	metadataFile = "metadata.json"
	contourFile  = "contour.csv"
	solutionFile = "solution.csv"
)

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type DesignMetadata struct {
	ID             string            `json:"id"`
	Timestamp      time.Time         `json:"timestamp"`
	Method         string            `json:"method"`
	FreestreamMach float64           `json:"freestream_mach,omitempty"`
	ExitMach       float64           `json:"exit_mach"`
	Recovery       float64           `json:"recovery,omitempty"`
	Gamma          float64           `json:"gamma"`
	Steps          int               `json:"steps"`
	Integrator     string            `json:"integrator"`
	CaptureRadius  float64           `json:"capture_radius"`
	Focus          inlet.Point       `json:"focus"`
	Performance    inlet.Performance `json:"performance"`
}

// Save writes the design under a new ID and returns it. A failed save
// leaves no directory behind.
func (s *Store) Save(in *inlet.Inlet) (_ string, err error) {
	ts := s.now()
	id := fmt.Sprintf("%s_%d", in.Config.Method, ts.UnixNano())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()

	meta := DesignMetadata{
		ID:            id,
		Timestamp:     ts,
		Method:        string(in.Config.Method),
		ExitMach:      in.Config.ExitMach,
		Gamma:         in.Config.Gamma,
		Steps:         in.Config.Steps,
		Integrator:    in.Config.Integrator,
		CaptureRadius: in.Config.CaptureRadius,
		Focus:         in.Contour.Focus,
		Performance:   in.Performance,
	}
	switch in.Config.Method {
	case inlet.MethodMachPair:
		meta.FreestreamMach = in.Config.FreestreamMach
	case inlet.MethodRecovery:
		meta.Recovery = in.Config.Recovery
	}

	if err := writeJSON(filepath.Join(dir, metadataFile), meta); err != nil {
		return "", err
	}

	contourRows := make([][]float64, len(in.Contour.Points))
	for i, p := range in.Contour.Points {
		contourRows[i] = []float64{p.X, p.Y}
	}
	if err := writeCSV(filepath.Join(dir, contourFile), []string{"x", "y"}, contourRows); err != nil {
		return "", err
	}

	solRows := make([][]float64, len(in.Solution))
	for i, st := range in.Solution {
		solRows[i] = []float64{st.Theta, st.R, st.Velocity.U, st.Velocity.V}
	}
	if err := writeCSV(filepath.Join(dir, solutionFile), []string{"theta", "r", "u", "v"}, solRows); err != nil {
		return "", err
	}

	return id, nil
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

func writeCSV(path string, header []string, rows [][]float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = strconv.FormatFloat(v, 'g', 17, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns the stored designs, oldest first.
func (s *Store) List() ([]DesignMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []DesignMetadata{}, nil
		}
		return nil, err
	}

	designs := make([]DesignMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		designs = append(designs, *meta)
	}

	sort.Slice(designs, func(i, j int) bool {
		return designs[i].Timestamp.Before(designs[j].Timestamp)
	})
	return designs, nil
}

func (s *Store) Load(id string) (*DesignMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta DesignMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadContour(id string) (inlet.Contour, error) {
	meta, err := s.Load(id)
	if err != nil {
		return inlet.Contour{}, err
	}
	rows, err := readCSV(filepath.Join(s.baseDir, id, contourFile), 2)
	if err != nil {
		return inlet.Contour{}, err
	}

	pts := make([]inlet.Point, len(rows))
	for i, r := range rows {
		pts[i] = inlet.Point{X: r[0], Y: r[1]}
	}
	return inlet.Contour{Points: pts, Focus: meta.Focus}, nil
}

func (s *Store) LoadSolution(id string) (flow.Solution, error) {
	rows, err := readCSV(filepath.Join(s.baseDir, id, solutionFile), 4)
	if err != nil {
		return nil, err
	}

	sol := make(flow.Solution, len(rows))
	for i, r := range rows {
		sol[i] = flow.FlowState{
			Theta:    r[0],
			R:        r[1],
			Velocity: flow.VelocityVector{U: r[2], V: r[3]},
		}
	}
	return sol, nil
}

// LoadInlet rebuilds a saved design. The configuration carries only what
// the metadata records.
func (s *Store) LoadInlet(id string) (*inlet.Inlet, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	contour, err := s.LoadContour(id)
	if err != nil {
		return nil, err
	}
	sol, err := s.LoadSolution(id)
	if err != nil {
		return nil, err
	}

	return &inlet.Inlet{
		Config: inlet.DesignConfig{
			Method:         inlet.Method(meta.Method),
			FreestreamMach: meta.FreestreamMach,
			ExitMach:       meta.ExitMach,
			Recovery:       meta.Recovery,
			Gamma:          meta.Gamma,
			Steps:          meta.Steps,
			CaptureRadius:  meta.CaptureRadius,
			Integrator:     meta.Integrator,
		},
		Solution:    sol,
		Contour:     contour,
		Performance: meta.Performance,
	}, nil
}

func readCSV(path string, fields int) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = fields

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]float64{}, nil
	}

	rows := make([][]float64, 0, len(records)-1)
	for i, record := range records[1:] {
		row := make([]float64, fields)
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", filepath.Base(path), i+2, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
