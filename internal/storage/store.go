package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/ternary/internal/simplex"
	"github.com/san-kum/ternary/internal/ternary"
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

type RenderMetadata struct {
	ID         string         `json:"id"`
	Kind       string         `json:"kind"`
	Function   string         `json:"function,omitempty"`
	Game       string         `json:"game,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Steps      int            `json:"steps"`
	Style      string         `json:"style"`
	Boundary   bool           `json:"boundary"`
	Palette    string         `json:"palette"`
	Range      *ternary.Range `json:"range,omitempty"`
	Scientific bool           `json:"scientific,omitempty"`
	Cells      int            `json:"cells"`
	Output     string         `json:"output,omitempty"`
}

// Save archives a render: its metadata and the value map it was drawn from.
func (s *Store) Save(meta RenderMetadata, values ternary.Values) (string, error) {
	meta.Timestamp = time.Now()
	meta.ID = fmt.Sprintf("%s_%d", meta.Kind, meta.Timestamp.UnixNano())
	meta.Cells = len(values)
	runDir := filepath.Join(s.baseDir, meta.ID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
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

	csvFile, err := os.Create(filepath.Join(runDir, "values.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteValuesCSV(csvFile, values); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, err
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		renders = append(renders, *meta)
	}
	sort.Slice(renders, func(i, j int) bool {
		return renders[i].Timestamp.Before(renders[j].Timestamp)
	})
	return renders, nil
}

func (s *Store) Load(id string) (*RenderMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadValues(id string) (ternary.Values, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "values.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadValuesCSV(file)
}

// WriteValuesCSV writes an "i,j,value" table in key order.
func WriteValuesCSV(w io.Writer, values ternary.Values) error {
	keys := make([]simplex.Key, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].I != keys[b].I {
			return keys[a].I < keys[b].I
		}
		return keys[a].J < keys[b].J
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"i", "j", "value"}); err != nil {
		return err
	}
	for _, k := range keys {
		row := []string{
			strconv.Itoa(k.I),
			strconv.Itoa(k.J),
			strconv.FormatFloat(values[k], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadValuesCSV parses an "i,j,value" table. A header row is optional;
// blank and '#' lines are ignored.
func ReadValuesCSV(r io.Reader) (ternary.Values, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	values := make(ternary.Values, len(records))
	for n, record := range records {
		if len(record) < 3 {
			return nil, fmt.Errorf("storage: line %d: expected i,j,value", n+1)
		}
		i, errI := strconv.Atoi(record[0])
		j, errJ := strconv.Atoi(record[1])
		if n == 0 && (errI != nil || errJ != nil) {
			continue
		}
		if errI != nil || errJ != nil {
			return nil, fmt.Errorf("storage: line %d: bad index %q,%q", n+1, record[0], record[1])
		}
		v, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: line %d: %w", n+1, err)
		}
		values[simplex.Key{I: i, J: j}] = v
	}
	return values, nil
}
