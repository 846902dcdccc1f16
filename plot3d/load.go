package plot3d

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/pointview"
	"github.com/gogpu/pointview/internal/record"
)

// StdinName names the standard input series.
const StdinName = "-"

// Series holds the points read from one input, as parallel coordinate
// slices.
type Series struct {
	Name    string
	X, Y, Z []float64
}

// Len returns the number of points.
func (s *Series) Len() int {
	return len(s.X)
}

// Add appends one point.
func (s *Series) Add(x, y, z float64) {
	s.X = append(s.X, x)
	s.Y = append(s.Y, y)
	s.Z = append(s.Z, z)
}

// Load reads r to the end. Lines that are not exactly three finite numbers
// are skipped whatever their length. Only a read failure is an error.
func Load(r io.Reader) (Series, error) {
	var s Series
	skipped := 0

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if x, y, z, ok := record.ParseXYZ(line); ok {
				s.Add(x, y, z)
			} else {
				skipped++
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return s, err
		}
	}
	if skipped > 0 {
		pointview.Logger().Debug("plot3d: skipped records", slog.Int("count", skipped))
	}
	return s, nil
}

// LoadFile reads the file at path. Failures are reported as *InputError.
func LoadFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, &InputError{Path: path, Err: err}
	}
	defer f.Close()
	return loadNamed(path, f)
}

// LoadAll loads every input, or stdin when inputs is empty. All files are
// opened before any is read, so an unreadable path fails fast.
func LoadAll(inputs []string, stdin io.Reader) ([]Series, error) {
	if len(inputs) == 0 {
		s, err := loadNamed(StdinName, stdin)
		if err != nil {
			return nil, err
		}
		return []Series{s}, nil
	}

	files := make([]*os.File, 0, len(inputs))
	defer func() {
		for _, f := range files {
			_ = f.Close()
		}
	}()
	for _, path := range inputs {
		f, err := os.Open(path)
		if err != nil {
			return nil, &InputError{Path: path, Err: err}
		}
		files = append(files, f)
	}

	series := make([]Series, 0, len(files))
	for i, f := range files {
		s, err := loadNamed(inputs[i], f)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return series, nil
}

func loadNamed(name string, r io.Reader) (Series, error) {
	s, err := Load(r)
	if err != nil {
		return Series{}, &InputError{Path: name, Err: err}
	}
	s.Name = name
	pointview.Logger().Debug("plot3d: loaded", slog.String("input", name), slog.Int("points", s.Len()))
	return s, nil
}
