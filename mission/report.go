package mission

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sheabunge/terrainpath/route"
	"github.com/sheabunge/terrainpath/terrain"
)

// Report is the outcome of one mission.
type Report struct {
	Plan     Plan
	Path     route.Path
	Energy   int64
	Duration time.Duration
	// Terrain summarizes the field the mission ran over, before plotting.
	Terrain terrain.Summary
	// Map is a copy of the height field with the route marked as terrain.Traversed.
	Map *terrain.HeightField
}

// WriteText prints the plotted map in style followed by the total energy.
func (r *Report) WriteText(w io.Writer, style terrain.Style) error {
	if err := r.Map.Render(w, style); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\ntotal energy: %d\n", r.Energy)

	return err
}

// yamlReport is the serialized form of a Report.
type yamlReport struct {
	Plan     Plan            `yaml:"plan"`
	Energy   int64           `yaml:"energy"`
	Steps    int             `yaml:"steps"`
	Path     []int           `yaml:"path,flow"`
	Duration string          `yaml:"duration"`
	Terrain  terrain.Summary `yaml:"terrain"`
	Map      []string        `yaml:"map"`
}

// WriteYAML encodes the report, including the map rendered in style, as YAML.
func (r *Report) WriteYAML(w io.Writer, style terrain.Style) error {
	var buf bytes.Buffer
	if err := r.Map.Render(&buf, style); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(yamlReport{
		Plan:     r.Plan,
		Energy:   r.Energy,
		Steps:    r.Path.Len() - 1,
		Path:     r.Path.Vertices,
		Duration: r.Duration.String(),
		Terrain:  r.Terrain,
		Map:      strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"),
	}); err != nil {
		return err
	}

	return enc.Close()
}

// Write dispatches on format ("text" or "yaml").
func (r *Report) Write(w io.Writer, format string, style terrain.Style) error {
	switch format {
	case "yaml":
		return r.WriteYAML(w, style)
	case "text", "":
		return r.WriteText(w, style)
	default:
		return fmt.Errorf("mission: unknown report format %q", format)
	}
}
