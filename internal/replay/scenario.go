// Package replay runs recorded drag scenarios headlessly: it builds a board
// and zone layout from a scenario file, feeds the pointer events through the
// full engine, and reports every committed DragOperation. It exists for
// reproducing drag bugs without a front end.
package replay

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/bnema/tabdrag/internal/domain/entity"
)

// TabSpec describes one tab seeded into a zone.
type TabSpec struct {
	ID    string `mapstructure:"id"`
	Title string `mapstructure:"title"`
	URL   string `mapstructure:"url"`
}

// ZoneSpec describes one drop zone and its seeded tabs.
type ZoneSpec struct {
	ID      string    `mapstructure:"id"`
	Kind    string    `mapstructure:"kind"` // essentials, space_pinned, space_regular, folder
	Group   string    `mapstructure:"group"`
	Folder  string    `mapstructure:"folder"`
	Frame   []float64 `mapstructure:"frame"` // x, y, w, h in window coordinates
	CellW   float64   `mapstructure:"cell_w"`
	CellH   float64   `mapstructure:"cell_h"`
	Spacing float64   `mapstructure:"spacing"`
	Columns int       `mapstructure:"columns"` // 0 means linear list
	Tabs    []TabSpec `mapstructure:"tabs"`
}

// EventSpec is one pointer event.
type EventSpec struct {
	Type string  `mapstructure:"type"` // down, move, up
	X    float64 `mapstructure:"x"`
	Y    float64 `mapstructure:"y"`
}

// Scenario is a full replay input.
type Scenario struct {
	Window []float64   `mapstructure:"window"` // x, y, w, h; empty means 0,0,1920,1080
	Zones  []ZoneSpec  `mapstructure:"zones"`
	Events []EventSpec `mapstructure:"events"`
}

// LoadScenario reads a scenario from a TOML file.
func LoadScenario(path string) (*Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if len(s.Zones) == 0 {
		return fmt.Errorf("scenario has no zones")
	}
	seen := make(map[string]bool)
	for i, z := range s.Zones {
		if z.ID == "" {
			return fmt.Errorf("zone %d has no id", i)
		}
		if seen[z.ID] {
			return fmt.Errorf("duplicate zone id %q", z.ID)
		}
		seen[z.ID] = true
		if len(z.Frame) != 4 {
			return fmt.Errorf("zone %q frame must have 4 components", z.ID)
		}
		if _, err := z.container(); err != nil {
			return err
		}
	}
	for i, e := range s.Events {
		switch e.Type {
		case "down", "move", "up":
		default:
			return fmt.Errorf("event %d has unknown type %q", i, e.Type)
		}
	}
	return nil
}

func (z ZoneSpec) container() (entity.Container, error) {
	switch z.Kind {
	case "essentials":
		return entity.Essentials(), nil
	case "space_pinned":
		if z.Group == "" {
			return entity.Container{}, fmt.Errorf("zone %q: space_pinned requires group", z.ID)
		}
		return entity.SpacePinned(entity.GroupID(z.Group)), nil
	case "space_regular":
		if z.Group == "" {
			return entity.Container{}, fmt.Errorf("zone %q: space_regular requires group", z.ID)
		}
		return entity.SpaceRegular(entity.GroupID(z.Group)), nil
	case "folder":
		if z.Folder == "" {
			return entity.Container{}, fmt.Errorf("zone %q: folder requires folder id", z.ID)
		}
		return entity.Folder(entity.FolderID(z.Folder)), nil
	default:
		return entity.Container{}, fmt.Errorf("zone %q has unknown kind %q", z.ID, z.Kind)
	}
}
