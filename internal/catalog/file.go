package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"missiontracker/internal/engine"
)

// fileDoc is the on-disk catalog layout.
//
//	missions:
//	  - id: e-guild-dance
//	    name: Guild dance
//	    type: event
//	    category: daily
//	    activeDays: [Friday]
//	    activeTime: "19:30-19:55"
type fileDoc struct {
	Missions []fileMission `yaml:"missions"`
}

type fileMission struct {
	ID            string           `yaml:"id"`
	Name          string           `yaml:"name"`
	Type          string           `yaml:"type"`
	Category      string           `yaml:"category"`
	Image         string           `yaml:"image"`
	Description   string           `yaml:"description"`
	RenderType    string           `yaml:"renderType"`
	SubItems      []engine.SubItem `yaml:"subItems"`
	ResetInterval string           `yaml:"resetInterval"`
	StockType     string           `yaml:"stockType"`
	ActiveDays    []string         `yaml:"activeDays"`
	ActiveTime    string           `yaml:"activeTime"`
	Locked        bool             `yaml:"isLocked"`
	LockedItems   []string         `yaml:"lockedItems"`

	line int
}

func (fm *fileMission) UnmarshalYAML(n *yaml.Node) error {
	type plain fileMission
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*fm = fileMission(p)
	fm.line = n.Line
	return nil
}

// ParseFile decodes a YAML catalog.
func ParseFile(r io.Reader) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, fmt.Errorf("read catalog: %w", err)
	}
	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return Result{}, fmt.Errorf("decode catalog: %w", err)
	}

	var res Result
	for _, fm := range doc.Missions {
		rec := record{
			ID:            fm.ID,
			Name:          fm.Name,
			Type:          fm.Type,
			Category:      fm.Category,
			Image:         fm.Image,
			Description:   fm.Description,
			Kind:          fm.RenderType,
			SubItems:      fm.SubItems,
			ResetInterval: fm.ResetInterval,
			StockType:     fm.StockType,
			ActiveDays:    fm.ActiveDays,
			ActiveTime:    fm.ActiveTime,
			Locked:        fm.Locked,
			LockedItems:   fm.LockedItems,
		}
		m, warns, err := rec.mission()
		for _, w := range warns {
			res.Issues = append(res.Issues, Issue{Line: fm.line, ID: rec.ID, Err: w})
		}
		if err != nil {
			res.Issues = append(res.Issues, Issue{Line: fm.line, ID: rec.ID, Err: err, Skipped: true})
			continue
		}
		res.Missions = append(res.Missions, m)
	}
	return res, nil
}

// LoadFile reads and decodes the catalog at path.
func LoadFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ParseFile(f)
}
