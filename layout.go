package folderdrop

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout is the startup population of a world: which containers exist, the
// order each one expects, and where the items start.
type Layout struct {
	ItemSize      float64           `yaml:"item_size"`
	ContainerSize float64           `yaml:"container_size"`
	Reject        string            `yaml:"reject"` // "origin" (default) or "rest"
	Containers    []ContainerLayout `yaml:"containers"`
	Items         []ItemLayout      `yaml:"items"`
}

// ContainerLayout places one container.
type ContainerLayout struct {
	ID       ContainerID `yaml:"id"`
	Position [2]float64  `yaml:"position"`
	Size     float64     `yaml:"size,omitempty"` // overrides Layout.ContainerSize
	Sequence []ItemID    `yaml:"sequence"`
}

// ItemLayout places one item.
type ItemLayout struct {
	ID        ItemID      `yaml:"id"`
	Container ContainerID `yaml:"container"`
	Position  [2]float64  `yaml:"position"`
	Z         float64     `yaml:"z,omitempty"`
	Size      float64     `yaml:"size,omitempty"` // overrides Layout.ItemSize
}

const (
	defaultItemSize      = 100.0
	defaultContainerSize = 200.0
)

// DefaultLayout returns the built-in board: one folder above two overlapping
// files that must go in by ascending id.
func DefaultLayout() *Layout {
	return &Layout{
		ItemSize:      defaultItemSize,
		ContainerSize: defaultContainerSize,
		Reject:        "origin",
		Containers: []ContainerLayout{
			{ID: 0, Position: [2]float64{0, 300}, Sequence: []ItemID{0, 1}},
		},
		Items: []ItemLayout{
			{ID: 0, Container: 0, Position: [2]float64{0, 0}},
			{ID: 1, Container: 0, Position: [2]float64{50, 50}},
		},
	}
}

// ParseLayout decodes and validates a YAML layout.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if l.ItemSize == 0 {
		l.ItemSize = defaultItemSize
	}
	if l.ContainerSize == 0 {
		l.ContainerSize = defaultContainerSize
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayout reads and parses a YAML layout file.
func LoadLayout(path string) (*Layout, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l, err := ParseLayout(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Validate checks identities and cross references. Every sequence entry must
// name an item assigned to that container, at most once. Items that appear
// in no sequence are allowed; they can never be inserted.
func (l *Layout) Validate() error {
	if _, err := l.rejectPolicy(); err != nil {
		return err
	}

	containers := make(map[ContainerID]bool, len(l.Containers))
	for _, c := range l.Containers {
		if containers[c.ID] {
			return errorf(ErrDuplicateContainer, "layout: container %d", c.ID)
		}
		containers[c.ID] = true
	}

	items := make(map[ItemID]ContainerID, len(l.Items))
	for _, it := range l.Items {
		if _, dup := items[it.ID]; dup {
			return errorf(ErrDuplicateItem, "layout: item %d", it.ID)
		}
		if !containers[it.Container] {
			return errorf(ErrUnknownContainer, "layout: item %d: container %d", it.ID, it.Container)
		}
		items[it.ID] = it.Container
	}

	for _, c := range l.Containers {
		seen := make(map[ItemID]bool, len(c.Sequence))
		for _, id := range c.Sequence {
			owner, ok := items[id]
			if !ok {
				return errorf(ErrUnknownItem, "layout: container %d sequence: item %d", c.ID, id)
			}
			if owner != c.ID {
				return errorf(ErrForeignItem, "layout: container %d sequence: item %d", c.ID, id)
			}
			if seen[id] {
				return errorf(ErrDuplicateItem, "layout: container %d sequence: item %d", c.ID, id)
			}
			seen[id] = true
		}
	}
	return nil
}

// Build validates the layout and returns a populated world.
func (l *Layout) Build() (*World, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	policy, _ := l.rejectPolicy()

	w := NewWorld()
	w.SetRejectPolicy(policy)
	for _, c := range l.Containers {
		size := c.Size
		if size == 0 {
			size = l.ContainerSize
		}
		if _, err := w.AddContainer(c.ID, Vec2{c.Position[0], c.Position[1]}, size, c.Sequence); err != nil {
			return nil, err
		}
	}
	for _, it := range l.Items {
		size := it.Size
		if size == 0 {
			size = l.ItemSize
		}
		h, err := w.AddItem(it.ID, it.Container, Vec2{it.Position[0], it.Position[1]}, size)
		if err != nil {
			return nil, err
		}
		w.SetItemZ(h, it.Z)
	}
	return w, nil
}

func (l *Layout) rejectPolicy() (RejectPolicy, error) {
	switch l.Reject {
	case "", "origin":
		return RejectToOrigin, nil
	case "rest":
		return RejectToRest, nil
	default:
		return RejectToOrigin, fmt.Errorf("layout: unknown reject policy %q", l.Reject)
	}
}
