// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "fmt"

// TabID uniquely identifies a tab.
type TabID string

// GroupID identifies a space (a named grouping of pinned + regular tabs).
type GroupID string

// FolderID identifies a tab folder.
type FolderID string

// ContainerKind discriminates the places a tab can live.
type ContainerKind int

const (
	ContainerEssentials   ContainerKind = iota // Global pinned grid, no grouping id
	ContainerSpacePinned                       // Per-space pinned list
	ContainerSpaceRegular                      // Per-space regular list
	ContainerFolder                            // Tab folder
)

// Container identifies where a tab currently lives or may be dropped.
// Containers are compared by structural equality including their id payload,
// so the type is a plain comparable struct usable as a map key.
type Container struct {
	Kind     ContainerKind
	GroupID  GroupID  // Set for SpacePinned and SpaceRegular
	FolderID FolderID // Set for Folder
}

// Essentials returns the global pinned-grid container.
func Essentials() Container {
	return Container{Kind: ContainerEssentials}
}

// SpacePinned returns the pinned-list container of a space.
func SpacePinned(groupID GroupID) Container {
	return Container{Kind: ContainerSpacePinned, GroupID: groupID}
}

// SpaceRegular returns the regular-list container of a space.
func SpaceRegular(groupID GroupID) Container {
	return Container{Kind: ContainerSpaceRegular, GroupID: groupID}
}

// Folder returns a folder container.
func Folder(folderID FolderID) Container {
	return Container{Kind: ContainerFolder, FolderID: folderID}
}

// IsGrid reports whether the container lays its tabs out as a 2-D grid
// rather than a linear list.
func (c Container) IsGrid() bool {
	return c.Kind == ContainerEssentials
}

// GroupingID returns the destination grouping id carried on a commit,
// or nil for containers that have none (essentials).
func (c Container) GroupingID() *GroupID {
	switch c.Kind {
	case ContainerSpacePinned, ContainerSpaceRegular:
		g := c.GroupID
		return &g
	default:
		return nil
	}
}

func (c Container) String() string {
	switch c.Kind {
	case ContainerEssentials:
		return "essentials"
	case ContainerSpacePinned:
		return fmt.Sprintf("space-pinned(%s)", c.GroupID)
	case ContainerSpaceRegular:
		return fmt.Sprintf("space-regular(%s)", c.GroupID)
	case ContainerFolder:
		return fmt.Sprintf("folder(%s)", c.FolderID)
	default:
		return fmt.Sprintf("container(%d)", int(c.Kind))
	}
}
