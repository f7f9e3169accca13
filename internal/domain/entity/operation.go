package entity

import "fmt"

// DragOperation is the single commit artifact a completed drag hands to the
// tab-ownership collaborator. It describes one atomic move, never a
// delete+insert visible as two steps.
type DragOperation struct {
	TabID       TabID
	Source      Container
	SourceIndex int
	Target      Container
	TargetIndex int
	GroupID     *GroupID // Destination grouping id, nil for essentials/folders
}

// IsReorder reports whether the operation stays within one container.
func (op DragOperation) IsReorder() bool {
	return op.Source == op.Target
}

func (op DragOperation) String() string {
	return fmt.Sprintf("%s#%d -> %s#%d (tab %s)",
		op.Source, op.SourceIndex, op.Target, op.TargetIndex, op.TabID)
}
