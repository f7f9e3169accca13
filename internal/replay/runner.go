package replay

import (
	"context"

	"github.com/bnema/tabdrag/internal/app"
	"github.com/bnema/tabdrag/internal/application/port"
	"github.com/bnema/tabdrag/internal/domain/entity"
	"github.com/bnema/tabdrag/internal/domain/geometry"
	"github.com/bnema/tabdrag/internal/infrastructure/feedback"
	"github.com/bnema/tabdrag/internal/logging"
	"github.com/bnema/tabdrag/internal/ui/drag"
)

// Result is the outcome of one scenario run.
type Result struct {
	Operations []entity.DragOperation
	Board      *entity.Board
}

// Run executes a scenario through the full engine stack and returns the
// committed operations plus the final board state.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	log := logging.FromContext(ctx)

	board := entity.NewBoard()
	for _, z := range scenario.Zones {
		container, err := z.container()
		if err != nil {
			return nil, err
		}
		for _, t := range z.Tabs {
			board.Append(container, entity.NewTab(entity.TabID(t.ID), t.Title, t.URL))
		}
	}

	engine := app.NewEngine(board, app.Options{
		Feedback: feedback.NewLogSink(*log),
		Logger:   *log,
	})

	window := geometry.Rect{X: 0, Y: 0, W: 1920, H: 1080}
	if len(scenario.Window) == 4 {
		window = geometry.Rect{X: scenario.Window[0], Y: scenario.Window[1], W: scenario.Window[2], H: scenario.Window[3]}
	}
	engine.SetWindows([]port.WindowInfo{{ID: "main", Frame: window}})

	for _, z := range scenario.Zones {
		container, _ := z.container()
		var columns *int
		if z.Columns > 0 {
			c := z.Columns
			columns = &c
		}
		engine.AddZone(
			drag.ZoneID(z.ID),
			container,
			geometry.Rect{X: z.Frame[0], Y: z.Frame[1], W: z.Frame[2], H: z.Frame[3]},
			geometry.Size{W: z.CellW, H: z.CellH},
			z.Spacing,
			columns,
		)
	}

	for _, ev := range scenario.Events {
		p := geometry.Point{X: ev.X, Y: ev.Y}
		switch ev.Type {
		case "down":
			engine.PointerDown(p)
		case "move":
			engine.PointerMoved(p)
		case "up":
			engine.PointerUp(ctx, p)
		}
	}

	// A scenario that ends mid-drag leaves the session open; close it the
	// way an escape key would.
	if engine.Session().IsDragging() {
		engine.CancelDrag()
	}

	return &Result{Operations: engine.Applied(), Board: board}, nil
}
