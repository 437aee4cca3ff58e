package component

import "github.com/milk9111/platformer/common"

// Ladder stores its world-space bounds at creation; ladders never move.
type Ladder struct {
	Bounds common.AABB
}

var LadderComponent = NewComponent[Ladder]()
