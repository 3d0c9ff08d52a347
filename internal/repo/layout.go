package repo

// Placement fixes one commit to a cell of the rendered graph: Row is the
// vertical position (0 = newest, same order as log), Lane the column.
type Placement struct {
	CommitID string `json:"commitId"`
	Row      int    `json:"row"`
	Lane     int    `json:"lane"`
}

// AssignLanes lays the commit graph out in columns, newest first. Each lane
// tracks the commit id it expects to see next; a commit takes the leftmost
// lane expecting it (collapsing any others, which is where branches that
// forked from it rejoin), or opens a lane if it is a tip. Its first parent
// inherits the lane, a second parent is seeded into a free lane so the
// merged-in branch gets its own column. Deterministic for a given snapshot:
// a linear history stays in lane 0, diverged branches get distinct lanes.
func AssignLanes(s *Snapshot) []Placement {
	ordered := s.SortedCommits()
	lanes := []string{}
	placements := make([]Placement, 0, len(ordered))

	for row := range ordered {
		c := &ordered[row]

		lane := -1
		for i, want := range lanes {
			if want != c.ID {
				continue
			}
			if lane == -1 {
				lane = i
			} else {
				lanes[i] = ""
			}
		}
		if lane == -1 {
			lane = takeFreeLane(&lanes)
		}

		placements = append(placements, Placement{CommitID: c.ID, Row: row, Lane: lane})

		lanes[lane] = c.ParentID
		if c.SecondParentID != "" && !laneExpects(lanes, c.SecondParentID) {
			lanes[takeFreeLane(&lanes)] = c.SecondParentID
		}
	}
	return placements
}

func takeFreeLane(lanes *[]string) int {
	for i, want := range *lanes {
		if want == "" {
			return i
		}
	}
	*lanes = append(*lanes, "")
	return len(*lanes) - 1
}

func laneExpects(lanes []string, id string) bool {
	for _, want := range lanes {
		if want == id {
			return true
		}
	}
	return false
}
