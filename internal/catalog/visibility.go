package catalog

import "slices"

// Visible filters the catalog for the given user.
// Admins get every exercise with its assignees resolved from profiles.
// Everybody else gets the exercises without assignments, plus the ones assigned to them.
// Catalog order is kept.
func Visible(
	exercises []Exercise,
	assignments []Assignment,
	userID string,
	isAdmin bool,
	profiles map[string]Assignee,
) []Exercise {
	assignees := make(map[string][]string, len(assignments))
	for _, a := range assignments {
		assignees[a.ExerciseID] = append(assignees[a.ExerciseID], a.UserID)
	}

	visible := make([]Exercise, 0, len(exercises))
	for _, ex := range exercises {
		assigned := assignees[ex.ID]

		if isAdmin {
			ex.AssignedUsers = make([]Assignee, 0, len(assigned))
			for _, uid := range assigned {
				assignee, ok := profiles[uid]
				if !ok {
					assignee = Assignee{UserID: uid}
				}
				ex.AssignedUsers = append(ex.AssignedUsers, assignee)
			}
			visible = append(visible, ex)
			continue
		}

		if len(assigned) == 0 || slices.Contains(assigned, userID) {
			ex.AssignedUsers = nil
			visible = append(visible, ex)
		}
	}

	return visible
}

// onlyAssigned is the fail closed fallback, used when the full assignment list is unavailable.
func onlyAssigned(exercises []Exercise, assignedIDs []string) []Exercise {
	ids := make(map[string]bool, len(assignedIDs))
	for _, id := range assignedIDs {
		ids[id] = true
	}

	visible := make([]Exercise, 0, len(assignedIDs))
	for _, ex := range exercises {
		if ids[ex.ID] {
			ex.AssignedUsers = nil
			visible = append(visible, ex)
		}
	}
	return visible
}
