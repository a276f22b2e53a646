package engine

import (
	"sort"
	"time"

	"lentoflow/internal/domain"
)

// Annotate fills Urgency and Health on every state in place.
func Annotate(states []domain.TaskState, today time.Time) {
	for i := range states {
		states[i].Urgency = Urgency(states[i].LastDone, states[i].ExpectedInterval, states[i].Importance, today)
		states[i].Health = Health(states[i].LastDone, states[i].ExpectedInterval, today)
	}
}

// Recommend partitions the annotated task states into (recommended, others)
// under the user's energy budget and task-count cap.
//
// Tasks already completed today always lead the recommended list and expand
// the cap, so the UI can show completed and suggested tasks side by side.
// Critical tasks (urgency ≥ 2.0) are admitted regardless of remaining budget:
// the system warns about them rather than hiding them. The remaining slots go
// to the best urgency-per-energy candidates that still fit, except that the
// very first suggestion is admitted even over budget when nothing has
// consumed energy yet.
//
// The partition is total and deterministic: ties sort by task ID ascending,
// and both output lists preserve input order where no sort applies.
func Recommend(states []domain.TaskState, budget, maxTasks int, today time.Time) (recommended, others []domain.TaskState) {
	Annotate(states, today)

	recommended = []domain.TaskState{}
	others = []domain.TaskState{}

	var available []domain.TaskState
	for _, s := range states {
		if s.IsCompletedToday {
			recommended = append(recommended, s)
		} else {
			available = append(available, s)
		}
	}

	slots := maxTasks + len(recommended)
	remaining := budget
	for _, s := range recommended {
		remaining -= s.EnergyCost
	}

	// Critical pass: budget-blind, most urgent first.
	var critical, normal []domain.TaskState
	for _, s := range available {
		if s.Urgency >= CriticalUrgency {
			critical = append(critical, s)
		} else {
			normal = append(normal, s)
		}
	}
	sort.SliceStable(critical, func(i, j int) bool {
		if critical[i].Urgency != critical[j].Urgency {
			return critical[i].Urgency > critical[j].Urgency
		}
		return critical[i].ID < critical[j].ID
	})
	for _, s := range critical {
		if len(recommended) >= slots {
			break
		}
		recommended = append(recommended, s)
		remaining -= s.EnergyCost
	}

	// Value pass: urgency per unit energy, admitted only while the budget
	// holds. The first-task-free exception applies when nothing has spent
	// energy yet.
	sort.SliceStable(normal, func(i, j int) bool {
		ri := normal[i].Urgency / float64(max(normal[i].EnergyCost, 1))
		rj := normal[j].Urgency / float64(max(normal[j].EnergyCost, 1))
		if ri != rj {
			return ri > rj
		}
		return normal[i].ID < normal[j].ID
	})
	for _, s := range normal {
		if len(recommended) >= slots {
			break
		}
		if s.EnergyCost <= remaining || remaining == budget {
			recommended = append(recommended, s)
			remaining -= s.EnergyCost
		}
	}

	picked := make(map[int64]bool, len(recommended))
	for _, s := range recommended {
		picked[s.ID] = true
	}
	for _, s := range states {
		if !picked[s.ID] {
			others = append(others, s)
		}
	}

	return recommended, others
}
