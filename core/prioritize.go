package core

import (
	"sort"

	"github.com/paystackoss/orgpulse/schema"
)

// Prioritize computes each action's utility and ranks the slice by it,
// descending. The boosts are independent rules applied in sequence, not an
// either-or chain, so an action can in principle collect more than one.
// Utility is allowed to exceed 1.0.
//
// The sort is stable: actions with equal utility keep their generation
// order, which keeps plans deterministic across runs.
func Prioritize(actions []schema.Action, metrics schema.HealthMetrics, tuning schema.Tuning) []schema.Action {
	ranked := make([]schema.Action, len(actions))
	copy(ranked, actions)

	for i := range ranked {
		utility := ranked[i].Priority
		if ranked[i].Goal == schema.GoalSecurity {
			utility *= tuning.SecurityBoost
		}
		if ranked[i].Goal == schema.GoalMaintenance && metrics.OutdatedRepos > tuning.MaintenanceOutdatedMin {
			utility *= tuning.MaintenanceBoost
		}
		if ranked[i].Goal == schema.GoalUnderstanding {
			utility *= tuning.UnderstandingBoost
		}
		ranked[i].Utility = utility
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Utility > ranked[j].Utility
	})

	return ranked
}
