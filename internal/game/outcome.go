package game

// RunOutcome classifies how a session finished, for batch reports.
type RunOutcome int

const (
	OutcomeInconclusive RunOutcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o RunOutcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

type RunOutcomeReason struct {
	Outcome          RunOutcome
	Ticks            int
	Elapsed          float64
	Kills            int
	Spawned          int
	PlayerBaseHealth int
	EnemyBaseHealth  int
	Description      string
}

func DetermineRunOutcome(w *World) RunOutcomeReason {
	st := w.Stats()
	r := RunOutcomeReason{
		Ticks:            st.Ticks,
		Elapsed:          st.Elapsed,
		Kills:            st.Kills,
		Spawned:          st.Spawned,
		PlayerBaseHealth: st.PlayerBaseHealth,
		EnemyBaseHealth:  st.EnemyBaseHealth,
	}

	switch st.Result {
	case ResultWin:
		r.Outcome = OutcomeWin
		r.Description = "decisive_win_" + w.EndReason()
		return r
	case ResultLose:
		r.Outcome = OutcomeLoss
		r.Description = "loss_" + w.EndReason()
		return r
	}

	// Still running: lean on base damage taken so far.
	r.Outcome = OutcomeInconclusive
	switch {
	case st.EnemyBaseHealth < st.PlayerBaseHealth:
		r.Description = "inconclusive_leaning_win"
	case st.PlayerBaseHealth < st.EnemyBaseHealth:
		r.Description = "inconclusive_leaning_loss"
	default:
		r.Description = "inconclusive_stalemate"
	}
	return r
}
