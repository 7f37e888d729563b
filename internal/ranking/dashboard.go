package ranking

type PRRow struct {
	UserProgress
	Position      int    `json:"position"`
	IsCurrentUser bool   `json:"isCurrentUser"`
	PRWeightText  string `json:"prWeightText"`
}

type ProgressionRow struct {
	Progression
	Position        int    `json:"position"`
	IsCurrentUser   bool   `json:"isCurrentUser"`
	AverageText     string `json:"averageText"`
	TotalText       string `json:"totalText"`
	FirstWeightText string `json:"firstWeightText"`
	PRWeightText    string `json:"prWeightText"`
}

// Summary is the current user's own numbers, formatted for display.
type Summary struct {
	PRRank                 int    `json:"prRank"`
	PRRankText             string `json:"prRankText"`
	ProgressionRank        int    `json:"progressionRank"`
	ProgressionRankText    string `json:"progressionRankText"`
	RankedUsers            int    `json:"rankedUsers"`
	TotalPRWeightText      string `json:"totalPrWeightText"`
	TotalVolumeText        string `json:"totalVolumeText"`
	RecentVolumeText       string `json:"recentVolumeText"`
	AverageProgressionText string `json:"averageProgressionText"`
	HasMetrics             bool   `json:"hasMetrics"`
	HasProgression         bool   `json:"hasProgression"`
}

type Dashboard struct {
	Summary            Summary            `json:"summary"`
	PRRanking          []PRRow            `json:"prRanking"`
	ProgressionRanking []ProgressionRow   `json:"progressionRanking"`
	Exercises          []ExerciseProgress `json:"exercises"`
}

// BuildDashboard shapes both ranking lists for the given user. Each list keeps the
// order it came with; the two are never merged.
func BuildDashboard(userID string, prs []UserProgress, progression []Progression, exercises []ExerciseProgress) Dashboard {
	dashboard := Dashboard{
		PRRanking:          make([]PRRow, 0, len(prs)),
		ProgressionRanking: make([]ProgressionRow, 0, len(progression)),
		Exercises:          exercises,
	}
	if dashboard.Exercises == nil {
		dashboard.Exercises = []ExerciseProgress{}
	}

	for i, p := range prs {
		dashboard.PRRanking = append(dashboard.PRRanking, PRRow{
			UserProgress:  p,
			Position:      i + 1,
			IsCurrentUser: p.UserID == userID,
			PRWeightText:  FormatWeight(p.TotalPRWeight),
		})
	}
	for i, p := range progression {
		dashboard.ProgressionRanking = append(dashboard.ProgressionRanking, ProgressionRow{
			Progression:     p,
			Position:        i + 1,
			IsCurrentUser:   p.UserID == userID,
			AverageText:     FormatWeight(p.AverageProgressionPercentage),
			TotalText:       FormatWeight(p.TotalProgressionPercentage),
			FirstWeightText: FormatWeight(p.FirstTotalWeight),
			PRWeightText:    FormatWeight(p.TotalPRWeight),
		})
	}

	summary := Summary{
		PRRank:          RankPosition(prs, userID),
		ProgressionRank: RankPosition(progression, userID),
		RankedUsers:     len(prs),
	}
	summary.PRRankText = FormatRank(summary.PRRank)
	summary.ProgressionRankText = FormatRank(summary.ProgressionRank)
	if summary.PRRank > 0 {
		me := prs[summary.PRRank-1]
		summary.HasMetrics = true
		summary.TotalPRWeightText = FormatWeight(me.TotalPRWeight)
		summary.TotalVolumeText = FormatVolume(me.TotalVolume)
		summary.RecentVolumeText = FormatVolume(me.RecentVolume)
	}
	if summary.ProgressionRank > 0 {
		summary.HasProgression = true
		summary.AverageProgressionText = FormatWeight(progression[summary.ProgressionRank-1].AverageProgressionPercentage)
	}
	dashboard.Summary = summary

	return dashboard
}
