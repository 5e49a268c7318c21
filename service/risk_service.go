package service

import (
	"strings"

	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/setting"
	"github.com/priyansh19csu225/jarviot-challenge-full-stack-backend/types"
)

// CalculateRiskScore rates a single file between 0 and 1.5. The order
// of the adjustments matters: the shared and size bonuses are gated on
// the running score being below 1, and ownership only reduces risk
// that already exists, so the combination 0.5 base + shared + size is
// the only way to reach 1.5.
func CalculateRiskScore(f *types.FileMetadata) float64 {
	var score float64

	// Base score from the content type. "exe" matches any casing,
	// "js" has to match exactly.
	if strings.Contains(f.MimeType, "application") || strings.ToLower(f.FileExtension) == "exe" {
		score = 1 // very dangerous
	} else if strings.Contains(f.MimeType, "script") || f.FileExtension == "js" {
		score = 0.5 // somewhat dangerous
	}

	// Shared files are more exposed, unless already at max base risk.
	if f.Shared && score < 1 {
		score += 0.5
	}

	// Files the user owns are less of a concern.
	if f.OwnedByMe && score > 0 {
		score -= 0.5
	}

	// Large files (>10 MiB) get the same gated bonus as sharing.
	if f.Size > setting.LargeFileBytes && score < 1 {
		score += 0.5
	}

	return score
}

// ScoreFiles attaches a risk score to every file in place and returns
// the aggregate risk percentage (mean score x 100). An empty listing
// has zero exposure.
func ScoreFiles(files []*types.FileMetadata) float64 {
	if len(files) == 0 {
		return 0
	}

	var total float64
	for _, f := range files {
		f.RiskScore = CalculateRiskScore(f)
		total += f.RiskScore
	}

	return total / float64(len(files)) * 100
}
