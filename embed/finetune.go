package embed

import (
	"context"
	"log/slog"

	"github.com/poiesic/rulesmith/ai"
)

// FineTuneRequest describes a domain-adaptive retraining request.
type FineTuneRequest struct {
	Texts  []string
	Labels []string
	Epochs int
}

// FineTuneResult reports whether retraining actually happened. Performed
// is false in this build; callers must check it rather than assume the
// model changed.
type FineTuneResult struct {
	Performed bool
	Reason    string
	Examples  int
}

// FineTune validates that both an encoding model and a training-capable
// numeric backend are present, then reports what would happen. The model
// is never modified and no output is produced. Missing capabilities are
// a degradation, not an error.
func FineTune(ctx context.Context, encoder ai.Encoder, backend ai.TrainingBackend, req FineTuneRequest, logger *slog.Logger) FineTuneResult {
	if logger == nil {
		logger = slog.Default().With("component", "embed")
	}

	if encoder == nil || !encoder.Available() {
		logger.Info("fine-tuning skipped", "reason", "no encoding model available")
		return FineTuneResult{Reason: "encoding model unavailable", Examples: len(req.Texts)}
	}

	if backend == nil || !backend.Available() {
		logger.Info("fine-tuning skipped", "reason", "no training backend available")
		return FineTuneResult{Reason: "training backend unavailable", Examples: len(req.Texts)}
	}

	// Both capabilities present. Actual gradient-based retraining is not
	// implemented in this pass; report it honestly.
	logger.Info("fine-tuning would run", "examples", len(req.Texts), "epochs", req.Epochs)
	return FineTuneResult{Reason: "fine-tuning not implemented", Examples: len(req.Texts)}
}
