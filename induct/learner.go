package induct

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/poiesic/rulesmith/core"
)

// Defaults for rule selection. The 1.5 boost compensates for rule
// patterns being much rarer than 1.0 relative frequency; it is a fixed
// tunable, not derived from data.
const (
	DefaultMinConfidence = 0.7
	DefaultMaxRules      = 10

	confidenceBoost = 1.5
)

// patternStats accumulates per-pattern counts during one Learn call.
// The premise/conclusion of the first example seen for the pattern are
// kept verbatim as the representative lists.
type patternStats struct {
	premise    []string
	conclusion []string
	count      int
	confidence float64
}

// Learner mines rules from example batches. A Learner is stateless
// between calls and safe for reuse.
type Learner struct {
	minConfidence float64
	maxRules      int
	logger        *slog.Logger
}

// Option configures a Learner.
type Option func(*Learner)

// WithMinConfidence sets the inclusive confidence threshold.
// Patterns scoring exactly at the threshold are kept.
func WithMinConfidence(min float64) Option {
	return func(l *Learner) {
		l.minConfidence = min
	}
}

// WithMaxRules caps the number of rules returned after ranking.
// Negative values are treated as zero.
func WithMaxRules(max int) Option {
	return func(l *Learner) {
		if max < 0 {
			max = 0
		}
		l.maxRules = max
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Learner) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLearner creates a rule learner with the default thresholds.
func NewLearner(opts ...Option) *Learner {
	l := &Learner{
		minConfidence: DefaultMinConfidence,
		maxRules:      DefaultMaxRules,
		logger:        slog.Default().With("component", "induct"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Learn mines rules from the example batch. The result is ordered by
// confidence descending; among equal confidences, discovery order is
// preserved. The returned slice is never nil.
func (l *Learner) Learn(examples []core.Example) []core.Rule {
	if len(examples) == 0 {
		l.logger.Info("no examples provided, skipping rule induction")
		return []core.Rule{}
	}

	l.logger.Info("learning rules from examples", "examples", len(examples))

	// Canonicalize and count. Map iteration order is not deterministic,
	// so discovery order is tracked separately.
	patterns := make(map[string]*patternStats)
	discovered := make([]string, 0, len(examples))

	for _, example := range examples {
		key := patternKey(example.Premise, example.Conclusion)
		stats, ok := patterns[key]
		if !ok {
			stats = &patternStats{
				premise:    emptyIfNil(example.Premise),
				conclusion: emptyIfNil(example.Conclusion),
			}
			patterns[key] = stats
			discovered = append(discovered, key)
		}
		stats.count++
	}

	// Score by boosted relative frequency, clamped to 1.0.
	total := float64(len(examples))
	for _, stats := range patterns {
		stats.confidence = math.Min(1.0, float64(stats.count)/total*confidenceBoost)
	}

	// Filter, then assign ids in discovery order before ranking: the
	// numeric suffix reflects when a pattern was first seen, not its
	// final rank.
	rules := make([]core.Rule, 0, len(discovered))
	for _, key := range discovered {
		stats := patterns[key]
		if stats.confidence < l.minConfidence {
			continue
		}
		rules = append(rules, core.Rule{
			Id:         fmt.Sprintf("learned_rule_%d", len(rules)),
			Premise:    stats.premise,
			Conclusion: stats.conclusion,
			Confidence: stats.confidence,
			Weight:     float64(stats.count) / total,
			Type:       core.RuleTypeInductive,
		})
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Confidence > rules[j].Confidence
	})

	if len(rules) > l.maxRules {
		rules = rules[:l.maxRules]
	}

	l.logger.Info("learned rules", "patterns", len(patterns), "rules", len(rules))
	return rules
}

// patternKey builds the canonical set identity of a premise/conclusion
// pair: unique premise terms sorted and joined by "|", then "->", then
// the conclusion terms treated the same way. Input order and duplicate
// terms do not affect the key.
func patternKey(premise, conclusion []string) string {
	return sortedJoin(premise) + "->" + sortedJoin(conclusion)
}

func sortedJoin(terms []string) string {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return strings.Join(sorted, "|")
}

func emptyIfNil(terms []string) []string {
	if terms == nil {
		return []string{}
	}
	return terms
}
