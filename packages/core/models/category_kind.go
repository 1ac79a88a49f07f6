package models

import "strings"

// CategoryKind selects which result metrics a game category tracks and how they
// fold into the per-player aggregate.
type CategoryKind string

const (
	KindShooter  CategoryKind = "shooter"
	KindSports   CategoryKind = "sports"
	KindRacing   CategoryKind = "racing"
	KindFighting CategoryKind = "fighting"
	KindPlatform CategoryKind = "platform"
	KindUnknown  CategoryKind = "unknown"
)

var categoryAliases = map[string]CategoryKind{
	"shooter":     KindShooter,
	"shooters":    KindShooter,
	"sports":      KindSports,
	"sport":       KindSports,
	"deportes":    KindSports,
	"racing":      KindRacing,
	"races":       KindRacing,
	"carreras":    KindRacing,
	"fighting":    KindFighting,
	"luchas":      KindFighting,
	"platform":    KindPlatform,
	"platformer":  KindPlatform,
	"plataformas": KindPlatform,
}

// ParseCategoryKind maps a category name to its kind. Unrecognised names are KindUnknown.
func ParseCategoryKind(name string) CategoryKind {
	if kind, ok := categoryAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return kind
	}
	return KindUnknown
}

// metricRule maintains one aggregate column for a kind.
type metricRule struct {
	column string
	apply  func(row *CategoryStat, m ResultMetrics) (any, bool)
}

var categoryRules = map[CategoryKind][]metricRule{
	KindShooter: {
		sumRule("kills", func(m ResultMetrics) *int { return m.Kills }, func(r *CategoryStat) *int { return &r.Kills }),
		sumRule("deaths", func(m ResultMetrics) *int { return m.Deaths }, func(r *CategoryStat) *int { return &r.Deaths }),
	},
	KindSports: {
		sumRule("goals_for", func(m ResultMetrics) *int { return m.GoalsFor }, func(r *CategoryStat) *int { return &r.GoalsFor }),
		sumRule("goals_against", func(m ResultMetrics) *int { return m.GoalsAgainst }, func(r *CategoryStat) *int { return &r.GoalsAgainst }),
	},
	KindRacing: {
		minRule("best_race_time", func(m ResultMetrics) *float64 { return m.RaceTime }, func(r *CategoryStat) **float64 { return &r.BestRaceTime }),
	},
	KindFighting: {
		sumRule("rounds_won", func(m ResultMetrics) *int { return m.RoundsWon }, func(r *CategoryStat) *int { return &r.RoundsWon }),
		sumRule("rounds_lost", func(m ResultMetrics) *int { return m.RoundsLost }, func(r *CategoryStat) *int { return &r.RoundsLost }),
	},
	KindPlatform: {
		maxRule("max_level", func(m ResultMetrics) *int { return m.LevelReached }, func(r *CategoryStat) *int { return &r.MaxLevel }),
	},
}

func (k CategoryKind) Valid() bool {
	if k == KindUnknown {
		return true
	}
	_, ok := categoryRules[k]
	return ok
}

// Apply folds m into row following the kind's rules and returns the columns that changed.
// Metrics that do not belong to the kind are ignored.
func (k CategoryKind) Apply(row *CategoryStat, m ResultMetrics) Fields {
	changed := Fields{}
	for _, rule := range categoryRules[k] {
		if v, ok := rule.apply(row, m); ok {
			changed[rule.column] = v
		}
	}
	return changed
}

func sumRule(column string, in func(ResultMetrics) *int, field func(*CategoryStat) *int) metricRule {
	return metricRule{
		column: column,
		apply: func(row *CategoryStat, m ResultMetrics) (any, bool) {
			v := in(m)
			if v == nil {
				return nil, false
			}
			p := field(row)
			*p += *v
			return *p, true
		},
	}
}

func maxRule(column string, in func(ResultMetrics) *int, field func(*CategoryStat) *int) metricRule {
	return metricRule{
		column: column,
		apply: func(row *CategoryStat, m ResultMetrics) (any, bool) {
			v := in(m)
			p := field(row)
			if v == nil || *v <= *p {
				return nil, false
			}
			*p = *v
			return *p, true
		},
	}
}

func minRule(column string, in func(ResultMetrics) *float64, field func(*CategoryStat) **float64) metricRule {
	return metricRule{
		column: column,
		apply: func(row *CategoryStat, m ResultMetrics) (any, bool) {
			v := in(m)
			p := field(row)
			if v == nil || (*p != nil && *v >= **p) {
				return nil, false
			}
			best := *v
			*p = &best
			return best, true
		},
	}
}
