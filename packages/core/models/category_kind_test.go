package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestParseCategoryKind(t *testing.T) {
	assert.Equal(t, KindShooter, ParseCategoryKind(" Shooters "))
	assert.Equal(t, KindSports, ParseCategoryKind("deportes"))
	assert.Equal(t, KindUnknown, ParseCategoryKind("puzzle"))
	assert.True(t, KindUnknown.Valid())
	assert.False(t, CategoryKind("chess").Valid())
}

func TestCategoryKindApply(t *testing.T) {
	row := &CategoryStat{Kills: 3, MaxLevel: 4}

	changed := KindShooter.Apply(row, ResultMetrics{Kills: ptr(2), GoalsFor: ptr(9)})
	assert.Equal(t, Fields{"kills": 5}, changed)
	assert.Equal(t, 0, row.GoalsFor)

	assert.Empty(t, KindPlatform.Apply(row, ResultMetrics{LevelReached: ptr(2)}))
	assert.Equal(t, Fields{"max_level": 7}, KindPlatform.Apply(row, ResultMetrics{LevelReached: ptr(7)}))

	assert.Equal(t, Fields{"best_race_time": 61.5}, KindRacing.Apply(row, ResultMetrics{RaceTime: ptr(61.5)}))
	assert.Empty(t, KindRacing.Apply(row, ResultMetrics{RaceTime: ptr(70.0)}))
	assert.Equal(t, 61.5, *row.BestRaceTime)

	assert.Empty(t, KindUnknown.Apply(row, ResultMetrics{Kills: ptr(1)}))
}
