package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUseWildcard(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	wc, err := e.wildcards.Create(ctx, models.CreateWildcardRequest{Name: "Skip Match"})
	require.NoError(t, err)

	grant := models.WildcardGrant{PlayerNickname: "nova", WildcardID: wc.ID, AcquiredAt: time.Now().UTC()}
	require.NoError(t, e.db.Omit("Wildcard").Create(&grant).Error)

	_, err = e.wildcards.Use(ctx, "rex", grant.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	used, err := e.wildcards.Use(ctx, "nova", grant.ID)
	require.NoError(t, err)
	assert.True(t, used.Used)
	require.NotNil(t, used.UsedAt)

	_, err = e.wildcards.Use(ctx, "nova", grant.ID)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = e.wildcards.Use(ctx, "nova", 999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	grants, err := e.wildcards.PlayerGrants(ctx, "nova")
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.True(t, grants[0].Used)
	assert.Equal(t, "Skip Match", grants[0].Wildcard.Name)
	assert.Equal(t, []string{notify.EventWildcardUsed}, e.events.Types())
}

func TestCreateWildcardValidation(t *testing.T) {
	e := newEnv(t)
	_, err := e.wildcards.Create(context.Background(), models.CreateWildcardRequest{Name: "  "})
	assert.ErrorIs(t, err, services.ErrValidation)
}
