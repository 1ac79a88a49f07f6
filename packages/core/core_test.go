package core_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth"
	authModels "github.com/DanCG7040/RealTaker-cup-backend/packages/auth/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/auth/utils"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/models"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/services"
	"github.com/DanCG7040/RealTaker-cup-backend/packages/core/store/storetest"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type api struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	tokens *utils.TokenService
	events *notify.Memory
}

func newAPI(t *testing.T) *api {
	t.Helper()

	db := storetest.Open(t)
	tokens := utils.NewTokenService("test-secret", time.Hour)
	events := notify.NewMemory()
	log := logger.Discard()

	module := core.NewModule(db, auth.NewModule(db, tokens), core.Options{
		Logger:       log,
		Notifier:     notify.NewNotifier(events, log),
		WheelOptions: []services.WheelOption{services.WithPicker(func(int) int { return 0 })},
	})
	r := gin.New()
	module.SetupRoutes(r)

	return &api{t: t, db: db, router: r, tokens: tokens, events: events}
}

func (a *api) token(nickname string, roles ...string) string {
	a.t.Helper()
	user := storetest.CreateUser(a.t, a.db, nickname, roles...)
	token, err := a.tokens.GenerateToken(user.ID, user.Nickname, user.Roles)
	require.NoError(a.t, err)
	return token
}

func (a *api) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestAdminRoutesRequireRole(t *testing.T) {
	a := newAPI(t)
	player := a.token("nova")
	body := gin.H{"id": 2024, "start_date": "2024-01-01T00:00:00Z", "end_date": "2024-12-31T00:00:00Z"}

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodPost, "/editions", "", body).Code)
	assert.Equal(t, http.StatusForbidden, a.do(http.MethodPost, "/editions", player, body).Code)

	admin := a.token("boss", authModels.RoleAdmin)
	assert.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/editions", admin, body).Code)
	assert.Equal(t, http.StatusConflict, a.do(http.MethodPost, "/editions", admin, body).Code)

	w := a.do(http.MethodGet, "/editions/latest", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(2024), decode[models.Edition](t, w).ID)
}

func TestSettlementOverHTTP(t *testing.T) {
	a := newAPI(t)
	admin := a.token("boss", authModels.RoleAdmin)
	storetest.CreateEdition(t, a.db, 2024)
	game := storetest.CreateGame(t, a.db, "Quake", "Shooters")
	storetest.Enroll(t, a.db, 2024, "nova", "rex")
	require.NoError(t, a.db.Create(&models.StandingsRow{EditionID: 2024, PlayerNickname: "nova", Points: 5, MatchesPlayed: 1, MatchesWon: 1}).Error)

	w := a.do(http.MethodPost, "/matches", admin, gin.H{
		"edition_id":   2024,
		"game_id":      game.ID,
		"scheduled_at": "2024-03-01T18:00:00Z",
		"kind":         "AllVsAll",
		"players":      []string{"nova", "rex"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	match := decode[models.Match](t, w)

	path := fmt.Sprintf("/matches/%d/results", match.ID)
	twoWinners := gin.H{"results": []gin.H{
		{"player": "nova", "position": 1, "won": true},
		{"player": "rex", "position": 2, "won": true},
	}}
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, path, admin, twoWinners).Code)

	w = a.do(http.MethodPost, path, admin, gin.H{"results": []gin.H{
		{"player": "nova", "position": 1, "won": true, "points": 10, "metrics": gin.H{"kills": 7}},
		{"player": "rex", "position": 2, "points": 0},
	}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	outcome := decode[models.SettlementOutcome](t, w)
	assert.Equal(t, 2, outcome.StandingsUpdated)

	w = a.do(http.MethodGet, "/standings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	table := decode[models.StandingsResponse](t, w)

	type row struct {
		Player              string
		Points, Played, Won int
	}
	var got []row
	for _, r := range table.Rows {
		got = append(got, row{r.PlayerNickname, r.Points, r.MatchesPlayed, r.MatchesWon})
	}
	want := []row{{"nova", 15, 2, 2}, {"rex", 0, 1, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("standings mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodPost, "/matches/999/results", admin, twoWinners).Code)
}

func TestWheelOverHTTP(t *testing.T) {
	a := newAPI(t)
	admin := a.token("boss", authModels.RoleAdmin)
	player := a.token("nova")

	assert.Equal(t, http.StatusUnauthorized, a.do(http.MethodPost, "/wheel/draw", "", nil).Code)

	w := a.do(http.MethodPost, "/wheel/draw", player, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, a.do(http.MethodPatch, "/wheel/config", admin, gin.H{"enabled": true, "max_draws_per_day": 1}).Code)
	require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/wheel/items", admin, gin.H{"name": "Confetti", "kind": "cosmetic"}).Code)

	w = a.do(http.MethodPost, "/wheel/draw", player, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 0, decode[models.DrawOutcome](t, w).QuotaRemaining)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/wheel/draw", player, nil).Code)

	w = a.do(http.MethodGet, "/wheel/stats", player, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), decode[models.DrawStats](t, w).TotalDraws)
}

func TestAchievementGrantOverHTTP(t *testing.T) {
	a := newAPI(t)
	admin := a.token("boss", authModels.RoleAdmin)
	player := a.token("nova")

	body := gin.H{"player": "nova", "name": "Sharpshooter"}
	w := a.do(http.MethodPost, "/achievements/grants", admin, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.GrantCreated, decode[models.GrantResult](t, w).Outcome)

	w = a.do(http.MethodPost, "/achievements/grants", admin, body)
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[models.GrantResult](t, w)
	assert.Equal(t, models.GrantAlreadyHeld, result.Outcome)
	assert.Equal(t, "boss", result.Grant.GrantedBy)

	w = a.do(http.MethodGet, "/me/achievements", player, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.AchievementGrant](t, w), 1)
	assert.Equal(t, []string{notify.EventAchievementGranted}, a.events.Types())
}

func TestHistoryOverHTTP(t *testing.T) {
	a := newAPI(t)
	admin := a.token("boss", authModels.RoleAdmin)
	storetest.CreateEdition(t, a.db, 2023)
	storetest.CreateEdition(t, a.db, 2024)
	require.NoError(t, a.db.Create(&models.StandingsRow{EditionID: 2023, PlayerNickname: "nova", Points: 8, MatchesPlayed: 2}).Error)

	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodPost, "/history/2024", admin, nil).Code)

	assert.Equal(t, http.StatusNotFound, a.do(http.MethodGet, "/history/2023", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, a.do(http.MethodGet, "/history/abc", "", nil).Code)

	w := a.do(http.MethodPost, "/history/2023", admin, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.SnapshotCreated, decode[models.SnapshotResult](t, w).Outcome)

	w = a.do(http.MethodPost, "/history/2023", admin, gin.H{"reason": "again"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SnapshotAlreadyExists, decode[models.SnapshotResult](t, w).Outcome)

	w = a.do(http.MethodGet, "/history/2023", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	table := decode[models.SnapshotTable](t, w)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, 8, table.Rows[0].Points)
}
