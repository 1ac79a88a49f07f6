package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanCG7040/RealTaker-cup-backend/logger"
	"github.com/DanCG7040/RealTaker-cup-backend/notify"
	"github.com/DanCG7040/RealTaker-cup-backend/notify/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotifierSwallowsPublishErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e notify.Event) error {
			assert.Equal(t, notify.EventWildcardUsed, e.Type)
			assert.Equal(t, "nova", e.Payload["player"])
			assert.NotEmpty(t, e.ID)
			return errors.New("broker down")
		})

	n := notify.NewNotifier(pub, logger.Discard())
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), notify.EventWildcardUsed, map[string]any{"player": "nova"})
	})
}

func TestMemoryRecordsInOrder(t *testing.T) {
	mem := notify.NewMemory()
	n := notify.NewNotifier(mem, logger.Discard())

	n.Notify(context.Background(), notify.EventAchievementGranted, nil)
	n.Notify(context.Background(), notify.EventEditionArchived, map[string]any{"edition_id": 2024})

	require.Len(t, mem.Events(), 2)
	assert.Equal(t, []string{notify.EventAchievementGranted, notify.EventEditionArchived}, mem.Types())
}

func TestNilNotifierIsNoop(t *testing.T) {
	var n *notify.Notifier
	assert.NotPanics(t, func() {
		n.Notify(context.Background(), notify.EventWildcardGranted, nil)
	})
}
