package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/internal/service/mocks"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

func TestServiceEvaluate(t *testing.T) {
	t.Parallel()

	deviceID := uuid.New()

	type deps struct {
		parts *mocks.MockRepairPartStatusReader
	}

	type testCase struct {
		name     string
		deviceID uuid.UUID
		setup    func(d deps)
		assert   func(t *testing.T, res *model.Readiness, err error)
	}

	tests := []testCase{
		{
			name:     "validation error: empty device id",
			deviceID: uuid.Nil,
			setup:    func(d deps) {},
			assert: func(t *testing.T, res *model.Readiness, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:     "repository error is passed through",
			deviceID: deviceID,
			setup: func(d deps) {
				d.parts.
					On("StatusesForDevice", mock.Anything, deviceID).
					Return(([]model.RepairPartStatus)(nil), errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.Readiness, err error) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")
				assert.Nil(t, res)
			},
		},
		{
			name:     "zero parts is never ready",
			deviceID: deviceID,
			setup: func(d deps) {
				d.parts.
					On("StatusesForDevice", mock.Anything, deviceID).
					Return([]model.RepairPartStatus{}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Readiness, err error) {
				require.NoError(t, err)
				assert.False(t, res.Ready)
				assert.Equal(t, 0, res.TotalParts)
				assert.Equal(t, "0/0 parts are ready", res.Message)
			},
		},
		{
			name:     "all parts in ready statuses",
			deviceID: deviceID,
			setup: func(d deps) {
				d.parts.
					On("StatusesForDevice", mock.Anything, deviceID).
					Return([]model.RepairPartStatus{
						model.StatusAccepted,
						model.StatusReceived,
						model.StatusUsed,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Readiness, err error) {
				require.NoError(t, err)
				assert.True(t, res.Ready)
				assert.Equal(t, 3, res.TotalParts)
				assert.Equal(t, 3, res.ReadyParts)
				assert.Equal(t, "All 3 parts are ready", res.Message)
			},
		},
		{
			name:     "one needed part blocks readiness",
			deviceID: deviceID,
			setup: func(d deps) {
				d.parts.
					On("StatusesForDevice", mock.Anything, deviceID).
					Return([]model.RepairPartStatus{
						model.StatusAccepted,
						model.StatusNeeded,
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Readiness, err error) {
				require.NoError(t, err)
				assert.False(t, res.Ready)
				assert.Equal(t, 2, res.TotalParts)
				assert.Equal(t, 1, res.ReadyParts)
				assert.Equal(t, "1/2 parts are ready", res.Message)
			},
		},
		{
			name:     "ordered does not count as ready",
			deviceID: deviceID,
			setup: func(d deps) {
				d.parts.
					On("StatusesForDevice", mock.Anything, deviceID).
					Return([]model.RepairPartStatus{model.StatusOrdered}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.Readiness, err error) {
				require.NoError(t, err)
				assert.False(t, res.Ready)
				assert.Equal(t, "0/1 parts are ready", res.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger.SetNopLogger()

			d := deps{parts: mocks.NewMockRepairPartStatusReader(t)}
			tt.setup(d)

			svc := NewReadinessService(d.parts, 2*time.Second)

			res, err := svc.Evaluate(context.Background(), tt.deviceID)
			tt.assert(t, res, err)
		})
	}
}
