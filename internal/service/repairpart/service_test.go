package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/internal/service/mocks"
	"github.com/you-humble/repair-fulfillment/platform/logger"
)

const testTimeout = 2 * time.Second

type deps struct {
	parts  *mocks.MockRepairPartRepository
	stock  *mocks.MockStockRepository
	ledger *mocks.MockUsageRepository
	events *mocks.MockStockEventSender
}

func newDeps(t *testing.T) deps {
	t.Helper()
	logger.SetNopLogger()

	return deps{
		parts:  mocks.NewMockRepairPartRepository(t),
		stock:  mocks.NewMockStockRepository(t),
		ledger: mocks.NewMockUsageRepository(t),
		events: mocks.NewMockStockEventSender(t),
	}
}

func newSvc(d deps) *service {
	return NewRepairPartService(d.parts, d.stock, d.ledger, d.events, testTimeout, testTimeout)
}

func TestServiceCreateMany(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	deviceID := uuid.New()
	sparePartID := uuid.New()

	sparePart := &model.SparePart{
		ID:       sparePartID,
		Name:     "iPhone 12 screen",
		Quantity: 5,
	}

	params := []model.CreateRepairPartParams{{
		DeviceID:       deviceID,
		SparePartID:    sparePartID,
		QuantityNeeded: 3,
		CostPerUnit:    40,
	}}

	createdID := uuid.New()
	withIDs := func(_ context.Context, rows []*model.RepairPart) []*model.RepairPart {
		out := make([]*model.RepairPart, 0, len(rows))
		for _, r := range rows {
			row := *r
			row.ID = createdID
			out = append(out, &row)
		}
		return out
	}

	type testCase struct {
		name   string
		params []model.CreateRepairPartParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: empty batch",
			params: nil,
			setup:  func(d deps) {},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.stock.AssertNotCalled(t, "SparePartsByIDs", mock.Anything, mock.Anything)
			},
		},
		{
			name: "validation error: non-positive quantity",
			params: []model.CreateRepairPartParams{{
				DeviceID:       deviceID,
				SparePartID:    sparePartID,
				QuantityNeeded: 0,
				CostPerUnit:    40,
			}},
			setup: func(d deps) {},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)
			},
		},
		{
			name:   "pre-check: unknown spare part aborts before any insert",
			params: params,
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrSparePartNotFound)
				assert.Nil(t, res)

				d.parts.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
			},
		},
		{
			name: "pre-check: insufficient stock names the part and aborts the whole batch",
			params: []model.CreateRepairPartParams{
				{
					DeviceID:       deviceID,
					SparePartID:    sparePartID,
					QuantityNeeded: 10,
					CostPerUnit:    40,
				},
			},
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInsufficientStock)

				var insufficient *model.InsufficientStockError
				require.ErrorAs(t, err, &insufficient)
				assert.Equal(t, "iPhone 12 screen", insufficient.PartName)
				assert.Equal(t, int64(5), insufficient.Available)
				assert.Equal(t, int64(10), insufficient.Needed)
				assert.Nil(t, res)

				d.parts.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
				d.stock.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name: "pre-check sums quantities of the same part across items",
			params: []model.CreateRepairPartParams{
				{DeviceID: deviceID, SparePartID: sparePartID, QuantityNeeded: 3, CostPerUnit: 40},
				{DeviceID: deviceID, SparePartID: sparePartID, QuantityNeeded: 3, CostPerUnit: 40},
			},
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.Error(t, err)

				var insufficient *model.InsufficientStockError
				require.ErrorAs(t, err, &insufficient)
				assert.Equal(t, int64(6), insufficient.Needed)
				assert.Nil(t, res)
			},
		},
		{
			name:   "success: rows inserted, stock moved, ledger appended, event sent",
			params: params,
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
				d.parts.
					On("CreateBatch", mock.Anything, mock.MatchedBy(func(rows []*model.RepairPart) bool {
						return len(rows) == 1 &&
							rows[0].Status == model.StatusNeeded &&
							rows[0].TotalCost == 120 &&
							rows[0].CreatedBy == actor &&
							rows[0].UpdatedBy == actor
					})).
					Return(withIDs, nil).
					Once()
				d.stock.
					On("AdjustQuantity", mock.Anything, sparePartID, int64(-3)).
					Return(int64(2), nil).
					Once()
				d.ledger.
					On("Append", mock.Anything, mock.MatchedBy(func(rec *model.UsageRecord) bool {
						return rec.SparePartID == sparePartID &&
							rec.Quantity == 3 &&
							rec.DeviceID == deviceID &&
							rec.Reason == "repair attachment" &&
							rec.UsedBy == actor
					})).
					Return(uuid.New(), nil).
					Once()
				d.events.
					On("SendStockMoved", mock.Anything, mock.MatchedBy(func(ev model.StockMovedEvent) bool {
						return ev.Kind == model.StockEventReserved &&
							ev.SparePartID == sparePartID &&
							ev.Quantity == 3 &&
							ev.ActorID == actor
					})).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				require.Len(t, res.Parts, 1)
				assert.Equal(t, createdID, res.Parts[0].ID)
				assert.Empty(t, res.Aux)
			},
		},
		{
			name:   "aux: failed decrement is an outcome, ledger and event skipped",
			params: params,
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
				d.parts.
					On("CreateBatch", mock.Anything, mock.Anything).
					Return(withIDs, nil).
					Once()
				d.stock.
					On("AdjustQuantity", mock.Anything, sparePartID, int64(-3)).
					Return(int64(0), &model.InsufficientStockError{
						PartName:  "iPhone 12 screen",
						Available: 1,
						Needed:    3,
					}).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				require.Len(t, res.Aux, 1)

				outcome := res.Aux[0]
				assert.Equal(t, model.AuxStepStockDecrement, outcome.Step)
				assert.Equal(t, sparePartID, outcome.SparePartID)
				require.NotNil(t, outcome.RepairPart)
				assert.Equal(t, createdID, *outcome.RepairPart)
				assert.ErrorIs(t, outcome.Err, model.ErrInsufficientStock)
				assert.NotEmpty(t, outcome.Message)

				d.ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
				d.events.AssertNotCalled(t, "SendStockMoved", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "aux: failed ledger append still sends the event",
			params: params,
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
				d.parts.
					On("CreateBatch", mock.Anything, mock.Anything).
					Return(withIDs, nil).
					Once()
				d.stock.
					On("AdjustQuantity", mock.Anything, sparePartID, int64(-3)).
					Return(int64(2), nil).
					Once()
				d.ledger.
					On("Append", mock.Anything, mock.Anything).
					Return(uuid.Nil, errors.New("ledger down")).
					Once()
				d.events.
					On("SendStockMoved", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, res.Aux, 1)
				assert.Equal(t, model.AuxStepUsageRecord, res.Aux[0].Step)
			},
		},
		{
			name:   "aux: failed event publish never fails the operation",
			params: params,
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
				d.parts.
					On("CreateBatch", mock.Anything, mock.Anything).
					Return(withIDs, nil).
					Once()
				d.stock.
					On("AdjustQuantity", mock.Anything, sparePartID, int64(-3)).
					Return(int64(2), nil).
					Once()
				d.ledger.
					On("Append", mock.Anything, mock.Anything).
					Return(uuid.New(), nil).
					Once()
				d.events.
					On("SendStockMoved", mock.Anything, mock.Anything).
					Return(errors.New("broker unreachable")).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, res.Aux, 1)
				assert.Equal(t, model.AuxStepStockEvent, res.Aux[0].Step)
			},
		},
		{
			name:   "repository error: CreateBatch fails the whole operation",
			params: params,
			setup: func(d deps) {
				d.stock.
					On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
					Return([]*model.SparePart{sparePart}, nil).
					Once()
				d.parts.
					On("CreateBatch", mock.Anything, mock.Anything).
					Return(([]*model.RepairPart)(nil), errors.New("db write failed")).
					Once()
			},
			assert: func(t *testing.T, res *model.CreateRepairPartsResult, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db write failed")
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).CreateMany(context.Background(), tt.params, actor)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceAccept(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("missing actor: unauthenticated", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := newSvc(d).Accept(context.Background(), ids, uuid.Nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthenticated)

		d.parts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty id list: validation error", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := newSvc(d).Accept(context.Background(), nil, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("success: one bulk update returning the accepted rows", func(t *testing.T) {
		t.Parallel()

		rows := []*model.RepairPart{
			{ID: ids[0], Status: model.StatusAccepted, UpdatedBy: actor},
			{ID: ids[1], Status: model.StatusAccepted, UpdatedBy: actor},
		}

		d := newDeps(t)
		d.parts.
			On("UpdateStatus", mock.Anything, ids, model.StatusUpdate{
				Status:    model.StatusAccepted,
				UpdatedBy: actor,
			}).
			Return(rows, nil).
			Once()

		updated, err := newSvc(d).Accept(context.Background(), ids, actor)
		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, ids[0], updated[0].ID)
		assert.Equal(t, model.StatusAccepted, updated[0].Status)
		assert.Equal(t, model.StatusAccepted, updated[1].Status)
	})

	t.Run("idempotent: accepting already accepted parts is not an error", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("UpdateStatus", mock.Anything, ids, mock.Anything).
			Return([]*model.RepairPart{{ID: ids[0]}, {ID: ids[1]}}, nil).
			Twice()

		svc := newSvc(d)
		_, err := svc.Accept(context.Background(), ids, actor)
		require.NoError(t, err)

		_, err = svc.Accept(context.Background(), ids, actor)
		require.NoError(t, err)
	})
}

func TestServiceReject(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	ids := []uuid.UUID{uuid.New()}

	t.Run("missing actor: unauthenticated", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := newSvc(d).Reject(context.Background(), ids, uuid.Nil, "wrong part")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("reason overwrites notes with the customer care prefix", func(t *testing.T) {
		t.Parallel()

		rows := []*model.RepairPart{{
			ID:     ids[0],
			Status: model.StatusNeeded,
			Notes:  "Rejected by customer care: wrong part",
		}}

		d := newDeps(t)
		d.parts.
			On("UpdateStatus", mock.Anything, ids, model.StatusUpdate{
				Status:    model.StatusNeeded,
				UpdatedBy: actor,
				Notes:     lo.ToPtr("Rejected by customer care: wrong part"),
			}).
			Return(rows, nil).
			Once()

		updated, err := newSvc(d).Reject(context.Background(), ids, actor, "wrong part")
		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.Equal(t, model.StatusNeeded, updated[0].Status)
		assert.Equal(t, "Rejected by customer care: wrong part", updated[0].Notes)
	})

	t.Run("empty reason leaves notes untouched", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("UpdateStatus", mock.Anything, ids, model.StatusUpdate{
				Status:    model.StatusNeeded,
				UpdatedBy: actor,
			}).
			Return([]*model.RepairPart{{ID: ids[0], Status: model.StatusNeeded}}, nil).
			Once()

		_, err := newSvc(d).Reject(context.Background(), ids, actor, "")
		require.NoError(t, err)
	})
}

func TestServiceMarkReceived(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	rows := []*model.RepairPart{
		{ID: ids[0], Status: model.StatusReceived},
		{ID: ids[1], Status: model.StatusReceived},
		{ID: ids[2], Status: model.StatusReceived},
	}

	d := newDeps(t)
	d.parts.
		On("UpdateStatus", mock.Anything, ids, model.StatusUpdate{
			Status:    model.StatusReceived,
			UpdatedBy: actor,
		}).
		Return(rows, nil).
		Once()

	updated, err := newSvc(d).MarkReceived(context.Background(), ids, actor)
	require.NoError(t, err)
	require.Len(t, updated, 3)
	assert.Equal(t, model.StatusReceived, updated[2].Status)
}

func TestServiceRepairPartByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("nil id: validation error", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := newSvc(d).RepairPartByID(context.Background(), uuid.Nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrValidation)

		d.parts.AssertNotCalled(t, "RepairPartByID", mock.Anything, mock.Anything)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("RepairPartByID", mock.Anything, id).
			Return((*model.RepairPart)(nil), model.ErrRepairPartNotFound).
			Once()

		_, err := newSvc(d).RepairPartByID(context.Background(), id)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrRepairPartNotFound)
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		want := &model.RepairPart{ID: id, Status: model.StatusOrdered}

		d := newDeps(t)
		d.parts.
			On("RepairPartByID", mock.Anything, id).
			Return(want, nil).
			Once()

		got, err := newSvc(d).RepairPartByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestServiceMarkUsed(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	id := uuid.New()

	used := &model.RepairPart{
		ID:             id,
		DeviceID:       uuid.New(),
		SparePartID:    uuid.New(),
		QuantityNeeded: 2,
		QuantityUsed:   2,
		Status:         model.StatusUsed,
	}

	t.Run("missing actor: unauthenticated", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, _, err := newSvc(d).MarkUsed(context.Background(), id, uuid.Nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnauthenticated)
	})

	t.Run("not found is passed through", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("MarkUsed", mock.Anything, id, actor).
			Return((*model.RepairPart)(nil), model.ErrRepairPartNotFound).
			Once()

		_, _, err := newSvc(d).MarkUsed(context.Background(), id, actor)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrRepairPartNotFound)
	})

	t.Run("success: used event goes out, no second stock decrement", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("MarkUsed", mock.Anything, id, actor).
			Return(used, nil).
			Once()
		d.events.
			On("SendStockMoved", mock.Anything, mock.MatchedBy(func(ev model.StockMovedEvent) bool {
				return ev.Kind == model.StockEventUsed && ev.Quantity == 2
			})).
			Return(nil).
			Once()

		part, aux, err := newSvc(d).MarkUsed(context.Background(), id, actor)
		require.NoError(t, err)
		assert.Equal(t, used, part)
		assert.Empty(t, aux)

		d.stock.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("event failure degrades to an aux outcome", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("MarkUsed", mock.Anything, id, actor).
			Return(used, nil).
			Once()
		d.events.
			On("SendStockMoved", mock.Anything, mock.Anything).
			Return(errors.New("broker unreachable")).
			Once()

		part, aux, err := newSvc(d).MarkUsed(context.Background(), id, actor)
		require.NoError(t, err)
		assert.Equal(t, used, part)
		require.Len(t, aux, 1)
		assert.Equal(t, model.AuxStepStockEvent, aux[0].Step)
	})
}

func TestServiceListByStatus(t *testing.T) {
	t.Parallel()

	t.Run("unknown status is rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)

		_, err := newSvc(d).ListByStatus(context.Background(), "installed", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownStatus)
	})

	t.Run("device filter is passed through", func(t *testing.T) {
		t.Parallel()

		deviceID := uuid.New()
		want := []*model.RepairPartDetails{{RepairPart: model.RepairPart{ID: uuid.New()}}}

		d := newDeps(t)
		d.parts.
			On("ListByStatus", mock.Anything, model.StatusNeeded, &deviceID).
			Return(want, nil).
			Once()

		got, err := newSvc(d).ListByStatus(context.Background(), model.StatusNeeded, &deviceID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestServiceStatsForDevice(t *testing.T) {
	t.Parallel()

	deviceID := uuid.New()

	details := func(status model.RepairPartStatus, cost float64) *model.RepairPartDetails {
		return &model.RepairPartDetails{RepairPart: model.RepairPart{
			ID:        uuid.New(),
			DeviceID:  deviceID,
			Status:    status,
			TotalCost: cost,
		}}
	}

	t.Run("empty device: zeroed stats", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("ListForDevice", mock.Anything, deviceID).
			Return([]*model.RepairPartDetails{}, nil).
			Once()

		stats, err := newSvc(d).StatsForDevice(context.Background(), deviceID)
		require.NoError(t, err)
		assert.Equal(t, &model.RepairPartsStats{}, stats)
	})

	t.Run("counts, cost and progress", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.
			On("ListForDevice", mock.Anything, deviceID).
			Return([]*model.RepairPartDetails{
				details(model.StatusNeeded, 10),
				details(model.StatusAccepted, 20),
				details(model.StatusUsed, 30),
				details(model.StatusUsed, 40),
			}, nil).
			Once()

		stats, err := newSvc(d).StatsForDevice(context.Background(), deviceID)
		require.NoError(t, err)
		assert.Equal(t, &model.RepairPartsStats{
			TotalParts:         4,
			TotalCost:          100,
			PartsNeeded:        1,
			PartsAccepted:      1,
			PartsUsed:          2,
			ProgressPercentage: 50,
		}, stats)
	})
}

func TestServiceCreateSingle(t *testing.T) {
	t.Parallel()

	actor := uuid.New()
	deviceID := uuid.New()
	sparePartID := uuid.New()

	params := model.CreateRepairPartParams{
		DeviceID:       deviceID,
		SparePartID:    sparePartID,
		QuantityNeeded: 1,
		CostPerUnit:    gofakeit.Price(1, 100),
	}

	d := newDeps(t)
	d.stock.
		On("SparePartsByIDs", mock.Anything, []uuid.UUID{sparePartID}).
		Return([]*model.SparePart{{ID: sparePartID, Name: "Battery", Quantity: 4}}, nil).
		Once()
	d.parts.
		On("CreateBatch", mock.Anything, mock.Anything).
		Return(func(_ context.Context, rows []*model.RepairPart) []*model.RepairPart {
			row := *rows[0]
			row.ID = uuid.New()
			return []*model.RepairPart{&row}
		}, nil).
		Once()
	d.stock.
		On("AdjustQuantity", mock.Anything, sparePartID, int64(-1)).
		Return(int64(3), nil).
		Once()
	d.ledger.
		On("Append", mock.Anything, mock.Anything).
		Return(uuid.New(), nil).
		Once()
	d.events.
		On("SendStockMoved", mock.Anything, mock.Anything).
		Return(nil).
		Once()

	part, aux, err := newSvc(d).Create(context.Background(), params, actor)
	require.NoError(t, err)
	require.NotNil(t, part)
	assert.NotEqual(t, uuid.Nil, part.ID)
	assert.Empty(t, aux)
}
