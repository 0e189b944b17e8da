// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stefpopov/go-wine-cellar/internal/adapter"
	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/mock"
	"github.com/stefpopov/go-wine-cellar/internal/service"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/models"
)

// stubScheduler counts Schedule calls without a mockgen mock.
type stubScheduler struct {
	calls int
}

func (s *stubScheduler) Schedule() { s.calls++ }

// stubConnectivity pins the online flag for a test case.
type stubConnectivity struct {
	online bool
}

func (s *stubConnectivity) Online() bool { return s.online }

func newTestCellarSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	online bool,
) (
	service.CellarService,
	*mock.MockRecordStore,
	*mock.MockRemoteStore,
	*stubScheduler,
) {
	t.Helper()
	mockStore := mock.NewMockRecordStore(ctrl)
	mockRemote := mock.NewMockRemoteStore(ctrl)
	scheduler := &stubScheduler{}

	svc := service.NewCellarService(mockStore, mockRemote, &stubConnectivity{online: online}, scheduler, logger.Nop())

	return svc, mockStore, mockRemote, scheduler
}

func transportErr() error {
	return fmt.Errorf("%w: connection refused", adapter.ErrUnavailable)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestCellarService_Create_Online(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockRemote, scheduler := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	draft := models.Wine{Name: "Rioja", Price: 12.5, AlcoholDegree: 13.5}
	canonical := models.Wine{ID: 7, Name: "Rioja", Price: 12.5, AlcoholDegree: 13.5}
	synced := canonical
	synced.Status = models.StatusSynced

	mockRemote.EXPECT().Create(ctx, gomock.Any()).Return(canonical, nil)
	mockStore.EXPECT().Upsert(ctx, synced).Return(synced, nil)

	got, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, models.StatusSynced, got.Status)
	assert.Zero(t, scheduler.calls, "no replay needed after a confirmed create")
}

func TestCellarService_Create_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, scheduler := newTestCellarSvc(t, ctrl, false)
	ctx := context.Background()

	draft := models.Wine{Name: "Rioja", Price: 12.5, AlcoholDegree: 13.5}
	stored := draft
	stored.ID = -1
	stored.Status = models.StatusPendingCreate

	mockStore.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Wine) (models.Wine, error) {
			assert.Equal(t, models.StatusPendingCreate, w.Status)
			assert.Zero(t, w.ID)
			return stored, nil
		})

	got, err := svc.Create(ctx, draft)
	require.ErrorIs(t, err, service.ErrSavedOffline)
	assert.Equal(t, int64(-1), got.ID)
	assert.Equal(t, 1, scheduler.calls, "offline save must wake the replay worker")
}

func TestCellarService_Create_TransientFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockRemote, scheduler := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	draft := models.Wine{Name: "Rioja", Price: 12.5, AlcoholDegree: 13.5}
	stored := draft
	stored.ID = -1
	stored.Status = models.StatusPendingCreate

	mockRemote.EXPECT().Create(ctx, gomock.Any()).Return(models.Wine{}, transportErr())
	mockStore.EXPECT().Upsert(ctx, gomock.Any()).Return(stored, nil)

	_, err := svc.Create(ctx, draft)
	require.ErrorIs(t, err, service.ErrSavedOffline)
	assert.Equal(t, 1, scheduler.calls)
}

func TestCellarService_Create_ServerFaultSavesLocally(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockRemote, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	draft := models.Wine{Name: "Rioja", Price: 12.5, AlcoholDegree: 13.5}

	mockRemote.EXPECT().Create(ctx, gomock.Any()).
		Return(models.Wine{}, fmt.Errorf("%w: status 503", adapter.ErrServerFault))
	mockStore.EXPECT().Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Wine) (models.Wine, error) {
			w.ID = -1
			return w, nil
		})

	_, err := svc.Create(ctx, draft)
	require.ErrorIs(t, err, service.ErrSavedOffline)
}

func TestCellarService_Create_ClientFaultPersistsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockRemote, scheduler := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	mockRemote.EXPECT().Create(ctx, gomock.Any()).
		Return(models.Wine{}, fmt.Errorf("%w: status 400", adapter.ErrClientFault))

	_, err := svc.Create(ctx, models.Wine{Name: "Rioja", Price: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrSavedOffline)
	assert.Zero(t, scheduler.calls)
}

func TestCellarService_Create_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, scheduler := newTestCellarSvc(t, ctrl, true)

	_, err := svc.Create(context.Background(), models.Wine{Name: "   "})
	require.Error(t, err)
	assert.Zero(t, scheduler.calls)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestCellarService_Update_Offline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, scheduler := newTestCellarSvc(t, ctrl, false)
	ctx := context.Background()

	current := models.Wine{ID: 7, Name: "Rioja", Price: 12.5, Status: models.StatusSynced}
	edited := models.Wine{ID: 7, Name: "Rioja Reserva", Price: 20, AlcoholDegree: 14}

	mockStore.EXPECT().GetByID(ctx, int64(7)).Return(current, nil)
	mockStore.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Wine) (models.Wine, error) {
			assert.Equal(t, models.StatusPendingUpdate, w.Status)
			return w, nil
		})

	got, err := svc.Update(ctx, edited)
	require.ErrorIs(t, err, service.ErrSavedOffline)
	assert.Equal(t, models.StatusPendingUpdate, got.Status)
	assert.Equal(t, 1, scheduler.calls)
}

func TestCellarService_Update_UnconfirmedRecordKeepsCreateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, _ := newTestCellarSvc(t, ctrl, false)
	ctx := context.Background()

	current := models.Wine{ID: -3, Name: "Draft", Price: 5, Status: models.StatusPendingCreate}
	edited := models.Wine{ID: -3, Name: "Draft v2", Price: 6}

	mockStore.EXPECT().GetByID(ctx, int64(-3)).Return(current, nil)
	mockStore.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Wine) (models.Wine, error) {
			// editing an unconfirmed record must not promote it to an update
			assert.Equal(t, models.StatusPendingCreate, w.Status)
			return w, nil
		})

	_, err := svc.Update(ctx, edited)
	require.ErrorIs(t, err, service.ErrSavedOffline)
}

func TestCellarService_Update_UnconfirmedRecordCreatesOnWire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockRemote, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	current := models.Wine{ID: -3, Name: "Draft", Price: 5, Status: models.StatusPendingCreate}
	edited := models.Wine{ID: -3, Name: "Draft v2", Price: 6}
	canonical := models.Wine{ID: 42, Name: "Draft v2", Price: 6}

	mockStore.EXPECT().GetByID(ctx, int64(-3)).Return(current, nil)
	mockRemote.EXPECT().Create(ctx, gomock.Any()).Return(canonical, nil)
	// the provisional row must vanish before the canonical copy lands
	gomock.InOrder(
		mockStore.EXPECT().DeletePermanently(ctx, int64(-3)).Return(nil),
		mockStore.EXPECT().Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, w models.Wine) (models.Wine, error) {
				assert.Equal(t, int64(42), w.ID)
				assert.Equal(t, models.StatusSynced, w.Status)
				return w, nil
			}),
	)

	got, err := svc.Update(ctx, edited)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
}

func TestCellarService_Update_MissingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	mockStore.EXPECT().GetByID(ctx, int64(99)).Return(models.Wine{}, store.ErrNotFound)

	_, err := svc.Update(ctx, models.Wine{ID: 99, Name: "Ghost", Price: 1})
	require.ErrorIs(t, err, store.ErrNotFound)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestCellarService_Delete_OnlineSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockRemote, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	mockStore.EXPECT().GetByID(ctx, int64(7)).
		Return(models.Wine{ID: 7, Status: models.StatusSynced}, nil)
	mockRemote.EXPECT().Delete(ctx, int64(7)).Return(nil)
	mockStore.EXPECT().DeletePermanently(ctx, int64(7)).Return(nil)

	require.NoError(t, svc.Delete(ctx, 7))
}

func TestCellarService_Delete_OfflineSyncedMarksPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, scheduler := newTestCellarSvc(t, ctrl, false)
	ctx := context.Background()

	mockStore.EXPECT().GetByID(ctx, int64(7)).
		Return(models.Wine{ID: 7, Status: models.StatusSynced}, nil)
	mockStore.EXPECT().UpdateStatus(ctx, int64(7), models.StatusPendingDelete).Return(nil)

	err := svc.Delete(ctx, 7)
	require.ErrorIs(t, err, service.ErrSavedOffline)
	assert.Equal(t, 1, scheduler.calls)
}

func TestCellarService_Delete_UnconfirmedRecordIsLocalOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// online on purpose: a record the server never saw must not produce
	// a remote call even with connectivity available
	svc, mockStore, _, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	mockStore.EXPECT().GetByID(ctx, int64(-2)).
		Return(models.Wine{ID: -2, Status: models.StatusPendingCreate}, nil)
	mockStore.EXPECT().DeletePermanently(ctx, int64(-2)).Return(nil)

	require.NoError(t, svc.Delete(ctx, -2))
}

func TestCellarService_Delete_TransientFailureMarksPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, mockRemote, scheduler := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	mockStore.EXPECT().GetByID(ctx, int64(7)).
		Return(models.Wine{ID: 7, Status: models.StatusSynced}, nil)
	mockRemote.EXPECT().Delete(ctx, int64(7)).Return(transportErr())
	mockStore.EXPECT().UpdateStatus(ctx, int64(7), models.StatusPendingDelete).Return(nil)

	err := svc.Delete(ctx, 7)
	require.ErrorIs(t, err, service.ErrSavedOffline)
	assert.Equal(t, 1, scheduler.calls)
}

func TestCellarService_Delete_MissingRecordIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	mockStore.EXPECT().GetByID(ctx, int64(404)).Return(models.Wine{}, store.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, 404))
}

func TestCellarService_Delete_StoreFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockStore, _, _ := newTestCellarSvc(t, ctrl, true)
	ctx := context.Background()

	dbErr := errors.New("disk full")
	mockStore.EXPECT().GetByID(ctx, int64(7)).Return(models.Wine{}, dbErr)

	err := svc.Delete(ctx, 7)
	require.ErrorIs(t, err, dbErr)
}
