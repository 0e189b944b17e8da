// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/mock"
	"github.com/stefpopov/go-wine-cellar/internal/push"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/internal/validators"
	"github.com/stefpopov/go-wine-cellar/models"
)

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *mock.MockWineService) {
	t.Helper()
	mockService := mock.NewMockWineService(ctrl)
	h := NewHandler(mockService, push.NewHub(logger.Nop()), logger.Nop())
	return h, mockService
}

func doRequest(h *Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListWines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().List(gomock.Any()).
		Return([]models.Wine{{ID: 1, Name: "Rioja", Price: 12.5}}, nil)

	rec := doRequest(h, http.MethodGet, "/wines", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var wines []models.Wine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &wines))
	require.Len(t, wines, 1)
	assert.Equal(t, "Rioja", wines[0].Name)
}

func TestHandler_ListWines_EmptyIsJSONArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := doRequest(h, http.MethodGet, "/wines", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "empty list must serialize as [], not null")
}

func TestHandler_GetWine_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().Get(gomock.Any(), int64(99)).Return(models.Wine{}, store.ErrNotFound)

	rec := doRequest(h, http.MethodGet, "/wines/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_CreateWine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, w models.Wine) (models.Wine, error) {
			w.ID = 7
			return w, nil
		})

	body, _ := json.Marshal(models.Wine{Name: "Rioja", Price: 12.5, AlcoholDegree: 13.5})
	rec := doRequest(h, http.MethodPost, "/wines", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Wine
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)
}

func TestHandler_CreateWine_ValidationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(models.Wine{}, validators.ErrEmptyName)

	body, _ := json.Marshal(models.Wine{Price: 5})
	rec := doRequest(h, http.MethodPost, "/wines", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateWine_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(h, http.MethodPost, "/wines", []byte(`{not json`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpdateWine_UsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, w models.Wine) (models.Wine, error) {
			// the path identifier wins over whatever the body carries
			assert.Equal(t, int64(3), w.ID)
			return w, nil
		})

	body, _ := json.Marshal(models.Wine{ID: 999, Name: "Chianti", Price: 9})
	rec := doRequest(h, http.MethodPut, "/wines/3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UpdateWine_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)

	rec := doRequest(h, http.MethodPut, "/wines/abc", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteWine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)

	rec := doRequest(h, http.MethodDelete, "/wines/5", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_InternalErrorHidesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().List(gomock.Any()).
		Return(nil, assert.AnError)

	rec := doRequest(h, http.MethodGet, "/wines", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestHandler_TraceIDHeaderIsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := doRequest(h, http.MethodGet, "/wines", nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestHandler_TraceIDHeaderEchoesInbound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockService := newTestHandler(t, ctrl)
	mockService.EXPECT().List(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/wines", nil)
	req.Header.Set(traceIDHeader, "client-trace-1")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "client-trace-1", rec.Header().Get(traceIDHeader),
		"an inbound trace identifier is adopted, not replaced")
}
