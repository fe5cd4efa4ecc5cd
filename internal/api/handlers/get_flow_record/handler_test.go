package get_flow_record

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/infra/storage/flowstore"
	"github.com/m04kA/SMC-IntakeService/internal/service/records"
	"github.com/m04kA/SMC-IntakeService/internal/service/records/models"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
)

func serve(store *flowstore.Store, flow string) *httptest.ResponseRecorder {
	h := NewHandler(records.NewService(store, logger.Nop()), logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/flows/"+flow+"/record", nil)
	req = mux.SetURLVars(req, map[string]string{"flow": flow})
	req = req.WithContext(middleware.WithProfileID(req.Context(), "p1"))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ReturnsRecord(t *testing.T) {
	store := flowstore.NewStore(flowstore.NewMemoryBackend(), logger.Nop(), nil)
	require.NoError(t, store.Scope("p1").Flows().Save(context.Background(), "abonnement-aanvraag", map[string]any{"postcode": "1012AB"}))

	rec := serve(store, "abonnement-aanvraag")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1012AB", resp.Record["postcode"])
}

func TestHandler_MissingRecordIsEmpty(t *testing.T) {
	store := flowstore.NewStore(flowstore.NewMemoryBackend(), logger.Nop(), nil)

	rec := serve(store, "abonnement-aanvraag")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Record)
}

func TestHandler_InvalidFlow(t *testing.T) {
	store := flowstore.NewStore(flowstore.NewMemoryBackend(), logger.Nop(), nil)
	assert.Equal(t, http.StatusBadRequest, serve(store, "Ongeldig!").Code)
}
