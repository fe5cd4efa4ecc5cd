package flow_input

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/api/middleware"
	"github.com/m04kA/SMC-IntakeService/internal/infra/storage/flowstore"
	"github.com/m04kA/SMC-IntakeService/internal/schema"
	"github.com/m04kA/SMC-IntakeService/internal/service/intake"
	"github.com/m04kA/SMC-IntakeService/internal/service/intake/models"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
)

const flow = "adres-check"

func newService(t *testing.T) *intake.Service {
	t.Helper()
	svc := intake.NewService(
		[]intake.FlowDefinition{{Name: flow, Steps: []string{"adres"}}},
		schema.NewRegistry(schema.Default()),
		flowstore.NewStore(flowstore.NewMemoryBackend(), logger.Nop(), nil),
		nil,
		logger.Nop(),
	)
	_, err := svc.Start(context.Background(), "p1", flow)
	require.NoError(t, err)
	return svc
}

func serve(svc IntakeService, flowName, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flows/"+flowName+"/input", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"flow": flowName})
	req = req.WithContext(middleware.WithProfileID(req.Context(), "p1"))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandler_InputShowsFieldErrors(t *testing.T) {
	svc := newService(t)

	rec := serve(svc, flow, `{"field":"postcode","value":"12"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "adres", resp.Step)
	assert.NotEmpty(t, resp.View.FieldErrors["postcode"])
	assert.False(t, resp.View.SubmitEnabled)
}

func TestHandler_Errors(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, http.StatusBadRequest, serve(svc, flow, `{"field":"bestaat-niet","value":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, flow, `{"field":`).Code)
	assert.Equal(t, http.StatusNotFound, serve(svc, "onbekend", `{"field":"postcode","value":"x"}`).Code)
}
