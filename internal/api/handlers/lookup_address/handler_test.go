package lookup_address

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-IntakeService/internal/integrations/addressservice"
	"github.com/m04kA/SMC-IntakeService/internal/schema"
	"github.com/m04kA/SMC-IntakeService/pkg/logger"
)

type fakeClient struct {
	calls   int
	gotCode string
	address *addressservice.Address
	err     error
}

func (f *fakeClient) Lookup(_ context.Context, postcode, _, _ string) (*addressservice.Address, error) {
	f.calls++
	f.gotCode = postcode
	return f.address, f.err
}

func serve(client *fakeClient, body string) *httptest.ResponseRecorder {
	h := NewHandler(client, schema.NewRegistry(schema.Default()), logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/addresses/lookup", strings.NewReader(body)))
	return rec
}

func TestHandler_Success(t *testing.T) {
	client := &fakeClient{address: &addressservice.Address{Street: "Damstraat", City: "Amsterdam", Latitude: 52.37, Longitude: 4.89}}

	rec := serve(client, `{"postcode":"1012ab","huisnummer":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1012AB", client.gotCode)

	var resp AddressResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Damstraat", resp.Street)
	assert.Equal(t, "1012AB", resp.Postcode)
}

func TestHandler_ValidationFailed(t *testing.T) {
	client := &fakeClient{}

	rec := serve(client, `{"postcode":"abc","huisnummer":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, client.calls)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.FieldErrors, "postcode")
	assert.Contains(t, resp.FieldErrors, "huisnummer")
}

func TestHandler_ClientErrors(t *testing.T) {
	rec := serve(&fakeClient{err: addressservice.ErrAddressNotFound}, `{"postcode":"1012AB","huisnummer":"1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&fakeClient{err: errors.Join(addressservice.ErrInternal, errors.New("timeout"))}, `{"postcode":"1012AB","huisnummer":"1"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
