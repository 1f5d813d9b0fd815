package license

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dlviewer/dlviewer/internal/platform/barcode"
	"github.com/dlviewer/dlviewer/internal/platform/metrics"
)

type fakeRenderer struct {
	png []byte
	err error
	got string
}

func (f *fakeRenderer) Render(text string) ([]byte, error) {
	f.got = text
	return f.png, f.err
}

func newTestHandler(records []License, renderer barcode.Renderer) (*Handler, *echo.Echo, *fakeSource) {
	clk := &testClock{t: today}
	src := &fakeSource{name: "google_sheets", records: records}
	svc := NewService(newTestRepo(src, nil, clk), clk.Now)
	return NewHandler(svc, renderer, nil), echo.New(), src
}

func doGet(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandler_ListLicenses(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses(), nil)
	c, rec := doGet(e, "/api/licenses")

	require.NoError(t, h.ListLicenses(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, "google_sheets", resp.Source)
	require.NotNil(t, resp.Timestamp)
	assert.Equal(t, "2024-01-01T15:30:00Z", *resp.Timestamp)
}

func TestHandler_ListLicenses_ExpiredFilter(t *testing.T) {
	records := []License{
		{ID: 1, FirstName: "Old", State: "CA", Expiration: "2020-01-01"},
		{ID: 2, FirstName: "New", State: "CA", Expiration: "2099-12-31"},
	}
	h, e, _ := newTestHandler(records, nil)
	c, rec := doGet(e, "/api/licenses?status=expired")

	require.NoError(t, h.ListLicenses(c))
	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Licenses, 1)
	assert.Equal(t, "2020-01-01", resp.Licenses[0].Expiration)
}

func TestHandler_ListLicenses_UnknownStatus(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses(), nil)
	c, rec := doGet(e, "/api/licenses?status=all")

	require.NoError(t, h.ListLicenses(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []int{1, 2, 3}, ids(resp.Licenses), "records without a parseable expiration are dropped")
	assert.Equal(t, 5, resp.Total)
}

func TestHandler_ListLicenses_EmptyHasNullTimestamp(t *testing.T) {
	clk := &testClock{t: today}
	svc := NewService(newTestRepo(nil, nil, clk), clk.Now)
	h := NewHandler(svc, nil, nil)
	c, rec := doGet(echo.New(), "/api/licenses")

	require.NoError(t, h.ListLicenses(c))
	body := decode(t, rec)
	assert.Nil(t, body["timestamp"])
	assert.Equal(t, SourceNone, body["source"])
	assert.Equal(t, []interface{}{}, body["licenses"])
}

func TestHandler_GetLicense(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses(), nil)
	c, rec := doGet(e, "/api/licenses/3")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.GetLicense(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp GetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Robert", resp.License.FirstName)
}

func TestHandler_GetLicense_NotFound(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses()[:3], nil)
	c, rec := doGet(e, "/api/licenses/5")
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, h.GetLicense(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"License with ID 5 not found"}`, rec.Body.String())
}

func TestHandler_GetLicense_InvalidID(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses(), nil)
	c, rec := doGet(e, "/api/licenses/abc")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetLicense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Refresh(t *testing.T) {
	h, e, src := newTestHandler(sampleLicenses(), nil)

	c, _ := doGet(e, "/api/licenses")
	require.NoError(t, h.ListLicenses(c))

	c, rec := doGet(e, "/api/refresh")
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, 2, src.Calls(), "refresh bypasses a fresh cache")
	var resp RefreshResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Count)
	assert.Equal(t, "Data refreshed. 5 licenses loaded.", resp.Message)
	require.NotNil(t, resp.Timestamp)
}

func TestHandler_Stats(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses(), nil)
	c, rec := doGet(e, "/api/stats")

	require.NoError(t, h.Stats(c))
	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Stats.TotalLicenses)
	assert.Equal(t, 1, resp.Stats.Expired)
	assert.Equal(t, 1, resp.Stats.ExpiringSoon)
	assert.Equal(t, 2, resp.Stats.OrganDonors)

	raw := decode(t, rec)
	stats, ok := raw["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, stats, "by_state")
}

func TestHandler_PDF417_NoData(t *testing.T) {
	h, e, _ := newTestHandler(nil, &fakeRenderer{png: []byte{1}})
	c, rec := doGet(e, "/api/pdf417")

	require.NoError(t, h.PDF417(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"No data provided"}`, rec.Body.String())
}

func TestHandler_PDF417_Unavailable(t *testing.T) {
	h, e, _ := newTestHandler(nil, nil)
	c, rec := doGet(e, "/api/pdf417?data=hello")

	require.NoError(t, h.PDF417(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "PDF417 library not available", decode(t, rec)["error"])
}

func TestHandler_PDF417_RenderError(t *testing.T) {
	h, e, _ := newTestHandler(nil, &fakeRenderer{err: errors.New("too long")})
	c, rec := doGet(e, "/api/pdf417?data=hello")

	require.NoError(t, h.PDF417(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decode(t, rec)["error"], "too long")
}

func TestHandler_PDF417(t *testing.T) {
	r := &fakeRenderer{png: []byte("png")}
	clk := &testClock{t: today}
	svc := NewService(newTestRepo(nil, nil, clk), clk.Now)
	m := metrics.New(prometheus.NewRegistry())
	h := NewHandler(svc, r, m)
	c, rec := doGet(echo.New(), "/api/pdf417?data=DL%20F1234567")

	require.NoError(t, h.PDF417(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DL F1234567", r.got)

	var resp BarcodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, strings.HasPrefix(resp.Barcode, "data:image/png;base64,"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Barcodes.WithLabelValues("ok")))
}

func TestHandler_RegisterRoutes(t *testing.T) {
	h, e, _ := newTestHandler(sampleLicenses(), nil)
	h.RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/licenses/2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"firstName":"Mary"`)
}
