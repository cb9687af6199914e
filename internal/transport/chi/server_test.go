package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ngcdex/internal/app"
	"github.com/kailas-cloud/ngcdex/internal/config"
	"github.com/kailas-cloud/ngcdex/internal/db/sqlite/sqlitetest"
)

func newTestRouter(t *testing.T, apiKeys ...string) http.Handler {
	t.Helper()
	cfg := config.Default()
	cfg.Catalog.Path = sqlitetest.Default(t)
	a, err := app.New(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	s := NewServer(a.Catalog, a.Search, a.Proximity, a.Health, Defaults{})
	return NewRouter(s, zap.NewNop(), apiKeys)
}

func do(t *testing.T, h http.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if out != nil {
		if err := json.NewDecoder(rr.Body).Decode(out); err != nil {
			t.Fatalf("%s: decode: %v", target, err)
		}
	}
	return rr
}

type listing struct {
	Items []map[string]any `json:"items"`
	Total int              `json:"total"`
}

func TestGetObject(t *testing.T) {
	h := newTestRouter(t)

	var obj map[string]any
	rr := do(t, h, "/v1/objects/M42", &obj)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if obj["name"] != "NGC1976" {
		t.Errorf("name = %v", obj["name"])
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}

func TestGetObject_Duplicate(t *testing.T) {
	h := newTestRouter(t)

	var obj map[string]any
	do(t, h, "/v1/objects/IC11", &obj)
	if obj["name"] != "IC0010" {
		t.Errorf("duplicate not followed: %v", obj["name"])
	}

	do(t, h, "/v1/objects/IC11?dup=true", &obj)
	if obj["name"] != "IC0011" {
		t.Errorf("dup=true should return the record: %v", obj["name"])
	}
}

func TestGetObject_Errors(t *testing.T) {
	tests := []struct {
		target string
		status int
		code   ErrorCode
	}{
		{"/v1/objects/NGC9999", http.StatusNotFound, ErrorCodeObjectNotFound},
		{"/v1/objects/XYZ1", http.StatusBadRequest, ErrorCodeUnknownCatalog},
		{"/v1/objects/NGC12345", http.StatusBadRequest, ErrorCodeFormat},
		{"/v1/objects/NGC1?dup=maybe", http.StatusBadRequest, ErrorCodeBadRequest},
	}
	h := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var resp ErrorResponse
			rr := do(t, h, tt.target, &resp)
			if rr.Code != tt.status {
				t.Errorf("status = %d, want %d", rr.Code, tt.status)
			}
			if resp.Code != tt.code {
				t.Errorf("code = %s, want %s", resp.Code, tt.code)
			}
		})
	}
}

func TestGetObject_UnknownCatalogHint(t *testing.T) {
	var resp ErrorResponse
	do(t, newTestRouter(t), "/v1/objects/XYZ1", &resp)
	if resp.Hint == "" {
		t.Error("expected a hint listing accepted prefixes")
	}
}

func TestListObjects(t *testing.T) {
	h := newTestRouter(t)

	var resp listing
	rr := do(t, h, "/v1/objects?catalog=NGC&type=G&constellation=Aql,Boo&max_vmag=10", &resp)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp.Total != 1 || resp.Items[0]["name"] != "NGC5248" {
		t.Errorf("unexpected listing: %+v", resp)
	}
}

func TestListObjects_RepeatedAndBoolParams(t *testing.T) {
	h := newTestRouter(t)

	var raw listing
	do(t, h, "/v1/objects?constellation=Tau&constellation=Ori&with_name=true", &raw)
	if raw.Total != 3 {
		t.Fatalf("total = %d, want 3", raw.Total)
	}
	want := []string{"NGC1952", "NGC1976", "Mel022"}
	for i, w := range want {
		if raw.Items[i]["name"] != w {
			t.Errorf("item %d = %v, want %s", i, raw.Items[i]["name"], w)
		}
	}
}

func TestListObjects_InvalidCriteria(t *testing.T) {
	h := newTestRouter(t)

	var resp ErrorResponse
	rr := do(t, h, "/v1/objects?type=Blob", &resp)
	if rr.Code != http.StatusBadRequest || resp.Code != ErrorCodeInvalidCriteria {
		t.Errorf("got %d %s", rr.Code, resp.Code)
	}

	for _, target := range []string{
		"/v1/objects?min_size=big",
		"/v1/objects?max_vmag=bright",
		"/v1/objects?addendum=maybe",
		"/v1/objects?group=stars",
	} {
		resp = ErrorResponse{}
		rr = do(t, h, target, &resp)
		if rr.Code != http.StatusBadRequest || resp.Code != ErrorCodeInvalidCriteria {
			t.Errorf("%s: got %d %s", target, rr.Code, resp.Code)
		}
	}
}

func TestListObjects_GroupAndAddendum(t *testing.T) {
	h := newTestRouter(t)

	var resp listing
	rr := do(t, h, "/v1/objects?group=clusters&addendum=false", &resp)
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if resp.Total != 2 || resp.Items[0]["name"] != "NGC1976" || resp.Items[1]["name"] != "NGC6709" {
		t.Errorf("unexpected listing %+v", resp)
	}

	resp = listing{}
	do(t, h, "/v1/objects?addendum=true", &resp)
	if resp.Total != 1 || resp.Items[0]["name"] != "Mel022" {
		t.Errorf("unexpected addendum listing %+v", resp)
	}
}

func TestNearby(t *testing.T) {
	h := newTestRouter(t)

	var resp struct {
		Center string `json:"center"`
		Items  []struct {
			Object   map[string]any `json:"object"`
			Distance float64        `json:"distance_deg"`
		} `json:"items"`
		Total int `json:"total"`
	}
	rr := do(t, h, "/v1/nearby?ra=11:08:44&dec=-00:09:01.3", &resp)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp.Total != 3 || resp.Items[0].Object["name"] != "IC0673" {
		t.Errorf("unexpected hits: %+v", resp.Items)
	}

	rr = do(t, h, "/v1/nearby?ra=11:08:44&dec=+00:09:01.3&radius=30", &resp)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp.Total != 1 {
		t.Errorf("expected one hit north of the equator, got %d", resp.Total)
	}
}

func TestNearby_Errors(t *testing.T) {
	tests := []struct {
		target string
		code   ErrorCode
	}{
		{"/v1/nearby?ra=11:08:44", ErrorCodeBadRequest},
		{"/v1/nearby?ra=25:00:00&dec=-00:09:01", ErrorCodeFormat},
		{"/v1/nearby?ra=11:08:44&dec=-00:09:01&radius=601", ErrorCodeInvalidCriteria},
		{"/v1/nearby?ra=11:08:44&dec=-00:09:01&catalog=UGC", ErrorCodeInvalidCriteria},
	}
	h := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var resp ErrorResponse
			rr := do(t, h, tt.target, &resp)
			if rr.Code != http.StatusBadRequest || resp.Code != tt.code {
				t.Errorf("got %d %s, want 400 %s", rr.Code, resp.Code, tt.code)
			}
		})
	}
}

func TestNeighbors(t *testing.T) {
	h := newTestRouter(t)

	var raw struct {
		Center string `json:"center"`
		Total  int    `json:"total"`
	}
	rr := do(t, h, "/v1/objects/NGC521/neighbors?radius=15", &raw)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if raw.Total != 2 || raw.Center != "NGC521" {
		t.Errorf("neighbors = %+v, want 2 around NGC521", raw)
	}

	var errResp ErrorResponse
	rr = do(t, h, "/v1/objects/IC1064/neighbors", &errResp)
	if rr.Code != http.StatusBadRequest || errResp.Code != ErrorCodeNoCoordinates {
		t.Errorf("got %d %s", rr.Code, errResp.Code)
	}
}

func TestSeparation(t *testing.T) {
	h := newTestRouter(t)

	var resp SeparationResponse
	rr := do(t, h, "/v1/separation?from=NGC521&to=IC1694", &resp)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if resp.Angular < 0.13 || resp.Angular > 0.14 {
		t.Errorf("angular = %f", resp.Angular)
	}
	if resp.Text == "" {
		t.Errorf("text = %q", resp.Text)
	}

	var errResp ErrorResponse
	rr = do(t, h, "/v1/separation?from=NGC521", &errResp)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, "secret")

	var health HealthResponse
	rr := do(t, h, "/health", &health)
	if rr.Code != http.StatusOK || health.Status != "ok" || health.Checks["catalog"] != "ok" {
		t.Errorf("health = %d %+v", rr.Code, health)
	}

	rr = do(t, h, "/metrics", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("metrics status = %d", rr.Code)
	}

	rr = do(t, h, "/v1/objects/NGC1", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("api routes must require the key, got %d", rr.Code)
	}
}

func TestReadOnly(t *testing.T) {
	h := newTestRouter(t)
	req := httptest.NewRequest(http.MethodDelete, "/v1/objects/NGC1", http.NoBody)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d", rr.Code)
	}
}
