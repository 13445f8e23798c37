package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/marketplace-favorites/pkg/auth"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
	"github.com/chainsafe/marketplace-favorites/pkg/picks/service/mocks"
)

const (
	testAddressHeader = "X-Test-Address"
	listA             = "5b0c6f3e-8a52-4c1b-9d7e-2f4a6c8e0b13"
	listB             = "9a1d7c2e-3b4f-4e5a-8c6d-7e8f9a0b1c2d"
)

func newPicksTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if addr := r.Header.Get(testAddressHeader); addr != "" {
				r = r.WithContext(auth.WithAddress(r.Context(), addr))
			}
			next.ServeHTTP(w, r)
		})
	})
	RegisterRoutes(r, svc, &config.PicksConfig{DefaultLimit: 100, MaxLimit: 100, PowerThreshold: 1}, zap.NewNop())
	return r
}

func serve(handler http.Handler, method, target, body, address string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	if address != "" {
		req.Header.Set(testAddressHeader, address)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got.Error
}

func thresholdIs(want int64) any {
	return mock.MatchedBy(func(o favorites.StatsOptions) bool {
		return o.Power != nil && *o.Power == want
	})
}

func TestPicksHTTP_Stats_AnonymousUsesDefaultThreshold(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetPicksStats(mock.Anything, []string{"a", "b"}, mock.MatchedBy(func(o favorites.StatsOptions) bool {
		return o.UserAddress == "" && o.Power != nil && *o.Power == 1
	})).
		Return([]*favorites.PickStats{{ItemID: "a", Count: 2}, {ItemID: "b"}}, nil).
		Once()

	rec := serve(newPicksTestServer(svc), http.MethodGet, "/picks/stats?item_id=a&item_id=b", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got []favorites.PickStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if len(got) != 2 || got[0].Count != 2 {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestPicksHTTP_ItemStats_WithCallerAndPower(t *testing.T) {
	svc := mocks.NewService(t)
	picked := true
	svc.EXPECT().GetPicksStats(mock.Anything, []string{"item-1"}, thresholdIs(10)).
		Return([]*favorites.PickStats{{ItemID: "item-1", Count: 1, PickedByUser: &picked}}, nil).
		Once()

	rec := serve(newPicksTestServer(svc), http.MethodGet, "/picks/item-1/stats?power=10", "", caller)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var got favorites.PickStats
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got.ItemID != "item-1" || got.PickedByUser == nil || !*got.PickedByUser {
		t.Fatalf("unexpected stats: %+v", got)
	}
}

func TestPicksHTTP_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		wantMsg string
	}{
		{"stats without items", http.MethodGet, "/picks/stats", "", "item_id is required"},
		{"negative power", http.MethodGet, "/picks/item-1?power=-1", "", "invalid power"},
		{"invalid offset", http.MethodGet, "/picks/item-1?offset=x", "", "invalid offset"},
		{"invalid list id", http.MethodPost, "/picks/item-1", `{"picked_for":["nope"]}`, "invalid field PickedFor[0]: failed on uuid"},
		{
			"overlapping lists", http.MethodPost, "/picks/item-1",
			`{"picked_for":["` + listA + `"],"unpicked_from":["` + listA + `"]}`,
			"lists cannot be picked and unpicked at once: " + listA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newPicksTestServer(mocks.NewService(t))

			rec := serve(handler, tt.method, tt.target, tt.body, caller)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}
			if msg := errorMessage(t, rec); msg != tt.wantMsg {
				t.Fatalf("expected error %q, got %q", tt.wantMsg, msg)
			}
		})
	}
}

func TestPicksHTTP_PickAndUnpick(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().PickAndUnpickInBulk(mock.Anything, "item-1", favorites.BulkPick{
		PickedFor:    []string{listA},
		UnpickedFrom: []string{listB},
	}, caller).Return(nil).Once()
	handler := newPicksTestServer(svc)
	body := `{"picked_for":["` + listA + `"],"unpicked_from":["` + listB + `"]}`

	if rec := serve(handler, http.MethodPost, "/picks/item-1", body, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous: expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if rec := serve(handler, http.MethodPost, "/picks/item-1", body, caller); rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d: %s", http.StatusNoContent, rec.Code, rec.Body.String())
	}
}

func TestPicksHTTP_Pickers(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetPicksByItemID(mock.Anything, "item-1", mock.MatchedBy(func(o favorites.PickersOptions) bool {
		return o.UserAddress == "" && o.Limit == 100 && o.Offset == 10 && o.Power != nil && *o.Power == 1
	})).
		Return(&favorites.Page[*favorites.Picker]{
			Results: []*favorites.Picker{{UserAddress: caller}},
			Total:   11,
			Limit:   100,
			Offset:  10,
		}, nil).
		Once()

	rec := serve(newPicksTestServer(svc), http.MethodGet, "/picks/item-1?offset=10", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	var page favorites.Page[*favorites.Picker]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if page.Total != 11 || len(page.Results) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}
