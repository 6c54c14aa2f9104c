package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"lcsubmit/internal/testutil"
	pkgerrors "lcsubmit/pkg/errors"
)

func TestDoSendsHeadersAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.URL.Path, "/api/v1/submissions")
		testutil.AssertEqual(t, r.Header.Get("Content-Type"), "application/json")
		testutil.AssertEqual(t, r.Header.Get("Authorization"), "Bearer tok")
		testutil.AssertEqual(t, r.Header.Get("X-Trace"), "abc")
		testutil.AssertEqual(t, r.Header.Get("X-Empty"), "")
		body, _ := io.ReadAll(r.Body)
		var payload map[string]interface{}
		testutil.MustUnmarshalJSON(t, body, &payload)
		testutil.AssertEqual(t, payload["problem_id"], float64(1))
		w.Header().Set("X-Request-Id", "r-1")
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "queued")
	}))
	defer srv.Close()

	client := New(srv.URL+"/", time.Second, func() string { return "tok" })
	resp, err := client.Do(context.Background(), http.MethodPost, "/api/v1/submissions",
		map[string]string{"X-Trace": "abc", "X-Empty": ""}, []byte(`{"problem_id":1}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	testutil.AssertEqual(t, resp.StatusCode, http.StatusCreated)
	testutil.AssertEqual(t, string(resp.Body), "queued")
	testutil.AssertEqual(t, resp.Headers.Get("X-Request-Id"), "r-1")
}

func TestDoWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.Header.Get("Authorization"), "")
	}))
	defer srv.Close()

	for _, provider := range []func() string{nil, func() string { return "" }} {
		resp, err := New(srv.URL, time.Second, provider).Do(context.Background(), http.MethodGet, "/", nil, nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		testutil.AssertEqual(t, resp.StatusCode, http.StatusOK)
	}
}

func TestDoCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(srv.URL, time.Second, nil).Do(ctx, http.MethodGet, "/", nil, nil)
	testutil.AssertTrue(t, err != nil, "canceled request should fail")
}

func TestPostJSONUsesFreshIdempotencyKey(t *testing.T) {
	var mu sync.Mutex
	var keys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		testutil.AssertEqual(t, r.Method, http.MethodPost)
		testutil.AssertEqual(t, r.Header.Get("Content-Type"), "application/json")
		mu.Lock()
		keys = append(keys, r.Header.Get(IdempotencyHeader))
		mu.Unlock()
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second, nil)
	payload := map[string]interface{}{"problem_id": 1}
	first, err := client.PostJSON(context.Background(), "/api/v1/submissions", payload)
	if err != nil {
		t.Fatalf("first post failed: %v", err)
	}
	second, err := client.PostJSON(context.Background(), "/api/v1/submissions", payload)
	if err != nil {
		t.Fatalf("second post failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	testutil.AssertEqual(t, len(keys), 2)
	testutil.AssertEqual(t, keys[0], first.IdempotencyKey)
	testutil.AssertEqual(t, keys[1], second.IdempotencyKey)
	testutil.AssertTrue(t, first.IdempotencyKey != "" && first.IdempotencyKey != second.IdempotencyKey, "keys should be unique")
}

func TestPostJSONRejectsUnencodablePayload(t *testing.T) {
	_, err := New("http://judge", time.Second, nil).PostJSON(context.Background(), "/", map[string]interface{}{"f": func() {}})
	testutil.AssertTrue(t, err != nil, "func payload should fail to encode")
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		status int
		want   pkgerrors.ErrorCode
	}{
		{http.StatusOK, pkgerrors.Success},
		{http.StatusCreated, pkgerrors.Success},
		{http.StatusUnauthorized, pkgerrors.NotSignedIn},
		{http.StatusForbidden, pkgerrors.NotSignedIn},
		{http.StatusNotFound, pkgerrors.NotFound},
		{http.StatusGatewayTimeout, pkgerrors.Timeout},
		{http.StatusTooManyRequests, pkgerrors.JudgeRejected},
		{http.StatusInternalServerError, pkgerrors.JudgeRejected},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := CheckStatus(ResponseInfo{StatusCode: tt.status, Body: []byte(" detail \n")}, "problem 1")
			testutil.AssertEqual(t, pkgerrors.GetCode(err), tt.want)
			if err != nil {
				testutil.AssertEqual(t, pkgerrors.GetError(err).Details["body"], "detail")
			}
		})
	}

	err := CheckStatus(ResponseInfo{StatusCode: http.StatusNotFound}, "problem 1")
	testutil.AssertEqual(t, err.Error(), "problem 1 not found")
}
