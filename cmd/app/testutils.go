package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sushihentaime/pressroom/internal/categoryservice"
	"github.com/sushihentaime/pressroom/internal/common"
	"github.com/sushihentaime/pressroom/internal/postservice"
)

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

func newTestApplication(t *testing.T) (*application, *sql.DB) {
	db := common.TestDB("file://../../migrations", t)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := &Config{
		Port:        ":4000",
		Environment: "test",
		Version:     "test",
	}

	app := &application{
		config:          cfg,
		logger:          logger,
		categoryService: categoryservice.NewCategoryService(db),
		postService:     postservice.NewPostService(db),
	}

	return app, db
}

// do sends a JSON request and returns the status code and raw body. Callers
// unmarshal the body into whatever shape they expect.
func (ts *testServer) do(t *testing.T, method, path string, payload any) (int, []byte) {
	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatal(err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Client().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(err)
	}

	return res.StatusCode, responseBody
}

func (ts *testServer) get(t *testing.T, path string) (int, []byte) {
	return ts.do(t, http.MethodGet, path, nil)
}

func (ts *testServer) post(t *testing.T, path string, payload any) (int, []byte) {
	return ts.do(t, http.MethodPost, path, payload)
}

func (ts *testServer) put(t *testing.T, path string, payload any) (int, []byte) {
	return ts.do(t, http.MethodPut, path, payload)
}

func (ts *testServer) delete(t *testing.T, path string) (int, []byte) {
	return ts.do(t, http.MethodDelete, path, nil)
}
