package console_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-console/internal/console"

	"github.com/stretchr/testify/assert"
)

func TestClient_List(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards window and criteria and trusts the server total", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/employees", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			assert.Equal(t, "jane", r.URL.Query().Get("search"))
			assert.Equal(t, "active", r.URL.Query().Get("status"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"content":[{"id":"e1","fullName":"Jane Doe","userId":42}],"totalElements":37}}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		rows, total, err := client.List(ctx, console.FetchQuery{
			Page: 2, Limit: 10, Search: "jane", Status: "active",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(37), total)
		assert.Len(t, rows, 1)
		assert.Equal(t, "Jane Doe", rows[0].FullName)
		assert.Equal(t, int64(42), rows[0].UserID)
	})

	t.Run("server message is surfaced verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"You do not have access to this resource"}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		_, _, err := client.List(ctx, console.FetchQuery{Page: 1, Limit: 10})

		var apiErr *console.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "You do not have access to this resource", apiErr.Message)
		assert.Equal(t, http.StatusForbidden, apiErr.Status)
	})

	t.Run("bodies without a message fall back to the generic text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`oops`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		_, _, err := client.List(ctx, console.FetchQuery{Page: 1, Limit: 10})

		var apiErr *console.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Request failed, please try again", apiErr.Message)
	})
}

func TestClient_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("submits a multipart form with the photo attached", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "Jane Doe", r.FormValue("full_name"))

			file, header, err := r.FormFile("photo")
			assert.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "jane.png", header.Filename)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"data":{"id":"e1","full_name":"Jane Doe"}}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		rec, err := client.Create(ctx,
			map[string]string{"full_name": "Jane Doe", "user_id": "42"},
			&console.Photo{Filename: "jane.png", Reader: strings.NewReader("png-bytes")},
		)

		assert.NoError(t, err)
		assert.Equal(t, "e1", rec.ID)
	})
}

func TestClient_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("without a photo it sends plain JSON over PUT", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/employees/e1", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"id":"e1","full_name":"Jane Roe"}}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		rec, err := client.Update(ctx, "e1", map[string]string{"full_name": "Jane Roe"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Roe", rec.FullName)
	})

	t.Run("with a photo it tunnels through POST with the override field", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, http.MethodPut, r.FormValue("_method"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data":{"id":"e1"}}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		_, err := client.Update(ctx, "e1",
			map[string]string{"full_name": "Jane Roe"},
			&console.Photo{Filename: "jane.png", Reader: strings.NewReader("png-bytes")},
		)

		assert.NoError(t, err)
	})
}

func TestClient_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success on 200", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/employees/e2", r.URL.Path)
			w.Write([]byte(`{"data":{"deleted":true}}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		assert.NoError(t, client.Delete(ctx, "e2"))
	})

	t.Run("failure carries the server message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Employee not found"}`))
		}))
		defer srv.Close()

		client := console.NewClient(srv.URL)
		err := client.Delete(ctx, "missing")

		var apiErr *console.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Employee not found", apiErr.Message)
	})
}
