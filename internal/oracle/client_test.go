// internal/oracle/client_test.go
package oracle

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_adapt_quiz/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Update(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: PATCHで正誤が送信される", func(t *testing.T) {
		var gotMethod, gotPath, gotToken string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotToken = r.Header.Get("access_token")
			fmt.Fprint(w, `{"Updated": true}`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		err := client.Update(context.Background(), learnerID, "ohms-law", true)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPatch, gotMethod)
		assert.Equal(t, fmt.Sprintf("/update-state/%s/ohms-law/1", learnerID), gotPath)
		assert.Equal(t, "test-key", gotToken)
	})

	t.Run("正常系: 不正解は0で送信される", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			fmt.Fprint(w, `{"Updated": true}`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		err := client.Update(context.Background(), learnerID, "ohms-law", false)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("/update-state/%s/ohms-law/0", learnerID), gotPath)
	})

	t.Run("異常系: Updated=falseは失敗扱い", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Updated": false}`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		err := client.Update(context.Background(), learnerID, "ohms-law", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})

	t.Run("異常系: 5xxレスポンス", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		err := client.Update(context.Background(), learnerID, "ohms-law", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})

	t.Run("異常系: 接続不可", func(t *testing.T) {
		client := NewHTTPClient("http://127.0.0.1:1", "test-key", 500*time.Millisecond)
		err := client.Update(context.Background(), learnerID, "ohms-law", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})
}

func TestHTTPClient_Get(t *testing.T) {
	learnerID := uuid.New()

	t.Run("正常系: 習熟度を取得する", func(t *testing.T) {
		var gotMethod, gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			fmt.Fprint(w, `{"Mastery": 0.6321}`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		level, err := client.Get(context.Background(), learnerID, "ohms-law")
		require.NoError(t, err)

		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Equal(t, fmt.Sprintf("/get-mastery/%s/ohms-law", learnerID), gotPath)
		assert.InDelta(t, 0.6321, level, 1e-9)
	})

	t.Run("正常系: 習熟度ゼロはエラーにならない", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"Mastery": 0}`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		level, err := client.Get(context.Background(), learnerID, "ohms-law")
		require.NoError(t, err)
		assert.Zero(t, level)
	})

	t.Run("異常系: 壊れたレスポンスボディ", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 5*time.Second)
		_, err := client.Get(context.Background(), learnerID, "ohms-law")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})

	t.Run("異常系: タイムアウト", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
			fmt.Fprint(w, `{"Mastery": 0.5}`)
		}))
		defer server.Close()

		client := NewHTTPClient(server.URL, "test-key", 50*time.Millisecond)
		_, err := client.Get(context.Background(), learnerID, "ohms-law")
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrOracleUnavailable)
	})
}
