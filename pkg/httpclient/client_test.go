package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// echoRequest はテスト用サーバーが受け取ったリクエストの記録。
type echoRequest struct {
	method      string
	path        string
	contentType string
	authz       string
	body        string
}

// newEchoServer は受け取ったリクエストを記録し、指定のステータスとボディを返す
// テスト用HTTPサーバーを起動する。
func newEchoServer(t *testing.T, status int, respBody string) (*httptest.Server, *echoRequest) {
	t.Helper()

	got := &echoRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("リクエストボディの読み取りに失敗: %v", err)
		}
		got.method = r.Method
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		got.authz = r.Header.Get("Authorization")
		got.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(respBody))
	}))
	t.Cleanup(server.Close)

	return server, got
}

func TestPostJSON(t *testing.T) {
	t.Parallel()

	t.Run("正常系_JSONボディがPOSTされレスポンスがデコードされること", func(t *testing.T) {
		t.Parallel()

		server, got := newEchoServer(t, http.StatusOK, `{"id":"email-1"}`)
		client := New(server.URL)

		var result map[string]string
		err := client.PostJSON(context.Background(), "/emails", map[string]string{"subject": "hello"}, &result)
		if err != nil {
			t.Fatalf("PostJSON() error = %v", err)
		}

		if got.method != http.MethodPost {
			t.Errorf("メソッド = %q, want %q", got.method, http.MethodPost)
		}
		if got.path != "/emails" {
			t.Errorf("パス = %q, want %q", got.path, "/emails")
		}
		if got.contentType != "application/json" {
			t.Errorf("Content-Type = %q, want %q", got.contentType, "application/json")
		}

		var sent map[string]string
		if err := json.Unmarshal([]byte(got.body), &sent); err != nil {
			t.Fatalf("送信ボディのデコードに失敗: %v", err)
		}
		if sent["subject"] != "hello" {
			t.Errorf("送信ボディ = %v, want subject=hello", sent)
		}
		if result["id"] != "email-1" {
			t.Errorf("レスポンス = %v, want id=email-1", result)
		}
	})

	t.Run("異常系_非2xxレスポンスはエラーになること", func(t *testing.T) {
		t.Parallel()

		server, _ := newEchoServer(t, http.StatusUnprocessableEntity, `{"message":"invalid"}`)
		client := New(server.URL)

		err := client.PostJSON(context.Background(), "/emails", map[string]string{}, nil)
		if err == nil {
			t.Fatal("非2xxレスポンスでエラーが返らない")
		}
	})

	t.Run("異常系_レスポンスが不正なJSONの場合エラーになること", func(t *testing.T) {
		t.Parallel()

		server, _ := newEchoServer(t, http.StatusOK, `{"broken`)
		client := New(server.URL)

		var result map[string]string
		if err := client.PostJSON(context.Background(), "/emails", nil, &result); err == nil {
			t.Fatal("不正なJSONレスポンスでエラーが返らない")
		}
	})

	t.Run("異常系_接続先に到達できない場合エラーになること", func(t *testing.T) {
		t.Parallel()

		// 起動後すぐに閉じたサーバーのURLで到達不能を再現する
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close()

		client := New(server.URL)
		if err := client.PostJSON(context.Background(), "/emails", nil, nil); err == nil {
			t.Fatal("到達不能な接続先でエラーが返らない")
		}
	})
}

func TestPostForm(t *testing.T) {
	t.Parallel()

	t.Run("正常系_フォームエンコードされたボディがPOSTされること", func(t *testing.T) {
		t.Parallel()

		server, got := newEchoServer(t, http.StatusOK, `{"success":true}`)
		client := New(server.URL)

		values := url.Values{}
		values.Set("secret", "sec-1")
		values.Set("response", "tok-1")

		var result map[string]any
		err := client.PostForm(context.Background(), "/turnstile/v0/siteverify", values, &result)
		if err != nil {
			t.Fatalf("PostForm() error = %v", err)
		}

		if got.contentType != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q, want %q", got.contentType, "application/x-www-form-urlencoded")
		}

		sent, err := url.ParseQuery(got.body)
		if err != nil {
			t.Fatalf("送信ボディのパースに失敗: %v", err)
		}
		if sent.Get("secret") != "sec-1" || sent.Get("response") != "tok-1" {
			t.Errorf("送信ボディ = %q, want secret=sec-1&response=tok-1", got.body)
		}
		if result["success"] != true {
			t.Errorf("レスポンス = %v, want success=true", result)
		}
	})
}

func TestGetJSON(t *testing.T) {
	t.Parallel()

	t.Run("正常系_GETリクエストが送信されレスポンスがデコードされること", func(t *testing.T) {
		t.Parallel()

		server, got := newEchoServer(t, http.StatusOK, `{"status":"ok"}`)
		client := New(server.URL)

		var result map[string]string
		if err := client.GetJSON(context.Background(), "/health", &result); err != nil {
			t.Fatalf("GetJSON() error = %v", err)
		}

		if got.method != http.MethodGet {
			t.Errorf("メソッド = %q, want %q", got.method, http.MethodGet)
		}
		if result["status"] != "ok" {
			t.Errorf("レスポンス = %v, want status=ok", result)
		}
	})
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	t.Run("正常系_NewWithTokenはBearerヘッダーを設定すること", func(t *testing.T) {
		t.Parallel()

		server, got := newEchoServer(t, http.StatusOK, `{}`)
		client := NewWithToken(server.URL, "api-key-1")

		if err := client.PostJSON(context.Background(), "/emails", nil, nil); err != nil {
			t.Fatalf("PostJSON() error = %v", err)
		}
		if got.authz != "Bearer api-key-1" {
			t.Errorf("Authorizationヘッダー = %q, want %q", got.authz, "Bearer api-key-1")
		}
	})

	t.Run("正常系_Newで生成した場合はAuthorizationヘッダーを設定しないこと", func(t *testing.T) {
		t.Parallel()

		server, got := newEchoServer(t, http.StatusOK, `{}`)
		client := New(server.URL)

		if err := client.GetJSON(context.Background(), "/health", nil); err != nil {
			t.Fatalf("GetJSON() error = %v", err)
		}
		if got.authz != "" {
			t.Errorf("Authorizationヘッダー = %q, want 空", got.authz)
		}
	})
}
