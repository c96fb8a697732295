package site

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
	sitedb "github.com/weiinsight/portfolio/internal/site/db"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestServer はテスト用のサイトコンテンツサーバーをインメモリSQLiteで構築する。
// JWTミドルウェアは適用せず、編集系ルートも直接登録する。
func setupTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDBの作成に失敗: %v", err)
	}
	// インメモリDBは接続ごとに別のDBになるため、接続数を1に固定する。
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := initSchema(sqlDB); err != nil {
		t.Fatalf("スキーマ初期化に失敗: %v", err)
	}

	router := gin.New()
	s := &Server{
		router:  router,
		port:    "0",
		queries: sitedb.New(sqlDB),
		db:      sqlDB,
	}

	api := router.Group("/api/v1")
	{
		api.GET("/events", s.handleListEvents())
		api.GET("/exhibitions", s.handleListExhibitions())
		api.GET("/shops", s.handleListShops())
		api.GET("/settings", s.handleGetSettings())

		api.POST("/events", s.handleCreateEvent())
		api.PUT("/events/:id", s.handleUpdateEvent())
		api.DELETE("/events/:id", s.handleDeleteEvent())
		api.POST("/events/reorder", s.handleReorderEvents())

		api.POST("/exhibitions", s.handleCreateExhibition())
		api.PUT("/exhibitions/:id", s.handleUpdateExhibition())
		api.DELETE("/exhibitions/:id", s.handleDeleteExhibition())
		api.POST("/exhibitions/reorder", s.handleReorderExhibitions())

		api.POST("/shops", s.handleCreateShop())
		api.PUT("/shops/:id", s.handleUpdateShop())
		api.DELETE("/shops/:id", s.handleDeleteShop())
		api.POST("/shops/reorder", s.handleReorderShops())

		api.PUT("/settings", s.handleUpsertSetting())
	}

	return s, router
}

// doRequest はテスト用のHTTPリクエストを実行し、レスポンスを返すヘルパー関数。
func doRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewReader(jsonBytes)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// parseJSON はレスポンスボディをmapにデコードするヘルパー関数。
func parseJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSONのデコードに失敗: %v, body=%s", err, w.Body.String())
	}
	return result
}

// parseJSONArray はレスポンスボディをスライスにデコードするヘルパー関数。
func parseJSONArray(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var result []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON配列のデコードに失敗: %v, body=%s", err, w.Body.String())
	}
	return result
}

// TestEventCRUD はイベントの作成・一覧・更新・削除を検証する。
func TestEventCRUD(t *testing.T) {
	t.Parallel()

	t.Run("作成したイベントが追加順に並ぶこと", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/v1/events", map[string]string{"title": "Open Studio", "location": "Tokyo"})
		if w.Code != http.StatusCreated {
			t.Fatalf("イベント作成に失敗: status=%d, body=%s", w.Code, w.Body.String())
		}
		doRequest(router, http.MethodPost, "/api/v1/events", map[string]string{"title": "Art Fair"})

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/events", nil))
		if len(list) != 2 {
			t.Fatalf("イベント数 = %d, want 2", len(list))
		}
		if list[0]["title"] != "Open Studio" || list[1]["title"] != "Art Fair" {
			t.Errorf("イベントの並び順が不正: %v", list)
		}
	})

	t.Run("イベントを更新・削除できること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/v1/events", map[string]string{"title": "Open Studio"})
		id := parseJSON(t, w)["id"].(string)

		w = doRequest(router, http.MethodPut, "/api/v1/events/"+id, map[string]string{"title": "Open Studio 2026", "location": "Osaka"})
		if w.Code != http.StatusOK {
			t.Fatalf("更新ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/events", nil))
		if list[0]["title"] != "Open Studio 2026" || list[0]["location"] != "Osaka" {
			t.Errorf("更新が反映されていない: %v", list[0])
		}

		w = doRequest(router, http.MethodDelete, "/api/v1/events/"+id, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("削除ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}

		list = parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/events", nil))
		if len(list) != 0 {
			t.Errorf("削除後のイベント数 = %d, want 0", len(list))
		}
	})

	t.Run("存在しないイベントの更新は404になること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPut, "/api/v1/events/no-such-id", map[string]string{"title": "X"})
		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

// TestExhibitionsAndShops は展示歴と取扱店のCRUDを検証する。
func TestExhibitionsAndShops(t *testing.T) {
	t.Parallel()

	t.Run("展示歴を作成して一覧できること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/v1/exhibitions", map[string]any{"title": "Solo Show", "venue": "Gallery A", "year": 2025})
		if w.Code != http.StatusCreated {
			t.Fatalf("展示歴作成に失敗: status=%d, body=%s", w.Code, w.Body.String())
		}

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/exhibitions", nil))
		if len(list) != 1 || list[0]["title"] != "Solo Show" || list[0]["year"] != float64(2025) {
			t.Errorf("展示歴一覧が不正: %v", list)
		}
	})

	t.Run("取扱店の並び替えができること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/v1/shops", map[string]string{"name": "Shop A"})
		id1 := parseJSON(t, w)["id"].(string)
		w = doRequest(router, http.MethodPost, "/api/v1/shops", map[string]string{"name": "Shop B"})
		id2 := parseJSON(t, w)["id"].(string)

		w = doRequest(router, http.MethodPost, "/api/v1/shops/reorder", map[string]any{"ids": []string{id2, id1}})
		if w.Code != http.StatusOK {
			t.Fatalf("並び替えに失敗: status=%d, body=%s", w.Code, w.Body.String())
		}

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/shops", nil))
		if list[0]["id"] != id2 || list[1]["id"] != id1 {
			t.Errorf("取扱店の並び順が更新されていない: %v", list)
		}
	})
}

// TestSettings はサイト設定のアップサートとセクション単位の取得を検証する。
func TestSettings(t *testing.T) {
	t.Parallel()

	t.Run("設定を保存してセクション単位で取得できること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		doRequest(router, http.MethodPut, "/api/v1/settings", map[string]string{"section": "about", "key": "bio", "value": "painter"})
		doRequest(router, http.MethodPut, "/api/v1/settings", map[string]string{"section": "about", "key": "statement", "value": "hello"})
		doRequest(router, http.MethodPut, "/api/v1/settings", map[string]string{"section": "home", "key": "hero", "value": "x"})

		w := doRequest(router, http.MethodGet, "/api/v1/settings?section=about", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
		result := parseJSON(t, w)
		if len(result) != 2 || result["bio"] != "painter" || result["statement"] != "hello" {
			t.Errorf("aboutセクションの設定が不正: %v", result)
		}
	})

	t.Run("同じキーへの保存で値が上書きされること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		doRequest(router, http.MethodPut, "/api/v1/settings", map[string]string{"section": "about", "key": "bio", "value": "old"})
		doRequest(router, http.MethodPut, "/api/v1/settings", map[string]string{"section": "about", "key": "bio", "value": "new"})

		result := parseJSON(t, doRequest(router, http.MethodGet, "/api/v1/settings?section=about", nil))
		if result["bio"] != "new" {
			t.Errorf("bio = %v, want %q", result["bio"], "new")
		}
	})

	t.Run("sectionクエリパラメータが無い場合は400になること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodGet, "/api/v1/settings", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
