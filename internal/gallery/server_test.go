package gallery

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
	gallerydb "github.com/weiinsight/portfolio/internal/gallery/db"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestServer はテスト用のギャラリーサーバーをインメモリSQLiteで構築する。
// JWTミドルウェアは適用せず、編集系ルートも直接登録する。
func setupTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
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
		queries: gallerydb.New(sqlDB),
		db:      sqlDB,
	}

	api := router.Group("/api/v1")
	{
		api.GET("/categories", s.handleListCategories())
		api.GET("/categories/:id/series", s.handleListSeries())
		api.GET("/series/:id/artworks", s.handleListArtworks())
		api.GET("/artworks/:id", s.handleGetArtwork())

		api.POST("/categories", s.handleCreateCategory())
		api.PUT("/categories/:id", s.handleUpdateCategory())
		api.DELETE("/categories/:id", s.handleDeleteCategory())
		api.POST("/categories/reorder", s.handleReorderCategories())

		api.POST("/series", s.handleCreateSeries())
		api.PUT("/series/:id", s.handleUpdateSeries())
		api.DELETE("/series/:id", s.handleDeleteSeries())
		api.POST("/series/reorder", s.handleReorderSeries())

		api.POST("/artworks", s.handleCreateArtwork())
		api.PUT("/artworks/:id", s.handleUpdateArtwork())
		api.DELETE("/artworks/:id", s.handleDeleteArtwork())
		api.POST("/artworks/reorder", s.handleReorderArtworks())
	}
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gallery"})
	})

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

// createCategory はテスト用にカテゴリーを作成しIDを返すヘルパー関数。
func createCategory(t *testing.T, router *gin.Engine, name, slug string) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/v1/categories", map[string]string{"name": name, "slug": slug})
	if w.Code != http.StatusCreated {
		t.Fatalf("カテゴリー作成に失敗: status=%d, body=%s", w.Code, w.Body.String())
	}
	return parseJSON(t, w)["id"].(string)
}

// createSeries はテスト用にシリーズを作成しIDを返すヘルパー関数。
func createSeries(t *testing.T, router *gin.Engine, categoryID, title string) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/v1/series", map[string]string{"category_id": categoryID, "title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("シリーズ作成に失敗: status=%d, body=%s", w.Code, w.Body.String())
	}
	return parseJSON(t, w)["id"].(string)
}

// createArtwork はテスト用に作品を作成しIDを返すヘルパー関数。
func createArtwork(t *testing.T, router *gin.Engine, seriesID, title string) string {
	t.Helper()
	w := doRequest(router, http.MethodPost, "/api/v1/artworks", map[string]string{"series_id": seriesID, "title": title})
	if w.Code != http.StatusCreated {
		t.Fatalf("作品作成に失敗: status=%d, body=%s", w.Code, w.Body.String())
	}
	return parseJSON(t, w)["id"].(string)
}

// TestHealthCheck はヘルスチェックエンドポイントの正常動作を検証する。
func TestHealthCheck(t *testing.T) {
	t.Parallel()

	_, router := setupTestServer(t)

	w := doRequest(router, http.MethodGet, "/health", nil)

	if w.Code != http.StatusOK {
		t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
	}
}

// TestCategoryCRUD はカテゴリーの作成・一覧・更新・削除を検証する。
func TestCategoryCRUD(t *testing.T) {
	t.Parallel()

	t.Run("作成したカテゴリーが追加順に並ぶこと", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		createCategory(t, router, "Paintings", "paintings")
		createCategory(t, router, "Sculptures", "sculptures")
		createCategory(t, router, "Prints", "prints")

		w := doRequest(router, http.MethodGet, "/api/v1/categories", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}

		list := parseJSONArray(t, w)
		if len(list) != 3 {
			t.Fatalf("カテゴリー数 = %d, want 3", len(list))
		}
		wantNames := []string{"Paintings", "Sculptures", "Prints"}
		for i, item := range list {
			if item["name"] != wantNames[i] {
				t.Errorf("list[%d].name = %v, want %v", i, item["name"], wantNames[i])
			}
			if item["order"] != float64(i) {
				t.Errorf("list[%d].order = %v, want %d", i, item["order"], i)
			}
		}
	})

	t.Run("必須フィールドが欠けた作成リクエストは400になること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/v1/categories", map[string]string{"name": "Paintings"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("カテゴリーを更新できること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)
		id := createCategory(t, router, "Paintings", "paintings")

		w := doRequest(router, http.MethodPut, "/api/v1/categories/"+id, map[string]string{"name": "Oil Paintings", "slug": "oil-paintings"})
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/categories", nil))
		if list[0]["name"] != "Oil Paintings" {
			t.Errorf("更新後のname = %v, want %q", list[0]["name"], "Oil Paintings")
		}
	})

	t.Run("存在しないカテゴリーの更新は404になること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPut, "/api/v1/categories/no-such-id", map[string]string{"name": "X", "slug": "x"})
		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("カテゴリー削除で配下のシリーズと作品もカスケード削除されること", func(t *testing.T) {
		t.Parallel()

		s, router := setupTestServer(t)

		categoryID := createCategory(t, router, "Paintings", "paintings")
		seriesID := createSeries(t, router, categoryID, "Landscapes")
		artworkID := createArtwork(t, router, seriesID, "Sunrise")

		w := doRequest(router, http.MethodDelete, "/api/v1/categories/"+categoryID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}

		if _, err := s.queries.GetSeriesByID(t.Context(), seriesID); err != sql.ErrNoRows {
			t.Errorf("シリーズが削除されていない: err=%v", err)
		}
		if _, err := s.queries.GetArtworkByID(t.Context(), artworkID); err != sql.ErrNoRows {
			t.Errorf("作品が削除されていない: err=%v", err)
		}
	})
}

// TestSeriesAndArtworks はシリーズと作品の階層管理を検証する。
func TestSeriesAndArtworks(t *testing.T) {
	t.Parallel()

	t.Run("存在しないカテゴリーへのシリーズ作成は400になること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodPost, "/api/v1/series", map[string]string{"category_id": "no-such-id", "title": "X"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("シリーズ配下の作品が追加順に取得できること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		categoryID := createCategory(t, router, "Paintings", "paintings")
		seriesID := createSeries(t, router, categoryID, "Landscapes")
		createArtwork(t, router, seriesID, "Sunrise")
		createArtwork(t, router, seriesID, "Sunset")

		w := doRequest(router, http.MethodGet, "/api/v1/series/"+seriesID+"/artworks", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}

		list := parseJSONArray(t, w)
		if len(list) != 2 {
			t.Fatalf("作品数 = %d, want 2", len(list))
		}
		if list[0]["title"] != "Sunrise" || list[1]["title"] != "Sunset" {
			t.Errorf("作品の並び順が不正: %v", list)
		}
	})

	t.Run("存在しない作品の取得は404になること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		w := doRequest(router, http.MethodGet, "/api/v1/artworks/no-such-id", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

// TestReorder はドラッグ&ドロップによる並び替えの永続化を検証する。
func TestReorder(t *testing.T) {
	t.Parallel()

	t.Run("指定した順序がそのまま表示順として保存されること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		id1 := createCategory(t, router, "A", "a")
		id2 := createCategory(t, router, "B", "b")
		id3 := createCategory(t, router, "C", "c")

		w := doRequest(router, http.MethodPost, "/api/v1/categories/reorder", map[string]any{"ids": []string{id3, id1, id2}})
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, body=%s", w.Code, w.Body.String())
		}

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/categories", nil))
		wantIDs := []string{id3, id1, id2}
		for i, item := range list {
			if item["id"] != wantIDs[i] {
				t.Errorf("list[%d].id = %v, want %v", i, item["id"], wantIDs[i])
			}
		}
	})

	t.Run("存在しないIDを含む並び替えは400になり全体が巻き戻ること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		id1 := createCategory(t, router, "A", "a")
		id2 := createCategory(t, router, "B", "b")

		w := doRequest(router, http.MethodPost, "/api/v1/categories/reorder", map[string]any{"ids": []string{id2, "no-such-id", id1}})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusBadRequest)
		}

		// トランザクションが巻き戻り、元の順序が保たれていること。
		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/categories", nil))
		if list[0]["id"] != id1 || list[1]["id"] != id2 {
			t.Errorf("並び順が巻き戻っていない: %v", list)
		}
	})

	t.Run("作品の並び替えも同じ契約で動作すること", func(t *testing.T) {
		t.Parallel()

		_, router := setupTestServer(t)

		categoryID := createCategory(t, router, "Paintings", "paintings")
		seriesID := createSeries(t, router, categoryID, "Landscapes")
		a1 := createArtwork(t, router, seriesID, "One")
		a2 := createArtwork(t, router, seriesID, "Two")

		w := doRequest(router, http.MethodPost, "/api/v1/artworks/reorder", map[string]any{"ids": []string{a2, a1}})
		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, body=%s", w.Code, w.Body.String())
		}

		list := parseJSONArray(t, doRequest(router, http.MethodGet, "/api/v1/series/"+seriesID+"/artworks", nil))
		if list[0]["id"] != a2 || list[1]["id"] != a1 {
			t.Errorf("作品の並び順が更新されていない: %v", list)
		}
	})
}
