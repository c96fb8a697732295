package site

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
	sitedb "github.com/weiinsight/portfolio/internal/site/db"
	"github.com/weiinsight/portfolio/pkg/middleware"
)

// Server はサイトコンテンツサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *sitedb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
}

// NewServer は新しいサイトコンテンツサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
func NewServer(port string) (*Server, error) {
	dbPath := getEnvOr("SITE_DB_PATH", "/data/site.db")
	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router:  router,
		port:    port,
		queries: sitedb.New(sqlDB),
		db:      sqlDB,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// 閲覧系は公開サイトから直接呼ばれるため認証不要。編集系はJWT認証を要求する。
func (s *Server) setupRoutes() {
	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")

	api := s.router.Group("/api/v1")
	{
		// 閲覧系（認証不要）
		api.GET("/events", s.handleListEvents())
		api.GET("/exhibitions", s.handleListExhibitions())
		api.GET("/shops", s.handleListShops())
		api.GET("/settings", s.handleGetSettings())
	}

	admin := s.router.Group("/api/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	{
		admin.POST("/events", s.handleCreateEvent())
		admin.PUT("/events/:id", s.handleUpdateEvent())
		admin.DELETE("/events/:id", s.handleDeleteEvent())
		admin.POST("/events/reorder", s.handleReorderEvents())

		admin.POST("/exhibitions", s.handleCreateExhibition())
		admin.PUT("/exhibitions/:id", s.handleUpdateExhibition())
		admin.DELETE("/exhibitions/:id", s.handleDeleteExhibition())
		admin.POST("/exhibitions/reorder", s.handleReorderExhibitions())

		admin.POST("/shops", s.handleCreateShop())
		admin.PUT("/shops/:id", s.handleUpdateShop())
		admin.DELETE("/shops/:id", s.handleDeleteShop())
		admin.POST("/shops/reorder", s.handleReorderShops())

		admin.PUT("/settings", s.handleUpsertSetting())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "site"})
	})
}

// eventResponse はイベントのJSONレスポンス構造。
type eventResponse struct {
	// ID はイベントの一意識別子。
	ID string `json:"id"`
	// Title はイベント名。
	Title string `json:"title"`
	// Location は開催場所。
	Location string `json:"location"`
	// StartsOn は開始日。
	StartsOn string `json:"starts_on"`
	// EndsOn は終了日。
	EndsOn string `json:"ends_on"`
	// Description はイベントの説明。
	Description string `json:"description"`
	// Order は表示順。
	Order int64 `json:"order"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// exhibitionResponse は展示歴のJSONレスポンス構造。
type exhibitionResponse struct {
	// ID は展示歴の一意識別子。
	ID string `json:"id"`
	// Title は展示タイトル。
	Title string `json:"title"`
	// Venue は会場。
	Venue string `json:"venue"`
	// Year は開催年。
	Year int64 `json:"year"`
	// Description は展示の説明。
	Description string `json:"description"`
	// Order は表示順。
	Order int64 `json:"order"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// shopResponse は取扱店のJSONレスポンス構造。
type shopResponse struct {
	// ID は取扱店の一意識別子。
	ID string `json:"id"`
	// Name は店名。
	Name string `json:"name"`
	// URL は店舗サイトのURL。
	URL string `json:"url"`
	// City は所在地。
	City string `json:"city"`
	// Order は表示順。
	Order int64 `json:"order"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// handleListEvents は全イベントを表示順に返すハンドラを返す。
func (s *Server) handleListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := s.queries.ListEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events."})
			log.Printf("イベント一覧取得エラー: %v", err)
			return
		}

		responses := make([]eventResponse, 0, len(events))
		for _, e := range events {
			responses = append(responses, eventResponse{
				ID:          e.ID,
				Title:       e.Title,
				Location:    e.Location,
				StartsOn:    e.StartsOn,
				EndsOn:      e.EndsOn,
				Description: e.Description,
				Order:       e.DisplayOrder,
				UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleListExhibitions は全展示歴を表示順に返すハンドラを返す。
func (s *Server) handleListExhibitions() gin.HandlerFunc {
	return func(c *gin.Context) {
		exhibitions, err := s.queries.ListExhibitions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exhibitions."})
			log.Printf("展示歴一覧取得エラー: %v", err)
			return
		}

		responses := make([]exhibitionResponse, 0, len(exhibitions))
		for _, e := range exhibitions {
			responses = append(responses, exhibitionResponse{
				ID:          e.ID,
				Title:       e.Title,
				Venue:       e.Venue,
				Year:        e.Year,
				Description: e.Description,
				Order:       e.DisplayOrder,
				UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleListShops は全取扱店を表示順に返すハンドラを返す。
func (s *Server) handleListShops() gin.HandlerFunc {
	return func(c *gin.Context) {
		shops, err := s.queries.ListShops(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list shops."})
			log.Printf("取扱店一覧取得エラー: %v", err)
			return
		}

		responses := make([]shopResponse, 0, len(shops))
		for _, sh := range shops {
			responses = append(responses, shopResponse{
				ID:        sh.ID,
				Name:      sh.Name,
				URL:       sh.Url,
				City:      sh.City,
				Order:     sh.DisplayOrder,
				UpdatedAt: sh.UpdatedAt.Format(time.RFC3339),
			})
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleGetSettings は指定セクションの設定をキー・バリューのマップで返すハンドラを返す。
func (s *Server) handleGetSettings() gin.HandlerFunc {
	return func(c *gin.Context) {
		section := c.Query("section")
		if section == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "section query parameter is required."})
			return
		}

		settings, err := s.queries.ListSettingsBySection(c.Request.Context(), section)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings."})
			log.Printf("設定取得エラー: %v", err)
			return
		}

		result := make(map[string]string, len(settings))
		for _, st := range settings {
			result[st.Key] = st.Value
		}
		c.JSON(http.StatusOK, result)
	}
}

// createEventRequest はイベント作成リクエストのJSON構造。
type createEventRequest struct {
	// Title はイベント名。
	Title string `json:"title" binding:"required"`
	// Location は開催場所。
	Location string `json:"location"`
	// StartsOn は開始日。
	StartsOn string `json:"starts_on"`
	// EndsOn は終了日。
	EndsOn string `json:"ends_on"`
	// Description はイベントの説明。
	Description string `json:"description"`
}

// handleCreateEvent はイベントを作成するハンドラを返す。
func (s *Server) handleCreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		count, err := s.queries.CountEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event."})
			log.Printf("イベント数取得エラー: %v", err)
			return
		}

		eventID := uuid.New().String()
		if err := s.queries.CreateEvent(c.Request.Context(), sitedb.CreateEventParams{
			ID:           eventID,
			Title:        req.Title,
			Location:     req.Location,
			StartsOn:     req.StartsOn,
			EndsOn:       req.EndsOn,
			Description:  req.Description,
			DisplayOrder: count,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event."})
			log.Printf("イベント作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": eventID})
	}
}

// handleUpdateEvent はイベントを更新するハンドラを返す。
func (s *Server) handleUpdateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		rows, err := s.queries.UpdateEvent(c.Request.Context(), sitedb.UpdateEventParams{
			Title:       req.Title,
			Location:    req.Location,
			StartsOn:    req.StartsOn,
			EndsOn:      req.EndsOn,
			Description: req.Description,
			ID:          c.Param("id"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event."})
			log.Printf("イベント更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event updated."})
	}
}

// handleDeleteEvent はイベントを削除するハンドラを返す。
func (s *Server) handleDeleteEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.queries.DeleteEvent(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event."})
			log.Printf("イベント削除エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Event deleted."})
	}
}

// createExhibitionRequest は展示歴作成リクエストのJSON構造。
type createExhibitionRequest struct {
	// Title は展示タイトル。
	Title string `json:"title" binding:"required"`
	// Venue は会場。
	Venue string `json:"venue"`
	// Year は開催年。
	Year int64 `json:"year"`
	// Description は展示の説明。
	Description string `json:"description"`
}

// handleCreateExhibition は展示歴を作成するハンドラを返す。
func (s *Server) handleCreateExhibition() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createExhibitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		count, err := s.queries.CountExhibitions(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition."})
			log.Printf("展示歴数取得エラー: %v", err)
			return
		}

		exhibitionID := uuid.New().String()
		if err := s.queries.CreateExhibition(c.Request.Context(), sitedb.CreateExhibitionParams{
			ID:           exhibitionID,
			Title:        req.Title,
			Venue:        req.Venue,
			Year:         req.Year,
			Description:  req.Description,
			DisplayOrder: count,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exhibition."})
			log.Printf("展示歴作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": exhibitionID})
	}
}

// handleUpdateExhibition は展示歴を更新するハンドラを返す。
func (s *Server) handleUpdateExhibition() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createExhibitionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		rows, err := s.queries.UpdateExhibition(c.Request.Context(), sitedb.UpdateExhibitionParams{
			Title:       req.Title,
			Venue:       req.Venue,
			Year:        req.Year,
			Description: req.Description,
			ID:          c.Param("id"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update exhibition."})
			log.Printf("展示歴更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Exhibition updated."})
	}
}

// handleDeleteExhibition は展示歴を削除するハンドラを返す。
func (s *Server) handleDeleteExhibition() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.queries.DeleteExhibition(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exhibition."})
			log.Printf("展示歴削除エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exhibition not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Exhibition deleted."})
	}
}

// createShopRequest は取扱店作成リクエストのJSON構造。
type createShopRequest struct {
	// Name は店名。
	Name string `json:"name" binding:"required"`
	// URL は店舗サイトのURL。
	URL string `json:"url"`
	// City は所在地。
	City string `json:"city"`
}

// handleCreateShop は取扱店を作成するハンドラを返す。
func (s *Server) handleCreateShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		count, err := s.queries.CountShops(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop."})
			log.Printf("取扱店数取得エラー: %v", err)
			return
		}

		shopID := uuid.New().String()
		if err := s.queries.CreateShop(c.Request.Context(), sitedb.CreateShopParams{
			ID:           shopID,
			Name:         req.Name,
			Url:          req.URL,
			City:         req.City,
			DisplayOrder: count,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shop."})
			log.Printf("取扱店作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": shopID})
	}
}

// handleUpdateShop は取扱店を更新するハンドラを返す。
func (s *Server) handleUpdateShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createShopRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		rows, err := s.queries.UpdateShop(c.Request.Context(), sitedb.UpdateShopParams{
			Name: req.Name,
			Url:  req.URL,
			City: req.City,
			ID:   c.Param("id"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shop."})
			log.Printf("取扱店更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Shop updated."})
	}
}

// handleDeleteShop は取扱店を削除するハンドラを返す。
func (s *Server) handleDeleteShop() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.queries.DeleteShop(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shop."})
			log.Printf("取扱店削除エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shop not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Shop deleted."})
	}
}

// upsertSettingRequest は設定更新リクエストのJSON構造。
type upsertSettingRequest struct {
	// Section は設定のセクション名。
	Section string `json:"section" binding:"required"`
	// Key は設定キー。
	Key string `json:"key" binding:"required"`
	// Value は設定値。
	Value string `json:"value"`
}

// handleUpsertSetting は設定を作成または上書きするハンドラを返す。
func (s *Server) handleUpsertSetting() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req upsertSettingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		if err := s.queries.UpsertSetting(c.Request.Context(), sitedb.UpsertSettingParams{
			Section: req.Section,
			Key:     req.Key,
			Value:   req.Value,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting."})
			log.Printf("設定保存エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Setting saved."})
	}
}

// reorderRequest は並び替えリクエストのJSON構造。
// idsの配列順がそのまま新しい表示順になる。
type reorderRequest struct {
	// IDs は新しい表示順に並べたIDのリスト。
	IDs []string `json:"ids" binding:"required"`
}

// handleReorderEvents はイベントの並び替えを処理するハンドラを返す。
func (s *Server) handleReorderEvents() gin.HandlerFunc {
	return s.handleReorder(func(qtx *sitedb.Queries, c *gin.Context, order int64, id string) (int64, error) {
		return qtx.SetEventOrder(c.Request.Context(), sitedb.SetEventOrderParams{DisplayOrder: order, ID: id})
	})
}

// handleReorderExhibitions は展示歴の並び替えを処理するハンドラを返す。
func (s *Server) handleReorderExhibitions() gin.HandlerFunc {
	return s.handleReorder(func(qtx *sitedb.Queries, c *gin.Context, order int64, id string) (int64, error) {
		return qtx.SetExhibitionOrder(c.Request.Context(), sitedb.SetExhibitionOrderParams{DisplayOrder: order, ID: id})
	})
}

// handleReorderShops は取扱店の並び替えを処理するハンドラを返す。
func (s *Server) handleReorderShops() gin.HandlerFunc {
	return s.handleReorder(func(qtx *sitedb.Queries, c *gin.Context, order int64, id string) (int64, error) {
		return qtx.SetShopOrder(c.Request.Context(), sitedb.SetShopOrderParams{DisplayOrder: order, ID: id})
	})
}

// handleReorder は並び替えの共通処理。1トランザクションで全件を更新し、
// 存在しないIDが含まれる場合は全体を巻き戻す。
func (s *Server) handleReorder(setOrder func(*sitedb.Queries, *gin.Context, int64, string) (int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req reorderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		tx, err := s.db.BeginTx(c.Request.Context(), nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder."})
			log.Printf("トランザクション開始エラー: %v", err)
			return
		}
		defer tx.Rollback()

		qtx := s.queries.WithTx(tx)
		for i, id := range req.IDs {
			rows, err := setOrder(qtx, c, int64(i), id)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder."})
				log.Printf("表示順更新エラー: id=%s, error=%v", id, err)
				return
			}
			if rows == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unknown id: %s", id)})
				return
			}
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder."})
			log.Printf("トランザクションコミットエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order updated."})
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
