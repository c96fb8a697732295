package gallery

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
	gallerydb "github.com/weiinsight/portfolio/internal/gallery/db"
	"github.com/weiinsight/portfolio/pkg/middleware"
)

// Server はギャラリーサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *gallerydb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
}

// NewServer は新しいギャラリーサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
func NewServer(port string) (*Server, error) {
	dbPath := getEnvOr("GALLERY_DB_PATH", "/data/gallery.db")
	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
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
		queries: gallerydb.New(sqlDB),
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
		api.GET("/categories", s.handleListCategories())
		api.GET("/categories/:id/series", s.handleListSeries())
		api.GET("/series/:id/artworks", s.handleListArtworks())
		api.GET("/artworks/:id", s.handleGetArtwork())
	}

	admin := s.router.Group("/api/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	{
		// カテゴリー編集
		admin.POST("/categories", s.handleCreateCategory())
		admin.PUT("/categories/:id", s.handleUpdateCategory())
		admin.DELETE("/categories/:id", s.handleDeleteCategory())
		// 並び替え
		admin.POST("/categories/reorder", s.handleReorderCategories())

		// シリーズ編集
		admin.POST("/series", s.handleCreateSeries())
		admin.PUT("/series/:id", s.handleUpdateSeries())
		admin.DELETE("/series/:id", s.handleDeleteSeries())
		admin.POST("/series/reorder", s.handleReorderSeries())

		// 作品編集
		admin.POST("/artworks", s.handleCreateArtwork())
		admin.PUT("/artworks/:id", s.handleUpdateArtwork())
		admin.DELETE("/artworks/:id", s.handleDeleteArtwork())
		admin.POST("/artworks/reorder", s.handleReorderArtworks())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gallery"})
	})
}

// categoryResponse はカテゴリーのJSONレスポンス構造。
type categoryResponse struct {
	// ID はカテゴリーの一意識別子。
	ID string `json:"id"`
	// Name はカテゴリー名。
	Name string `json:"name"`
	// Slug はURL用スラッグ。
	Slug string `json:"slug"`
	// CoverImageURL はカバー画像のURL。
	CoverImageURL string `json:"cover_image_url"`
	// Order は表示順。
	Order int64 `json:"order"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// seriesResponse はシリーズのJSONレスポンス構造。
type seriesResponse struct {
	// ID はシリーズの一意識別子。
	ID string `json:"id"`
	// CategoryID は所属カテゴリーのID。
	CategoryID string `json:"category_id"`
	// Title はシリーズ名。
	Title string `json:"title"`
	// Description はシリーズの説明。
	Description string `json:"description"`
	// Order は表示順。
	Order int64 `json:"order"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// artworkResponse は作品のJSONレスポンス構造。
type artworkResponse struct {
	// ID は作品の一意識別子。
	ID string `json:"id"`
	// SeriesID は所属シリーズのID。
	SeriesID string `json:"series_id"`
	// Title は作品タイトル。
	Title string `json:"title"`
	// Medium は画材・技法。
	Medium string `json:"medium"`
	// Dimensions は寸法。
	Dimensions string `json:"dimensions"`
	// Year は制作年。
	Year int64 `json:"year"`
	// ImageURL は作品画像のURL。
	ImageURL string `json:"image_url"`
	// ThumbnailURL はサムネイル画像のURL。
	ThumbnailURL string `json:"thumbnail_url"`
	// Order は表示順。
	Order int64 `json:"order"`
	// UpdatedAt は更新日時（RFC3339形式）。
	UpdatedAt string `json:"updated_at"`
}

// toCategoryResponse はDB行をJSONレスポンスに変換する。
func toCategoryResponse(c gallerydb.Category) categoryResponse {
	return categoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Slug:          c.Slug,
		CoverImageURL: c.CoverImageUrl,
		Order:         c.DisplayOrder,
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}

// toSeriesResponse はDB行をJSONレスポンスに変換する。
func toSeriesResponse(sr gallerydb.Series) seriesResponse {
	return seriesResponse{
		ID:          sr.ID,
		CategoryID:  sr.CategoryID,
		Title:       sr.Title,
		Description: sr.Description,
		Order:       sr.DisplayOrder,
		UpdatedAt:   sr.UpdatedAt.Format(time.RFC3339),
	}
}

// toArtworkResponse はDB行をJSONレスポンスに変換する。
func toArtworkResponse(a gallerydb.Artwork) artworkResponse {
	return artworkResponse{
		ID:           a.ID,
		SeriesID:     a.SeriesID,
		Title:        a.Title,
		Medium:       a.Medium,
		Dimensions:   a.Dimensions,
		Year:         a.Year,
		ImageURL:     a.ImageUrl,
		ThumbnailURL: a.ThumbnailUrl,
		Order:        a.DisplayOrder,
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

// handleListCategories は全カテゴリーを表示順に返すハンドラを返す。
func (s *Server) handleListCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.queries.ListCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories."})
			log.Printf("カテゴリー一覧取得エラー: %v", err)
			return
		}

		responses := make([]categoryResponse, 0, len(categories))
		for _, cat := range categories {
			responses = append(responses, toCategoryResponse(cat))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleListSeries はカテゴリー配下のシリーズを表示順に返すハンドラを返す。
func (s *Server) handleListSeries() gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID := c.Param("id")
		if _, err := s.queries.GetCategoryByID(c.Request.Context(), categoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list series."})
			log.Printf("カテゴリー取得エラー: %v", err)
			return
		}

		series, err := s.queries.ListSeriesByCategoryID(c.Request.Context(), categoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list series."})
			log.Printf("シリーズ一覧取得エラー: %v", err)
			return
		}

		responses := make([]seriesResponse, 0, len(series))
		for _, sr := range series {
			responses = append(responses, toSeriesResponse(sr))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleListArtworks はシリーズ配下の作品を表示順に返すハンドラを返す。
func (s *Server) handleListArtworks() gin.HandlerFunc {
	return func(c *gin.Context) {
		seriesID := c.Param("id")
		if _, err := s.queries.GetSeriesByID(c.Request.Context(), seriesID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Series not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list artworks."})
			log.Printf("シリーズ取得エラー: %v", err)
			return
		}

		artworks, err := s.queries.ListArtworksBySeriesID(c.Request.Context(), seriesID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list artworks."})
			log.Printf("作品一覧取得エラー: %v", err)
			return
		}

		responses := make([]artworkResponse, 0, len(artworks))
		for _, a := range artworks {
			responses = append(responses, toArtworkResponse(a))
		}
		c.JSON(http.StatusOK, responses)
	}
}

// handleGetArtwork は作品詳細を返すハンドラを返す。
func (s *Server) handleGetArtwork() gin.HandlerFunc {
	return func(c *gin.Context) {
		artwork, err := s.queries.GetArtworkByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get artwork."})
			log.Printf("作品取得エラー: %v", err)
			return
		}
		c.JSON(http.StatusOK, toArtworkResponse(artwork))
	}
}

// createCategoryRequest はカテゴリー作成リクエストのJSON構造。
type createCategoryRequest struct {
	// Name はカテゴリー名。
	Name string `json:"name" binding:"required"`
	// Slug はURL用スラッグ。
	Slug string `json:"slug" binding:"required"`
	// CoverImageURL はカバー画像のURL。
	CoverImageURL string `json:"cover_image_url"`
}

// handleCreateCategory はカテゴリーを作成するハンドラを返す。
// 表示順は既存カテゴリーの末尾になる。
func (s *Server) handleCreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		count, err := s.queries.CountCategories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category."})
			log.Printf("カテゴリー数取得エラー: %v", err)
			return
		}

		categoryID := uuid.New().String()
		if err := s.queries.CreateCategory(c.Request.Context(), gallerydb.CreateCategoryParams{
			ID:            categoryID,
			Name:          req.Name,
			Slug:          req.Slug,
			CoverImageUrl: req.CoverImageURL,
			DisplayOrder:  count,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category."})
			log.Printf("カテゴリー作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": categoryID})
	}
}

// updateCategoryRequest はカテゴリー更新リクエストのJSON構造。
type updateCategoryRequest struct {
	// Name はカテゴリー名。
	Name string `json:"name" binding:"required"`
	// Slug はURL用スラッグ。
	Slug string `json:"slug" binding:"required"`
	// CoverImageURL はカバー画像のURL。
	CoverImageURL string `json:"cover_image_url"`
}

// handleUpdateCategory はカテゴリーを更新するハンドラを返す。
func (s *Server) handleUpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		rows, err := s.queries.UpdateCategory(c.Request.Context(), gallerydb.UpdateCategoryParams{
			Name:          req.Name,
			Slug:          req.Slug,
			CoverImageUrl: req.CoverImageURL,
			ID:            c.Param("id"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category."})
			log.Printf("カテゴリー更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category updated."})
	}
}

// handleDeleteCategory はカテゴリーを削除するハンドラを返す。
// 配下のシリーズと作品も外部キーのカスケードで削除される。
func (s *Server) handleDeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.queries.DeleteCategory(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category."})
			log.Printf("カテゴリー削除エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted."})
	}
}

// createSeriesRequest はシリーズ作成リクエストのJSON構造。
type createSeriesRequest struct {
	// CategoryID は所属カテゴリーのID。
	CategoryID string `json:"category_id" binding:"required"`
	// Title はシリーズ名。
	Title string `json:"title" binding:"required"`
	// Description はシリーズの説明。
	Description string `json:"description"`
}

// handleCreateSeries はシリーズを作成するハンドラを返す。
// 表示順は同一カテゴリー内の末尾になる。
func (s *Server) handleCreateSeries() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createSeriesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		if _, err := s.queries.GetCategoryByID(c.Request.Context(), req.CategoryID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create series."})
			log.Printf("カテゴリー取得エラー: %v", err)
			return
		}

		count, err := s.queries.CountSeriesByCategoryID(c.Request.Context(), req.CategoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create series."})
			log.Printf("シリーズ数取得エラー: %v", err)
			return
		}

		seriesID := uuid.New().String()
		if err := s.queries.CreateSeries(c.Request.Context(), gallerydb.CreateSeriesParams{
			ID:           seriesID,
			CategoryID:   req.CategoryID,
			Title:        req.Title,
			Description:  req.Description,
			DisplayOrder: count,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create series."})
			log.Printf("シリーズ作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": seriesID})
	}
}

// updateSeriesRequest はシリーズ更新リクエストのJSON構造。
type updateSeriesRequest struct {
	// Title はシリーズ名。
	Title string `json:"title" binding:"required"`
	// Description はシリーズの説明。
	Description string `json:"description"`
}

// handleUpdateSeries はシリーズを更新するハンドラを返す。
func (s *Server) handleUpdateSeries() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateSeriesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		rows, err := s.queries.UpdateSeries(c.Request.Context(), gallerydb.UpdateSeriesParams{
			Title:       req.Title,
			Description: req.Description,
			ID:          c.Param("id"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update series."})
			log.Printf("シリーズ更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Series updated."})
	}
}

// handleDeleteSeries はシリーズを削除するハンドラを返す。
// 配下の作品も外部キーのカスケードで削除される。
func (s *Server) handleDeleteSeries() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.queries.DeleteSeries(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete series."})
			log.Printf("シリーズ削除エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Series not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Series deleted."})
	}
}

// createArtworkRequest は作品作成リクエストのJSON構造。
type createArtworkRequest struct {
	// SeriesID は所属シリーズのID。
	SeriesID string `json:"series_id" binding:"required"`
	// Title は作品タイトル。
	Title string `json:"title" binding:"required"`
	// Medium は画材・技法。
	Medium string `json:"medium"`
	// Dimensions は寸法。
	Dimensions string `json:"dimensions"`
	// Year は制作年。
	Year int64 `json:"year"`
	// ImageURL は作品画像のURL。
	ImageURL string `json:"image_url"`
	// ThumbnailURL はサムネイル画像のURL。
	ThumbnailURL string `json:"thumbnail_url"`
}

// handleCreateArtwork は作品を作成するハンドラを返す。
// 表示順は同一シリーズ内の末尾になる。
func (s *Server) handleCreateArtwork() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createArtworkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		if _, err := s.queries.GetSeriesByID(c.Request.Context(), req.SeriesID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Series not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork."})
			log.Printf("シリーズ取得エラー: %v", err)
			return
		}

		count, err := s.queries.CountArtworksBySeriesID(c.Request.Context(), req.SeriesID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork."})
			log.Printf("作品数取得エラー: %v", err)
			return
		}

		artworkID := uuid.New().String()
		if err := s.queries.CreateArtwork(c.Request.Context(), gallerydb.CreateArtworkParams{
			ID:           artworkID,
			SeriesID:     req.SeriesID,
			Title:        req.Title,
			Medium:       req.Medium,
			Dimensions:   req.Dimensions,
			Year:         req.Year,
			ImageUrl:     req.ImageURL,
			ThumbnailUrl: req.ThumbnailURL,
			DisplayOrder: count,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artwork."})
			log.Printf("作品作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": artworkID})
	}
}

// updateArtworkRequest は作品更新リクエストのJSON構造。
type updateArtworkRequest struct {
	// Title は作品タイトル。
	Title string `json:"title" binding:"required"`
	// Medium は画材・技法。
	Medium string `json:"medium"`
	// Dimensions は寸法。
	Dimensions string `json:"dimensions"`
	// Year は制作年。
	Year int64 `json:"year"`
	// ImageURL は作品画像のURL。
	ImageURL string `json:"image_url"`
	// ThumbnailURL はサムネイル画像のURL。
	ThumbnailURL string `json:"thumbnail_url"`
}

// handleUpdateArtwork は作品を更新するハンドラを返す。
func (s *Server) handleUpdateArtwork() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateArtworkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
			return
		}

		rows, err := s.queries.UpdateArtwork(c.Request.Context(), gallerydb.UpdateArtworkParams{
			Title:        req.Title,
			Medium:       req.Medium,
			Dimensions:   req.Dimensions,
			Year:         req.Year,
			ImageUrl:     req.ImageURL,
			ThumbnailUrl: req.ThumbnailURL,
			ID:           c.Param("id"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artwork."})
			log.Printf("作品更新エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Artwork updated."})
	}
}

// handleDeleteArtwork は作品を削除するハンドラを返す。
func (s *Server) handleDeleteArtwork() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := s.queries.DeleteArtwork(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artwork."})
			log.Printf("作品削除エラー: %v", err)
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artwork not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted."})
	}
}

// reorderRequest は並び替えリクエストのJSON構造。
// idsの配列順がそのまま新しい表示順になる。
type reorderRequest struct {
	// IDs は新しい表示順に並べたIDのリスト。
	IDs []string `json:"ids" binding:"required"`
}

// handleReorderCategories はカテゴリーの並び替えを処理するハンドラを返す。
func (s *Server) handleReorderCategories() gin.HandlerFunc {
	return s.handleReorder(func(qtx *gallerydb.Queries, c *gin.Context, order int64, id string) (int64, error) {
		return qtx.SetCategoryOrder(c.Request.Context(), gallerydb.SetCategoryOrderParams{DisplayOrder: order, ID: id})
	})
}

// handleReorderSeries はシリーズの並び替えを処理するハンドラを返す。
func (s *Server) handleReorderSeries() gin.HandlerFunc {
	return s.handleReorder(func(qtx *gallerydb.Queries, c *gin.Context, order int64, id string) (int64, error) {
		return qtx.SetSeriesOrder(c.Request.Context(), gallerydb.SetSeriesOrderParams{DisplayOrder: order, ID: id})
	})
}

// handleReorderArtworks は作品の並び替えを処理するハンドラを返す。
func (s *Server) handleReorderArtworks() gin.HandlerFunc {
	return s.handleReorder(func(qtx *gallerydb.Queries, c *gin.Context, order int64, id string) (int64, error) {
		return qtx.SetArtworkOrder(c.Request.Context(), gallerydb.SetArtworkOrderParams{DisplayOrder: order, ID: id})
	})
}

// handleReorder は並び替えの共通処理。管理画面のドラッグ&ドロップの結果を
// 1トランザクションで永続化する。存在しないIDが含まれる場合は全体を巻き戻す。
func (s *Server) handleReorder(setOrder func(*gallerydb.Queries, *gin.Context, int64, string) (int64, error)) gin.HandlerFunc {
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
