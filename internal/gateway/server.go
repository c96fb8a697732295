package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
	gatewaydb "github.com/weiinsight/portfolio/internal/gateway/db"
	"github.com/weiinsight/portfolio/pkg/middleware"
)

// Server はAPI GatewayサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *gatewaydb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
	// serviceURLs は内部サービスのURL。
	serviceURLs serviceURLConfig
}

// serviceURLConfig は内部サービスのURL設定。
type serviceURLConfig struct {
	Gallery string
	Site    string
	Media   string
}

// NewServer は新しいGatewayサーバーを生成する。
// 管理者テーブルが空の場合、環境変数から初期管理者を作成する。
func NewServer(port string) (*Server, error) {
	dbPath := getEnvOr("GATEWAY_DB_PATH", "/data/gateway.db")
	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	queries := gatewaydb.New(sqlDB)
	if err := seedAdmin(context.Background(), queries); err != nil {
		return nil, fmt.Errorf("初期管理者の作成に失敗: %w", err)
	}

	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")
	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:3000")

	urls := serviceURLConfig{
		Gallery: getEnvOr("GALLERY_URL", "http://localhost:8081"),
		Site:    getEnvOr("SITE_URL", "http://localhost:8082"),
		Media:   getEnvOr("MEDIA_URL", "http://localhost:8083"),
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{frontendURL}))

	s := &Server{
		router:      router,
		port:        port,
		queries:     queries,
		db:          sqlDB,
		jwtSecret:   jwtSecret,
		serviceURLs: urls,
	}
	s.setupRoutes()

	return s, nil
}

// seedAdmin は管理者テーブルが空の場合、ADMIN_EMAILとADMIN_PASSWORDから
// 初期管理者を作成する。環境変数が未設定の場合は何もしない。
func seedAdmin(ctx context.Context, queries *gatewaydb.Queries) error {
	count, err := queries.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("管理者数の取得に失敗: %w", err)
	}
	if count > 0 {
		return nil
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Printf("ADMIN_EMAIL/ADMIN_PASSWORDが未設定のため、初期管理者は作成しません")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("パスワードのハッシュ化に失敗: %w", err)
	}

	if err := queries.CreateAdmin(ctx, gatewaydb.CreateAdminParams{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return fmt.Errorf("管理者レコードの作成に失敗: %w", err)
	}

	log.Printf("初期管理者を作成しました: %s", email)
	return nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 認証エンドポイント（認証不要）
	auth := s.router.Group("/auth")
	{
		auth.POST("/login", s.handleLogin())
	}

	// 公開サイト向けの閲覧系プロキシ（認証不要）
	public := s.router.Group("/api/v1")
	{
		public.GET("/categories", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/categories"))
		public.GET("/categories/:id/series", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/categories/", "id", "/series"))
		public.GET("/series/:id/artworks", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/series/", "id", "/artworks"))
		public.GET("/artworks/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/artworks/", "id"))

		public.GET("/events", s.handleProxy(s.serviceURLs.Site, "/api/v1/events"))
		public.GET("/exhibitions", s.handleProxy(s.serviceURLs.Site, "/api/v1/exhibitions"))
		public.GET("/shops", s.handleProxy(s.serviceURLs.Site, "/api/v1/shops"))
		public.GET("/settings", s.handleProxy(s.serviceURLs.Site, "/api/v1/settings"))

		// 画像はimg要素から直接参照されるため認証不要
		public.GET("/images/:id", s.handleProxyWithParam(s.serviceURLs.Media, "/api/v1/images/", "id"))
		public.GET("/images/:id/thumbnail", s.handleProxyWithParam(s.serviceURLs.Media, "/api/v1/images/", "id", "/thumbnail"))
	}

	// 管理画面向けの編集系プロキシ（JWT認証必須）
	admin := s.router.Group("/api/v1")
	admin.Use(middleware.JWTAuth(s.jwtSecret))
	{
		// 管理者アカウント
		admin.GET("/me", s.handleGetCurrentAdmin())
		admin.PUT("/password", s.handleChangePassword())

		// ギャラリー編集
		admin.POST("/categories", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/categories"))
		admin.PUT("/categories/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/categories/", "id"))
		admin.DELETE("/categories/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/categories/", "id"))
		admin.POST("/categories/reorder", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/categories/reorder"))
		admin.POST("/series", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/series"))
		admin.PUT("/series/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/series/", "id"))
		admin.DELETE("/series/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/series/", "id"))
		admin.POST("/series/reorder", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/series/reorder"))
		admin.POST("/artworks", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/artworks"))
		admin.PUT("/artworks/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/artworks/", "id"))
		admin.DELETE("/artworks/:id", s.handleProxyWithParam(s.serviceURLs.Gallery, "/api/v1/artworks/", "id"))
		admin.POST("/artworks/reorder", s.handleProxy(s.serviceURLs.Gallery, "/api/v1/artworks/reorder"))

		// サイトコンテンツ編集
		admin.POST("/events", s.handleProxy(s.serviceURLs.Site, "/api/v1/events"))
		admin.PUT("/events/:id", s.handleProxyWithParam(s.serviceURLs.Site, "/api/v1/events/", "id"))
		admin.DELETE("/events/:id", s.handleProxyWithParam(s.serviceURLs.Site, "/api/v1/events/", "id"))
		admin.POST("/events/reorder", s.handleProxy(s.serviceURLs.Site, "/api/v1/events/reorder"))
		admin.POST("/exhibitions", s.handleProxy(s.serviceURLs.Site, "/api/v1/exhibitions"))
		admin.PUT("/exhibitions/:id", s.handleProxyWithParam(s.serviceURLs.Site, "/api/v1/exhibitions/", "id"))
		admin.DELETE("/exhibitions/:id", s.handleProxyWithParam(s.serviceURLs.Site, "/api/v1/exhibitions/", "id"))
		admin.POST("/exhibitions/reorder", s.handleProxy(s.serviceURLs.Site, "/api/v1/exhibitions/reorder"))
		admin.POST("/shops", s.handleProxy(s.serviceURLs.Site, "/api/v1/shops"))
		admin.PUT("/shops/:id", s.handleProxyWithParam(s.serviceURLs.Site, "/api/v1/shops/", "id"))
		admin.DELETE("/shops/:id", s.handleProxyWithParam(s.serviceURLs.Site, "/api/v1/shops/", "id"))
		admin.POST("/shops/reorder", s.handleProxy(s.serviceURLs.Site, "/api/v1/shops/reorder"))
		admin.PUT("/settings", s.handleProxy(s.serviceURLs.Site, "/api/v1/settings"))

		// メディア管理
		admin.GET("/images", s.handleProxy(s.serviceURLs.Media, "/api/v1/images"))
		admin.POST("/images", s.handleProxy(s.serviceURLs.Media, "/api/v1/images"))
		admin.DELETE("/images/:id", s.handleProxyWithParam(s.serviceURLs.Media, "/api/v1/images/", "id"))
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "gateway"})
	})
}

// loginRequest はログインリクエストのJSON構造。
type loginRequest struct {
	// Email はログイン用メールアドレス。
	Email string `json:"email" binding:"required"`
	// Password は平文パスワード。
	Password string `json:"password" binding:"required"`
}

// handleLogin はメールアドレスとパスワードによるログインを処理するハンドラを返す。
// メールアドレスの存在有無を区別できないよう、失敗時は常に同じメッセージを返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required."})
			return
		}

		admin, err := s.queries.GetAdminByEmail(c.Request.Context(), req.Email)
		if err != nil {
			if !errors.Is(err, sql.ErrNoRows) {
				log.Printf("管理者取得エラー: %v", err)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, admin.ID, admin.Email)
		if err != nil {
			log.Printf("JWT生成エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token."})
			return
		}

		if err := s.queries.UpdateLastLogin(c.Request.Context(), admin.ID); err != nil {
			log.Printf("最終ログイン日時の更新に失敗: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{
			"token": token,
			"email": admin.Email,
		})
	}
}

// handleGetCurrentAdmin は認証済み管理者の情報を返すハンドラを返す。
func (s *Server) handleGetCurrentAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := middleware.GetUserID(c)
		if adminID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		admin, err := s.queries.GetAdminByID(c.Request.Context(), adminID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found."})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":            admin.ID,
			"email":         admin.Email,
			"last_login_at": admin.LastLoginAt.Format(time.RFC3339),
		})
	}
}

// changePasswordRequest はパスワード変更リクエストのJSON構造。
type changePasswordRequest struct {
	// CurrentPassword は現在のパスワード。
	CurrentPassword string `json:"current_password" binding:"required"`
	// NewPassword は新しいパスワード。8文字以上を要求する。
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// handleChangePassword は管理者パスワードの変更を処理するハンドラを返す。
// 現在のパスワードの再確認に成功した場合のみ更新する。
func (s *Server) handleChangePassword() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := middleware.GetUserID(c)
		if adminID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		var req changePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and new password (8+ characters) are required."})
			return
		}

		admin, err := s.queries.GetAdminByID(c.Request.Context(), adminID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found."})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect."})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("パスワードのハッシュ化に失敗: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password."})
			return
		}

		if _, err := s.queries.UpdatePassword(c.Request.Context(), gatewaydb.UpdatePasswordParams{
			PasswordHash: string(hash),
			ID:           adminID,
		}); err != nil {
			log.Printf("パスワード更新エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Password updated."})
	}
}

// handleProxy は指定されたサービスにリクエストをプロキシするハンドラを返す。
func (s *Server) handleProxy(baseURL, path string) gin.HandlerFunc {
	return func(c *gin.Context) {
		proxyURL := baseURL + path
		if c.Request.URL.RawQuery != "" {
			proxyURL += "?" + c.Request.URL.RawQuery
		}
		s.doProxy(c, c.Request.Method, proxyURL)
	}
}

// handleProxyWithParam はURLパラメータを含むプロキシハンドラを返す。
func (s *Server) handleProxyWithParam(baseURL, pathPrefix, paramName string, pathSuffix ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		proxyURL := baseURL + pathPrefix + c.Param(paramName)
		for _, suffix := range pathSuffix {
			proxyURL += suffix
		}
		if c.Request.URL.RawQuery != "" {
			proxyURL += "?" + c.Request.URL.RawQuery
		}
		s.doProxy(c, c.Request.Method, proxyURL)
	}
}

// doProxy はリクエストを内部サービスにプロキシする共通処理。
// JWTトークンとユーザーIDヘッダーを転送する。
func (s *Server) doProxy(c *gin.Context, method, url string) {
	req, err := http.NewRequestWithContext(c.Request.Context(), method, url, c.Request.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach internal service."})
		return
	}

	// 元のリクエストヘッダーを転送
	req.Header.Set("Content-Type", c.GetHeader("Content-Type"))
	req.Header.Set("Authorization", c.GetHeader("Authorization"))
	req.Header.Set("X-User-ID", middleware.GetUserID(c))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to reach internal service."})
		log.Printf("プロキシエラー: url=%s, error=%v", url, err)
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reach internal service."})
		return
	}

	// レスポンスのContent-Typeに応じてそのまま転送
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, body)
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
