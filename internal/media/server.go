package media

import (
	"database/sql"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	// image/png と image/gif はデコード用に副作用インポートする。
	_ "image/gif"
	_ "image/png"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
	mediadb "github.com/weiinsight/portfolio/internal/media/db"
	"github.com/weiinsight/portfolio/pkg/middleware"
)

// thumbnailSize はサムネイル画像の幅・高さ（ピクセル）。
const thumbnailSize = 400

// Server はメディアサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *mediadb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
}

// NewServer は新しいメディアサーバーを生成する。
// ファイル保存ディレクトリとメタデータDBの初期化も行う。
func NewServer(port string) (*Server, error) {
	if err := initStorage(); err != nil {
		return nil, fmt.Errorf("ストレージ初期化に失敗: %w", err)
	}

	dbPath := getEnvOr("MEDIA_DB_PATH", "/data/media.db")
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

	// マルチパートフォームの最大メモリを設定する。
	router.MaxMultipartMemory = maxUploadSize

	s := &Server{
		router:  router,
		port:    port,
		queries: mediadb.New(sqlDB),
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
// 画像の配信は公開サイトから直接呼ばれるため認証不要。
// アップロードと削除はJWT認証を要求する。
func (s *Server) setupRoutes() {
	jwtSecret := getEnvOr("JWT_SECRET", "dev-secret-key")

	api := s.router.Group("/api/v1")
	{
		// 閲覧系（認証不要）
		api.GET("/images/:id", s.handleServeImage())
		api.GET("/images/:id/thumbnail", s.handleServeThumbnail())
	}

	admin := s.router.Group("/api/v1")
	admin.Use(middleware.JWTAuth(jwtSecret))
	{
		// 画像一覧（管理画面のメディアライブラリ用）
		admin.GET("/images", s.handleListImages())
		// 画像のアップロード（マルチパートフォーム）
		admin.POST("/images", s.handleUpload())
		// 画像の削除
		admin.DELETE("/images/:id", s.handleDelete())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "media"})
	})
}

// imageResponse は画像メタデータのJSONレスポンス構造。
type imageResponse struct {
	// ID は画像の一意識別子（UUID）。
	ID string `json:"id"`
	// Filename は元のファイル名。
	Filename string `json:"filename"`
	// ContentType はファイルのMIMEタイプ。
	ContentType string `json:"content_type"`
	// Size はファイルサイズ（バイト）。
	Size int64 `json:"size"`
	// Width は元画像の幅（ピクセル）。
	Width int64 `json:"width"`
	// Height は元画像の高さ（ピクセル）。
	Height int64 `json:"height"`
	// URL は元画像の配信パス。
	URL string `json:"url"`
	// ThumbnailURL はサムネイルの配信パス。
	ThumbnailURL string `json:"thumbnail_url"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
}

// toImageResponse はDBレコードを外部レスポンス形式に変換する。
func toImageResponse(img mediadb.Image) imageResponse {
	return imageResponse{
		ID:           img.ID,
		Filename:     img.Filename,
		ContentType:  img.ContentType,
		Size:         img.Size,
		Width:        img.Width,
		Height:       img.Height,
		URL:          fmt.Sprintf("/api/v1/images/%s", img.ID),
		ThumbnailURL: fmt.Sprintf("/api/v1/images/%s/thumbnail", img.ID),
		CreatedAt:    img.CreatedAt.Format(time.RFC3339),
	}
}

// handleListImages はアップロード済み画像の一覧を返すハンドラを返す。
func (s *Server) handleListImages() gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := s.queries.ListImages(c.Request.Context())
		if err != nil {
			log.Printf("画像一覧取得エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list images."})
			return
		}

		resp := make([]imageResponse, 0, len(images))
		for _, img := range images {
			resp = append(resp, toImageResponse(img))
		}
		c.JSON(http.StatusOK, resp)
	}
}

// handleUpload は画像ファイルのアップロードを処理するハンドラを返す。
// マルチパートフォームからファイルを受け取り、ディスクに保存し、
// サムネイルを生成してからメタデータをDBに記録する。
func (s *Server) handleUpload() gin.HandlerFunc {
	return func(c *gin.Context) {
		// マルチパートフォームからファイルを取得する。
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided."})
			return
		}
		defer file.Close()

		// ファイルサイズのバリデーション。
		if header.Size > maxUploadSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File too large (max %dMB).", maxUploadSize/(1<<20))})
			return
		}

		// Content-Typeのバリデーション（image/* のみ許可）。
		contentType := header.Header.Get("Content-Type")
		if !isAllowedContentType(contentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported content type: %s (image/* only).", contentType)})
			return
		}

		// 保存先ディレクトリを作成する。
		imageID := uuid.New().String()
		imageDir := filepath.Join(mediaBaseDir, imageID)
		if err := os.MkdirAll(imageDir, 0o755); err != nil {
			log.Printf("画像ディレクトリの作成に失敗: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file."})
			return
		}

		// ファイルをディスクに保存する。
		filename := filepath.Base(header.Filename)
		storagePath := filepath.Join(imageDir, filename)
		written, err := saveFile(file, storagePath)
		if err != nil {
			log.Printf("ファイルの保存に失敗: %v", err)
			s.cleanupDir(imageDir)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file."})
			return
		}

		// サムネイルを生成する。デコードできないファイルは画像として扱えないため拒否する。
		thumbnailPath := filepath.Join(imageDir, "thumbnail.jpg")
		width, height, err := generateThumbnail(storagePath, thumbnailPath)
		if err != nil {
			log.Printf("サムネイル生成に失敗: %v", err)
			s.cleanupDir(imageDir)
			c.JSON(http.StatusBadRequest, gin.H{"error": "File is not a valid image."})
			return
		}

		// メタデータをDBに記録する。
		if err := s.queries.CreateImage(c.Request.Context(), mediadb.CreateImageParams{
			ID:            imageID,
			Filename:      filename,
			ContentType:   contentType,
			Size:          written,
			Width:         int64(width),
			Height:        int64(height),
			StoragePath:   storagePath,
			ThumbnailPath: thumbnailPath,
		}); err != nil {
			log.Printf("画像メタデータの保存に失敗: %v", err)
			s.cleanupDir(imageDir)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file."})
			return
		}

		c.JSON(http.StatusCreated, imageResponse{
			ID:           imageID,
			Filename:     filename,
			ContentType:  contentType,
			Size:         written,
			Width:        int64(width),
			Height:       int64(height),
			URL:          fmt.Sprintf("/api/v1/images/%s", imageID),
			ThumbnailURL: fmt.Sprintf("/api/v1/images/%s/thumbnail", imageID),
			CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// handleServeImage は元画像ファイルを配信するハンドラを返す。
func (s *Server) handleServeImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		img, err := s.queries.GetImageByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found."})
				return
			}
			log.Printf("画像メタデータ取得エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image."})
			return
		}

		c.Header("Content-Type", img.ContentType)
		c.File(img.StoragePath)
	}
}

// handleServeThumbnail はサムネイル画像を配信するハンドラを返す。
func (s *Server) handleServeThumbnail() gin.HandlerFunc {
	return func(c *gin.Context) {
		img, err := s.queries.GetImageByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Image not found."})
				return
			}
			log.Printf("画像メタデータ取得エラー: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load image."})
			return
		}

		c.Header("Content-Type", "image/jpeg")
		c.File(img.ThumbnailPath)
	}
}

// handleDelete は画像の削除を処理するハンドラを返す。
// メタデータとディスク上のファイルの両方を削除する。
func (s *Server) handleDelete() gin.HandlerFunc {
	return func(c *gin.Context) {
		imageID := c.Param("id")

		rows, err := s.queries.DeleteImage(c.Request.Context(), imageID)
		if err != nil {
			log.Printf("画像メタデータの削除に失敗: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image."})
			return
		}
		if rows == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Image not found."})
			return
		}

		// ディスクからファイルを削除する。失敗してもメタデータは削除済みなので
		// ログを残して継続する。
		imageDir := filepath.Join(mediaBaseDir, imageID)
		if err := os.RemoveAll(imageDir); err != nil {
			log.Printf("画像ディレクトリの削除に失敗: %v", err)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Image deleted."})
	}
}

// cleanupDir はアップロード途中で失敗した際の後片付けを行う。
func (s *Server) cleanupDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("クリーンアップ失敗: %v", err)
	}
}

// saveFile はアップロードされたファイルを指定パスに書き込み、書き込んだバイト数を返す。
func saveFile(src io.Reader, path string) (int64, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("ファイルの作成に失敗: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return 0, fmt.Errorf("ファイルの書き込みに失敗: %w", err)
	}
	return written, nil
}

// generateThumbnail は元画像をデコードしてサムネイルをJPEG形式で保存する。
// 元画像の幅と高さを返す。
func generateThumbnail(srcPath, dstPath string) (int, int, error) {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return 0, 0, fmt.Errorf("元ファイルのオープンに失敗: %w", err)
	}
	defer srcFile.Close()

	srcImg, _, err := image.Decode(srcFile)
	if err != nil {
		return 0, 0, fmt.Errorf("画像のデコードに失敗: %w", err)
	}

	bounds := srcImg.Bounds()
	thumbnailImg := resizeNearestNeighbor(srcImg, thumbnailSize, thumbnailSize)

	thumbFile, err := os.Create(dstPath)
	if err != nil {
		return 0, 0, fmt.Errorf("サムネイルファイルの作成に失敗: %w", err)
	}
	defer thumbFile.Close()

	if err := jpeg.Encode(thumbFile, thumbnailImg, &jpeg.Options{Quality: 85}); err != nil {
		return 0, 0, fmt.Errorf("サムネイルのエンコードに失敗: %w", err)
	}

	return bounds.Dx(), bounds.Dy(), nil
}

// resizeNearestNeighbor は最近傍補間法で画像をリサイズする。
// Go標準ライブラリのみを使用し、外部依存を排除する。
// アスペクト比を維持しながら、指定サイズに収まるようにリサイズし、
// 余白部分は白で埋める。
func resizeNearestNeighbor(src image.Image, width, height int) *image.RGBA {
	srcBounds := src.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	// アスペクト比を維持したスケーリング係数を算出する。
	scaleX := float64(width) / float64(srcW)
	scaleY := float64(height) / float64(srcH)
	scale := math.Min(scaleX, scaleY)

	// リサイズ後の実際のサイズを算出する。
	newW := int(float64(srcW) * scale)
	newH := int(float64(srcH) * scale)

	// 出力画像を白背景で初期化する。
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	// 中央に配置するためのオフセットを算出する。
	offsetX := (width - newW) / 2
	offsetY := (height - newH) / 2

	// 最近傍補間法でリサイズする。
	for y := 0; y < newH; y++ {
		srcY := srcBounds.Min.Y + int(float64(y)/scale)
		if srcY >= srcBounds.Max.Y {
			srcY = srcBounds.Max.Y - 1
		}
		for x := 0; x < newW; x++ {
			srcX := srcBounds.Min.X + int(float64(x)/scale)
			if srcX >= srcBounds.Max.X {
				srcX = srcBounds.Max.X - 1
			}
			dst.Set(offsetX+x, offsetY+y, src.At(srcX, srcY))
		}
	}

	return dst
}

// isAllowedContentType は許可されたContent-Typeかどうかを判定する。
// image/* のみ許可する。
func isAllowedContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}

// getEnvOr は環境変数の値を返す。未設定の場合はフォールバック値を返す。
func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
