package contact

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weiinsight/portfolio/pkg/httpclient"
	"github.com/weiinsight/portfolio/pkg/middleware"
)

// 問い合わせエンドポイントが返す固定メッセージ。
// フロントエンドがそのまま表示するため文言を変更してはならない。
const (
	errAllFieldsRequired = "All fields are required."
	errCaptchaRequired   = "CAPTCHA verification required."
	errCaptchaFailed     = "CAPTCHA verification failed. Please try again."
	errSendFailed        = "Failed to send email. Please try again later."
	msgEmailSent         = "Email sent successfully!"
)

// Server は問い合わせサービスのHTTPサーバー。
// リクエスト間で状態を持たず、送信内容を永続化しない。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// verifier はTurnstileトークンの検証クライアント。
	verifier *verifier
	// mailer はResendへのメール送信クライアント。
	mailer *mailer
}

// NewServer は新しい問い合わせサーバーを生成する。
// 外部コラボレーターの設定はcfgで注入する。シークレットをリクエストから受け取ることはない。
func NewServer(port string, cfg Config) *Server {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(corsHeaders())

	s := &Server{
		router:   router,
		port:     port,
		verifier: newVerifier(httpclient.New(cfg.TurnstileBaseURL), cfg.TurnstileSecretKey),
		mailer:   newMailer(httpclient.NewWithToken(cfg.ResendBaseURL, cfg.ResendAPIKey), cfg.FromAddress, cfg.RecipientEmail),
	}
	s.setupRoutes()

	return s
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
// フロントエンドが別オリジンから直接呼び出すため、認証は課さない。
func (s *Server) setupRoutes() {
	s.router.OPTIONS("/api/v1/contact", s.handlePreflight())
	s.router.POST("/api/v1/contact", s.handleSubmit())

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "contact"})
	})
}

// corsHeaders は全レスポンスにワイルドカードのCORSヘッダーを付与するミドルウェアを返す。
// 公開サイトは別オリジンから本エンドポイントを直接呼び出すため、
// 成功・失敗を問わずすべての応答でこのヘッダーが必要になる。
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		c.Next()
	}
}

// handlePreflight はCORSプリフライトに応答するハンドラを返す。
// 200でボディ"ok"を返し、パイプラインには入らない。
func (s *Server) handlePreflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	}
}

// contactRequest は問い合わせ送信リクエストのJSON構造。
// リクエスト内で消費するだけで、どこにも保存しない。
type contactRequest struct {
	// Name は送信者の名前。
	Name string `json:"name"`
	// Email は送信者のメールアドレス。返信先としてのみ使用する。
	Email string `json:"email"`
	// Message は問い合わせ本文。
	Message string `json:"message"`
	// TurnstileToken はクライアント側のCAPTCHAウィジェットが発行したトークン。
	TurnstileToken string `json:"turnstileToken"`
}

// handleSubmit は問い合わせ送信を処理するハンドラを返す。
// 処理は「入力検証 → Turnstile検証 → メール送信」の直列パイプラインで、
// Turnstileの肯定応答を得るまでメール送信には進まない。
func (s *Server) handleSubmit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errAllFieldsRequired})
			return
		}

		// 必須フィールドの検証。トークンの有無より先に確認する。
		if req.Name == "" || req.Email == "" || req.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errAllFieldsRequired})
			return
		}

		if req.TurnstileToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errCaptchaRequired})
			return
		}

		// Turnstileトークンを検証する。検証サービスへの到達失敗もトークン不正も
		// 外部へは同一の拒否応答とし、原因の区別はログにのみ残す。
		ok, errorCodes, err := s.verifier.verify(c.Request.Context(), req.TurnstileToken)
		if err != nil {
			log.Printf("Turnstile検証サービスへの到達に失敗: %v", err)
		} else if !ok {
			log.Printf("Turnstileがトークンを拒否: error-codes=%v", errorCodes)
		}
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": errCaptchaFailed})
			return
		}

		// 検証を通過した場合のみメールを送信する。試行は1回。
		if err := s.mailer.send(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
			log.Printf("問い合わせメールの送信に失敗: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errSendFailed})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": msgEmailSent,
		})
	}
}
