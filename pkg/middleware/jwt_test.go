package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testSecret はテスト用のJWT署名鍵。
const testSecret = "test-secret-key"

// newProtectedRouter はJWTAuthを適用した検証用ルーターを返す。
// 認証に成功した場合、GetUserIDで取得したユーザーIDを返す。
func newProtectedRouter(secret string) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(secret))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c)})
	})
	return router
}

func TestGenerateJWT(t *testing.T) {
	t.Parallel()

	t.Run("正常系_生成したトークンに管理者情報が含まれること", func(t *testing.T) {
		t.Parallel()

		tokenString, err := GenerateJWT(testSecret, "admin-1", "admin@example.com")
		if err != nil {
			t.Fatalf("GenerateJWT() error = %v", err)
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("生成したトークンの検証に失敗: err=%v, valid=%v", err, token.Valid)
		}

		if claims.UserID != "admin-1" {
			t.Errorf("UserID = %q, want %q", claims.UserID, "admin-1")
		}
		if claims.Email != "admin@example.com" {
			t.Errorf("Email = %q, want %q", claims.Email, "admin@example.com")
		}
		if claims.Issuer != "portfolio-gateway" {
			t.Errorf("Issuer = %q, want %q", claims.Issuer, "portfolio-gateway")
		}

		// 有効期限は24時間後に設定される
		expiresIn := time.Until(claims.ExpiresAt.Time)
		if expiresIn < 23*time.Hour || expiresIn > 24*time.Hour {
			t.Errorf("有効期限までの時間 = %v, want およそ24時間", expiresIn)
		}
	})
}

func TestJWTAuth(t *testing.T) {
	t.Parallel()

	t.Run("正常系_有効なトークンでリクエストが通ること", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateJWT(testSecret, "admin-1", "admin@example.com")
		if err != nil {
			t.Fatalf("GenerateJWT() error = %v", err)
		}

		router := newProtectedRouter(testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード = %d, want %d, body: %s", w.Code, http.StatusOK, w.Body.String())
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if resp["user_id"] != "admin-1" {
			t.Errorf("user_id = %q, want %q", resp["user_id"], "admin-1")
		}
		if got := w.Header().Get("X-User-ID"); got != "admin-1" {
			t.Errorf("X-User-IDヘッダー = %q, want %q", got, "admin-1")
		}
	})

	t.Run("異常系_Authorizationヘッダーが無い場合401が返ること", func(t *testing.T) {
		t.Parallel()

		router := newProtectedRouter(testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if resp["error"] != "Authorization header is required." {
			t.Errorf("error = %q, want %q", resp["error"], "Authorization header is required.")
		}
	})

	t.Run("異常系_Bearer形式でない場合401が返ること", func(t *testing.T) {
		t.Parallel()

		router := newProtectedRouter(testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if resp["error"] != "Invalid bearer token format." {
			t.Errorf("error = %q, want %q", resp["error"], "Invalid bearer token format.")
		}
	})

	t.Run("異常系_別の鍵で署名されたトークンは401が返ること", func(t *testing.T) {
		t.Parallel()

		token, err := GenerateJWT("another-secret", "admin-1", "admin@example.com")
		if err != nil {
			t.Fatalf("GenerateJWT() error = %v", err)
		}

		router := newProtectedRouter(testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}

		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("レスポンスのデコードに失敗: %v", err)
		}
		if resp["error"] != "Invalid or expired token." {
			t.Errorf("error = %q, want %q", resp["error"], "Invalid or expired token.")
		}
	})

	t.Run("異常系_壊れたトークンは401が返ること", func(t *testing.T) {
		t.Parallel()

		router := newProtectedRouter(testSecret)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})
}

func TestGetUserID(t *testing.T) {
	t.Parallel()

	t.Run("JWTAuthが適用されていない場合は空文字列を返すこと", func(t *testing.T) {
		t.Parallel()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if got := GetUserID(c); got != "" {
			t.Errorf("GetUserID() = %q, want 空", got)
		}
	})
}
