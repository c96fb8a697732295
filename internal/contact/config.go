package contact

import "os"

// Config は問い合わせサービスの外部コラボレーター設定。
// シークレットは環境変数から読み込み、リクエスト入力からは一切受け取らない。
// テスト時にモックサーバーへ差し替えられるよう、エンドポイントURLも保持する。
type Config struct {
	// TurnstileSecretKey はTurnstile検証用のサーバー側シークレット。
	TurnstileSecretKey string
	// ResendAPIKey はResendのAPIキー。
	ResendAPIKey string
	// RecipientEmail は問い合わせメールの固定宛先アドレス。
	RecipientEmail string
	// FromAddress は送信元として使用する固定のFromアドレス。
	FromAddress string
	// TurnstileBaseURL はTurnstile検証APIのベースURL。
	TurnstileBaseURL string
	// ResendBaseURL はResend APIのベースURL。
	ResendBaseURL string
}

// LoadConfig は環境変数からConfigを構築する。
// エンドポイントURLは通常デフォルトのまま使用し、テストでのみ上書きする。
func LoadConfig() Config {
	return Config{
		TurnstileSecretKey: os.Getenv("TURNSTILE_SECRET_KEY"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		RecipientEmail:     getEnvOr("RECIPIENT_EMAIL", "jackyho@weiinsight.com"),
		FromAddress:        getEnvOr("FROM_ADDRESS", "Wei In Sight <noreply@weiinsight.com>"),
		TurnstileBaseURL:   getEnvOr("TURNSTILE_BASE_URL", "https://challenges.cloudflare.com"),
		ResendBaseURL:      getEnvOr("RESEND_BASE_URL", "https://api.resend.com"),
	}
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
