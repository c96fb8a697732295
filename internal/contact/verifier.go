package contact

import (
	"context"
	"net/url"

	"github.com/weiinsight/portfolio/pkg/httpclient"
)

// siteverifyPath はTurnstileのトークン検証エンドポイントのパス。
const siteverifyPath = "/turnstile/v0/siteverify"

// verifier はTurnstileのCAPTCHAトークンを検証する。
type verifier struct {
	// client はTurnstile APIへのHTTPクライアント。
	client *httpclient.Client
	// secret はTurnstileのサーバー側シークレット。
	secret string
}

// newVerifier は新しいverifierを生成する。
func newVerifier(client *httpclient.Client, secret string) *verifier {
	return &verifier{client: client, secret: secret}
}

// siteverifyResponse はTurnstile検証APIのレスポンス。
type siteverifyResponse struct {
	// Success はトークンが有効だったかどうか。
	Success bool `json:"success"`
	// ErrorCodes は検証失敗時のエラーコード。ログ出力用。
	ErrorCodes []string `json:"error-codes"`
}

// verify はトークンをTurnstileに送信して検証する。試行は1回のみ。
// 戻り値のboolが判定結果。errorは検証サービス自体への到達失敗や
// レスポンス不正を示し、その場合も判定はfalse（フェイルクローズ）となる。
// 呼び出し側は両者を同一の拒否応答にまとめるが、ログでは区別する。
func (v *verifier) verify(ctx context.Context, token string) (bool, []string, error) {
	values := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	var resp siteverifyResponse
	if err := v.client.PostForm(ctx, siteverifyPath, values, &resp); err != nil {
		return false, nil, err
	}
	return resp.Success, resp.ErrorCodes, nil
}
