package contact

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/weiinsight/portfolio/pkg/httpclient"
)

// sendEmailPath はResendのメール送信エンドポイントのパス。
const sendEmailPath = "/emails"

// mailer はResend経由で問い合わせメールを送信する。
type mailer struct {
	// client はResend APIへのBearer認証付きHTTPクライアント。
	client *httpclient.Client
	// from は固定の送信元アドレス。
	from string
	// to は固定の宛先アドレス（サイト運営者）。
	to string
}

// newMailer は新しいmailerを生成する。
func newMailer(client *httpclient.Client, from, to string) *mailer {
	return &mailer{client: client, from: from, to: to}
}

// sendEmailRequest はResendのメール送信リクエストのJSON構造。
type sendEmailRequest struct {
	// From は送信元アドレス。
	From string `json:"from"`
	// To は宛先アドレスのリスト。
	To []string `json:"to"`
	// ReplyTo は返信先アドレス。問い合わせ者のアドレスを設定する。
	ReplyTo string `json:"reply_to"`
	// Subject は件名。
	Subject string `json:"subject"`
	// HTML はHTML形式の本文。
	HTML string `json:"html"`
}

// send は問い合わせ内容を運営者宛のメールとして送信する。試行は1回のみ。
// reply_toに問い合わせ者のアドレスを設定するため、運営者がそのまま返信できる。
// 2xx以外のレスポンスはエラーとして返す。
func (m *mailer) send(ctx context.Context, name, email, message string) error {
	req := sendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: email,
		Subject: fmt.Sprintf("New Contact Form Message from %s", name),
		HTML:    buildHTMLBody(name, email, message),
	}

	if err := m.client.PostJSON(ctx, sendEmailPath, req, nil); err != nil {
		return fmt.Errorf("メール送信リクエストに失敗: %w", err)
	}
	return nil
}

// buildHTMLBody は運営者宛メールのHTML本文を組み立てる。
// ユーザー入力はすべてエスケープしてから埋め込む。HTMLインジェクション対策。
// メッセージ中の改行はエスケープ後に<br />へ変換する。
func buildHTMLBody(name, email, message string) string {
	escapedMessage := strings.ReplaceAll(html.EscapeString(message), "\n", "<br />")

	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>\n")
	b.WriteString(fmt.Sprintf("<p><strong>From:</strong> %s</p>\n", html.EscapeString(name)))
	b.WriteString(fmt.Sprintf("<p><strong>Email:</strong> %s</p>\n", html.EscapeString(email)))
	b.WriteString("<hr />\n")
	b.WriteString("<p><strong>Message:</strong></p>\n")
	b.WriteString(fmt.Sprintf("<p>%s</p>\n", escapedMessage))
	b.WriteString("<hr />\n")
	b.WriteString(`<p style="color: #666; font-size: 12px;">This message was sent from the Wei In Sight contact form.</p>`)
	return b.String()
}
