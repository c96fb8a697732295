// Package contact は問い合わせフォームのメール配信サービスの内部実装を提供する。
//
// 公開サイトのフォームから送信されたメッセージを受け取り、
// Cloudflare TurnstileでCAPTCHAトークンを検証した後、
// Resend経由で運営者宛のトランザクショナルメールを送信する。
// 送信内容は一切永続化しない。
package contact
