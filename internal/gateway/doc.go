// Package gateway はAPI Gatewayサービスの内部実装を提供する。
//
// 管理画面からの唯一の入口として、メールアドレスとパスワードによる
// ログインとJWT発行を担い、認証済みリクエストをギャラリー・サイト・
// メディアの各内部サービスにプロキシする。公開サイト向けの閲覧系
// リクエストも認証なしでプロキシする。
package gateway
