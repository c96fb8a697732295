// Package httpclient は外部サービスおよび内部サービスへのHTTP通信を行うクライアントを提供する。
//
// Turnstileの検証APIやResendのメール送信APIなど、外部コラボレーターとの
// 通信パターンを統一する。タイムアウトは固定で、リトライは行わない。
package httpclient
