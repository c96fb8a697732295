// Package media はメディアサービスの内部実装を提供する。
//
// 管理画面からアップロードされた作品画像をディスクに保存し、
// 公開サイト向けに元画像とサムネイルを配信する。
// サムネイルはアップロード時に同期生成し、メタデータはSQLiteに記録する。
// 配信系APIは認証不要、アップロードと削除はJWT認証を要求する。
package media
