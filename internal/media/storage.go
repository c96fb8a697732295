package media

import (
	"fmt"
	"os"
)

// mediaBaseDir は画像ファイルの保存先ベースディレクトリ。
// MEDIA_DIR環境変数で上書きできる。テスト時に差し替え可能にするためvarとして宣言する。
var mediaBaseDir = "/data/media"

// maxUploadSize はアップロード可能なファイルの最大サイズ（20MB）。
// テスト時に差し替え可能にするためvarとして宣言する。
var maxUploadSize int64 = 20 << 20

// initStorage は画像ファイルの保存先ディレクトリを作成する。
// ディレクトリが既に存在する場合は何もしない。
func initStorage() error {
	if dir := os.Getenv("MEDIA_DIR"); dir != "" {
		mediaBaseDir = dir
	}
	if err := os.MkdirAll(mediaBaseDir, 0o755); err != nil {
		return fmt.Errorf("画像保存ディレクトリの作成に失敗: %w", err)
	}
	return nil
}
