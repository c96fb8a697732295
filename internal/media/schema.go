package media

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。画像ファイルの実体はディスクに置き、
// ここにはメタデータのみ保存する。
const schema = `
CREATE TABLE IF NOT EXISTS images (
    -- 画像の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 元のファイル名
    filename TEXT NOT NULL,
    -- MIMEタイプ
    content_type TEXT NOT NULL,
    -- ファイルサイズ（バイト）
    size INTEGER NOT NULL,
    -- 元画像の幅（ピクセル）
    width INTEGER NOT NULL,
    -- 元画像の高さ（ピクセル）
    height INTEGER NOT NULL,
    -- 元画像ファイルの保存パス
    storage_path TEXT NOT NULL,
    -- サムネイルファイルの保存パス
    thumbnail_path TEXT NOT NULL,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
