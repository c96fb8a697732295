package gallery

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。外部キーはカスケード削除を設定し、
// カテゴリー削除時に配下のシリーズと作品も削除する。
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    -- カテゴリーの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- カテゴリー名
    name TEXT NOT NULL,
    -- URL用スラッグ
    slug TEXT NOT NULL UNIQUE,
    -- カバー画像のURL
    cover_image_url TEXT NOT NULL DEFAULT '',
    -- 表示順（昇順）
    display_order INTEGER NOT NULL DEFAULT 0,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS series (
    -- シリーズの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 所属カテゴリーのID
    category_id TEXT NOT NULL,
    -- シリーズ名
    title TEXT NOT NULL,
    -- シリーズの説明
    description TEXT NOT NULL DEFAULT '',
    -- 表示順（昇順）
    display_order INTEGER NOT NULL DEFAULT 0,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS artworks (
    -- 作品の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 所属シリーズのID
    series_id TEXT NOT NULL,
    -- 作品タイトル
    title TEXT NOT NULL,
    -- 画材・技法
    medium TEXT NOT NULL DEFAULT '',
    -- 寸法
    dimensions TEXT NOT NULL DEFAULT '',
    -- 制作年
    year INTEGER NOT NULL DEFAULT 0,
    -- 作品画像のURL
    image_url TEXT NOT NULL DEFAULT '',
    -- サムネイル画像のURL
    thumbnail_url TEXT NOT NULL DEFAULT '',
    -- 表示順（昇順）
    display_order INTEGER NOT NULL DEFAULT 0,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now')),
    FOREIGN KEY (series_id) REFERENCES series(id) ON DELETE CASCADE
);

-- カテゴリー内のシリーズ一覧取得を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_series_category_id
    ON series(category_id, display_order);

-- シリーズ内の作品一覧取得を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_artworks_series_id
    ON artworks(series_id, display_order);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
