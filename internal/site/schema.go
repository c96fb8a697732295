package site

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。
const schema = `
CREATE TABLE IF NOT EXISTS events (
    -- イベントの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- イベント名
    title TEXT NOT NULL,
    -- 開催場所
    location TEXT NOT NULL DEFAULT '',
    -- 開始日（ISO 8601形式の文字列）
    starts_on TEXT NOT NULL DEFAULT '',
    -- 終了日（ISO 8601形式の文字列）
    ends_on TEXT NOT NULL DEFAULT '',
    -- イベントの説明
    description TEXT NOT NULL DEFAULT '',
    -- 表示順（昇順）
    display_order INTEGER NOT NULL DEFAULT 0,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS exhibitions (
    -- 展示歴の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 展示タイトル
    title TEXT NOT NULL,
    -- 会場
    venue TEXT NOT NULL DEFAULT '',
    -- 開催年
    year INTEGER NOT NULL DEFAULT 0,
    -- 展示の説明
    description TEXT NOT NULL DEFAULT '',
    -- 表示順（昇順）
    display_order INTEGER NOT NULL DEFAULT 0,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS shops (
    -- 取扱店の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 店名
    name TEXT NOT NULL,
    -- 店舗サイトのURL
    url TEXT NOT NULL DEFAULT '',
    -- 所在地
    city TEXT NOT NULL DEFAULT '',
    -- 表示順（昇順）
    display_order INTEGER NOT NULL DEFAULT 0,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS site_settings (
    -- 設定のセクション名（例: "about", "home"）
    section TEXT NOT NULL,
    -- 設定キー
    key TEXT NOT NULL,
    -- 設定値
    value TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (section, key)
);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
