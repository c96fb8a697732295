package gateway

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。管理者アカウントのみを保持する。
const schema = `
CREATE TABLE IF NOT EXISTS admins (
    -- 管理者の一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- ログイン用メールアドレス
    email TEXT NOT NULL UNIQUE,
    -- bcryptでハッシュ化したパスワード
    password_hash TEXT NOT NULL,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 最終ログイン日時
    last_login_at DATETIME NOT NULL DEFAULT (datetime('now'))
);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
