// Package gallery はギャラリーサービスの内部実装を提供する。
//
// 作品はカテゴリー → シリーズ → 作品の3階層で管理する。
// 各階層は表示順を持ち、管理画面のドラッグ&ドロップによる並び替えを
// トランザクション内の一括更新として永続化する。
// 閲覧系APIは認証不要、編集系APIはJWT認証を要求する。
package gallery
