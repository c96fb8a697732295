// Package site はサイトコンテンツサービスの内部実装を提供する。
//
// イベント・展示歴・取扱店の一覧と、セクション単位のサイト設定
// （キー・バリュー）を管理する。一覧系エンティティは表示順を持ち、
// ギャラリーサービスと同じ契約で並び替えを永続化する。
package site
