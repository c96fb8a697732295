// サイトコンテンツサービスのエントリポイント。
// イベント・展示歴・取扱店の一覧とサイト設定を管理する。
package main

import (
	"log"
	"os"

	"github.com/weiinsight/portfolio/internal/site"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	server, err := site.NewServer(port)
	if err != nil {
		log.Fatalf("サイトコンテンツサーバーの初期化に失敗: %v", err)
	}

	log.Printf("サイトコンテンツサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("サイトコンテンツサービスの起動に失敗: %v", err)
	}
}
