// ギャラリーサービスのエントリポイント。
// カテゴリー・シリーズ・作品の3階層と表示順の管理を担当する。
package main

import (
	"log"
	"os"

	"github.com/weiinsight/portfolio/internal/gallery"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	server, err := gallery.NewServer(port)
	if err != nil {
		log.Fatalf("ギャラリーサーバーの初期化に失敗: %v", err)
	}

	log.Printf("ギャラリーサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("ギャラリーサービスの起動に失敗: %v", err)
	}
}
