// メディアサービスのエントリポイント。
// 作品画像のアップロード・サムネイル生成・配信を担当する。
package main

import (
	"log"
	"os"

	"github.com/weiinsight/portfolio/internal/media"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	server, err := media.NewServer(port)
	if err != nil {
		log.Fatalf("メディアサーバーの初期化に失敗: %v", err)
	}

	log.Printf("メディアサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("メディアサービスの起動に失敗: %v", err)
	}
}
