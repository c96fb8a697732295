// お問い合わせサービスのエントリポイント。
// 公開サイトのお問い合わせフォームからの送信を受け付け、
// Turnstileによる検証とResendによるメール送信を行う。
package main

import (
	"log"
	"os"

	"github.com/weiinsight/portfolio/internal/contact"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	server := contact.NewServer(port, contact.LoadConfig())

	log.Printf("お問い合わせサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("お問い合わせサービスの起動に失敗: %v", err)
	}
}
