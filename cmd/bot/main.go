package main

import (
	"log"
	"os"

	"github.com/techntrails/bitcoin-price-chart/internal/config"
	"github.com/techntrails/bitcoin-price-chart/internal/digest"
	"github.com/techntrails/bitcoin-price-chart/internal/price"
	"github.com/techntrails/bitcoin-price-chart/internal/server"
	"github.com/techntrails/bitcoin-price-chart/internal/telegram"
)

func main() {
	cfg := config.Load()

	poller := price.NewPoller(price.NewClient())
	if err := poller.Start(); err != nil {
		log.Fatal(err)
	}
	defer poller.Stop()

	tg, err := telegram.NewBot(cfg.TelegramToken, cfg.WebhookPublicURL, digest.NewService(), poller)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("telegram: bot initialized, webhook target %s", cfg.WebhookPublicURL)

	mux := server.NewHTTPMux(tg.WebhookHandler) // registers /telegram/webhook
	addr := ":" + cfg.Port
	log.Println("http: listening on", addr)
	if err := server.ListenAndServe(addr, mux); err != nil {
		log.Println("server error:", err)
		os.Exit(1)
	}
}
