package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"plantstore-admin/internal/client"
	"plantstore-admin/internal/config"
	"plantstore-admin/internal/server"
	"plantstore-admin/internal/service"
	"plantstore-admin/internal/session"
	"plantstore-admin/internal/toast"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	sessionDB, err := client.InitSessionDB(cfg.Session.DBPath)
	if err != nil {
		log.Fatal("session db: ", err)
	}

	storeClient := client.NewStoreClient(&cfg.Backend)
	sess := session.NewStore(sessionDB, storeClient)

	restored, err := sess.Restore(context.Background())
	if err != nil {
		log.Fatal("restore session: ", err)
	}
	if restored {
		log.Println("Restored persisted session for user", sess.UserID())
	}

	toasts := toast.NewNotifier()

	orders := service.NewOrderList(storeClient, sess, toasts)
	products := service.NewProductList(storeClient, sess, toasts)
	banners := service.NewBannerBoard(storeClient, sess, toasts)

	attributes := []*service.AttributeList{
		service.NewAttributeList(storeClient, sess, toasts, client.KindCategory),
		service.NewAttributeList(storeClient, sess, toasts, client.KindColor),
		service.NewAttributeList(storeClient, sess, toasts, client.KindProductType),
		service.NewAttributeList(storeClient, sess, toasts, client.KindPlantType),
	}
	applicants := []*service.ApplicantList{
		service.NewApplicantList(storeClient, sess, toasts, client.KindRetailer),
		service.NewApplicantList(storeClient, sess, toasts, client.KindSupplier),
		service.NewApplicantList(storeClient, sess, toasts, client.KindApplication),
	}

	srv := server.NewServer(server.Deps{
		Session:    sess,
		Toasts:     toasts,
		Orders:     orders,
		Products:   products,
		Attributes: attributes,
		Applicants: applicants,
		Banners:    banners,
	})

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting admin console on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
