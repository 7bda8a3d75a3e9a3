package main

import (
	"log"
	"time"

	"storefront/cart"
	"storefront/checkout"
	"storefront/config"
	"storefront/events"
	"storefront/mercadopago"
	"storefront/repository"
	"storefront/routers"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := config.SetupMySQLConnection(cfg.Database)
	if err != nil {
		log.Fatalf("connect to mysql: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("get sql.DB: %v", err)
	}
	defer sqlDB.Close()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	rdb := config.SetupRedisConnection(cfg.Redis)
	defer rdb.Close()

	orderRepo := repository.NewOrderRepository(db)
	cartStore := cart.NewStore(rdb)
	mpClient := mercadopago.NewClient(cfg.MercadoPago.BaseURL, cfg.MercadoPago.AccessToken, 5*time.Second)

	checkoutSvc := checkout.NewService(orderRepo, mpClient, cfg.Server.SiteURL)

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Fatalf("connect to amqp: %v", err)
		}
		defer publisher.Close()
		checkoutSvc.SetPublisher(publisher)
	}

	router := routers.SetupRouters(cfg, db, orderRepo, cartStore, checkoutSvc)
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
