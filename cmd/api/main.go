package main

import (
	"context"
	"log"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
	"pizzeria/internal/catalog"
	"pizzeria/internal/config"
	"pizzeria/internal/db"
	"pizzeria/internal/order"

	_ "pizzeria/docs"
)

// @title        Pizzeria API
// @version      1.0
// @description  REST backend for the pizzeria ordering clients: menu, per-session carts, checkout and order lifecycle.
// @BasePath     /api
func main() {
	cfg := config.Load()

	if err := db.Migrate(cfg.PostgresDSN); err != nil {
		log.Fatalf("[db] migrate: %v", err)
	}
	pool, err := db.Connect(context.Background(), cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] connect: %v", err)
	}
	defer pool.Close()

	users := auth.NewPGRepo(pool)
	tokens := auth.NewTokens(cfg.JWTSecret)
	authSvc := auth.NewService(users, tokens)
	menu := catalog.NewPGRepo(pool)
	orders := order.NewService(order.NewPGRepo(pool))
	carts := cart.NewManager()

	r := newRouter(deps{
		auth:   authSvc,
		tokens: tokens,
		users:  users,
		menu:   menu,
		orders: orders,
		carts:  carts,
	})

	log.Printf("api listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}
