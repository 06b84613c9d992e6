package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/murkotick/catalog-admin/internal/app/catalog/contracts"
	"github.com/murkotick/catalog-admin/internal/app/catalog/queries/low_stock"
	"github.com/murkotick/catalog-admin/internal/app/catalog/repo"
	"github.com/murkotick/catalog-admin/internal/app/catalog/store"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/adjust_stock"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/create_product"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/delete_product"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/load_page"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/load_product"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/reset_stock"
	"github.com/murkotick/catalog-admin/internal/app/catalog/usecases/update_product"
	"github.com/murkotick/catalog-admin/internal/pkg/apiclient"
	"github.com/murkotick/catalog-admin/internal/pkg/clock"
	"github.com/murkotick/catalog-admin/internal/pkg/config"
	"github.com/murkotick/catalog-admin/internal/pkg/obs"
	"github.com/murkotick/catalog-admin/internal/pkg/prefstore"
	"github.com/murkotick/catalog-admin/internal/transport/web"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()
	log := obs.NewLogger(os.Stdout, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	var prefs contracts.PreferenceStorage
	if cfg.RedisAddr != "" {
		rp, err := prefstore.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Error("redis connect failed", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		defer rp.Close()
		prefs = rp
	} else {
		prefs = prefstore.NewMemory()
	}

	st := store.New(clock.RealClock{})
	if saved, err := prefs.Load(ctx); err != nil {
		log.Warn("loading preferences failed", "error", err)
	} else {
		st.RestorePreferences(saved)
	}

	productsAPI := apiclient.New("products", cfg.ProductsBaseURL, cfg.ProductsAPIKey, cfg.RequestTimeout, log)
	inventoryAPI := apiclient.New("inventory", cfg.InventoryBaseURL, cfg.InventoryAPIKey, cfg.RequestTimeout, log)

	products := repo.NewProductRepo(productsAPI)
	inventory := repo.NewInventoryRepo(inventoryAPI, log)

	cmds := web.Commands{
		Create: create_product.NewInteractor(products, st),
		Update: update_product.NewInteractor(products, st),
		Delete: delete_product.NewInteractor(products, st),
		Adjust: adjust_stock.NewInteractor(inventory, st),
		Reset:  reset_stock.NewInteractor(inventory, st),
	}
	views := web.Views{
		LoadPage:    load_page.NewInteractor(products, inventory, st, prefs, log),
		LoadProduct: load_product.NewInteractor(products, inventory, st, log),
		LowStock:    low_stock.NewHandler(products),
	}
	opts := web.Options{
		DefaultPageSize:   cfg.DefaultPageSize,
		LowStockThreshold: cfg.LowStockThreshold,
	}
	h := web.NewHandler(cmds, views, st, prefs, opts, log)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: web.NewRouter(h),
	}

	go func() {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve failed", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown incomplete", "error", err)
	}

	if err := prefs.Save(shutdownCtx, st.Preferences()); err != nil {
		log.Warn("saving preferences on shutdown failed", "error", err)
	}

	log.Info("server stopped")
}
