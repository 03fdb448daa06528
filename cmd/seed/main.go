package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"dripstore/internal/catalog"
	"dripstore/internal/config"
	"dripstore/internal/kv"
)

func main() {
	reset := flag.Bool("reset", false, "overwrite catalog collections with the compiled-in defaults")
	flag.Parse()

	cfg := config.LoadConfig()

	store, err := kv.OpenBolt(cfg.DataPath)
	if err != nil {
		log.Fatalf("failed to open data file: %v", err)
	}
	defer store.Close()

	if err := run(context.Background(), catalog.NewRepository(store), *reset); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, repo catalog.Repository, reset bool) error {
	if reset {
		fmt.Println("🧹 Resetting catalog collections to defaults...")
		if err := repo.SaveProducts(ctx, catalog.SeedProducts()); err != nil {
			return fmt.Errorf("reset products: %w", err)
		}
		if err := repo.SaveCategories(ctx, catalog.SeedCategories()); err != nil {
			return fmt.Errorf("reset categories: %w", err)
		}
		if err := repo.SaveSizes(ctx, catalog.SeedSizes()); err != nil {
			return fmt.Errorf("reset sizes: %w", err)
		}
		if err := repo.SaveCoupons(ctx, catalog.SeedCoupons()); err != nil {
			return fmt.Errorf("reset coupons: %w", err)
		}
	}

	// Reads seed any missing collection as a side effect.
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	sizes, err := repo.ListSizes(ctx)
	if err != nil {
		return fmt.Errorf("load sizes: %w", err)
	}
	coupons, err := repo.ListCoupons(ctx)
	if err != nil {
		return fmt.Errorf("load coupons: %w", err)
	}

	fmt.Printf("✅ Store ready: %d products, %d categories, %d sizes, %d coupons.\n",
		len(products), len(categories), len(sizes), len(coupons))
	return nil
}
