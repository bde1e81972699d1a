package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ghiaccio/backend/internal/domain/identity"
	"github.com/ghiaccio/backend/internal/domain/inventory"
	"github.com/ghiaccio/backend/internal/domain/ordering"
	"github.com/ghiaccio/backend/internal/infrastructure/config"
	"github.com/ghiaccio/backend/internal/infrastructure/logger"
	"github.com/ghiaccio/backend/internal/infrastructure/persistence"
	"github.com/ghiaccio/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	switch command {
	case "up":
		if err := migrate(db); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema migrated")

	case "seed":
		if err := migrate(db); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		if err := seed(db, log); err != nil {
			log.Fatal("Seed failed", zap.Error(err))
		}
		log.Info("Seed data inserted")

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

// migrate creates or updates the user, orders, and freezer tables
func migrate(db *persistence.Database) error {
	return db.DB.AutoMigrate(
		&models.UserModel{},
		&models.OrderModel{},
		&models.FreezerModel{},
	)
}

// seed inserts a demo admin account, a few customers, freezer units, and
// sample orders. Safe to re-run: it skips seeding when users already exist.
func seed(db *persistence.Database, log *zap.Logger) error {
	ctx := context.Background()

	var count int64
	if err := db.DB.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Users already present, skipping seed", zap.Int64("count", count))
		return nil
	}

	userRepo := persistence.NewGormUserRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	freezerRepo := persistence.NewGormFreezerRepository(db.DB)

	seedUsers := []struct {
		name, surname, phone, email, password string
		role                                  identity.Role
	}{
		{"Franco", "Neri", "3331000001", "franky@example.com", "Password1!", identity.RoleCustomer},
		{"Mauro", "Bianchi", "3331000002", "mauro@example.com", "Password2!", identity.RoleCustomer},
		{"Giovanni", "Verdi", "3331000003", "giovanni@example.com", "Password3!", identity.RoleCustomer},
		{"Luca", "Russo", "3331000004", "luca@example.com", "Password4!", identity.RoleCustomer},
		{"Ammin", "Istratore", "3331000005", "admin@admin.com", "AdminPass1!", identity.RoleAdmin},
	}

	users := make([]*identity.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		user, err := identity.NewUser(su.name, su.surname, su.phone, su.email, su.password, su.role)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", su.email, err)
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("insert user %s: %w", su.email, err)
		}
		users = append(users, user)
	}
	log.Info("Seed users inserted", zap.Int("count", len(users)))

	seedFreezers := []struct {
		name            string
		bags            int
		current, maxCap int64
	}{
		{"Freezer A", 10, 50, 100},
		{"Freezer B", 20, 80, 200},
		{"Freezer C", 15, 60, 150},
	}
	for _, sf := range seedFreezers {
		freezer, err := inventory.NewFreezer(sf.name, sf.bags,
			decimal.NewFromInt(sf.current), decimal.NewFromInt(sf.maxCap))
		if err != nil {
			return fmt.Errorf("seed freezer %s: %w", sf.name, err)
		}
		if err := freezerRepo.Create(ctx, freezer); err != nil {
			return fmt.Errorf("insert freezer %s: %w", sf.name, err)
		}
	}
	log.Info("Seed freezers inserted", zap.Int("count", len(seedFreezers)))

	seedOrders := []struct {
		quantity int64
		iceType  ordering.IceType
		address  string
		daysOut  int
		hour     string
	}{
		{10, ordering.IceTypeConsumption, "Via Roma 1, Torino", 5, "10:00"},
		{20, ordering.IceTypeCooling, "Via Po 15, Torino", 7, "15:30"},
		{15, ordering.IceTypeConsumption, "Corso Francia 30, Torino", 10, "09:00"},
	}
	now := time.Now()
	for i, so := range seedOrders {
		owner := users[i%len(users)]
		date := now.AddDate(0, 0, so.daysOut).Format(ordering.DateLayout)
		order, err := ordering.NewOrder(owner.ID, decimal.NewFromInt(so.quantity),
			so.iceType, so.address, date, so.hour, now)
		if err != nil {
			return fmt.Errorf("seed order %d: %w", i+1, err)
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return fmt.Errorf("insert order %d: %w", i+1, err)
		}
	}
	log.Info("Seed orders inserted", zap.Int("count", len(seedOrders)))

	return nil
}

func printUsage() {
	fmt.Println(`Ice Delivery Database Tool

Usage:
  migrate [flags] <command>

Commands:
  up      Create or update the database schema
  seed    Migrate, then insert demo users, freezers, and orders

Flags:
  -log-level string   Log level: debug, info, warn, error (default: info)

Configuration comes from config.toml and ICE_-prefixed environment
variables, the same as the server binary.`)
}
