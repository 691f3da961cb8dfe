package main

import (
	"context"
	"flag"
	"log"

	"engagement-tracker/pkg/config"
	"engagement-tracker/pkg/database/postgresql"
	"engagement-tracker/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "create the bootstrap admin user")
	flag.Parse()

	if !*runAdmin {
		log.Println("no seeder selected")
		log.Println("")
		flag.PrintDefaults()
		log.Println("")
		log.Println("example: go run ./seeders/cmd/seed -admin")
		return
	}

	ctx := context.Background()
	cfg := config.New()

	dbPool, err := postgresql.ConnectDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalln("failed to connect to postgres:", err)
	}
	defer dbPool.Close()

	if *runAdmin {
		log.Println("seeding admin user")
		if err := seeders.SeedAdminUser(ctx, dbPool); err != nil {
			log.Fatalln("admin seeder failed:", err)
		}
	}

	log.Println("seeding finished")
}
