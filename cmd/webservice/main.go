package main

import (
	"context"
	"fmt"

	"github.com/MrityunjayMaharana/Vendor-App/config"
	"github.com/MrityunjayMaharana/Vendor-App/internal/app"
	"github.com/MrityunjayMaharana/Vendor-App/internal/infrastructure/database/mongodb"
)

func main() {
	config := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(fmt.Sprintf("mongodb://%s:%s", config.MongoDBConfig.DBHost, config.MongoDBConfig.DBPort), config.MongoDBConfig.DBName)
	if err != nil {
		panic(err)
	}

	defer db.Client().Disconnect(context.Background())

	server := app.App{
		DB:     db,
		Config: config,
	}

	server.Start()
}
