package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/atuservicios/servicio-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("servicio")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS servicio`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO servicio").Error; err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Account{},
		&schema.ServiceRequest{},
	).Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.ServiceRequest{}).
		AddIndex("idx_service_request_client", "client_id").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.ServiceRequest{}).
		AddIndex("idx_service_request_provider_status", "provider_id", "status").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
