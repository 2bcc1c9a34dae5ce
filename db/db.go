package db

import (
	"os"

	"licencas/config"
	"licencas/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"go.uber.org/zap"
)

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com o banco (postgres por padrão).
// Para criar a tabela licencas em ambientes de dev, exporte AUTOMIGRATE=1.
func Connect() (*gorm.DB, error) {
	driver := conf.DbDriver
	if driver == "" {
		driver = "postgres"
	}

	log := zap.L().With(zap.String("driver", driver), zap.String("db_name", conf.DbName))
	log.Info("Abrindo conexão com o banco...")

	db, err := gorm.Open(driver, conf.DSN())
	if err != nil {
		log.Error("Erro ao conectar no banco", zap.Error(err))
		return nil, err
	}

	db.LogMode(conf.DbLog)

	if getenv("AUTOMIGRATE", "0") == "1" {
		if err := db.AutoMigrate(&models.License{}).Error; err != nil {
			log.Warn("automigrate falhou", zap.Error(err))
		}
	}

	return db, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
