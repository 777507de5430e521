package di

import (
	"gorm.io/gorm"

	"hotsprings/application/serviceimpl"
	"hotsprings/domain/repositories"
	"hotsprings/domain/services"
	"hotsprings/infrastructure/postgres"
	"hotsprings/pkg/config"
	"hotsprings/pkg/logger"
)

// Container wires the application together with plain constructor calls; no
// process-wide registry, every dependency is passed explicitly.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB        *gorm.DB
	TxManager repositories.TransactionManager

	// Services
	RegistryService services.RegistryService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}
	if err := c.initInfrastructure(); err != nil {
		return err
	}
	c.initServices()
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	c.TxManager = postgres.NewTxManager(db)
	return nil
}

func (c *Container) initServices() {
	c.RegistryService = serviceimpl.NewRegistryService(c.TxManager)
	logger.Startup("services_ready", "Services initialized", nil)
}

func (c *Container) Cleanup() error {
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
