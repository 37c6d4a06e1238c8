package main

import (
	"database/sql"
	"errors"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"johuart/internal/config"
	"johuart/internal/handlers"
	"johuart/internal/repositories"
	"johuart/internal/services"
	"johuart/utils"
)

type application struct {
	errorLog        *log.Logger
	infoLog         *log.Logger
	tokens          *utils.Manager
	artHandler      *handlers.ArtHandler
	categoryHandler *handlers.CategoryHandler
	userHandler     *handlers.UserHandler
	db              *sql.DB
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Image uploads are optional; without a configured bucket the upload
	// endpoint reports the storage error instead of failing startup.
	var storage handlers.ImageUploader
	if s, err := utils.NewStorage(
		cfg.Storage.Endpoint, cfg.Storage.Region, cfg.Storage.Bucket,
		cfg.Storage.AccessKey, cfg.Storage.SecretKey,
	); err == nil {
		storage = s
	} else {
		infoLog.Printf("Object storage disabled: %v", err)
		storage = unavailableStorage{}
	}

	// Repositories
	artRepo := repositories.ArtRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}

	// Services
	artService := &services.ArtService{ArtRepo: &artRepo, CategoryRepo: &categoryRepo, ErrorLog: errorLog}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo}
	userService := &services.UserService{UserRepo: &userRepo}

	// Handlers
	artHandler := &handlers.ArtHandler{Service: artService, Storage: storage}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	userHandler := &handlers.UserHandler{Service: userService, Tokens: tokens}

	return &application{
		errorLog:        errorLog,
		infoLog:         infoLog,
		tokens:          tokens,
		artHandler:      artHandler,
		categoryHandler: categoryHandler,
		userHandler:     userHandler,
		db:              db,
	}, nil
}

type unavailableStorage struct{}

func (unavailableStorage) UploadImage([]byte, string, string, string) (string, error) {
	return "", errors.New("object storage is not configured")
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(35)
	return db, nil
}
