package app

import (
	"context"
	"log"

	"github.com/RoGogDBD/menucat/internal/config"
	"github.com/RoGogDBD/menucat/internal/config/db"
	"github.com/RoGogDBD/menucat/internal/kafka"
	"github.com/RoGogDBD/menucat/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App содержит все зависимости приложения
type App struct {
	Config *config.Config
	DBPool *pgxpool.Pool
	Store  repository.MenuStore
	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp создает новое приложение.
func NewApp(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		Config: cfg,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Init выполняет инициализацию зависимостей приложения.
func (a *App) Init() error {
	// Инициализация БД; без DSN работаем на хранилище в памяти
	if err := a.initDatabase(a.ctx); err != nil {
		log.Printf("Warning: cannot connect to DB: %v. Falling back to in-memory store.", err)
	}

	if a.Store == nil {
		a.Store = repository.NewMemStorage()
		log.Println("Using in-memory menu store")
	}

	// Запуск фида импорта меню
	if a.Config.Kafka.Enabled() {
		go kafka.RunConsumer(a.ctx, a.Config.Kafka, a.Store)
	}

	return nil
}

// initDatabase инициализирует подключение к базе данных
func (a *App) initDatabase(ctx context.Context) error {
	if a.Config.Database.DSN == "" {
		log.Println("No DSN provided, running without database")
		return nil
	}

	dbPool, err := db.NewPool(ctx, a.Config.Database.DSN)
	if err != nil {
		return err
	}

	a.DBPool = dbPool
	a.Store = repository.NewPostgresStorage(dbPool)
	log.Println("Database initialized successfully")

	return nil
}

// Close освобождает все ресурсы приложения
func (a *App) Close() {
	log.Println("Shutting down application...")

	// Отменяем контекст (остановит фид импорта)
	if a.cancel != nil {
		a.cancel()
	}

	// Закрываем подключение к БД
	if a.DBPool != nil {
		a.DBPool.Close()
		log.Println("Database connection closed")
	}

	log.Println("Application shutdown complete")
}

// Context возвращает контекст приложения
func (a *App) Context() context.Context {
	return a.ctx
}
