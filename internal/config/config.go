package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Rewards содержит размеры наград и пороги. Точные значения — конфигурация,
// а не логика ядра.
type Rewards struct {
	InitialBalance        int // Стартовый баланс кошелька
	DailyLoginCoins       int // Бонус за ежедневный вход
	CoinsPerKgCo2         int // Монет за каждый кг CO2 из анализа
	MinCoinsPerAnalysis   int // Нижний порог награды за анализ
	HighEcoScoreThreshold int // Минимальный эко-рейтинг для награды за покупку

	SustainablePurchaseCoins int // За добавление товара с высоким эко-рейтингом
	QuizCompletionCoins      int // За завершение викторины
	QuizPerfectScoreBonus    int // Дополнительно за идеальный результат
	ListingCreatedCoins      int // За размещение объявления
	MarketplacePurchaseCoins int // За покупку б/у товара

	PackageReturnBaseCoins     int // База за возврат упаковки
	PackageGoodConditionBonus  int // Бонус за хорошее состояние
	PackageSlightDamagePenalty int // Штраф за легкое повреждение
	PackageHeavyDamagePenalty  int // Штраф за сильное повреждение (возврат отклоняется)

	ProfileCompletionCoins int // За заполнение эко-интересов профиля
}

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress             string // Адрес и порт запуска сервиса
	DatabaseURI            string // URI подключения к БД
	AnalysisServiceAddress string // Адрес AI-сервиса анализа (пусто — работаем на фолбэках)
	LogLevel               string // Уровень логирования

	// Worker Pool конфигурация (инспекция возвратов)
	WorkerPoolSize     int           // Количество воркеров
	WorkerQueueSize    int           // Размер очереди возвратов
	WorkerScanInterval time.Duration // Интервал сканирования инициированных возвратов

	Rewards Rewards
}

func defaultRewards() Rewards {
	return Rewards{
		InitialBalance:             100,
		DailyLoginCoins:            10,
		CoinsPerKgCo2:              10,
		MinCoinsPerAnalysis:        5,
		HighEcoScoreThreshold:      4,
		SustainablePurchaseCoins:   15,
		QuizCompletionCoins:        20,
		QuizPerfectScoreBonus:      15,
		ListingCreatedCoins:        15,
		MarketplacePurchaseCoins:   20,
		PackageReturnBaseCoins:     20,
		PackageGoodConditionBonus:  10,
		PackageSlightDamagePenalty: 5,
		PackageHeavyDamagePenalty:  15,
		ProfileCompletionCoins:     10,
	}
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:           "info",
		WorkerPoolSize:     3,
		WorkerQueueSize:    100,
		WorkerScanInterval: 10 * time.Second,
		Rewards:            defaultRewards(),
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.AnalysisServiceAddress, "r", "", "AI analysis service address")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envAnalysisAddr, ok := os.LookupEnv("ANALYSIS_SERVICE_ADDRESS"); ok {
		cfg.AnalysisServiceAddress = envAnalysisAddr
	}

	// Уровень логирования
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Worker Pool конфигурация из env
	if envWorkerPoolSize, ok := os.LookupEnv("WORKER_POOL_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerPoolSize); err == nil && size > 0 {
			cfg.WorkerPoolSize = size
		}
	}

	if envWorkerQueueSize, ok := os.LookupEnv("WORKER_QUEUE_SIZE"); ok {
		if size, err := strconv.Atoi(envWorkerQueueSize); err == nil && size > 0 {
			cfg.WorkerQueueSize = size
		}
	}

	if envScanInterval, ok := os.LookupEnv("WORKER_SCAN_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envScanInterval); err == nil && interval > 0 {
			cfg.WorkerScanInterval = interval
		}
	}

	// Размеры наград из env
	loadRewardEnv(&cfg.Rewards)

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	return cfg, nil
}

// loadRewardEnv перекрывает размеры наград значениями из окружения
func loadRewardEnv(r *Rewards) {
	overrides := map[string]*int{
		"REWARD_INITIAL_BALANCE":         &r.InitialBalance,
		"REWARD_DAILY_LOGIN":             &r.DailyLoginCoins,
		"REWARD_COINS_PER_KG_CO2":        &r.CoinsPerKgCo2,
		"REWARD_MIN_PER_ANALYSIS":        &r.MinCoinsPerAnalysis,
		"REWARD_HIGH_ECOSCORE_THRESHOLD": &r.HighEcoScoreThreshold,
		"REWARD_SUSTAINABLE_PURCHASE":    &r.SustainablePurchaseCoins,
		"REWARD_QUIZ_COMPLETION":         &r.QuizCompletionCoins,
		"REWARD_QUIZ_PERFECT_BONUS":      &r.QuizPerfectScoreBonus,
		"REWARD_LISTING_CREATED":         &r.ListingCreatedCoins,
		"REWARD_MARKETPLACE_PURCHASE":    &r.MarketplacePurchaseCoins,
		"REWARD_PACKAGE_RETURN_BASE":     &r.PackageReturnBaseCoins,
		"REWARD_PACKAGE_GOOD_BONUS":      &r.PackageGoodConditionBonus,
		"REWARD_PACKAGE_SLIGHT_PENALTY":  &r.PackageSlightDamagePenalty,
		"REWARD_PACKAGE_HEAVY_PENALTY":   &r.PackageHeavyDamagePenalty,
		"REWARD_PROFILE_COMPLETION":      &r.ProfileCompletionCoins,
	}

	for key, target := range overrides {
		if raw, ok := os.LookupEnv(key); ok {
			if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
				*target = value
			}
		}
	}
}
