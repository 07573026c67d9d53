package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// ReturnProcessor завершает инициированный возврат упаковки
type ReturnProcessor interface {
	ProcessReturn(ctx context.Context, packageID string) (*domain.ReturnablePackage, error)
}

// Pool представляет пул воркеров инспекции возвратов.
// Сканер периодически собирает упаковки в статусе RETURN_INITIATED и
// отправляет их воркерам на обработку.
type Pool struct {
	workers      int
	queue        chan string
	packages     domain.PackageRepository
	processor    ReturnProcessor
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
}

// NewPool создает новый worker pool
func NewPool(
	workers int,
	queueSize int,
	scanInterval time.Duration,
	packages domain.PackageRepository,
	processor ReturnProcessor,
	logger *zap.Logger,
) *Pool {
	return &Pool{
		workers:      workers,
		queue:        make(chan string, queueSize),
		packages:     packages,
		processor:    processor,
		logger:       logger,
		scanInterval: scanInterval,
	}
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	// Запускаем сканер инициированных возвратов
	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает worker pool
func (p *Pool) Stop() {
	close(p.queue)
	p.wg.Wait()
}

// worker обрабатывает возвраты из очереди
func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("worker stopping", zap.Int("worker_id", id))
			return
		case packageID, ok := <-p.queue:
			if !ok {
				return
			}
			p.processPackage(ctx, packageID)
		}
	}
}

// scanner периодически сканирует инициированные возвраты
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("scanner stopping")
			return
		case <-ticker.C:
			p.scanInitiatedReturns(ctx)
		}
	}
}

// scanInitiatedReturns собирает ожидающие инспекции упаковки в очередь
func (p *Pool) scanInitiatedReturns(ctx context.Context) {
	packages, err := p.packages.GetInitiatedReturns(ctx)
	if err != nil {
		p.logger.Error("failed to get initiated returns", zap.Error(err))
		return
	}

	for _, pkg := range packages {
		select {
		case p.queue <- pkg.ID:
			// Успешно добавлено в очередь
		case <-ctx.Done():
			return
		default:
			// Очередь заполнена, упаковка попадет в следующий скан
			p.logger.Warn("queue is full, skipping package", zap.String("package_id", pkg.ID))
		}
	}
}

// processPackage обрабатывает один возврат
func (p *Pool) processPackage(ctx context.Context, packageID string) {
	p.logger.Debug("processing return", zap.String("package_id", packageID))

	pkg, err := p.processor.ProcessReturn(ctx, packageID)
	if err != nil {
		// Воркер мог проиграть гонку другой инспекции того же возврата
		if errors.Is(err, domain.ErrInvalidPackageState) || errors.Is(err, domain.ErrPackageNotFound) {
			p.logger.Debug("return already settled",
				zap.String("package_id", packageID),
			)
			return
		}

		p.logger.Error("failed to process return",
			zap.String("package_id", packageID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("return processed",
		zap.String("package_id", pkg.ID),
		zap.String("status", string(pkg.Status)),
		zap.Int("reward_coins", pkg.RewardCoins),
	)
}
