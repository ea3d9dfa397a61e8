// Package payments опрашивает платежный шлюз и зачисляет подтвержденные пополнения.
package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/transport/payments/client"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultPollInterval           = 5 * time.Second
	defaultLimitPerIteration uint = 100
	defaultWorkers           uint = 10
)

// Processor периодически проверяет у шлюза статус ожидающих пополнений.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	pollInterval      time.Duration
}

func New(svs Servicer, gatewayURL string, l *logrus.Logger) *Processor {
	return &Processor{
		svs:    svs,
		client: client.New(gatewayURL),
		l: l.WithFields(logrus.Fields{
			"component": "payments",
			"module":    "processor",
		}),
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultWorkers,
		pollInterval:      defaultPollInterval,
	}
}

// SetLimitPerIteration кол-во платежей, проверяемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	p.limitPerIteration = limit
	return p
}

func (p *Processor) SetWorkers(workers uint) *Processor {
	p.workers = workers
	return p
}

func (p *Processor) SetPollInterval(d time.Duration) *Processor {
	p.pollInterval = d
	return p
}

// Run крутит цикл опроса до отмены контекста:
//  1. берет из сервисного слоя ожидающие платежи с внешним идентификатором;
//  2. воркеры параллельно запрашивают их статус у шлюза, на 429 ждут Retry-After;
//  3. для каждого PAID вызывается CompletePayment.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
		"pollInterval":      p.pollInterval,
	}).Info("Starting")

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		if err := p.process(ctx); err != nil && !errors.Is(err, ErrNoPayments) {
			p.l.WithError(err).Error("process error")
		}
		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-ticker.C:
		}
	}
}

func (p *Processor) process(ctx context.Context) error {
	pending, err := p.produce(ctx)
	if err != nil {
		return fmt.Errorf("process: %w", err)
	}

	for _, result := range p.runWorkers(ctx, pending) {
		l := p.l.WithFields(logrus.Fields{
			"paymentID":  result.Payment.ID,
			"externalID": result.externalID(),
		})
		if result.Error != nil {
			l.WithError(result.Error).Warn("get payment status")
			continue
		}
		if result.Status != client.StatusPaid {
			l.WithField("status", result.Status).Debug("payment is not paid yet")
			continue
		}
		p.complete(ctx, l, result)
	}
	return nil
}

func (p *Processor) complete(ctx context.Context, l *logrus.Entry, result workerResult) {
	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	payload := result.Payment.Payload
	_, err := p.svs.CompletePayment(reqCtx, payload, result.Amount)
	switch {
	case err == nil:
		l.WithField("amount", result.Amount).Info("payment completed")
	case errors.Is(err, domain.ErrAlreadyPaid):
		l.Debug("payment already completed")
	case errors.Is(err, domain.ErrPaymentAmountMismatch):
		// после перевода в review платеж больше не попадает в выборку, ошибка пишется один раз.
		if _, holdErr := p.svs.HoldForReview(reqCtx, payload); holdErr != nil {
			l.WithError(holdErr).Error("hold payment for review")
			return
		}
		l.WithError(err).WithField("amount", result.Amount).Error("payment amount mismatch, held for review")
	default:
		l.WithError(err).Error("complete payment")
	}
}

type workerResult struct {
	WorkerID uint
	Payment  *domain.TopupPayment
	Status   client.StatusType
	Amount   int64
	Error    error
}

func (r workerResult) externalID() string {
	if r.Payment.ExternalID == nil {
		return ""
	}
	return *r.Payment.ExternalID
}

// runWorkers fan-out/fan-in: платежи раздаются воркерам через канал, результаты собираются после их завершения.
func (p *Processor) runWorkers(ctx context.Context, pending []domain.TopupPayment) []workerResult {
	taskCh := make(chan *domain.TopupPayment, len(pending))
	for i := range pending {
		taskCh <- &pending[i]
	}
	close(taskCh)

	resultCh := make(chan workerResult, len(pending))
	wg := new(sync.WaitGroup)
	for i := range p.workers {
		wg.Add(1)
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]workerResult, 0, len(pending))
	for result := range resultCh {
		results = append(results, result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.TopupPayment,
	resultCh chan<- workerResult,
) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask на 429 ждет указанное шлюзом время и повторяет запрос.
func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.TopupPayment) workerResult {
	result := workerResult{WorkerID: workerID, Payment: task}
	if task.ExternalID == nil {
		result.Error = errors.New("payment has no external id")
		return result
	}

	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		resp, err := p.client.GetPaymentStatus(reqCtx, *task.ExternalID)
		cancel()

		if err != nil {
			var tooManyReq *client.TooManyRequestError
			if !errors.As(err, &tooManyReq) {
				result.Error = err
				return result
			}
			select {
			case <-ctx.Done():
				result.Error = ctx.Err()
				return result
			case <-time.After(tooManyReq.RetryAfter):
				continue
			}
		}

		result.Status = resp.Status
		result.Amount = resp.Amount.IntPart()
		return result
	}
}

// produce возвращает ErrNoPayments, если проверять нечего.
func (p *Processor) produce(ctx context.Context) ([]domain.TopupPayment, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	pending, err := p.svs.PendingForCheck(produceCtx, p.limitPerIteration)
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}
	if len(pending) == 0 {
		return nil, ErrNoPayments
	}
	return pending, nil
}
