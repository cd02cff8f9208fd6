package payroll

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"staffcore/internal/employee"
	"staffcore/internal/events"
	"staffcore/internal/messaging/kafka"
	"staffcore/internal/shared/apperror"
	"staffcore/internal/tenant"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultWorkerCount = 4

// ProcessResult merangkum satu batch run. Kegagalan per employee
// dicatat, tidak pernah menggagalkan batch.
type ProcessResult struct {
	Succeeded         int
	FailedEmployeeIDs []string
}

// Processor menjalankan pembuatan payslip massal untuk satu periode
// dengan worker pool terbatas.
type Processor struct {
	employees employee.Repository
	repo      Repository
	service   Service
	outbox    kafka.OutboxRepository
	workers   int
	logger    *zap.Logger
}

func NewProcessor(employees employee.Repository, repo Repository, service Service, outbox kafka.OutboxRepository, workers int) *Processor {
	if workers <= 0 {
		workers = defaultWorkerCount
	}
	return &Processor{
		employees: employees,
		repo:      repo,
		service:   service,
		outbox:    outbox,
		workers:   workers,
		logger:    zap.L().Named("payroll.processor"),
	}
}

// ProcessPeriod membuat payslip untuk semua employee aktif yang belum
// punya payslip di periode ini. Setiap worker menurunkan tenant context
// sendiri dari context induk; satu employee gagal tidak menghentikan
// yang lain, dan re-run tidak membuat duplikat.
func (p *Processor) ProcessPeriod(ctx context.Context, periodID string) (ProcessResult, error) {
	id, err := uuid.Parse(periodID)
	if err != nil {
		return ProcessResult{}, apperror.InvalidField("Period ID")
	}

	period, err := p.repo.FindPeriodByID(ctx, id)
	if err != nil {
		return ProcessResult{}, mapPeriodError(err)
	}

	emps, err := p.employees.FindAllActive(ctx)
	if err != nil {
		return ProcessResult{}, err
	}

	comp, hasTenant := tenant.CompanyFromContext(ctx)

	jobs := make(chan employee.Employee)

	var (
		mu        sync.Mutex
		succeeded int
		failed    []string
		wg        sync.WaitGroup
	)

	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Tenant context milik worker sendiri; tidak berbagi
			// mutable state dengan worker lain.
			workerCtx := ctx
			if hasTenant {
				workerCtx = tenant.WithCompany(ctx, comp)
			}

			for emp := range jobs {
				if err := p.processEmployee(workerCtx, emp, period); err != nil {
					p.logger.Warn("payslip generation failed",
						zap.String("employee_id", emp.ID.String()),
						zap.String("period_id", period.ID.String()),
						zap.Error(err),
					)
					mu.Lock()
					failed = append(failed, emp.ID.String())
					mu.Unlock()
					continue
				}
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}

	for _, emp := range emps {
		jobs <- emp
	}
	close(jobs)
	wg.Wait()

	sort.Strings(failed)

	result := ProcessResult{Succeeded: succeeded, FailedEmployeeIDs: failed}
	p.publishProcessed(ctx, period, result)

	p.logger.Info("period processed",
		zap.String("period_id", period.ID.String()),
		zap.Int("succeeded", succeeded),
		zap.Int("failed", len(failed)),
	)

	return result, nil
}

// publishProcessed mengantrekan event ringkasan batch ke outbox. Gagal
// antre tidak membatalkan batch yang sudah jalan; cukup dicatat.
func (p *Processor) publishProcessed(ctx context.Context, period *PayrollPeriod, result ProcessResult) {
	payload, err := json.Marshal(events.PeriodProcessedEvent{
		EventType:         "period.processed",
		PeriodID:          period.ID.String(),
		CompanyID:         period.CompanyID.String(),
		Succeeded:         result.Succeeded,
		FailedEmployeeIDs: result.FailedEmployeeIDs,
		OccurredAt:        time.Now().UTC(),
	})
	if err != nil {
		p.logger.Warn("marshal period event failed", zap.Error(err))
		return
	}

	err = p.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll_period",
		AggregateID:   period.ID.String(),
		EventType:     "period.processed",
		Topic:         events.PeriodProcessedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		p.logger.Warn("enqueue period event failed",
			zap.String("period_id", period.ID.String()),
			zap.Error(err),
		)
	}
}

func (p *Processor) processEmployee(ctx context.Context, emp employee.Employee, period *PayrollPeriod) error {
	// Sudah punya payslip berarti sisa run sebelumnya; lewati supaya
	// re-process tidak menggandakan.
	if _, err := p.repo.FindPayslipByEmployeeAndPeriod(ctx, emp.ID, period.ID); err == nil {
		return nil
	}

	_, err := p.service.GeneratePayslip(ctx, emp.ID.String(), period.ID.String())
	if err != nil {
		// Race dengan worker lain di index unik: payslip sudah ada,
		// bukan kegagalan.
		if apperror.ToHTTP(err).Code == apperror.CodeConflict {
			return nil
		}
		return err
	}
	return nil
}
