package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"StockDigest/internal/collector"
	"StockDigest/internal/model"
	"StockDigest/internal/notifier"
	"StockDigest/internal/recorder"
	"StockDigest/internal/report"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily report pipeline on a cron trigger.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Formatter *report.Formatter
	Policy    model.ThresholdPolicy
	Tags      map[string]model.RecommendationTag
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Lookback  int
	Recipient string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, f *report.Formatter, policy model.ThresholdPolicy, tags map[string]model.RecommendationTag, n notifier.Notifier, rec recorder.Recorder, lookback int, recipient string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Formatter: f,
		Policy:    policy,
		Tags:      tags,
		Notifier:  n,
		Recorder:  rec,
		Lookback:  lookback,
		Recipient: recipient,
		Ctx:       ctx,
	}
}

// Register registers the daily report task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyReport); err != nil {
		return fmt.Errorf("register daily report: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily report immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyReport()
}

// dailyReport runs one fetch, compute, format, send cycle. The report date is
// captured once per invocation; no state survives between runs. A fetch
// failure or a delivery failure ends this run only, the next tick is
// unaffected.
func (s *Scheduler) dailyReport() {
	log.Println("[INFO] running daily report")
	now := time.Now()
	run := &recorder.RunRecord{Recipient: s.Recipient}

	series, err := s.Collector.Collect(s.Lookback)
	if err != nil {
		log.Printf("[ERROR] daily collect: %v", err)
		run.Note = err.Error()
		s.recordRun(run)
		return
	}
	for _, sym := range s.Collector.Symbols {
		if _, ok := series[sym]; ok {
			run.Symbols = append(run.Symbols, sym)
		}
	}

	records := report.Compute(series, s.Collector.Symbols, s.Policy, s.Tags)
	run.Included = len(records)
	if len(records) == 0 {
		log.Println("[INFO] no stocks met the threshold today")
	}

	lines := s.Formatter.Format(records, now)
	subject := fmt.Sprintf("Your stocks today, %s", report.DateLabel(now))
	body := report.HTMLBody(lines, now)

	if err := s.Notifier.Send(s.Ctx, subject, body); err != nil {
		log.Printf("[ERROR] send report: %v", err)
		run.Note = err.Error()
		s.recordRun(run)
		return
	}
	run.Sent = true
	s.recordRun(run)
}

func (s *Scheduler) recordRun(run *recorder.RunRecord) {
	if err := s.Recorder.RecordRun(run); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
