package workers

import (
	"context"
	"time"

	"logistik_backend/internal/email"
	"logistik_backend/internal/logger"
	"logistik_backend/internal/models"
	"logistik_backend/internal/repositories"
)

// claimBatchSize caps how many due packages one sweep processes.
const claimBatchSize = 100

// DeliveryWorker advances submitted packages through the delivery lifecycle.
// The schedule is durable: each package carries its own "next transition due
// at" timestamp, so progression survives process restarts and needs no timer
// handle per package. Transitions are claimed with a conditional update keyed
// on the expected current status; a lost claim means another sweep (or a
// concurrent instance) already advanced the row, and it is skipped.
type DeliveryWorker struct {
	packageRepo        repositories.PackageRepository
	userRepo           repositories.UserRepository
	emailProvider      email.Provider
	sweepInterval      time.Duration
	transitionInterval time.Duration
}

func NewDeliveryWorker(
	packageRepo repositories.PackageRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
	sweepInterval, transitionInterval time.Duration,
) *DeliveryWorker {
	return &DeliveryWorker{
		packageRepo:        packageRepo,
		userRepo:           userRepo,
		emailProvider:      emailProvider,
		sweepInterval:      sweepInterval,
		transitionInterval: transitionInterval,
	}
}

// Start runs the sweep loop until the context is canceled.
func (w *DeliveryWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *DeliveryWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	logger.Info("Delivery worker started",
		"sweep_interval", w.sweepInterval,
		"transition_interval", w.transitionInterval,
	)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Delivery worker stopped")
			return
		case <-ticker.C:
			w.Sweep(time.Now())
		}
	}
}

// Sweep advances every package whose transition is due at the given time.
// Failures on one package are logged and do not block the others; the row
// keeps its due time and is picked up again on the next sweep.
func (w *DeliveryWorker) Sweep(now time.Time) {
	due, err := w.packageRepo.FindDue(now, claimBatchSize)
	if err != nil {
		logger.WithError(err).Error("Delivery worker: failed to fetch due packages")
		return
	}

	for _, pkg := range due {
		if err := w.advance(&pkg, now); err != nil {
			logger.WithError(err).Error("Delivery worker: failed to advance package",
				"package_id", pkg.ID,
				"status", string(pkg.Status),
			)
		}
	}
}

// advance performs one tick for one package: compute the successor of the
// persisted status by table lookup and claim the transition.
func (w *DeliveryWorker) advance(pkg *models.Package, now time.Time) error {
	next, ok := models.NextStatus(pkg.Status)
	if !ok {
		// Terminal status with a leftover schedule; clear it so the row
		// stops showing up as due.
		_, err := w.packageRepo.AdvanceStatus(pkg.ID, pkg.Status, pkg.Status, nil)
		return err
	}

	var nextAt *time.Time
	if !models.IsTerminal(next) {
		t := now.Add(w.transitionInterval)
		nextAt = &t
	}

	claimed, err := w.packageRepo.AdvanceStatus(pkg.ID, pkg.Status, next, nextAt)
	if err != nil {
		return err
	}
	if !claimed {
		// Another writer advanced this package first
		logger.Debug("Delivery worker: claim lost", "package_id", pkg.ID)
		return nil
	}

	logger.Info("Package status updated",
		"package_id", pkg.ID,
		"status", string(next),
	)

	if next == models.PackageStatusDelivered {
		w.notifyDelivered(pkg)
	}

	return nil
}

// notifyDelivered emails the submitter and the primary recipient exactly
// once, after the terminal transition has been claimed. A failed email is
// logged and not retried.
func (w *DeliveryWorker) notifyDelivered(pkg *models.Package) {
	recipients := []string{pkg.PrimaryEmail}

	owner, err := w.userRepo.FindByID(pkg.UserID)
	if err != nil {
		logger.WithError(err).Error("Delivery worker: failed to load package owner",
			"package_id", pkg.ID,
			"user_id", pkg.UserID,
		)
	} else {
		recipients = append([]string{owner.Email}, recipients...)
	}

	if err := w.emailProvider.Send(email.DeliveryConfirmation(recipients, pkg.ID)); err != nil {
		logger.WithError(err).Error("Delivery worker: failed to send delivery email",
			"package_id", pkg.ID,
		)
	}
}
