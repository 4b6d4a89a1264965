// internal/app/features/dashboard/aggregator.go
package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/dalemusser/tourdash/internal/app/store/docs"
	"github.com/dalemusser/tourdash/internal/app/system/timebucket"
	"github.com/dalemusser/tourdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source is the slice of the document store the aggregator needs: whole
// collections as raw documents, plus cheap counts. *docs.Store satisfies
// it; tests use an in-memory fake.
type Source interface {
	ListAll(ctx context.Context, name string) ([]bson.M, error)
	Count(ctx context.Context, name string) (int64, error)
}

// Aggregator reduces the six source collections into one Snapshot per
// call. It holds no state between calls and is safe for concurrent use.
type Aggregator struct {
	src Source
	log *zap.Logger
	now func() time.Time // injected in tests for deterministic windows
}

// NewAggregator creates an Aggregator reading from src.
func NewAggregator(src Source, logger *zap.Logger) *Aggregator {
	return &Aggregator{src: src, log: logger, now: time.Now}
}

// Build runs one full aggregation pass and returns the snapshot.
//
// The six collection reads are independent and read-only, so they are
// issued concurrently and awaited together. Build is total: malformed
// documents contribute their documented defaults instead of aborting, and
// a failed read yields the all-zero error snapshot rather than an error.
func (a *Aggregator) Build(ctx context.Context) Snapshot {
	ref := a.now().UTC()

	var (
		sessions, users, payments, statusDocs []bson.M
		resumeCount, answerCount              int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sessions, err = a.src.ListAll(gctx, docs.Sessions)
		return err
	})
	g.Go(func() (err error) {
		users, err = a.src.ListAll(gctx, docs.Users)
		return err
	})
	g.Go(func() (err error) {
		payments, err = a.src.ListAll(gctx, docs.Payments)
		return err
	})
	g.Go(func() (err error) {
		statusDocs, err = a.src.ListAll(gctx, docs.SystemStatus)
		return err
	})
	g.Go(func() (err error) {
		resumeCount, err = a.src.Count(gctx, docs.Resumes)
		return err
	})
	g.Go(func() (err error) {
		answerCount, err = a.src.Count(gctx, docs.TestResults)
		return err
	})
	if err := g.Wait(); err != nil {
		a.log.Error("dashboard source read failed", zap.Error(err))
		return errorSnapshot(ref)
	}

	accounts := make([]models.User, len(users))
	for i, doc := range users {
		accounts[i] = userFromDoc(doc)
	}

	snap := Snapshot{
		SessionsByDay:    bucketSessions(sessions, ref),
		UserSegmentation: segmentByDevice(accounts),
		SystemStatus:     latestStatus(statusDocs),
		TotalResumes:     resumeCount,
		TotalAnswers:     answerCount,
	}
	snap.TotalRevenue, snap.RevenueDeltaPct = revenue(payments, ref)
	fillEngagement(&snap, accounts, resumeCount)
	snap.RecentUsers, snap.RecentLogins = recencyLists(accounts)
	return snap
}

// bucketSessions counts sessions per UTC day and emits the 7-day window
// ending on ref's day, zero-filling days without sessions. A session with
// a missing or unparseable timestamp is counted as having happened at ref;
// sessions outside the window are excluded.
func bucketSessions(sessions []bson.M, ref time.Time) []DayCount {
	perDay := make(map[string]int)
	for _, doc := range sessions {
		ts := parseInstant(doc["timestamp"], ref)
		perDay[timebucket.DayKey(ts)]++
	}

	out := make([]DayCount, 0, 7)
	for _, key := range timebucket.Last7DayKeys(ref) {
		out = append(out, DayCount{
			Label: timebucket.DayLabel(key),
			Count: perDay[key],
		})
	}
	return out
}

// segmentByDevice groups users by device type for the segmentation donut.
// Missing device types land in "Unknown"; labels are title-cased for
// display.
func segmentByDevice(users []models.User) map[string]int {
	caser := cases.Title(language.English)
	out := make(map[string]int)
	for _, u := range users {
		label := u.DeviceType
		if label == "" {
			label = "Unknown"
		} else {
			label = caser.String(label)
		}
		out[label]++
	}
	return out
}

// revenue sums paid orders and compares the current UTC month against the
// previous one. Only completed/success payments ever contribute; this is
// the business rule, not an incidental filter. The month a payment belongs
// to is its completion time, falling back to its creation time.
func revenue(payments []bson.M, ref time.Time) (total, deltaPct float64) {
	curStart, prevStart := timebucket.MonthBounds(ref)

	var cur, prev float64
	for _, doc := range payments {
		p := paymentFromDoc(doc, ref)
		if !p.Paid() {
			continue
		}

		amount := p.Revenue()
		total += amount

		when := p.RevenueDate()
		switch {
		case !when.Before(curStart):
			cur += amount
		case !when.Before(prevStart):
			prev += amount
		}
	}

	if prev == 0 {
		return total, 0
	}
	return total, round1((cur - prev) / prev * 100)
}

// latestStatus picks the most recent system_status document, defaulting to
// an operational badge when the collection is empty. This is a last-known
// value written by ops tooling, not a live probe.
func latestStatus(statusDocs []bson.M) StatusInfo {
	if len(statusDocs) == 0 {
		return StatusInfo{Status: defaultStatus, Message: defaultStatusMessage}
	}

	best := statusFromDoc(statusDocs[0])
	for _, doc := range statusDocs[1:] {
		if s := statusFromDoc(doc); s.UpdatedAt.After(best.UpdatedAt) {
			best = s
		}
	}

	info := StatusInfo{
		Status:  best.Status,
		Message: best.Message,
	}
	if info.Status == "" {
		info.Status = defaultStatus
	}
	if info.Message == "" {
		info.Message = defaultStatusMessage
	}
	return info
}

// fillEngagement derives the user KPI block. The segments are disjoint by
// construction: premium (> trial allotment), unused trial (exactly the
// allotment), active trial (started but under 3 minutes left). A user
// document without minutes_balance behaves as balance 0.
func fillEngagement(snap *Snapshot, users []models.User, resumeCount int64) {
	snap.TotalUsers = len(users)

	var trialUsed int
	for _, u := range users {
		bal := u.MinutesBalance
		switch {
		case bal > models.TrialMinutes:
			snap.PremiumUsers++
		case bal == models.TrialMinutes:
			snap.UnusedTrialUsers++
		case bal > 0 && bal < 3:
			snap.ActiveTrialUsers++
		}
		// Anyone whose balance has moved off the default allotment has
		// used the product: consumed trial minutes, or consumed them and
		// topped up.
		if bal != models.TrialMinutes {
			trialUsed++
		}
	}

	snap.TrialAdoptionPct = adoptionPct(float64(trialUsed), float64(snap.TotalUsers))
	snap.ResumeAdoptionPct = adoptionPct(float64(resumeCount), float64(snap.TotalUsers))
}

// recencyLists returns the 5 most recent signups and the 5 most recent
// logins (users without a login timestamp are excluded from the latter).
// Sorting is stable, so equal timestamps keep their input order.
func recencyLists(users []models.User) (recent, logins []RecentUser) {
	recent = make([]RecentUser, 0, len(users))
	logins = make([]RecentUser, 0, len(users))

	for _, u := range users {
		row := RecentUser{
			Email:     u.Email,
			FullName:  u.FullName,
			CreatedAt: u.CreatedAt,
		}
		recent = append(recent, row)

		if u.LastLoginAt != nil {
			withLogin := row
			withLogin.LastLoginAt = u.LastLoginAt
			logins = append(logins, withLogin)
		}
	}

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	sort.SliceStable(logins, func(i, j int) bool {
		return logins[i].LastLoginAt.After(*logins[j].LastLoginAt)
	})

	return truncate(recent, 5), truncate(logins, 5)
}

func truncate(rows []RecentUser, n int) []RecentUser {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

// adoptionPct is a guarded percentage: zero denominator yields 0, and the
// result is clamped to [0, 100] so multi-document counts (several resumes
// per user) cannot push a card past 100%.
func adoptionPct(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	pct := round1(part / whole * 100)
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// round1 rounds to one decimal place, the precision the dashboard cards
// display.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
