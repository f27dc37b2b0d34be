// Package ledger implements the business rules of FinSight on top of the
// database: categories, incomes and expenses, budgets, goals and debts,
// repayments, month closures, reports and the import and export of all data.
//
// The ledger owns all writes. Operations that change more than one table run
// in a single database transaction.
package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/Mura0908/finsight-app-New/internal/events"
	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/Mura0908/finsight-app-New/internal/session"
	"github.com/Mura0908/finsight-app-New/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultSessionTTL is the lifetime of a repayment access grant.
const DefaultSessionTTL = 12 * time.Hour

type Ledger struct {
	db        *gorm.DB
	now       func() time.Time
	location  *time.Location
	publisher events.Publisher
	sessions  *session.Store
}

type Option func(*Ledger)

// WithClock sets the clock used for "today" and for month closures.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithLocation sets the time zone that determines the current day.
func WithLocation(location *time.Location) Option {
	return func(l *Ledger) {
		l.location = location
	}
}

// WithPublisher sets the publisher for domain events.
func WithPublisher(publisher events.Publisher) Option {
	return func(l *Ledger) {
		l.publisher = publisher
	}
}

// WithSessions sets the store for repayment access grants.
func WithSessions(sessions *session.Store) Option {
	return func(l *Ledger) {
		l.sessions = sessions
	}
}

// New creates a ledger on the database.
func New(db *gorm.DB, options ...Option) *Ledger {
	l := &Ledger{
		db:        db,
		now:       time.Now,
		location:  time.UTC,
		publisher: events.Nop{},
		sessions:  session.NewStore(DefaultSessionTTL),
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// Today returns the current day in the configured location.
func (l *Ledger) Today() types.Date {
	return types.DateOf(l.now().In(l.location))
}

// publish sends an event. Failures are logged only since the data is
// already committed.
func (l *Ledger) publish(ctx context.Context, event events.Event) {
	err := l.publisher.Publish(ctx, event)
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("publishing event failed")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns the LIKE pattern matching s anywhere in a column.
// Use it with "LIKE ? ESCAPE '\'".
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// tx runs fn in a database transaction bound to ctx.
//
// Failures to begin or commit the transaction do not pass through the gorm
// callbacks and are translated here.
func (l *Ledger) tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return models.GeneralError(l.db.WithContext(ctx).Transaction(fn))
}
