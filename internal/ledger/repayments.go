package ledger

import (
	"context"
	"errors"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// PasswordSet reports whether a repayment password is stored.
func (l *Ledger) PasswordSet(ctx context.Context) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).Model(&models.Setting{}).Where("`key` = ?", models.SettingRepaymentPassword).Count(&count).Error
	return count > 0, err
}

// Unlock grants access to the repayments and returns the session token.
//
// Without a stored password, setup becomes the password. Otherwise, password
// must match the stored one. There is no limit for attempts.
func (l *Ledger) Unlock(ctx context.Context, password, setup string) (string, error) {
	var setting models.Setting
	err := l.db.WithContext(ctx).First(&setting, "`key` = ?", models.SettingRepaymentPassword).Error

	if errors.Is(err, models.ErrResourceNotFound) {
		if setup == "" {
			return "", ErrPasswordNotSet
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(setup), bcrypt.DefaultCost)
		if err != nil {
			return "", err
		}

		err = l.db.WithContext(ctx).Create(&models.Setting{Key: models.SettingRepaymentPassword, Value: string(hash)}).Error
		if err != nil {
			return "", err
		}

		log.Info().Msg("repayment password set up")
		return l.sessions.Grant(), nil
	}

	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(setting.Value), []byte(password)) != nil {
		return "", ErrWrongPassword
	}

	return l.sessions.Grant(), nil
}

// Lock ends the session.
func (l *Ledger) Lock(token string) {
	l.sessions.Revoke(token)
}

// Unlocked reports whether the token grants access to the repayments.
func (l *Ledger) Unlocked(token string) bool {
	return l.sessions.Valid(token)
}

func (l *Ledger) authorize(token string) error {
	if !l.sessions.Valid(token) {
		return ErrRepaymentLocked
	}
	return nil
}

// RepaymentFilter selects repayments. Zero values do not filter.
type RepaymentFilter struct {
	Person string
	Type   models.RepaymentType
	Offset uint
	Limit  int
}

func (l *Ledger) Repayments(ctx context.Context, token string, filter RepaymentFilter) ([]models.Repayment, int64, error) {
	if err := l.authorize(token); err != nil {
		return nil, 0, err
	}

	query := l.db.WithContext(ctx).Model(&models.Repayment{})

	if filter.Person != "" {
		query = query.Where("person = ?", filter.Person)
	}

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	return page[models.Repayment](query, filter.Offset, filter.Limit)
}

func (l *Ledger) Repayment(ctx context.Context, token string, id uuid.UUID) (models.Repayment, error) {
	if err := l.authorize(token); err != nil {
		return models.Repayment{}, err
	}

	return first[models.Repayment](l.db.WithContext(ctx), id)
}

// SubmitRepayment creates a repayment or replaces an existing one.
func (l *Ledger) SubmitRepayment(ctx context.Context, token string, mode Mode, repayment models.Repayment) (models.Repayment, error) {
	if err := l.authorize(token); err != nil {
		return models.Repayment{}, err
	}

	err := l.tx(ctx, func(tx *gorm.DB) error {
		if mode.IsEdit() {
			current, err := first[models.Repayment](tx, mode.ID())
			if err != nil {
				return err
			}
			repayment.DefaultModel = current.DefaultModel
		} else {
			repayment.DefaultModel = models.DefaultModel{}
		}

		if repayment.Date.IsZero() {
			repayment.Date = l.Today()
		}

		return tx.Save(&repayment).Error
	})
	if err != nil {
		return models.Repayment{}, err
	}

	return repayment, nil
}

func (l *Ledger) RemoveRepayment(ctx context.Context, token string, id uuid.UUID) error {
	if err := l.authorize(token); err != nil {
		return err
	}

	return remove[models.Repayment](l.db.WithContext(ctx), id)
}

// MarkRepaymentPaid settles a repayment. Settled repayments are not kept.
func (l *Ledger) MarkRepaymentPaid(ctx context.Context, token string, id uuid.UUID) error {
	return l.RemoveRepayment(ctx, token, id)
}
