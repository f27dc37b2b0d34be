package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mura0908/finsight-app-New/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrCategoryInUse         = errors.New("the category is still in use, confirm to move its entries to 'other'")
	ErrCategorySentinel      = errors.New("the category 'other' cannot be deleted")
	ErrCategorySlugEmpty     = errors.New("the category name must contain at least one letter or digit")
	ErrCategoryUnknown       = errors.New("there is no category with this id for this type")
	ErrDepositNotPositive    = errors.New("the deposit must be larger than zero")
	ErrPaymentNotPositive    = errors.New("the payment must be larger than zero")
	ErrPaymentExceedsBalance = errors.New("the payment is larger than the remaining amount of the debt")
	ErrPasswordNotSet        = errors.New("no repayment password is set, provide one to set it up")
	ErrWrongPassword         = errors.New("the repayment password is wrong")
	ErrRepaymentLocked       = errors.New("repayments are locked, unlock them with the repayment password first")
)

// notFound returns the error for a missing resource and logs the attempt.
func notFound(m models.Model, id uuid.UUID) error {
	log.Warn().Str("resource", m.Self()).Str("id", id.String()).Msg("no resource with this id")
	return fmt.Errorf("%w %s with id %s", models.ErrResourceNotFound, strings.ToLower(m.Self()), id)
}

// first loads the resource with the given ID.
func first[T models.Model](tx *gorm.DB, id uuid.UUID) (T, error) {
	var resource T
	err := tx.First(&resource, "id = ?", id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return resource, notFound(resource, id)
	}

	return resource, err
}

// remove deletes the resource with the given ID.
func remove[T models.Model](tx *gorm.DB, id uuid.UUID) error {
	var resource T
	result := tx.Delete(&resource, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(resource, id)
	}

	return nil
}
