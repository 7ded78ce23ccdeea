package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/domain"
)

func TestLedgerService_Balance_ReplaysHistory(t *testing.T) {
	payments := &fakePaymentRepo{}
	logs := &fakeMealLogRepo{}
	students := newFakeStudentRepo(testStudent())
	svc := NewLedgerService(payments, logs, students)

	ctx := context.Background()

	// Starting balance of 5 comes from an earlier payment.
	_, err := svc.RecordPayment(ctx, domain.Payment{StudentID: 1, Amount: 25000, MealsAdded: 5})
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, balance)

	// One payment of +3 meals arrives.
	_, err = svc.RecordPayment(ctx, domain.Payment{StudentID: 1, Amount: 15000, MealsAdded: 3})
	require.NoError(t, err)

	balance, err = svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, balance)

	// One successful redemption appends a meal log.
	_, err = logs.Create(ctx, domain.MealLog{StudentID: 1, StaffID: 5, MealType: domain.MealLunch, CredentialID: 11, ServedAt: clock(testDay, "13:15")})
	require.NoError(t, err)

	// Displayed balance is sum of payment credits minus meal log count,
	// recomputed on load: 8 - 1 = 7.
	balance, err = svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, balance)
}

func TestLedgerService_Balance_IgnoresOtherStudents(t *testing.T) {
	payments := &fakePaymentRepo{}
	logs := &fakeMealLogRepo{}
	other := domain.Student{ID: 2, RegNumber: "BU/2024/002"}
	svc := NewLedgerService(payments, logs, newFakeStudentRepo(testStudent(), other))

	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, domain.Payment{StudentID: 1, MealsAdded: 4})
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, domain.Payment{StudentID: 2, MealsAdded: 9})
	require.NoError(t, err)
	_, err = logs.Create(ctx, domain.MealLog{StudentID: 2, MealType: domain.MealSupper})
	require.NoError(t, err)

	balance, err := svc.Balance(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, balance)

	balance, err = svc.Balance(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, balance)
}

func TestLedgerService_RecordPayment(t *testing.T) {
	payments := &fakePaymentRepo{}
	students := newFakeStudentRepo(testStudent())
	svc := NewLedgerService(payments, &fakeMealLogRepo{}, students)

	created, err := svc.RecordPayment(context.Background(), domain.Payment{StudentID: 1, Amount: 15000, MealsAdded: 3})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.PaymentDate.IsZero(), "payment date defaults to now")

	// The stored counter is bumped too, as the admin screen does.
	assert.Equal(t, 3, students.balanceDeltas[1])
}

func TestLedgerService_RecordPayment_UnknownStudent(t *testing.T) {
	svc := NewLedgerService(&fakePaymentRepo{}, &fakeMealLogRepo{}, newFakeStudentRepo())

	_, err := svc.RecordPayment(context.Background(), domain.Payment{StudentID: 42, MealsAdded: 3})

	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func TestLedgerService_MealHistory(t *testing.T) {
	logs := &fakeMealLogRepo{}
	svc := NewLedgerService(&fakePaymentRepo{}, logs, newFakeStudentRepo(testStudent()))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := logs.Create(ctx, domain.MealLog{StudentID: 1, MealType: domain.MealBreakfast})
		require.NoError(t, err)
	}

	history, err := svc.MealHistory(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
