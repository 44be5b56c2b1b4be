package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAmendOrderCommand_NothingToAmend(t *testing.T) {
	_, err := commands.NewAmendOrderCommand(
		kernel.NewUUID(), nil, nil, nil, nil, adminActor())

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNothingToAmend)
}

func TestAmendOrderCommandHandler_Handle_SetsFieldsWithoutRepricing(t *testing.T) {
	ctx := t.Context()
	o := newPaidCardOrder(t, order.Ready)
	subtotalBefore := o.Totals().Subtotal
	totalBefore := o.Totals().Total

	courierID := kernel.NewUUID()
	deliveredAt := time.Now().UTC()
	notes := "left at the door"
	cmd, err := commands.NewAmendOrderCommand(
		o.ID(), &courierID, &deliveredAt, "3.10", &notes, adminActor())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAmendOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, o.Courier())
	assert.True(t, o.Courier().IsEqual(courierID))
	require.NotNil(t, o.DeliveredAt())
	assert.True(t, o.DeliveredAt().Equal(deliveredAt))
	assert.Equal(t, "left at the door", o.Notes())
	// The fee changes but nothing is re-priced.
	assert.Equal(t, "3.1", o.Totals().DeliveryFee.String())
	assert.True(t, o.Totals().Subtotal.Equal(subtotalBefore))
	assert.True(t, o.Totals().Total.Equal(totalBefore))
	repo.AssertExpectations(t)
}
