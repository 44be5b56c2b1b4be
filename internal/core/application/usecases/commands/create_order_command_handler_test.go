package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		id, restaurantID, validCustomerInput(), validAddressInput(), validItemInputs(),
		commands.PaymentInput{Method: "card", CardBrand: "visa", CardLast4: "4242", CardHolder: "ADA BYRON"},
		nil, "0.40", nil, 0, "")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	directory := new(MockRestaurantDirectory)
	pizzeria := newTestRestaurant(t, nil)

	var created *order.Order
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantDirectory").Return(directory).Once(),
		directory.On("Get", mock.Anything, restaurantID).Return(pizzeria, nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("NextSequenceNumber", mock.Anything).Return(int64(1001), nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*order.Order)
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.AwaitingPayment, created.Status())
	assert.Equal(t, int64(1001), created.Number())
	// Restaurant defaults kick in for the omitted fee and prep time.
	assert.Equal(t, "2.5", created.Totals().DeliveryFee.String())
	assert.Equal(t, 25, created.PrepTimeMinutes())
	// 2 x 10.00 + 2.50 delivery + 0.40 service.
	assert.Equal(t, "20", created.Totals().Subtotal.String())
	assert.Equal(t, "22.9", created.Totals().Total.String())
	assert.Equal(t, order.PaymentCard, created.Payment().Method())

	repo.AssertExpectations(t)
	directory.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCheckoutUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err := h.Handle(ctx, commands.CreateOrderCommand{})

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_UnknownRestaurant(t *testing.T) {
	ctx := t.Context()
	restaurantID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), restaurantID, validCustomerInput(), validAddressInput(),
		validItemInputs(), commands.PaymentInput{}, nil, nil, nil, 0, "")
	require.NoError(t, err)

	directory := new(MockRestaurantDirectory)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantDirectory").Return(directory).Once(),
		directory.On("Get", mock.Anything, restaurantID).
			Return(nil, errs.NewObjectNotFoundError("restaurantId", restaurantID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_InvalidCardPayment(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), validCustomerInput(), validAddressInput(),
		validItemInputs(),
		commands.PaymentInput{Method: "card", CardBrand: "visa", CardLast4: "42", CardHolder: "ADA"},
		nil, nil, nil, 0, "")
	require.NoError(t, err)

	factory := new(MockCheckoutUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
