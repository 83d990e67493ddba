package impl

import (
	"log/slog"

	"market/internal/domain/event"
	"market/internal/domain/service"
)

// RegisterReactors wires every reactor onto the bus. Registration order is
// dispatch order: the aggregate reactors run before the integration
// publisher, so a message is only enqueued once the denormalized state of
// the same transaction is consistent.
func RegisterReactors(bus *event.Bus, publisher service.IntegrationPublisher, logger *slog.Logger) {
	rating := newRatingReactor(logger)
	bus.Subscribe(event.NameCommentRegistered, rating.OnCommentChanged)
	bus.Subscribe(event.NameCommentDeleted, rating.OnCommentChanged)

	stock := newStockReactor(logger)
	bus.Subscribe(event.NameOrderRegistered, stock.OnOrderRegistered)
	bus.Subscribe(event.NameOrderCanceled, stock.OnOrderCanceled)

	pricing := newPricingReactor(logger)
	bus.Subscribe(event.NameDiscountRegistered, pricing.OnDiscountRegistered)
	bus.Subscribe(event.NameDiscountDeleted, pricing.OnDiscountDeleted)

	cascade := newCascadeReactor(logger)
	bus.Subscribe(event.NameProductDeleted, cascade.OnProductDeleted)

	integration := newIntegrationReactor(publisher, logger)
	bus.Subscribe(event.NameCategoryRegistered, integration.OnCategoryRegistered)
	bus.Subscribe(event.NameProductRegistered, integration.OnProductRegistered)
}
