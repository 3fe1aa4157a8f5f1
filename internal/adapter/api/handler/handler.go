package handler

import (
	"magicwheel/internal/usecase"
)

var (
	userHandler         *UserHandler
	productHandler      *ProductHandler
	categoryHandler     *CategoryHandler
	orderHandler        *OrderHandler
	listingOrderHandler *ListingOrderHandler
	wishlistHandler     *WishlistHandler
	notificationHandler *NotificationHandler
	paymentHandler      *PaymentHandler
)

func Setup(
	userUseCase *usecase.UserUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	orderUseCase *usecase.OrderUseCase,
	listingOrderUseCase *usecase.ListingOrderUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	paymentUseCase *usecase.PaymentUseCase,
) {
	userHandler = NewUserHandler(userUseCase)
	productHandler = NewProductHandler(catalogUseCase)
	categoryHandler = NewCategoryHandler(catalogUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	listingOrderHandler = NewListingOrderHandler(listingOrderUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetListingOrderHandler() *ListingOrderHandler {
	return listingOrderHandler
}

func GetWishlistHandler() *WishlistHandler {
	return wishlistHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}
