package models

// All returns every persistence model, in dependency order.
// AutoMigrate in development and tests walks this list.
func All() []any {
	return []any{
		&ProductModel{},
		&WarehouseModel{},
		&WarungModel{},
		&WarungProductModel{},
		&StockModel{},
		&StockMovementModel{},
		&StockOpnameModel{},
		&PurchaseOrderModel{},
		&PurchaseOrderItemModel{},
		&OrderModel{},
		&OrderItemModel{},
		&DeliveryTaskModel{},
		&ReceivableModel{},
		&PaymentModel{},
	}
}
