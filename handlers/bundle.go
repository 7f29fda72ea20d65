package handlers

import (
	userRepo "github.com/MazaSebastian/crop-crm-sub000/database/repository/user"
)

// HandlerBundle aggregates every handler group so route registration takes a
// single argument. UserRepo rides along for the auth middleware's persisted
// token-hash fallback.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth         *AuthHandler
	Crop         *CropHandler
	Stock        *StockHandler
	Expense      *ExpenseHandler
	PlannedEvent *PlannedEventHandler
	Calendar     *CalendarHandler
	Coordination *CoordinationHandler
	Weather      *WeatherHandler
	Admin        *AdminHandler
}
