package services

import (
	portsins "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/insights"
	portsrepo "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/repositories"
	portssvc "github.com/etony5555-creator/tony-retail-managment-sytem/internal/core/ports/services"
)

// Repositories bundles every repository the services depend on.
type Repositories struct {
	Customer    portsrepo.CustomerRepositoryFacade
	Stock       portsrepo.StockRepositoryFacade
	Transaction portsrepo.TransactionRepositoryFacade
	Borrow      portsrepo.BorrowRepositoryFacade
	Wholesaler  portsrepo.WholesalerRepositoryFacade
	Driver      portsrepo.DriverRepositoryFacade
	Task        portsrepo.TaskRepositoryFacade
	Settings    portsrepo.SettingsRepositoryFacade
}

// NewServiceContainer wires all application services together.
// generator may be nil, in which case the insights endpoint returns a
// canned message instead of calling out.
func NewServiceContainer(repos Repositories, generator portsins.TextGenerator) *portssvc.ServiceContainer {
	dashboard := NewDashboardService(repos.Transaction, repos.Stock, repos.Borrow, repos.Customer)

	return &portssvc.ServiceContainer{
		Customer:    NewCustomerService(repos.Customer),
		Stock:       NewStockService(repos.Stock),
		Transaction: NewTransactionService(repos.Transaction),
		Borrow:      NewBorrowService(repos.Borrow),
		Wholesaler:  NewWholesalerService(repos.Wholesaler),
		Driver:      NewDriverService(repos.Driver),
		Task:        NewTaskService(repos.Task),
		Dashboard:   dashboard,
		Settings:    NewSettingsService(repos.Settings),
		Insights:    NewInsightsService(dashboard, generator),
	}
}
