package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Customer    CustomerSvcFacade
	Stock       StockSvcFacade
	Transaction TransactionSvcFacade
	Borrow      BorrowSvcFacade
	Wholesaler  WholesalerSvcFacade
	Driver      DriverSvcFacade
	Task        TaskSvcFacade
	Dashboard   DashboardSvcFacade
	Settings    SettingsSvcFacade
	Insights    InsightsSvcFacade
}
