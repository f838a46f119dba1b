package services

// ServiceContainer holds instances of all the application services.
// Handlers and the CLI reach the core through it.
type ServiceContainer struct {
	Bookkeeping BookkeepingSvcFacade
	Reporting   ReportingSvc
}
