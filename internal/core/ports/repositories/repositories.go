package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container at startup.
type RepositoryProvider struct {
	ApplicationRepo ApplicationRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	AuditRepo       AuditRepositoryFacade
	BeneficiaryRepo BeneficiaryRepositoryFacade
	UserRepo        UserRepositoryFacade
}
