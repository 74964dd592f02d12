package pgsql

import (
	portsrepo "github.com/SscSPs/intl_pricing_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	_ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)
	_ portsrepo.PreferenceRepositoryFacade   = (*PgxPreferenceRepository)(nil)
	_ portsrepo.TransactionManager           = (*BaseRepository)(nil)
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewPgxExchangeRateRepository(dbPool),
		PreferenceRepo:   NewPgxPreferenceRepository(dbPool),
	}
}
