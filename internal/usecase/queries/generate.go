package queries

//go:generate mockgen -destination=../../../tests/mock/queries/mock_queries.go -package=queriesmock loyalty-ledger/internal/usecase/queries AccountQueries,RaffleQueries,RewardQueries,UserQueries
