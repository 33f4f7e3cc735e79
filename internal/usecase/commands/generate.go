package commands

//go:generate mockgen -destination=../../../tests/mock/commands/mock_commands.go -package=commandsmock loyalty-ledger/internal/usecase/commands AuthCommands,LedgerCommands,RaffleCommands,RedemptionCommands,RewardCommands
