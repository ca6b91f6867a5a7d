package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const defaultListenAddr = ":8080"
const defaultChannelID = "BranchTeller"
const defaultChannelKey = "BranchTellerKey001"
const defaultBranchCode = "0001"
const defaultWithdrawalLimit = "500.00"
const defaultMaxWithdrawals = 3

type Config struct {
	ListenAddr      string
	DatabaseDSN     string
	MigrationsDir   string
	ChannelID       string
	ChannelKey      string
	BranchCode      string
	WithdrawalLimit decimal.Decimal
	MaxWithdrawals  int
}

// Load reads configuration from the environment, falling back to defaults.
// An empty DATABASE_DSN selects the in-memory ledger backend.
func Load() (Config, error) {
	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	channelID := strings.TrimSpace(os.Getenv("CHANNEL_ID"))
	if channelID == "" {
		channelID = defaultChannelID
	}

	channelKey := strings.TrimSpace(os.Getenv("CHANNEL_KEY"))
	if channelKey == "" {
		channelKey = defaultChannelKey
	}

	branchCode := strings.TrimSpace(os.Getenv("BRANCH_CODE"))
	if branchCode == "" {
		branchCode = defaultBranchCode
	}

	rawLimit := strings.TrimSpace(os.Getenv("WITHDRAWAL_LIMIT"))
	if rawLimit == "" {
		rawLimit = defaultWithdrawalLimit
	}
	withdrawalLimit, err := decimal.NewFromString(rawLimit)
	if err != nil || withdrawalLimit.LessThanOrEqual(decimal.Zero) {
		return Config{}, fmt.Errorf("WITHDRAWAL_LIMIT must be a positive decimal, got %q", rawLimit)
	}

	maxWithdrawals := defaultMaxWithdrawals
	if raw := strings.TrimSpace(os.Getenv("WITHDRAWAL_MAX_COUNT")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("WITHDRAWAL_MAX_COUNT must be a positive integer, got %q", raw)
		}
		maxWithdrawals = parsed
	}

	return Config{
		ListenAddr:      listenAddr,
		DatabaseDSN:     strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		MigrationsDir:   "migrations",
		ChannelID:       channelID,
		ChannelKey:      channelKey,
		BranchCode:      branchCode,
		WithdrawalLimit: withdrawalLimit,
		MaxWithdrawals:  maxWithdrawals,
	}, nil
}
