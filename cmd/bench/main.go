package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/finledger/config"
	"github.com/QuangTung97/finledger/domain"
	"github.com/QuangTung97/finledger/repository"
	"github.com/QuangTung97/finledger/service/eventstore"
	"github.com/QuangTung97/finledger/service/ledger"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchAppendCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type benchOptions struct {
	storeKind   string
	numThreads  int
	numElements int
	numAccounts int
}

func newStore(kind string) (eventstore.IStore, int, func(), error) {
	if kind == "memory" {
		return eventstore.NewMemoryStore(), 3, func() {}, nil
	}
	if kind != "mysql" {
		return nil, 0, nil, fmt.Errorf("unknown store: %q", kind)
	}

	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	key, err := conf.Integrity.KeyBytes()
	if err != nil {
		return nil, 0, nil, err
	}

	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)
	store := eventstore.NewStore(provider, repository.NewEvent(), repository.NewOutbox(), eventstore.NewChainHasher(key))
	return store, conf.Ledger.MaxRetries, func() { _ = db.Close() }, nil
}

func openAccounts(ctx context.Context, service *ledger.Service, n int) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		res, err := service.OpenAccount(ctx, ledger.CommandMeta{ActorID: "bench"}, domain.OpenAccountInput{
			UserID:         "bench-user",
			Name:           fmt.Sprintf("Bench %d", i),
			AccountType:    domain.AccountTypeChecking,
			Currency:       string(domain.CurrencyUSD),
			InitialBalance: decimal.NewFromInt(1000),
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, res.AggregateID)
	}
	return ids, nil
}

func benchAppend(opts benchOptions) error {
	if opts.numAccounts <= 0 || opts.numThreads <= 0 {
		return errors.New("accounts and threads must be positive")
	}

	store, maxRetries, closeStore, err := newStore(opts.storeKind)
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	service := ledger.NewService(store, maxRetries)

	accountIDs, err := openAccounts(ctx, service, opts.numAccounts)
	if err != nil {
		return err
	}

	numThreads := opts.numThreads
	numElements := opts.numElements

	durations := make([][]time.Duration, numThreads)
	conflicts := make([]int, numThreads)
	failures := make([]int, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				accountID := accountIDs[(threadIndex+i)%len(accountIDs)]

				start := time.Now()
				_, err := service.Deposit(ctx, ledger.CommandMeta{ActorID: "bench"}, accountID, domain.TransactionInput{
					Amount:   decimal.RequireFromString("1.25"),
					Currency: string(domain.CurrencyUSD),
					Category: "bench",
				})
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))

				if errors.Is(err, eventstore.ErrConcurrencyConflict) {
					conflicts[threadIndex]++
				} else if err != nil {
					failures[threadIndex]++
				}
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	history := make([]time.Duration, 0, numThreads*numElements)

	total := time.Duration(0)
	totalConflicts := 0
	totalFailures := 0
	for th, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
		totalConflicts += conflicts[th]
		totalFailures += failures[th]
	}

	numHistory := len(history)
	if numHistory == 0 {
		return nil
	}
	avg := total / time.Duration(numHistory)

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)
	fmt.Println("AVG:", avg)
	fmt.Println("CONFLICTS AFTER RETRIES:", totalConflicts)
	fmt.Println("FAILURES:", totalFailures)

	for _, id := range accountIDs {
		acc, version, err := service.GetAccount(ctx, id)
		if err != nil {
			return err
		}
		fmt.Println("ACCOUNT:", id, "VERSION:", version, "BALANCE:", acc.Balance.String())
	}
	return nil
}

func benchAppendCommand() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:   "append",
		Short: "benchmark concurrent deposits into a few shared accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchAppend(opts)
		},
	}
	cmd.Flags().StringVar(&opts.storeKind, "store", "memory", "memory or mysql")
	cmd.Flags().IntVar(&opts.numThreads, "threads", 50, "number of concurrent writers")
	cmd.Flags().IntVar(&opts.numElements, "ops", 200, "deposits per writer")
	cmd.Flags().IntVar(&opts.numAccounts, "accounts", 4, "number of shared accounts")
	return cmd
}
