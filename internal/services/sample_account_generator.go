package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"bank-simulator/internal/models"
)

const (
	checkingNumberPrefix = "CH"
	savingsNumberPrefix  = "SV"

	// generated numbers start above the fixed demo accounts (CH001, SV001)
	generatedNumberStart = 100

	maxOpeningBalance = 5000.0
)

type sampleAccountGenerator struct {
	checkingTerms models.CheckingTerms
	savingsTerms  models.SavingsTerms
	faker         *gofakeit.Faker
	nextNumber    int
}

// NewSampleAccountGenerator creates a generator producing randomized demo
// accounts that satisfy each variant's opening rules.
func NewSampleAccountGenerator(checkingTerms models.CheckingTerms, savingsTerms models.SavingsTerms) SampleAccountGeneratorInterface {
	return &sampleAccountGenerator{
		checkingTerms: checkingTerms,
		savingsTerms:  savingsTerms,
		faker:         gofakeit.New(uint64(time.Now().UnixNano())),
		nextNumber:    generatedNumberStart,
	}
}

// Generate returns count randomized accounts, alternating between variants.
// Openings are drawn within each variant's legal range, so construction
// cannot fail; a construction error is logged and the slot skipped.
func (g *sampleAccountGenerator) Generate(count int) []models.Account {
	accounts := make([]models.Account, 0, count)

	for i := 0; i < count; i++ {
		var (
			account models.Account
			err     error
		)

		holder := g.faker.Name()
		if i%2 == 0 {
			opening := decimal.NewFromFloat(g.faker.Price(0, maxOpeningBalance)).Round(2)
			account, err = models.NewCheckingAccount(g.nextAccountNumber(checkingNumberPrefix), holder, opening, g.checkingTerms)
		} else {
			minimum, _ := g.savingsTerms.MinimumOpeningBalance.Float64()
			opening := decimal.NewFromFloat(g.faker.Price(minimum, maxOpeningBalance)).Round(2)
			account, err = models.NewSavingsAccount(g.nextAccountNumber(savingsNumberPrefix), holder, opening, g.savingsTerms)
		}

		if err != nil {
			slog.Warn("skipping generated account",
				"holder", holder,
				"error", err)
			continue
		}

		accounts = append(accounts, account)
	}

	return accounts
}

func (g *sampleAccountGenerator) nextAccountNumber(prefix string) string {
	number := fmt.Sprintf("%s%03d", prefix, g.nextNumber)
	g.nextNumber++
	return number
}
